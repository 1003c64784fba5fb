package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gradescan/omr-engine/internal/imaging"
	"github.com/gradescan/omr-engine/internal/keys"
	"github.com/gradescan/omr-engine/internal/logger"
)

// maxUploadBytes caps sheet uploads at 5 MB.
const maxUploadBytes = 5 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Detail string `json:"detail"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "OMR grading API is running",
		"status":  "healthy",
	})
}

func (s *Server) handleAnswerKeys(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	ids, err := s.keys.List()
	if err != nil {
		log.Printf("listing answer keys: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list answer keys")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, map[string][]string{"answer_keys": ids})
}

// handleUpload accepts a multipart sheet image plus an exam_key form field,
// grades the sheet, and responds with the result JSON. The staged upload is
// removed after grading; the result is persisted best-effort for audit.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid or oversized multipart request (5 MB limit)")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("unsupported file format %q, allowed: .jpg, .jpeg, .png", ext))
		return
	}

	examKey := r.FormValue("exam_key")
	if examKey == "" {
		examKey = "exam1"
	}
	key, err := s.keys.Load(examKey)
	if err != nil {
		if errors.Is(err, keys.ErrNotFound) {
			writeError(w, http.StatusNotFound, fmt.Sprintf("answer key %q not found", examKey))
			return
		}
		log.Printf("loading answer key %s: %v", examKey, err)
		writeError(w, http.StatusInternalServerError, "failed to load answer key")
		return
	}

	uploadPath := filepath.Join(s.dirs.Uploads, randomName()+ext)
	if err := saveUpload(uploadPath, file); err != nil {
		log.Printf("staging upload: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to store upload")
		return
	}
	defer func() {
		if err := os.Remove(uploadPath); err != nil {
			logger.Debugf("cleaning up upload %s: %v", uploadPath, err)
		}
	}()

	result, err := s.proc.Process(uploadPath, key)
	if err != nil {
		if errors.Is(err, imaging.ErrLoad) {
			writeError(w, http.StatusUnprocessableEntity, "image could not be decoded")
			return
		}
		log.Printf("processing sheet: %v", err)
		writeError(w, http.StatusInternalServerError, "processing failed")
		return
	}

	s.persistResult(result)
	log.Printf("graded sheet %s against key %s: %d/%d", header.Filename, examKey, result.Score, result.Total)
	writeJSON(w, http.StatusOK, result)
}

// persistResult writes the result JSON to the results directory. Failures
// are logged, not surfaced: the client already has the result.
func (s *Server) persistResult(result any) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Printf("encoding result: %v", err)
		return
	}
	path := filepath.Join(s.dirs.Results, randomName()+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("persisting result to %s: %v", path, err)
	}
}

func saveUpload(path string, src io.Reader) error {
	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return dst.Close()
}

// randomName returns a 16-byte hex string for staging filenames, so
// concurrent uploads never collide.
func randomName() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand failing means the process is in a bad state; fall back
		// to a constant so staging still works single-threaded.
		return "upload"
	}
	return hex.EncodeToString(b[:])
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorBody{Detail: detail})
}
