package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gradescan/omr-engine/internal/keys"
	"github.com/gradescan/omr-engine/internal/sheet"
)

// Dirs holds the filesystem locations the server writes to. It is created by
// the caller at startup (NewDirs) and torn down or ignored at process exit;
// nothing else in the system knows about directories.
type Dirs struct {
	// Uploads stages incoming images until they are graded.
	Uploads string

	// Results receives one JSON file per graded sheet.
	Results string
}

// NewDirs creates the upload and result directories under base.
func NewDirs(base string) (Dirs, error) {
	d := Dirs{
		Uploads: filepath.Join(base, "uploads"),
		Results: filepath.Join(base, "results"),
	}
	for _, dir := range []string{d.Uploads, d.Results} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Dirs{}, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	return d, nil
}

// Server wires the HTTP surface to a sheet processor and an answer-key
// store.
type Server struct {
	proc sheet.Processor
	keys *keys.Store
	dirs Dirs
}

// New creates a Server. The processor decides whether requests are graded by
// the real engine or the mock; that choice belongs to the composition root.
func New(proc sheet.Processor, store *keys.Store, dirs Dirs) *Server {
	return &Server{proc: proc, keys: store, dirs: dirs}
}

// Routes returns the server's handler with all endpoints registered.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/answer-keys", s.handleAnswerKeys)
	mux.HandleFunc("/upload", s.handleUpload)
	return mux
}
