// Package keys loads answer keys from a directory of JSON files.
//
// Each key is a file named <id>.json holding a flat mapping from question
// number (as text, 1-based) to a single uppercase option letter. No ordering
// is required on disk; consumers reconstruct question order by numeric sort
// via AnswerKey.Questions.
package keys

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gradescan/omr-engine/internal/grading"
)

// ErrNotFound is returned by Load when no key exists for the requested
// identifier. Callers surface it as a not-found condition; no partial result
// is produced.
var ErrNotFound = errors.New("answer key not found")

// Store reads answer keys from a single directory.
type Store struct {
	dir string
}

// NewStore creates a store over the given directory. The directory is not
// required to exist until Load or List is called.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Load reads the answer key with the given identifier.
//
// Option letters are normalized to upper case. Returns an error matching
// ErrNotFound when the file does not exist, and a plain error when the file
// exists but cannot be parsed.
func (s *Store) Load(id string) (grading.AnswerKey, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("reading answer key %s: %w", id, err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing answer key %s: %w", id, err)
	}

	key := make(grading.AnswerKey, len(raw))
	for question, letter := range raw {
		key[question] = strings.ToUpper(strings.TrimSpace(letter))
	}
	return key, nil
}

// List returns the identifiers of all available answer keys, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing answer keys: %w", err)
	}

	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(ids)
	return ids, nil
}

// Save writes an answer key under the given identifier, creating the
// directory if needed. Existing keys are overwritten.
func (s *Store) Save(id string, key grading.AnswerKey) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating key directory: %w", err)
	}
	data, err := json.MarshalIndent(key, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding answer key %s: %w", id, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, id+".json"), data, 0o644); err != nil {
		return fmt.Errorf("writing answer key %s: %w", id, err)
	}
	return nil
}
