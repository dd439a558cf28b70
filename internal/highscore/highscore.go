// Package highscore persists the best score of a game variant as a single
// decimal integer in a text file.
package highscore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// FileStore reads and writes one high score file.
// It is safe for concurrent use; SSH sessions share a store per variant.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

// NewFileStore returns a store backed by path. A nil logger discards output.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored score. A missing or unparseable file yields 0.
func (s *FileStore) Load() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) read() uint64 {
	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Debug("no high score yet", "path", s.path, "error", err)
		return 0
	}
	score, err := strconv.ParseUint(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		s.logger.Debug("ignoring corrupt high score", "path", s.path, "error", err)
		return 0
	}
	return score
}

// Save overwrites the file with score unless the file already holds a
// higher one, so the stored value never decreases.
func (s *FileStore) Save(score uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current := s.read(); current > score {
		s.logger.Debug("keeping higher stored score", "score", score, "stored", current)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("highscore: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(strconv.FormatUint(score, 10)), 0o644); err != nil {
		return fmt.Errorf("highscore: write %s: %w", s.path, err)
	}
	s.logger.Info("high score saved", "score", score)
	return nil
}
