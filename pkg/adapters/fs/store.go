// Package fs implements the whole-file stores backing daybook: the notes
// document is read and replaced as one text blob, never patched in place.
package fs

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Store implements core.FileStore using the local filesystem.
type Store struct {
	logger *slog.Logger
}

// NewStore creates a filesystem-backed store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{logger: logger}
}

// Read returns the file's text with line endings normalized to \n.
// A missing file surfaces unwrapped so callers can errors.Is it against
// fs.ErrNotExist.
func (s *Store) Read(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text, nil
}

// Write replaces the file's content atomically, creating parent
// directories when needed.
func (s *Store) Write(ctx context.Context, path, text string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}
	if err := writeFileAtomic(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	s.logger.Debug("document written", "path", path, "bytes", len(text))
	return nil
}
