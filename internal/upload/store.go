package upload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxExtLength = 8

// Store keeps uploaded audio on disk for the lifetime of one request.
// Every saved file gets a fresh random name, so concurrent requests never
// share a path.
type Store struct {
	dir    string
	logger *zap.Logger
}

// NewStore creates dir if needed and returns a store rooted there.
func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save copies src into a new file whose extension follows filename and
// returns its path. The caller owns the file and must Remove it.
func (s *Store) Save(src io.Reader, filename string) (string, error) {
	path := filepath.Join(s.dir, uuid.NewString()+safeExt(filename))

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}

	if _, err := io.Copy(file, src); err != nil {
		file.Close()
		s.Remove(path)
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	if err := file.Close(); err != nil {
		s.Remove(path)
		return "", fmt.Errorf("failed to close upload file: %w", err)
	}

	return path, nil
}

// Remove deletes a file created by Save. A file that is already gone is
// not an error.
func (s *Store) Remove(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.logger.Warn("Failed to remove upload file", zap.String("path", path), zap.Error(err))
	}
}

// safeExt keeps a short alphanumeric extension from a client supplied name.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > maxExtLength+1 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
