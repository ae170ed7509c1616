// Package storage provides local filesystem storage for uploaded
// document templates.
package storage

import (
	"io"
	"os"
	"path/filepath"
)

// localStorage implements template file storage on the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance rooted at basePath
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// generatePath generates the full file path for a stored template
func (s *localStorage) generatePath(id string) string {
	return filepath.Join(s.basePath, "templates", id)
}

// Create creates a new template file and returns a WriteCloser
func (s *localStorage) Create(id string) (io.WriteCloser, error) {
	path := s.generatePath(id)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	return os.Create(path)
}

// Read returns the full contents of a stored template file
func (s *localStorage) Read(id string) ([]byte, error) {
	return os.ReadFile(s.generatePath(id))
}

// Delete removes a stored template file
func (s *localStorage) Delete(id string) error {
	return os.Remove(s.generatePath(id))
}
