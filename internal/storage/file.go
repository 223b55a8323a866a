package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileBlob stores the state as a single JSON file. Writes go through a
// temporary file and rename so a crash mid-write cannot leave a truncated
// payload behind.
type FileBlob struct {
	path string
}

// NewFile creates a file-backed blob at the given path.
func NewFile(path string) *FileBlob {
	return &FileBlob{path: path}
}

// Path returns the file path backing this blob.
func (f *FileBlob) Path() string {
	return f.path
}

// Read returns the file contents, or ok=false when the file does not exist.
func (f *FileBlob) Read() ([]byte, bool, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state file: %w", err)
	}
	return data, true, nil
}

// Write atomically replaces the file contents.
func (f *FileBlob) Write(data []byte) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace state file: %w", err)
	}
	return nil
}

// Delete removes the file if it exists.
func (f *FileBlob) Delete() error {
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete state file: %w", err)
	}
	return nil
}
