package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jarscope/internal/application"
)

// Source implements ports.FileSource on the local filesystem
type Source struct {
	exportDir string
}

// NewSource creates a source that writes exports into exportDir
func NewSource(exportDir string) *Source {
	return &Source{exportDir: expandHome(exportDir)}
}

// ExportDir returns the directory exports are written to
func (s *Source) ExportDir() string {
	return s.exportDir
}

// ReadInput reads a .jar or .class file. Other suffixes are rejected before
// the file is opened.
func (s *Source) ReadInput(path string) ([]byte, error) {
	path = expandHome(path)
	if _, err := application.ValidateInputName(filepath.Base(path)); err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input: %w", err)
	}
	if info.IsDir() {
		return nil, &application.ValidationError{
			Field:   "path",
			Message: fmt.Sprintf("%s is a directory", path),
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// WriteExport writes content to name inside the export directory
func (s *Source) WriteExport(name, content string) (string, error) {
	if err := application.ValidateRequired("fileName", name); err != nil {
		return "", err
	}
	if filepath.Base(name) != name {
		return "", &application.ValidationError{
			Field:   "fileName",
			Message: fmt.Sprintf("export name must not contain a directory: %s", name),
		}
	}

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(s.exportDir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// expandHome expands a leading ~ to the home directory
func expandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[1:])
	}
	return path
}
