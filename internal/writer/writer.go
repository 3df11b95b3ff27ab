package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-scripts/webscraper/internal/types"
)

// FileWriter writes the JSON artifact of a run to a file
type FileWriter struct {
	path string
}

// New creates a FileWriter for path, creating its directory if needed
func New(path string) (*FileWriter, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return &FileWriter{path: path}, nil
}

// Path returns the output file path
func (w *FileWriter) Path() string {
	return w.path
}

// WriteRecords writes records as an indented JSON array
func (w *FileWriter) WriteRecords(records []types.ScrapedRecord) error {
	data, err := types.MarshalRecords(records)
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}

	return file.Close()
}
