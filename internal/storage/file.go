// Package storage persists a task store to a JSON file.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"todo/internal/logging"
	"todo/internal/task"
)

// document is the on-disk shape of a task store.
type document struct {
	NextID int         `json:"next_id"`
	Tasks  []task.Task `json:"tasks"`
}

// File loads and saves a task store at Path.
type File struct {
	Path   string
	logger *log.Logger
}

// NewFile returns a File for path. A nil logger discards diagnostics.
func NewFile(path string, logger *log.Logger) *File {
	if logger == nil {
		logger = logging.Discard()
	}
	return &File{Path: path, logger: logger}
}

// Load returns the store saved at Path.
// A missing, unreadable or malformed file yields an empty store; the
// reason is only logged.
func (f *File) Load() *task.Store {
	s, err := f.Read()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.logger.Debug("task file not found, starting empty", "path", f.Path)
		} else {
			f.logger.Debug("task file unusable, starting empty", "path", f.Path, "err", err)
		}
		return task.NewStore()
	}
	f.logger.Debug("loaded tasks", "path", f.Path, "count", s.Len(), "next_id", s.NextID())
	return s
}

// Read is the strict form of Load and reports why a file could not be used.
func (f *File) Read() (*task.Store, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	if err := validate(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse task file: %w", err)
	}

	s, err := task.Restore(doc.NextID, doc.Tasks)
	if err != nil {
		return nil, fmt.Errorf("restore tasks: %w", err)
	}
	return s, nil
}

// Save writes the whole store to Path, replacing previous content.
func (f *File) Save(s *task.Store) error {
	doc := document{
		NextID: s.NextID(),
		Tasks:  s.All(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("save tasks: marshal: %w", err)
	}
	data = append(data, '\n')

	if err := writeFile(f.Path, data); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	f.logger.Debug("saved tasks", "path", f.Path, "count", s.Len())
	return nil
}

// writeFile replaces path with data via a temp file in the same directory.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
