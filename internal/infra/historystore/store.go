// Package historystore persists terminal command history as a JSON file.
package historystore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/shellbridge/internal/domain"
)

// Ensure Store implements domain.HistoryStore.
var _ domain.HistoryStore = (*Store)(nil)

// fileData represents the JSON file structure.
type fileData struct {
	Entries []string `json:"entries"`
}

// Store implements domain.HistoryStore using a JSON file guarded by a
// sibling lock file, so two terminals sharing a config directory do not
// interleave writes.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the history file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored entries, newest first.
// A missing file is an empty history.
func (s *Store) Load() ([]string, error) {
	lock, err := acquireLock(s.lockPath, false)
	if err != nil {
		return nil, err
	}
	defer releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return data.Entries, nil
}

// Save replaces the stored entries.
func (s *Store) Save(entries []string) error {
	lock, err := acquireLock(s.lockPath, true)
	if err != nil {
		return err
	}
	defer releaseLock(lock)

	if entries == nil {
		entries = []string{}
	}
	return s.write(&fileData{Entries: entries})
}

func (s *Store) read() (*fileData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileData{}, nil
		}
		return nil, fmt.Errorf("read history file: %w", err)
	}

	var data fileData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse history file: %w", err)
	}
	return &data, nil
}

func (s *Store) write(data *fileData) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
