package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"sitework-scheduler/internal/models"

	"github.com/gofrs/flock"
)

// FileStore persists the whole schedule as a single JSON document.
// Every operation reads the full file and mutations write it back in full,
// via a temp file renamed into place so a failed write never leaves a
// partial document behind. An in-process RWMutex serializes mutation
// cycles (the single-writer gate); the flock extends that across
// processes sharing the data file.
type FileStore struct {
	filePath string
	mu       sync.RWMutex
	flk      *flock.Flock
}

// NewFileStore opens (or creates) the data file at path.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("store: data file path is empty")
	}
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create directory %s: %w", dir, err)
		}
	}
	s := &FileStore{
		filePath: path,
		flk:      flock.New(path),
	}
	// Create an empty document if the file does not exist yet, so every
	// later load sees valid JSON.
	if err := s.flk.Lock(); err != nil {
		return nil, fmt.Errorf("store: lock %s: %w", path, err)
	}
	defer func() { _ = s.flk.Unlock() }()
	if _, err := s.read(); err != nil {
		return nil, err
	}
	return s, nil
}

// read loads and decodes the document. Caller must hold the lock.
func (s *FileStore) read() (*models.ScheduleFile, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			doc := &models.ScheduleFile{Tasks: []models.Task{}}
			if err := s.write(doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", s.filePath, err)
	}
	doc := &models.ScheduleFile{}
	if len(data) > 0 {
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", s.filePath, err)
		}
	}
	if doc.Tasks == nil {
		doc.Tasks = []models.Task{}
	}
	return doc, nil
}

// write marshals the document to a temp file and renames it into place.
// Caller must hold the lock.
func (s *FileStore) write(doc *models.ScheduleFile) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}
	tmp := s.filePath + ".tmp"
	defer func() { _ = os.Remove(tmp) }()
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("store: write temp file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.filePath); err != nil {
		return fmt.Errorf("store: replace %s: %w", s.filePath, err)
	}
	return nil
}

// Load returns a fresh snapshot of the document. Concurrent loads are
// allowed; the rename-based write means a reader never sees a torn file.
func (s *FileStore) Load() (*models.ScheduleFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.flk.RLock(); err != nil {
		return nil, fmt.Errorf("store: shared lock: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()
	return s.read()
}

// Update runs fn inside a read-entire-store, modify, write-entire-store
// cycle under the exclusive gate. If fn returns an error nothing is
// written and the prior durable state stays authoritative.
func (s *FileStore) Update(fn func(doc *models.ScheduleFile) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.flk.Lock(); err != nil {
		return fmt.Errorf("store: exclusive lock: %w", err)
	}
	defer func() { _ = s.flk.Unlock() }()

	doc, err := s.read()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.write(doc)
}

// Path returns the backing data file path.
func (s *FileStore) Path() string {
	return s.filePath
}

// Close releases the file lock.
func (s *FileStore) Close() error {
	if s.flk != nil {
		return s.flk.Unlock()
	}
	return nil
}
