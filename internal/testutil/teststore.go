package testutil

import (
	"path/filepath"
	"testing"

	"sitework-scheduler/internal/models"
	"sitework-scheduler/internal/store"
)

// NewFileStore creates a store backed by a fresh temp-dir data file.
func NewFileStore(t *testing.T) *store.FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.json")
	st, err := store.NewFileStore(path)
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// Seed replaces the store document with the given users, sites and tasks.
func Seed(t *testing.T, st *store.FileStore, doc models.ScheduleFile) {
	t.Helper()
	err := st.Update(func(d *models.ScheduleFile) error {
		if doc.Tasks != nil {
			d.Tasks = doc.Tasks
		}
		d.Users = doc.Users
		d.Sites = doc.Sites
		return nil
	})
	if err != nil {
		t.Fatalf("seed test store: %v", err)
	}
}
