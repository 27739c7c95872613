package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"sitework-scheduler/internal/models"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	st, err := NewFileStore(filepath.Join(t.TempDir(), "schedule.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestNewFileStoreCreatesEmptyDocument(t *testing.T) {
	st := newTestStore(t)

	doc, err := st.Load()
	require.NoError(t, err)
	require.Empty(t, doc.Tasks)

	// The file itself exists and holds valid JSON.
	data, err := os.ReadFile(st.Path())
	require.NoError(t, err)
	require.Contains(t, string(data), `"tasks"`)
}

func TestRoundTrip(t *testing.T) {
	st := newTestStore(t)

	site := "s1"
	user := "u1"
	start := time.Date(2025, 5, 1, 10, 0, 0, 0, time.Local)
	end := start.Add(2 * time.Hour)
	task := models.Task{
		ID:             "t1",
		Description:    "stake out north boundary",
		Type:           models.TypeStaking,
		SiteID:         &site,
		AssignedUserID: &user,
		StartTime:      &start,
		EndTime:        &end,
		Status:         models.StatusScheduled,
		Notes:          "bring the total station",
		CreatedAt:      time.Date(2025, 4, 30, 9, 0, 0, 0, time.Local),
	}

	require.NoError(t, st.Update(func(doc *models.ScheduleFile) error {
		doc.Tasks = append(doc.Tasks, task)
		doc.Users = []models.User{{ID: "u1", Name: "Alice"}}
		doc.Sites = []models.Site{{ID: "s1", Name: "North Yard"}}
		return nil
	}))

	// Reopen from disk and compare field for field.
	st2, err := NewFileStore(st.Path())
	require.NoError(t, err)
	defer st2.Close()

	doc, err := st2.Load()
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 1)
	got := doc.Tasks[0]
	require.Equal(t, task.ID, got.ID)
	require.Equal(t, task.Description, got.Description)
	require.Equal(t, task.Type, got.Type)
	require.Equal(t, *task.SiteID, *got.SiteID)
	require.Equal(t, *task.AssignedUserID, *got.AssignedUserID)
	require.True(t, task.StartTime.Equal(*got.StartTime))
	require.True(t, task.EndTime.Equal(*got.EndTime))
	require.Equal(t, task.Status, got.Status)
	require.Equal(t, task.Notes, got.Notes)
	require.True(t, task.CreatedAt.Equal(got.CreatedAt))
	require.Equal(t, "Alice", doc.Users[0].Name)
	require.Equal(t, "North Yard", doc.Sites[0].Name)
}

func TestUpdateErrorWritesNothing(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Update(func(doc *models.ScheduleFile) error {
		doc.Tasks = append(doc.Tasks, models.Task{ID: "keep"})
		return nil
	}))

	boom := errors.New("boom")
	err := st.Update(func(doc *models.ScheduleFile) error {
		doc.Tasks = nil // would wipe everything if it were persisted
		return boom
	})
	require.ErrorIs(t, err, boom)

	doc, err := st.Load()
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 1)
	require.Equal(t, "keep", doc.Tasks[0].ID)
}

func TestLoadPreservesInsertionOrder(t *testing.T) {
	st := newTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		id := id
		require.NoError(t, st.Update(func(doc *models.ScheduleFile) error {
			doc.Tasks = append(doc.Tasks, models.Task{ID: id})
			return nil
		}))
	}

	doc, err := st.Load()
	require.NoError(t, err)
	require.Len(t, doc.Tasks, 3)
	require.Equal(t, "a", doc.Tasks[0].ID)
	require.Equal(t, "b", doc.Tasks[1].ID)
	require.Equal(t, "c", doc.Tasks[2].ID)
}

func TestNoTempFileLeftBehind(t *testing.T) {
	st := newTestStore(t)

	require.NoError(t, st.Update(func(doc *models.ScheduleFile) error {
		doc.Tasks = append(doc.Tasks, models.Task{ID: "x"})
		return nil
	}))

	entries, err := os.ReadDir(filepath.Dir(st.Path()))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "schedule.json", entries[0].Name())
}
