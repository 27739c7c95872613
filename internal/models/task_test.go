package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validTask() Task {
	user := "u1"
	start := time.Date(2025, 5, 1, 10, 0, 0, 0, time.Local)
	end := start.Add(2 * time.Hour)
	return Task{
		ID:             "t1",
		Description:    "survey east slope",
		Type:           TypeSurvey,
		AssignedUserID: &user,
		StartTime:      &start,
		EndTime:        &end,
		Status:         StatusScheduled,
		CreatedAt:      time.Now(),
	}
}

func TestValidateTask(t *testing.T) {
	require.NoError(t, ValidateStruct(validTask()))
}

func TestValidateTaskRejectsUnknownEnumValues(t *testing.T) {
	task := validTask()
	task.Type = "paperwork"
	require.Error(t, ValidateStruct(task))

	task = validTask()
	task.Status = "archived"
	require.Error(t, ValidateStruct(task))
}

func TestValidateTaskRequiresDescription(t *testing.T) {
	task := validTask()
	task.Description = ""
	require.Error(t, ValidateStruct(task))
}

func TestPlanned(t *testing.T) {
	task := validTask()
	require.True(t, task.Planned())

	unassigned := validTask()
	unassigned.AssignedUserID = nil
	require.False(t, unassigned.Planned())

	noRange := validTask()
	noRange.StartTime = nil
	noRange.EndTime = nil
	require.False(t, noRange.Planned())
}
