package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the scheduling state of a task
type TaskStatus string

const (
	StatusToSchedule TaskStatus = "to-schedule"
	StatusScheduled  TaskStatus = "scheduled"
	StatusInProgress TaskStatus = "in-progress"
	StatusDone       TaskStatus = "done"
	StatusBlocked    TaskStatus = "blocked"
)

// TaskType represents the kind of site work a task stands for
type TaskType string

const (
	TypeSurvey         TaskType = "survey"
	TypeDesign         TaskType = "design"
	TypeStaking        TaskType = "staking"
	TypeMeeting        TaskType = "meeting"
	TypeAdministrative TaskType = "administrative"
)

// Task is a time-boxed, resource-assignable unit of work.
// The interval is half-open: [StartTime, EndTime). A task with no assignee
// or no time range is unplanned and never appears on the calendar.
type Task struct {
	ID             string     `json:"id" validate:"required"`
	Description    string     `json:"description" validate:"required"`
	Type           TaskType   `json:"type" validate:"required,oneof=survey design staking meeting administrative"`
	SiteID         *string    `json:"siteId"`
	AssignedUserID *string    `json:"assignedUserId"`
	StartTime      *time.Time `json:"startTime"`
	EndTime        *time.Time `json:"endTime"`
	Status         TaskStatus `json:"status" validate:"required,oneof=to-schedule scheduled in-progress done blocked"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" validate:"required"`
}

// Planned reports whether the task can be placed on the calendar.
func (t Task) Planned() bool {
	return t.AssignedUserID != nil && t.StartTime != nil && t.EndTime != nil
}

// ScheduleFile is the persisted document. Tasks keep their insertion order;
// users and sites are maintained by external tooling and only read here.
type ScheduleFile struct {
	Tasks []Task `json:"tasks"`
	Users []User `json:"users"`
	Sites []Site `json:"sites"`
}

var validate = validator.New()

// ValidateStruct runs the validation tags of any tagged struct and flattens
// the result into a single error message.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("field '%s' failed rule '%s'", e.Field(), e.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(msgs, "; "))
}
