package schedule

import "sitework-scheduler/internal/models"

// CreateTaskInput is the payload for creating a task. Timestamps arrive as
// strings and are parsed by the service; when omitted they each default to
// the current time, which makes a brand-new task a zero-length interval.
type CreateTaskInput struct {
	Description    string            `json:"description" binding:"required" validate:"required"`
	Type           models.TaskType   `json:"type" binding:"required" validate:"required,oneof=survey design staking meeting administrative"`
	SiteID         *string           `json:"siteId"`
	AssignedUserID *string           `json:"assignedUserId"`
	StartTime      string            `json:"startTime"`
	EndTime        string            `json:"endTime"`
	Status         models.TaskStatus `json:"status" binding:"required" validate:"required,oneof=to-schedule scheduled in-progress done blocked"`
	Notes          string            `json:"notes"`
}

// TaskPatch is a partial update: nil fields leave the stored value
// untouched. ID and CreatedAt are immutable and have no patch field.
type TaskPatch struct {
	Description    *string            `json:"description"`
	Type           *models.TaskType   `json:"type" validate:"omitempty,oneof=survey design staking meeting administrative"`
	SiteID         *string            `json:"siteId"`
	AssignedUserID *string            `json:"assignedUserId"`
	StartTime      *string            `json:"startTime"`
	EndTime        *string            `json:"endTime"`
	Status         *models.TaskStatus `json:"status" validate:"omitempty,oneof=to-schedule scheduled in-progress done blocked"`
	Notes          *string            `json:"notes"`
}

// IsEmpty reports whether the patch changes nothing.
func (p TaskPatch) IsEmpty() bool {
	return p.Description == nil && p.Type == nil && p.SiteID == nil &&
		p.AssignedUserID == nil && p.StartTime == nil && p.EndTime == nil &&
		p.Status == nil && p.Notes == nil
}

// Filter narrows a task listing. Zero values mean the dimension is
// unconstrained; set fields are AND-combined.
type Filter struct {
	Week      string
	UserID    string
	Status    string
	Unplanned bool
}
