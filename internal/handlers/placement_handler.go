package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PlaceTaskRequest is the drag-and-drop payload: the drop target id as
// produced by the calendar frontend ("cell-<resourceId>-<YYYYMMDD>-<HH>"
// or "unplanned"), plus an optional explicit end time.
type PlaceTaskRequest struct {
	Target  string `json:"target" binding:"required"`
	EndTime string `json:"endTime"`
}

// PlaceTask handles PATCH /api/tasks/:id/place
// Translates a drop gesture into a reassignment: a calendar cell sets
// assignee, start and end (default duration when no end is given) and
// marks the task scheduled; the unplanned target clears all three.
func (h *Handler) PlaceTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var req PlaceTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.svc.ApplyPlacement(taskID, req.Target, req.EndTime)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	broadcast("task_placed", task.ID)
	c.JSON(http.StatusOK, task)
}

// GetConflicts handles GET /api/schedule/conflicts
// Lists resources double-booked by overlapping placements. Informational
// only; placements are never rejected for overlapping.
func (h *Handler) GetConflicts(c *gin.Context) {
	conflicts, err := h.svc.Conflicts()
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"conflicts": conflicts,
		"count":     len(conflicts),
	})
}
