package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"sitework-scheduler/internal/models"
	"sitework-scheduler/internal/realtime"
	"sitework-scheduler/internal/schedule"

	"github.com/gin-gonic/gin"
)

// Handler binds the scheduling engine to HTTP.
type Handler struct {
	svc *schedule.Service
}

// New creates the handler set around a scheduling service.
func New(svc *schedule.Service) *Handler {
	return &Handler{svc: svc}
}

// statusFor maps engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, schedule.ErrTaskNotFound):
		return http.StatusNotFound
	case errors.Is(err, schedule.ErrInvalidInterval),
		errors.Is(err, schedule.ErrInvalidWeek),
		errors.Is(err, schedule.ErrInvalidPlacement),
		errors.Is(err, schedule.ErrValidation):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// broadcast fans a schedule-change event out to every connected tab.
func broadcast(eventType, taskID string) {
	evt := map[string]any{
		"type":    eventType,
		"taskId":  taskID,
		"version": 1,
	}
	if bytes, err := json.Marshal(evt); err == nil {
		realtime.GetHub().Broadcast(bytes)
	}
}

/*
*
GetTasks handles GET /api/tasks
Optional query params: week (YYYY-Www), userId, status, unplanned.
Filters are AND-combined; tasks come back in store order.
*/
func (h *Handler) GetTasks(c *gin.Context) {
	unplanned := false
	if v := c.Query("unplanned"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			unplanned = b
		}
	}

	filter := schedule.Filter{
		Week:      c.Query("week"),
		UserID:    c.Query("userId"),
		Status:    c.Query("status"),
		Unplanned: unplanned,
	}

	tasks, err := h.svc.ListTasks(filter)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": tasks,
		"count": len(tasks),
	})
}

// GetTaskByID handles GET /api/tasks/:id
func (h *Handler) GetTaskByID(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	task, err := h.svc.GetTask(taskID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, task)
}

/*
*
CreateTask handles POST /api/tasks
Creates a task; startTime/endTime default to now when omitted.
*/
func (h *Handler) CreateTask(c *gin.Context) {
	var input schedule.CreateTaskInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.svc.CreateTask(input)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	broadcast("task_created", task.ID)
	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/:id
// Applies a partial patch; absent fields keep their stored values.
func (h *Handler) UpdateTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	var patch schedule.TaskPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.svc.UpdateTask(taskID, patch)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	broadcast("task_updated", task.ID)
	c.JSON(http.StatusOK, task)
}

// DeleteTask handles DELETE /api/tasks/:id
func (h *Handler) DeleteTask(c *gin.Context) {
	taskID := c.Param("id")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Task ID is required"})
		return
	}

	if err := h.svc.DeleteTask(taskID); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	broadcast("task_deleted", taskID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Task deleted successfully",
		"id":      taskID,
	})
}

// GetStatsByUser handles GET /api/stats/:userid
// Returns per-status task counts where the assignee matches :userid.
func (h *Handler) GetStatsByUser(c *gin.Context) {
	targetUserID := c.Param("userid")
	if targetUserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userid is required"})
		return
	}

	counts, err := h.svc.StatsByAssignee(targetUserID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	c.JSON(http.StatusOK, gin.H{
		"toSchedule": counts[models.StatusToSchedule],
		"scheduled":  counts[models.StatusScheduled],
		"inProgress": counts[models.StatusInProgress],
		"done":       counts[models.StatusDone],
		"blocked":    counts[models.StatusBlocked],
		"total":      total,
	})
}
