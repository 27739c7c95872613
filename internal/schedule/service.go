package schedule

import (
	"fmt"
	"log"
	"time"

	"sitework-scheduler/internal/cache"
	"sitework-scheduler/internal/models"
	"sitework-scheduler/internal/store"

	"github.com/google/uuid"
)

// Options tunes the scheduling engine.
type Options struct {
	// StrictWeekFilter makes ListTasks fail on a malformed week
	// designator instead of silently dropping the week constraint.
	StrictWeekFilter bool

	// PlacementDuration is the task length assumed when a drag placement
	// does not carry an explicit end time.
	PlacementDuration time.Duration

	// WeekCacheTTL bounds how long a resolved week window is reused.
	WeekCacheTTL time.Duration
}

const defaultPlacementDuration = 2 * time.Hour

// Service is the workload scheduling engine: week-scoped queries over the
// task set, validated create/update/delete, and drag-placement
// rescheduling, all against a single shared document store.
type Service struct {
	store *store.FileStore
	opts  Options
	weeks *cache.Cache[string, WeekRange]
}

// NewService wires the engine to its store.
func NewService(st *store.FileStore, opts Options) *Service {
	if opts.PlacementDuration <= 0 {
		opts.PlacementDuration = defaultPlacementDuration
	}
	return &Service{
		store: st,
		opts:  opts,
		weeks: cache.New[string, WeekRange](),
	}
}

// resolveWeekCached resolves a designator, reusing a cached window when the
// same designator was seen recently (calendar renders re-ask constantly).
func (s *Service) resolveWeekCached(designator string) (WeekRange, error) {
	if wr, ok := s.weeks.Get(designator); ok {
		return wr, nil
	}
	wr, err := ResolveWeek(designator)
	if err != nil {
		return WeekRange{}, err
	}
	s.weeks.Set(designator, wr, s.opts.WeekCacheTTL)
	return wr, nil
}

// ListTasks returns the tasks matching every set filter dimension, in the
// store's insertion order. A week designator that fails to resolve drops
// the week constraint unless the engine runs in strict mode.
func (s *Service) ListTasks(f Filter) ([]models.Task, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	var week *WeekRange
	if f.Week != "" {
		wr, err := s.resolveWeekCached(f.Week)
		if err != nil {
			if s.opts.StrictWeekFilter {
				return nil, err
			}
			log.Printf("ignoring unusable week filter %q: %v", f.Week, err)
		} else {
			week = &wr
		}
	}

	tasks := make([]models.Task, 0, len(doc.Tasks))
	for _, t := range doc.Tasks {
		if week != nil {
			if t.StartTime == nil || !week.Contains(*t.StartTime) {
				continue
			}
		}
		if f.UserID != "" {
			if t.AssignedUserID == nil || *t.AssignedUserID != f.UserID {
				continue
			}
		}
		if f.Status != "" && string(t.Status) != f.Status {
			continue
		}
		if f.Unplanned && t.Planned() {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// GetTask returns a single task by id.
func (s *Service) GetTask(id string) (models.Task, error) {
	doc, err := s.store.Load()
	if err != nil {
		return models.Task{}, err
	}
	for _, t := range doc.Tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// CreateTask validates the input, fills defaults and appends the new task
// to the store. Missing start/end timestamps each default to now.
func (s *Service) CreateTask(input CreateTaskInput) (models.Task, error) {
	if err := models.ValidateStruct(input); err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	now := time.Now()
	start := now
	if input.StartTime != "" {
		t, ok := parseTimestamp(input.StartTime)
		if !ok {
			return models.Task{}, fmt.Errorf("%w: malformed startTime %q", ErrValidation, input.StartTime)
		}
		start = t
	}
	end := now
	if input.EndTime != "" {
		t, ok := parseTimestamp(input.EndTime)
		if !ok {
			return models.Task{}, fmt.Errorf("%w: malformed endTime %q", ErrValidation, input.EndTime)
		}
		end = t
	}
	if end.Before(start) {
		return models.Task{}, ErrInvalidInterval
	}

	task := models.Task{
		ID:             uuid.NewString(),
		Description:    input.Description,
		Type:           input.Type,
		SiteID:         input.SiteID,
		AssignedUserID: input.AssignedUserID,
		StartTime:      &start,
		EndTime:        &end,
		Status:         input.Status,
		Notes:          input.Notes,
		CreatedAt:      now,
	}

	err := s.store.Update(func(doc *models.ScheduleFile) error {
		doc.Tasks = append(doc.Tasks, task)
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask merges the patch onto the stored task field by field. Nil
// patch fields keep the previous value; an all-nil patch is a no-op.
func (s *Service) UpdateTask(id string, patch TaskPatch) (models.Task, error) {
	if err := models.ValidateStruct(patch); err != nil {
		return models.Task{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	var updated models.Task
	err := s.store.Update(func(doc *models.ScheduleFile) error {
		idx := -1
		for i, t := range doc.Tasks {
			if t.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		task := doc.Tasks[idx]

		if patch.Description != nil {
			task.Description = *patch.Description
		}
		if patch.Type != nil {
			task.Type = *patch.Type
		}
		if patch.SiteID != nil {
			task.SiteID = patch.SiteID
		}
		if patch.AssignedUserID != nil {
			task.AssignedUserID = patch.AssignedUserID
		}
		if patch.StartTime != nil {
			t, ok := parseTimestamp(*patch.StartTime)
			if !ok {
				return fmt.Errorf("%w: malformed startTime %q", ErrValidation, *patch.StartTime)
			}
			task.StartTime = &t
		}
		if patch.EndTime != nil {
			t, ok := parseTimestamp(*patch.EndTime)
			if !ok {
				return fmt.Errorf("%w: malformed endTime %q", ErrValidation, *patch.EndTime)
			}
			task.EndTime = &t
		}
		if patch.Status != nil {
			task.Status = *patch.Status
		}
		if patch.Notes != nil {
			task.Notes = *patch.Notes
		}

		if task.StartTime != nil && task.EndTime != nil && task.EndTime.Before(*task.StartTime) {
			return ErrInvalidInterval
		}

		doc.Tasks[idx] = task
		updated = task
		return nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return updated, nil
}

// DeleteTask removes a task outright. Unknown ids leave the store
// untouched and report ErrTaskNotFound.
func (s *Service) DeleteTask(id string) error {
	return s.store.Update(func(doc *models.ScheduleFile) error {
		kept := make([]models.Task, 0, len(doc.Tasks))
		for _, t := range doc.Tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(doc.Tasks) {
			return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
		}
		doc.Tasks = kept
		return nil
	})
}

// ApplyPlacement reschedules a task from a drag-and-drop gesture. A
// calendar-cell target assigns the resource and the cell's time window; the
// sidebar target sends the task back to the unplanned pool. No overlap
// check is made: double-booking a resource is allowed.
func (s *Service) ApplyPlacement(taskID, target string, explicitEnd string) (models.Task, error) {
	if target == UnplannedTarget {
		var updated models.Task
		err := s.store.Update(func(doc *models.ScheduleFile) error {
			for i, t := range doc.Tasks {
				if t.ID != taskID {
					continue
				}
				t.AssignedUserID = nil
				t.StartTime = nil
				t.EndTime = nil
				t.Status = models.StatusToSchedule
				doc.Tasks[i] = t
				updated = t
				return nil
			}
			return fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
		})
		if err != nil {
			return models.Task{}, err
		}
		return updated, nil
	}

	placement, err := DecodePlacement(target)
	if err != nil {
		return models.Task{}, err
	}
	start := placement.Start()
	end := start.Add(s.opts.PlacementDuration)
	if explicitEnd != "" {
		t, ok := parseTimestamp(explicitEnd)
		if !ok {
			return models.Task{}, fmt.Errorf("%w: malformed endTime %q", ErrValidation, explicitEnd)
		}
		end = t
	}
	if end.Before(start) {
		return models.Task{}, ErrInvalidInterval
	}

	startStr := start.Format(time.RFC3339)
	endStr := end.Format(time.RFC3339)
	status := models.StatusScheduled
	return s.UpdateTask(taskID, TaskPatch{
		AssignedUserID: &placement.ResourceID,
		StartTime:      &startStr,
		EndTime:        &endStr,
		Status:         &status,
	})
}

// Users returns the read-only resource directory.
func (s *Service) Users() ([]models.User, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Users, nil
}

// Sites returns the read-only site directory.
func (s *Service) Sites() ([]models.Site, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	return doc.Sites, nil
}

// StatsByAssignee counts a resource's tasks per status.
func (s *Service) StatsByAssignee(userID string) (map[models.TaskStatus]int, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}
	counts := map[models.TaskStatus]int{
		models.StatusToSchedule: 0,
		models.StatusScheduled:  0,
		models.StatusInProgress: 0,
		models.StatusDone:       0,
		models.StatusBlocked:    0,
	}
	for _, t := range doc.Tasks {
		if t.AssignedUserID != nil && *t.AssignedUserID == userID {
			counts[t.Status]++
		}
	}
	return counts, nil
}
