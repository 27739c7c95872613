package schedule

import (
	"sort"

	"sitework-scheduler/internal/models"
)

// Conflict reports two tasks placed on the same resource with overlapping
// intervals. Double-booking is allowed by the engine; this is a
// best-effort report produced after the fact, never a gate.
type Conflict struct {
	ResourceID string `json:"resourceId"`
	TaskID     string `json:"taskId"`
	OtherID    string `json:"otherId"`
}

// Conflicts scans the planned tasks per resource and lists every pair
// whose half-open intervals [start, end) overlap.
func (s *Service) Conflicts() ([]Conflict, error) {
	doc, err := s.store.Load()
	if err != nil {
		return nil, err
	}

	byResource := make(map[string][]models.Task)
	for _, t := range doc.Tasks {
		if t.Planned() {
			byResource[*t.AssignedUserID] = append(byResource[*t.AssignedUserID], t)
		}
	}

	resources := make([]string, 0, len(byResource))
	for r := range byResource {
		resources = append(resources, r)
	}
	sort.Strings(resources)

	conflicts := []Conflict{}
	for _, r := range resources {
		tasks := byResource[r]
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].StartTime.Before(*tasks[j].StartTime)
		})
		for i := 0; i < len(tasks); i++ {
			for j := i + 1; j < len(tasks); j++ {
				// Sorted by start, so once a later task begins at or
				// after this one's end there is nothing left to check.
				if !tasks[j].StartTime.Before(*tasks[i].EndTime) {
					break
				}
				conflicts = append(conflicts, Conflict{
					ResourceID: r,
					TaskID:     tasks[i].ID,
					OtherID:    tasks[j].ID,
				})
			}
		}
	}
	return conflicts, nil
}
