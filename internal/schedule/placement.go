package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// CellPrefix starts every calendar-cell drop target id.
	CellPrefix = "cell"

	// UnplannedTarget is the sidebar drop target: dropping a task there
	// clears its assignment and time range.
	UnplannedTarget = "unplanned"
)

// Placement is a decoded calendar-cell drop target: which resource lane
// the task was dropped on, and the day and hour of the cell.
type Placement struct {
	ResourceID string
	Date       time.Time
	Hour       int
}

// Start combines the cell's date and hour into the new task start.
func (p Placement) Start() time.Time {
	return time.Date(p.Date.Year(), p.Date.Month(), p.Date.Day(), p.Hour, 0, 0, 0, time.Local)
}

// DecodePlacement parses a drop target id of the form
// "cell-<resourceId>-<YYYYMMDD>-<HH>". Resource ids may themselves contain
// hyphens (UUIDs do), so the date and hour segments are taken from the
// right. Anything else fails with ErrInvalidPlacement.
func DecodePlacement(cellID string) (Placement, error) {
	parts := strings.Split(cellID, "-")
	if len(parts) < 4 || parts[0] != CellPrefix {
		return Placement{}, fmt.Errorf("%w: %q", ErrInvalidPlacement, cellID)
	}

	hourPart := parts[len(parts)-1]
	datePart := parts[len(parts)-2]
	resourceID := strings.Join(parts[1:len(parts)-2], "-")
	if resourceID == "" {
		return Placement{}, fmt.Errorf("%w: %q has no resource id", ErrInvalidPlacement, cellID)
	}

	date, err := time.ParseInLocation("20060102", datePart, time.Local)
	if err != nil {
		return Placement{}, fmt.Errorf("%w: bad date in %q", ErrInvalidPlacement, cellID)
	}
	if len(hourPart) != 2 {
		return Placement{}, fmt.Errorf("%w: bad hour in %q", ErrInvalidPlacement, cellID)
	}
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return Placement{}, fmt.Errorf("%w: bad hour in %q", ErrInvalidPlacement, cellID)
	}

	return Placement{ResourceID: resourceID, Date: date, Hour: hour}, nil
}
