package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// WeekRange is the inclusive window of one ISO week: Monday 00:00 through
// the very end of the following Sunday, in local time.
type WeekRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window (inclusive on both
// ends; only a task's startTime is ever tested against it).
func (w WeekRange) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// ResolveWeek maps a designator of the form "YYYY-Www" to its concrete
// week window. Week numbers follow ISO-8601 (week 1 contains January 4,
// weeks start on Monday). Designators that do not parse, or whose week
// number falls outside [1, 53], are rejected with ErrInvalidWeek.
func ResolveWeek(designator string) (WeekRange, error) {
	yearPart, weekPart, ok := strings.Cut(designator, "-W")
	if !ok || len(yearPart) != 4 || len(weekPart) != 2 {
		return WeekRange{}, fmt.Errorf("%w: %q", ErrInvalidWeek, designator)
	}
	year, err := strconv.Atoi(yearPart)
	if err != nil {
		return WeekRange{}, fmt.Errorf("%w: %q", ErrInvalidWeek, designator)
	}
	week, err := strconv.Atoi(weekPart)
	if err != nil || week < 1 || week > 53 {
		return WeekRange{}, fmt.Errorf("%w: %q", ErrInvalidWeek, designator)
	}

	// January 4 is always in ISO week 1; walk back to its Monday, then
	// forward to the requested week.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.Local)
	monday := jan4.AddDate(0, 0, -((int(jan4.Weekday()) + 6) % 7))
	start := monday.AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return WeekRange{Start: start, End: end}, nil
}
