package schedule

import "errors"

var (
	// ErrTaskNotFound is returned when the requested task id is absent.
	ErrTaskNotFound = errors.New("task not found")

	// ErrInvalidInterval is returned when endTime is before startTime.
	ErrInvalidInterval = errors.New("invalid interval: endTime is before startTime")

	// ErrInvalidWeek is returned for a malformed or out-of-range week
	// designator. The query path only surfaces it in strict mode.
	ErrInvalidWeek = errors.New("invalid week designator")

	// ErrInvalidPlacement is returned for a drop target that does not
	// decode to a resource, date and hour.
	ErrInvalidPlacement = errors.New("invalid placement target")

	// ErrValidation wraps input validation failures (missing fields,
	// malformed timestamps).
	ErrValidation = errors.New("validation failed")
)
