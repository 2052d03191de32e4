package schedule

import "errors"

var (
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrNoScheduleForTenant is raised only when the employee is missing or
	// the system default schedule is unavailable (misconfigured deployment).
	ErrNoScheduleForTenant = errors.New("no schedule available for tenant")

	// ErrOverlappingStandardSchedules signals two active overlays covering the
	// same date for one employee. Surfaces as a 500-class invariant violation.
	ErrOverlappingStandardSchedules = errors.New("overlapping active standard schedules")

	ErrInvalidClockOrder = errors.New("schedule times must satisfy entry < lunch_out < lunch_in < exit")
)
