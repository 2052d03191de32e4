package schedule

import (
	"context"
	"time"
)

type ScheduleRepository interface {
	GetByID(ctx context.Context, id string, adminID string) (Schedule, error)

	Create(ctx context.Context, sched Schedule) (Schedule, error)
}

type StandardScheduleRepository interface {
	// ListActiveForDate returns the active overlays whose validity window
	// contains the date, most recent start_date first. More than one row with
	// the same start_date is an invariant violation the resolver reports.
	ListActiveForDate(ctx context.Context, employeeID string, date time.Time, adminID string) ([]StandardSchedule, error)

	Create(ctx context.Context, overlay StandardSchedule) (StandardSchedule, error)
}
