package schedule

import (
	"context"
	"time"
)

// Resolver returns the effective standard schedule for an employee on a date:
// active StandardSchedule overlay first, then the employee's Schedule, then
// the system default.
type Resolver interface {
	Resolve(ctx context.Context, employeeID string, date time.Time, adminID string) (Effective, error)
}
