package timesheet

import (
	"context"
	"time"
)

// PunchRepository defines data access for punch records. All methods take the
// resolved admin tenant id; (employee_id, date) is unique.
type PunchRepository interface {
	Create(ctx context.Context, punch Punch) (Punch, error)

	Update(ctx context.Context, punch Punch) error

	GetByID(ctx context.Context, id string, adminID string) (Punch, error)

	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, adminID string) (*Punch, error)

	// ListByEmployee returns the employee's punches in [start, end] in
	// ascending date order so the DSR week walk is deterministic.
	ListByEmployee(ctx context.Context, employeeID string, start, end time.Time, adminID string) ([]Punch, error)

	// ListBySite returns the punches attributed to a site in [start, end].
	ListBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) ([]Punch, error)

	// EmployeeIDsWithPunches returns the distinct employee ids having at least
	// one punch in [start, end].
	EmployeeIDsWithPunches(ctx context.Context, start, end time.Time, adminID string) (map[string]bool, error)

	Delete(ctx context.Context, id string, adminID string) error
}

// TxRunner executes fn inside one database transaction. Repository calls made
// with the context fn receives run on that transaction, so a duplicate check
// and the write it guards commit or roll back together.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
