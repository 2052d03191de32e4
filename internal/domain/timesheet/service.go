package timesheet

import (
	"context"
	"time"
)

// TimesheetService is the engine API consumed by the web layer. The adminID
// argument is always the tenant id resolved by tenant.Resolver.
type TimesheetService interface {
	// StorePunch normalizes a raw punch, computes every derived field against
	// the employee's effective schedule and persists it in one transaction.
	StorePunch(ctx context.Context, req PunchRequest, adminID string) (PunchResponse, error)

	// UpdatePunch replaces the input fields of an existing punch and
	// recomputes all derived fields.
	UpdatePunch(ctx context.Context, id string, req PunchRequest, adminID string) (PunchResponse, error)

	DeletePunch(ctx context.Context, id string, adminID string) error

	// ListPunches returns a period listing in ascending date order.
	ListPunches(ctx context.Context, filter PunchFilter, adminID string) ([]PunchResponse, error)

	// ComputeKPIs builds the full KPI bundle for one employee over [start, end].
	ComputeKPIs(ctx context.Context, employeeID string, start, end time.Time, adminID string) (KPIBundle, error)

	// ComputeKPIsAll builds bundles for every employee of the tenant, ordered
	// by name. Inactive employees appear only when they have punches in the
	// period or includeInactive is set.
	ComputeKPIsAll(ctx context.Context, start, end time.Time, adminID string, includeInactive bool) (KPIListResponse, error)
}
