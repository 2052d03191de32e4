package employee

import "context"

// EmployeeRepository defines data access for employees. All methods take the
// resolved admin tenant id to prevent cross-tenant access.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string, adminID string) (Employee, error)

	// List returns the tenant's employees ordered by name. When activeOnly is
	// false, inactive employees are included as well.
	List(ctx context.Context, adminID string, activeOnly bool) ([]Employee, error)

	// HasPunchesBefore reports whether the employee has any punch rows dated
	// on or before cutoff, used to forbid deletion inside closed periods.
	HasPunchesBefore(ctx context.Context, id string, cutoff string, adminID string) (bool, error)

	Delete(ctx context.Context, id string, adminID string) error

	CountActive(ctx context.Context, adminID string) (int, error)
}
