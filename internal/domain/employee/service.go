package employee

import "context"

// EmployeeService manages the employee registry behind the timesheet engine.
type EmployeeService interface {
	// Create validates the CPF checksum, normalizes it to digits only and
	// persists the employee as active.
	Create(ctx context.Context, req CreateEmployeeRequest, adminID string) (EmployeeResponse, error)

	List(ctx context.Context, adminID string, activeOnly bool) ([]EmployeeResponse, error)

	// Delete refuses to remove an employee that already has punch records.
	Delete(ctx context.Context, id string, adminID string) error
}
