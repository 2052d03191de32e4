package tenant

import "context"

// Repository exposes the ownership lookups the resolver needs for its
// super_admin fallback heuristics.
type Repository interface {
	// AdminWithMostSites returns the admin id owning the largest number of
	// construction sites. Ties break on the lowest admin id.
	AdminWithMostSites(ctx context.Context) (string, error)

	// AdminWithMostEmployees returns the admin id owning the largest number of
	// employees. Ties break on the lowest admin id.
	AdminWithMostEmployees(ctx context.Context) (string, error)

	// LowestAdminID returns the smallest admin user id in the system.
	LowestAdminID(ctx context.Context) (string, error)

	// AdminIDByEmployeeEmail resolves the owning admin through the employee
	// record tied to the given user email.
	AdminIDByEmployeeEmail(ctx context.Context, email string) (string, error)
}
