package tenant

import "errors"

var (
	// ErrNoTenantContext is returned when no admin tenant can be resolved for
	// the calling user.
	ErrNoTenantContext = errors.New("no tenant context could be resolved")

	// ErrScopeViolation is returned when a query reaches a row owned by a
	// different admin tenant. The whole request fails.
	ErrScopeViolation = errors.New("row belongs to a different tenant")
)
