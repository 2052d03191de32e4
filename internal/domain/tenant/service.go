package tenant

import (
	"context"

	"github.com/estruturasvale/sige-backend-go/internal/domain/user"
)

// UserContext carries the identity claims of the calling user, decoded from
// the access token by the HTTP layer.
type UserContext struct {
	UserID  string
	Email   string
	Role    user.Role
	AdminID *string
}

// Resolver resolves the effective admin tenant id for a request. Every query
// in the persistence layer must be filtered by the returned id.
type Resolver interface {
	// EffectiveAdminID applies the resolution priority list:
	//  1. admin        → own user id
	//  2. super_admin  → admin with most sites, then most employees, then
	//                    lowest admin id (never the super_admin itself)
	//  3. manager/employee → admin_id claim, else employee record by email
	// Anything else fails with ErrNoTenantContext.
	EffectiveAdminID(ctx context.Context, uc UserContext) (string, error)
}
