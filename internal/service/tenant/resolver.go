package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/estruturasvale/sige-backend-go/internal/domain/tenant"
	"github.com/estruturasvale/sige-backend-go/internal/domain/user"
)

// Resolver implements tenant.Resolver against the ownership lookups.
type Resolver struct {
	repo tenant.Repository
}

func NewResolver(repo tenant.Repository) *Resolver {
	return &Resolver{repo: repo}
}

func (r *Resolver) EffectiveAdminID(ctx context.Context, uc tenant.UserContext) (string, error) {
	switch uc.Role {
	case user.RoleAdmin:
		if uc.UserID == "" {
			return "", tenant.ErrNoTenantContext
		}
		return uc.UserID, nil

	case user.RoleSuperAdmin:
		return r.resolveSuperAdmin(ctx)

	case user.RoleManager, user.RoleEmployee:
		if uc.AdminID != nil && *uc.AdminID != "" {
			return *uc.AdminID, nil
		}
		if uc.Email != "" {
			adminID, err := r.repo.AdminIDByEmployeeEmail(ctx, uc.Email)
			if err == nil {
				return adminID, nil
			}
			if !errors.Is(err, pgx.ErrNoRows) {
				return "", fmt.Errorf("failed to resolve tenant by employee email: %w", err)
			}
		}
		return "", tenant.ErrNoTenantContext
	}

	return "", tenant.ErrNoTenantContext
}

// resolveSuperAdmin walks the fallback heuristics in order. A super_admin has
// no tenant of its own; it always operates on an admin's data.
func (r *Resolver) resolveSuperAdmin(ctx context.Context) (string, error) {
	lookups := []func(context.Context) (string, error){
		r.repo.AdminWithMostSites,
		r.repo.AdminWithMostEmployees,
		r.repo.LowestAdminID,
	}
	for _, lookup := range lookups {
		adminID, err := lookup(ctx)
		if err == nil && adminID != "" {
			return adminID, nil
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("failed to resolve super_admin tenant: %w", err)
		}
	}
	return "", tenant.ErrNoTenantContext
}
