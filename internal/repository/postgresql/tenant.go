package postgresql

import (
	"context"
	"fmt"

	"github.com/estruturasvale/sige-backend-go/internal/domain/tenant"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/database"
)

type tenantRepositoryImpl struct {
	db *database.DB
}

func NewTenantRepository(db *database.DB) tenant.Repository {
	return &tenantRepositoryImpl{db: db}
}

// AdminWithMostSites implements tenant.Repository.
func (r *tenantRepositoryImpl) AdminWithMostSites(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT admin_id FROM sites
		GROUP BY admin_id
		ORDER BY COUNT(*) DESC, admin_id ASC
		LIMIT 1
	`

	var adminID string
	if err := q.QueryRow(ctx, query).Scan(&adminID); err != nil {
		return "", fmt.Errorf("failed to find admin with most sites: %w", err)
	}
	return adminID, nil
}

// AdminWithMostEmployees implements tenant.Repository.
func (r *tenantRepositoryImpl) AdminWithMostEmployees(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT admin_id FROM employees
		GROUP BY admin_id
		ORDER BY COUNT(*) DESC, admin_id ASC
		LIMIT 1
	`

	var adminID string
	if err := q.QueryRow(ctx, query).Scan(&adminID); err != nil {
		return "", fmt.Errorf("failed to find admin with most employees: %w", err)
	}
	return adminID, nil
}

// LowestAdminID implements tenant.Repository.
func (r *tenantRepositoryImpl) LowestAdminID(ctx context.Context) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id FROM users
		WHERE role = 'admin' AND active = TRUE
		ORDER BY id ASC
		LIMIT 1
	`

	var adminID string
	if err := q.QueryRow(ctx, query).Scan(&adminID); err != nil {
		return "", fmt.Errorf("failed to find lowest admin id: %w", err)
	}
	return adminID, nil
}

// AdminIDByEmployeeEmail implements tenant.Repository.
func (r *tenantRepositoryImpl) AdminIDByEmployeeEmail(ctx context.Context, email string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT admin_id FROM employees
		WHERE LOWER(email) = LOWER($1)
		ORDER BY created_at ASC
		LIMIT 1
	`

	var adminID string
	if err := q.QueryRow(ctx, query, email).Scan(&adminID); err != nil {
		return "", fmt.Errorf("failed to resolve admin by employee email: %w", err)
	}
	return adminID, nil
}
