package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/estruturasvale/sige-backend-go/internal/domain/site"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type siteRepositoryImpl struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepositoryImpl{db: db}
}

const siteColumns = `id, name, code, address, start_date, expected_end_date, budget,
	contract_value, area_m2, status, owner_employee_id, admin_id, active, created_at, updated_at`

func scanSite(row pgx.Row) (site.Site, error) {
	var s site.Site
	err := row.Scan(
		&s.ID, &s.Name, &s.Code, &s.Address, &s.StartDate, &s.ExpectedEndDate,
		&s.Budget, &s.ContractValue, &s.AreaM2, &s.Status, &s.OwnerEmployeeID,
		&s.AdminID, &s.Active, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements site.SiteRepository.
func (r *siteRepositoryImpl) Create(ctx context.Context, s site.Site) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sites (
			id, name, code, address, start_date, expected_end_date, budget,
			contract_value, area_m2, status, owner_employee_id, admin_id, active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.ID,
		s.Name,
		s.Code,
		s.Address,
		s.StartDate,
		s.ExpectedEndDate,
		s.Budget,
		s.ContractValue,
		s.AreaM2,
		s.Status,
		s.OwnerEmployeeID,
		s.AdminID,
		s.Active,
	).Scan(&s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return site.Site{}, site.ErrSiteCodeExists
		}
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}
	return s, nil
}

// GetByID implements site.SiteRepository.
func (r *siteRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + siteColumns + ` FROM sites WHERE id = $1 AND admin_id = $2`

	s, err := scanSite(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site: %w", err)
	}
	return s, nil
}

// List implements site.SiteRepository.
func (r *siteRepositoryImpl) List(ctx context.Context, adminID string, activeOnly bool) ([]site.Site, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + siteColumns + ` FROM sites WHERE admin_id = $1`
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY name ASC`

	rows, err := q.Query(ctx, query, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		s, err := scanSite(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	return sites, nil
}

// CountActive implements site.SiteRepository.
func (r *siteRepositoryImpl) CountActive(ctx context.Context, adminID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM sites WHERE admin_id = $1 AND active = TRUE`, adminID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active sites: %w", err)
	}
	return count, nil
}
