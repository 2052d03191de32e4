package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type punchRepositoryImpl struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) timesheet.PunchRepository {
	return &punchRepositoryImpl{db: db}
}

const punchColumns = `
	p.id, p.employee_id, p.site_id, p.date, p.entry, p.exit, p.lunch_out, p.lunch_in,
	p.type, p.notes, p.absence_days,
	p.hours_worked, p.overtime_hours, p.overtime_percent,
	p.early_entry_minutes, p.late_exit_minutes, p.late_entry_minutes,
	p.early_exit_minutes, p.total_late_minutes,
	p.admin_id, p.created_at, p.updated_at`

func scanPunch(row pgx.Row) (timesheet.Punch, error) {
	var p timesheet.Punch
	err := row.Scan(
		&p.ID, &p.EmployeeID, &p.SiteID, &p.Date, &p.Entry, &p.Exit, &p.LunchOut, &p.LunchIn,
		&p.Type, &p.Notes, &p.AbsenceDays,
		&p.HoursWorked, &p.OvertimeHours, &p.OvertimePercent,
		&p.EarlyEntryMinutes, &p.LateExitMinutes, &p.LateEntryMinutes,
		&p.EarlyExitMinutes, &p.TotalLateMinutes,
		&p.AdminID, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// Create implements timesheet.PunchRepository.
func (r *punchRepositoryImpl) Create(ctx context.Context, punch timesheet.Punch) (timesheet.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (
			id, employee_id, site_id, date, entry, exit, lunch_out, lunch_in,
			type, notes, absence_days,
			hours_worked, overtime_hours, overtime_percent,
			early_entry_minutes, late_exit_minutes, late_entry_minutes,
			early_exit_minutes, total_late_minutes, admin_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11,
			$12, $13, $14,
			$15, $16, $17,
			$18, $19, $20
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		punch.ID,
		punch.EmployeeID,
		punch.SiteID,
		punch.Date,
		punch.Entry,
		punch.Exit,
		punch.LunchOut,
		punch.LunchIn,
		punch.Type,
		punch.Notes,
		punch.AbsenceDays,
		punch.HoursWorked,
		punch.OvertimeHours,
		punch.OvertimePercent,
		punch.EarlyEntryMinutes,
		punch.LateExitMinutes,
		punch.LateEntryMinutes,
		punch.EarlyExitMinutes,
		punch.TotalLateMinutes,
		punch.AdminID,
	).Scan(&punch.CreatedAt, &punch.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return timesheet.Punch{}, timesheet.ErrDuplicatePunch
		}
		return timesheet.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch, nil
}

// Update implements timesheet.PunchRepository.
func (r *punchRepositoryImpl) Update(ctx context.Context, punch timesheet.Punch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE punches SET
			employee_id = $1, site_id = $2, date = $3,
			entry = $4, exit = $5, lunch_out = $6, lunch_in = $7,
			type = $8, notes = $9, absence_days = $10,
			hours_worked = $11, overtime_hours = $12, overtime_percent = $13,
			early_entry_minutes = $14, late_exit_minutes = $15, late_entry_minutes = $16,
			early_exit_minutes = $17, total_late_minutes = $18,
			updated_at = NOW()
		WHERE id = $19 AND admin_id = $20
	`

	tag, err := q.Exec(ctx, query,
		punch.EmployeeID,
		punch.SiteID,
		punch.Date,
		punch.Entry,
		punch.Exit,
		punch.LunchOut,
		punch.LunchIn,
		punch.Type,
		punch.Notes,
		punch.AbsenceDays,
		punch.HoursWorked,
		punch.OvertimeHours,
		punch.OvertimePercent,
		punch.EarlyEntryMinutes,
		punch.LateExitMinutes,
		punch.LateEntryMinutes,
		punch.EarlyExitMinutes,
		punch.TotalLateMinutes,
		punch.ID,
		punch.AdminID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return timesheet.ErrDuplicatePunch
		}
		return fmt.Errorf("failed to update punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrPunchNotFound
	}
	return nil
}

// GetByID implements timesheet.PunchRepository.
func (r *punchRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (timesheet.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + ` FROM punches p WHERE p.id = $1 AND p.admin_id = $2`

	p, err := scanPunch(q.QueryRow(ctx, query, id, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.Punch{}, timesheet.ErrPunchNotFound
		}
		return timesheet.Punch{}, fmt.Errorf("failed to get punch: %w", err)
	}
	return p, nil
}

// GetByEmployeeAndDate implements timesheet.PunchRepository.
func (r *punchRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, adminID string) (*timesheet.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + ` FROM punches p
		WHERE p.employee_id = $1 AND p.date = $2 AND p.admin_id = $3
		LIMIT 1`

	p, err := scanPunch(q.QueryRow(ctx, query, employeeID, date, adminID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get punch by employee and date: %w", err)
	}
	return &p, nil
}

// ListByEmployee implements timesheet.PunchRepository.
func (r *punchRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time, adminID string) ([]timesheet.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + `, e.name FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.employee_id = $1 AND p.date BETWEEN $2 AND $3 AND p.admin_id = $4
		ORDER BY p.date ASC`

	rows, err := q.Query(ctx, query, employeeID, start, end, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by employee: %w", err)
	}
	defer rows.Close()

	return collectPunchesWithName(rows)
}

// ListBySite implements timesheet.PunchRepository.
func (r *punchRepositoryImpl) ListBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) ([]timesheet.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + punchColumns + `, e.name FROM punches p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.site_id = $1 AND p.date BETWEEN $2 AND $3 AND p.admin_id = $4
		ORDER BY p.date ASC, e.name ASC`

	rows, err := q.Query(ctx, query, siteID, start, end, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches by site: %w", err)
	}
	defer rows.Close()

	return collectPunchesWithName(rows)
}

// EmployeeIDsWithPunches implements timesheet.PunchRepository.
func (r *punchRepositoryImpl) EmployeeIDsWithPunches(ctx context.Context, start, end time.Time, adminID string) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id FROM punches
		WHERE date BETWEEN $1 AND $2 AND admin_id = $3
	`

	rows, err := q.Query(ctx, query, start, end, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee ids with punches: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan employee id: %w", err)
		}
		ids[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list employee ids with punches: %w", err)
	}
	return ids, nil
}

// Delete implements timesheet.PunchRepository.
func (r *punchRepositoryImpl) Delete(ctx context.Context, id string, adminID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM punches WHERE id = $1 AND admin_id = $2`, id, adminID)
	if err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timesheet.ErrPunchNotFound
	}
	return nil
}

func collectPunchesWithName(rows pgx.Rows) ([]timesheet.Punch, error) {
	var punches []timesheet.Punch
	for rows.Next() {
		var p timesheet.Punch
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.SiteID, &p.Date, &p.Entry, &p.Exit, &p.LunchOut, &p.LunchIn,
			&p.Type, &p.Notes, &p.AbsenceDays,
			&p.HoursWorked, &p.OvertimeHours, &p.OvertimePercent,
			&p.EarlyEntryMinutes, &p.LateExitMinutes, &p.LateEntryMinutes,
			&p.EarlyExitMinutes, &p.TotalLateMinutes,
			&p.AdminID, &p.CreatedAt, &p.UpdatedAt,
			&p.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to collect punches: %w", err)
	}
	return punches, nil
}
