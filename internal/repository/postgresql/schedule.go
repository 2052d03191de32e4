package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// GetByID implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) GetByID(ctx context.Context, id string, adminID string) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, entry, lunch_out, lunch_in, exit, weekdays, daily_hours,
		       hourly_value, admin_id, created_at, updated_at
		FROM schedules
		WHERE id = $1 AND admin_id = $2
	`

	var s schedule.Schedule
	err := q.QueryRow(ctx, query, id, adminID).Scan(
		&s.ID, &s.Name, &s.Entry, &s.LunchOut, &s.LunchIn, &s.Exit,
		&s.Weekdays, &s.DailyHours, &s.HourlyValue, &s.AdminID,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.Schedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("failed to get schedule: %w", err)
	}
	return s, nil
}

// Create implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Create(ctx context.Context, sched schedule.Schedule) (schedule.Schedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO schedules (
			id, name, entry, lunch_out, lunch_in, exit, weekdays, daily_hours, hourly_value, admin_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		sched.ID,
		sched.Name,
		sched.Entry,
		sched.LunchOut,
		sched.LunchIn,
		sched.Exit,
		sched.Weekdays,
		sched.DailyHours,
		sched.HourlyValue,
		sched.AdminID,
	).Scan(&sched.CreatedAt, &sched.UpdatedAt)

	if err != nil {
		return schedule.Schedule{}, fmt.Errorf("failed to create schedule: %w", err)
	}
	return sched, nil
}

type standardScheduleRepositoryImpl struct {
	db *database.DB
}

func NewStandardScheduleRepository(db *database.DB) schedule.StandardScheduleRepository {
	return &standardScheduleRepositoryImpl{db: db}
}

// ListActiveForDate implements schedule.StandardScheduleRepository.
func (r *standardScheduleRepositoryImpl) ListActiveForDate(ctx context.Context, employeeID string, date time.Time, adminID string) ([]schedule.StandardSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, entry, exit, lunch_out, lunch_in,
		       active, start_date, end_date, admin_id, created_at
		FROM standard_schedules
		WHERE employee_id = $1
		  AND admin_id = $2
		  AND active = TRUE
		  AND start_date <= $3
		  AND (end_date IS NULL OR end_date >= $3)
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID, adminID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list standard schedules: %w", err)
	}
	defer rows.Close()

	var overlays []schedule.StandardSchedule
	for rows.Next() {
		var o schedule.StandardSchedule
		err := rows.Scan(
			&o.ID, &o.EmployeeID, &o.Entry, &o.Exit, &o.LunchOut, &o.LunchIn,
			&o.Active, &o.StartDate, &o.EndDate, &o.AdminID, &o.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan standard schedule: %w", err)
		}
		overlays = append(overlays, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list standard schedules: %w", err)
	}
	return overlays, nil
}

// Create implements schedule.StandardScheduleRepository.
func (r *standardScheduleRepositoryImpl) Create(ctx context.Context, overlay schedule.StandardSchedule) (schedule.StandardSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO standard_schedules (
			id, employee_id, entry, exit, lunch_out, lunch_in, active, start_date, end_date, admin_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		overlay.ID,
		overlay.EmployeeID,
		overlay.Entry,
		overlay.Exit,
		overlay.LunchOut,
		overlay.LunchIn,
		overlay.Active,
		overlay.StartDate,
		overlay.EndDate,
		overlay.AdminID,
	).Scan(&overlay.CreatedAt)

	if err != nil {
		return schedule.StandardSchedule{}, fmt.Errorf("failed to create standard schedule: %w", err)
	}
	return overlay, nil
}
