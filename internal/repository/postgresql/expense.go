package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estruturasvale/sige-backend-go/internal/domain/expense"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/database"
)

type mealRepositoryImpl struct {
	db *database.DB
}

func NewMealRepository(db *database.DB) expense.MealRepository {
	return &mealRepositoryImpl{db: db}
}

// Create implements expense.MealRepository.
func (r *mealRepositoryImpl) Create(ctx context.Context, m expense.MealRecord) (expense.MealRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO meal_records (
			id, employee_id, site_id, restaurant_id, date, type, value, admin_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		m.ID, m.EmployeeID, m.SiteID, m.RestaurantID, m.Date, m.Type, m.Value, m.AdminID,
	).Scan(&m.CreatedAt)

	if err != nil {
		return expense.MealRecord{}, fmt.Errorf("failed to create meal record: %w", err)
	}
	return m, nil
}

// SumByEmployee implements expense.MealRepository.
func (r *mealRepositoryImpl) SumByEmployee(ctx context.Context, employeeID string, start, end time.Time, adminID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(value), 0) FROM meal_records
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3 AND admin_id = $4
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, start, end, adminID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum meal records by employee: %w", err)
	}
	return sum, nil
}

// SumBySite implements expense.MealRepository.
func (r *mealRepositoryImpl) SumBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(value), 0) FROM meal_records
		WHERE site_id = $1 AND date BETWEEN $2 AND $3 AND admin_id = $4
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, siteID, start, end, adminID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum meal records by site: %w", err)
	}
	return sum, nil
}

type vehicleExpenseRepositoryImpl struct {
	db *database.DB
}

func NewVehicleExpenseRepository(db *database.DB) expense.VehicleExpenseRepository {
	return &vehicleExpenseRepositoryImpl{db: db}
}

// Create implements expense.VehicleExpenseRepository.
func (r *vehicleExpenseRepositoryImpl) Create(ctx context.Context, v expense.VehicleExpense) (expense.VehicleExpense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO vehicle_expenses (
			id, vehicle_id, site_id, date, value, cost_type, admin_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		v.ID, v.VehicleID, v.SiteID, v.Date, v.Value, v.CostType, v.AdminID,
	).Scan(&v.CreatedAt)

	if err != nil {
		return expense.VehicleExpense{}, fmt.Errorf("failed to create vehicle expense: %w", err)
	}
	return v, nil
}

// SumBySite implements expense.VehicleExpenseRepository.
func (r *vehicleExpenseRepositoryImpl) SumBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(value), 0) FROM vehicle_expenses
		WHERE site_id = $1 AND date BETWEEN $2 AND $3 AND admin_id = $4
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, siteID, start, end, adminID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum vehicle expenses by site: %w", err)
	}
	return sum, nil
}

// CountActiveVehicles implements expense.VehicleExpenseRepository.
func (r *vehicleExpenseRepositoryImpl) CountActiveVehicles(ctx context.Context, adminID string) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM vehicles WHERE admin_id = $1 AND active = TRUE`, adminID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active vehicles: %w", err)
	}
	return count, nil
}

type otherCostRepositoryImpl struct {
	db *database.DB
}

func NewOtherCostRepository(db *database.DB) expense.OtherCostRepository {
	return &otherCostRepositoryImpl{db: db}
}

// Create implements expense.OtherCostRepository.
func (r *otherCostRepositoryImpl) Create(ctx context.Context, o expense.OtherCost) (expense.OtherCost, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO other_costs (
			id, employee_id, site_id, date, type, category, value, kpi_association, admin_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		o.ID, o.EmployeeID, o.SiteID, o.Date, o.Type, o.Category, o.Value, o.KPIAssociation, o.AdminID,
	).Scan(&o.CreatedAt)

	if err != nil {
		return expense.OtherCost{}, fmt.Errorf("failed to create other cost: %w", err)
	}
	return o, nil
}

// SumByEmployeeAndAssociation implements expense.OtherCostRepository.
func (r *otherCostRepositoryImpl) SumByEmployeeAndAssociation(ctx context.Context, employeeID string, assoc expense.KPIAssociation, start, end time.Time, adminID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(value), 0) FROM other_costs
		WHERE employee_id = $1 AND kpi_association = $2
		  AND date BETWEEN $3 AND $4 AND admin_id = $5
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, assoc, start, end, adminID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum other costs by association: %w", err)
	}
	return sum, nil
}

// SumBySite implements expense.OtherCostRepository.
func (r *otherCostRepositoryImpl) SumBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(value), 0) FROM other_costs
		WHERE site_id = $1 AND date BETWEEN $2 AND $3 AND admin_id = $4
	`

	var sum decimal.Decimal
	if err := q.QueryRow(ctx, query, siteID, start, end, adminID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum other costs by site: %w", err)
	}
	return sum, nil
}
