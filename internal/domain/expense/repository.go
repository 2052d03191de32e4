package expense

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type MealRepository interface {
	Create(ctx context.Context, m MealRecord) (MealRecord, error)

	SumByEmployee(ctx context.Context, employeeID string, start, end time.Time, adminID string) (decimal.Decimal, error)

	SumBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, error)
}

type VehicleExpenseRepository interface {
	Create(ctx context.Context, v VehicleExpense) (VehicleExpense, error)

	SumBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, error)

	// CountActiveVehicles counts the tenant's active fleet for the dashboard.
	CountActiveVehicles(ctx context.Context, adminID string) (int, error)
}

type OtherCostRepository interface {
	Create(ctx context.Context, o OtherCost) (OtherCost, error)

	// SumByEmployeeAndAssociation totals the rows feeding one KPI column.
	SumByEmployeeAndAssociation(ctx context.Context, employeeID string, assoc KPIAssociation, start, end time.Time, adminID string) (decimal.Decimal, error)

	SumBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, error)
}
