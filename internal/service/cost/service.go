package cost

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estruturasvale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasvale/sige-backend-go/internal/domain/expense"
	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasvale/sige-backend-go/internal/domain/site"
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
	timesheetsvc "github.com/estruturasvale/sige-backend-go/internal/service/timesheet"
)

// CostService implements site.CostService. Labor is rebuilt from the punch
// rows on every call; nothing is cached between requests.
type CostService struct {
	siteRepo     site.SiteRepository
	punchRepo    timesheet.PunchRepository
	employeeRepo employee.EmployeeRepository
	mealRepo     expense.MealRepository
	vehicleRepo  expense.VehicleExpenseRepository
	otherRepo    expense.OtherCostRepository
	schedules    schedule.Resolver
}

func NewCostService(
	siteRepo site.SiteRepository,
	punchRepo timesheet.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	mealRepo expense.MealRepository,
	vehicleRepo expense.VehicleExpenseRepository,
	otherRepo expense.OtherCostRepository,
	schedules schedule.Resolver,
) *CostService {
	return &CostService{
		siteRepo:     siteRepo,
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		mealRepo:     mealRepo,
		vehicleRepo:  vehicleRepo,
		otherRepo:    otherRepo,
		schedules:    schedules,
	}
}

func (s *CostService) SiteCosts(ctx context.Context, siteID string, start, end time.Time, adminID string) (site.CostBundle, error) {
	st, err := s.siteRepo.GetByID(ctx, siteID, adminID)
	if err != nil {
		return site.CostBundle{}, err
	}

	bundle := site.CostBundle{
		SiteID:      st.ID,
		SiteCode:    st.Code,
		SiteName:    st.Name,
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
	}

	labor, workers, workdays, warnings, err := s.laborForSite(ctx, siteID, start, end, adminID)
	if err != nil {
		return site.CostBundle{}, err
	}
	bundle.Labor = labor
	bundle.TotalWorkersOnSite = workers
	bundle.TotalWorkdays = workdays
	bundle.Warnings = warnings

	if bundle.Meals, err = s.mealRepo.SumBySite(ctx, siteID, start, end, adminID); err != nil {
		return site.CostBundle{}, fmt.Errorf("failed to sum site meals: %w", err)
	}
	if bundle.Vehicles, err = s.vehicleRepo.SumBySite(ctx, siteID, start, end, adminID); err != nil {
		return site.CostBundle{}, fmt.Errorf("failed to sum site vehicle expenses: %w", err)
	}
	if bundle.Other, err = s.otherRepo.SumBySite(ctx, siteID, start, end, adminID); err != nil {
		return site.CostBundle{}, fmt.Errorf("failed to sum site other costs: %w", err)
	}

	bundle.Labor = bundle.Labor.Round(2)
	bundle.Meals = bundle.Meals.Round(2)
	bundle.Vehicles = bundle.Vehicles.Round(2)
	bundle.Other = bundle.Other.Round(2)
	bundle.Total = bundle.Labor.Add(bundle.Meals).Add(bundle.Vehicles).Add(bundle.Other).Round(2)
	return bundle, nil
}

func (s *CostService) TenantDashboard(ctx context.Context, start, end time.Time, adminID string) (site.Dashboard, error) {
	var dash site.Dashboard
	var err error

	if dash.ActiveEmployees, err = s.employeeRepo.CountActive(ctx, adminID); err != nil {
		return site.Dashboard{}, fmt.Errorf("failed to count active employees: %w", err)
	}
	if dash.ActiveSites, err = s.siteRepo.CountActive(ctx, adminID); err != nil {
		return site.Dashboard{}, fmt.Errorf("failed to count active sites: %w", err)
	}
	if dash.ActiveVehicles, err = s.vehicleRepo.CountActiveVehicles(ctx, adminID); err != nil {
		return site.Dashboard{}, fmt.Errorf("failed to count active vehicles: %w", err)
	}

	sites, err := s.siteRepo.List(ctx, adminID, true)
	if err != nil {
		return site.Dashboard{}, fmt.Errorf("failed to list sites: %w", err)
	}

	totals := site.CostBundle{
		PeriodStart: start.Format("2006-01-02"),
		PeriodEnd:   end.Format("2006-01-02"),
		Labor:       decimal.Zero,
		Meals:       decimal.Zero,
		Vehicles:    decimal.Zero,
		Other:       decimal.Zero,
		Total:       decimal.Zero,
	}
	for _, st := range sites {
		b, err := s.SiteCosts(ctx, st.ID, start, end, adminID)
		if err != nil {
			return site.Dashboard{}, err
		}
		totals.Labor = totals.Labor.Add(b.Labor)
		totals.Meals = totals.Meals.Add(b.Meals)
		totals.Vehicles = totals.Vehicles.Add(b.Vehicles)
		totals.Other = totals.Other.Add(b.Other)
		totals.Total = totals.Total.Add(b.Total)
		totals.TotalWorkersOnSite += b.TotalWorkersOnSite
		totals.TotalWorkdays += b.TotalWorkdays
		totals.Warnings = append(totals.Warnings, b.Warnings...)
	}
	dash.PeriodCosts = totals
	return dash, nil
}

// laborForSite walks the site's punches and prices each one at the owning
// employee's hourly rate: worked hours at 1x plus overtime hours at the CLT
// premium. Employees and rates are cached for the walk; the rate anchors on
// the period start month.
func (s *CostService) laborForSite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, int, int, []timesheet.Warning, error) {
	punches, err := s.punchRepo.ListBySite(ctx, siteID, start, end, adminID)
	if err != nil {
		return decimal.Zero, 0, 0, nil, fmt.Errorf("failed to list site punches: %w", err)
	}

	rates := make(map[string]decimal.Decimal)
	workers := make(map[string]bool)
	days := make(map[string]bool)
	labor := decimal.Zero
	var warnings []timesheet.Warning

	for _, p := range punches {
		check := p
		if err := timesheetsvc.Normalize(&check); err != nil {
			if timesheet.IsValidationError(err) {
				warnings = append(warnings, timesheet.Warning{
					PunchID: p.ID,
					Date:    p.Date.Format("2006-01-02"),
					Reason:  err.Error(),
				})
				continue
			}
			return decimal.Zero, 0, 0, nil, err
		}

		workers[p.EmployeeID] = true
		if p.Type.CountsAsWorkedDay() {
			days[p.Date.Format("2006-01-02")] = true
		}
		if p.HoursWorked == 0 && p.OvertimeHours == 0 {
			continue
		}

		rate, ok := rates[p.EmployeeID]
		if !ok {
			emp, err := s.employeeRepo.GetByID(ctx, p.EmployeeID, adminID)
			if err != nil {
				return decimal.Zero, 0, 0, nil, err
			}
			sched, err := s.schedules.Resolve(ctx, p.EmployeeID, start, adminID)
			if err != nil {
				return decimal.Zero, 0, 0, nil, err
			}
			rate = timesheetsvc.HourlyRate(emp.MonthlySalary, start, sched.DailyHours)
			rates[p.EmployeeID] = rate
		}

		premium := decimal.NewFromFloat(1.5)
		if p.OvertimePercent >= 100 {
			premium = decimal.NewFromFloat(2.0)
		}
		labor = labor.
			Add(decimal.NewFromFloat(p.HoursWorked).Mul(rate)).
			Add(decimal.NewFromFloat(p.OvertimeHours).Mul(rate).Mul(premium))
	}
	return labor, len(workers), len(days), warnings, nil
}
