package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estruturasvale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasvale/sige-backend-go/internal/domain/expense"
	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasvale/sige-backend-go/internal/domain/site"
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/validator"
)

// TimesheetService implements timesheet.TimesheetService.
type TimesheetService struct {
	punchRepo     timesheet.PunchRepository
	employeeRepo  employee.EmployeeRepository
	siteRepo      site.SiteRepository
	mealRepo      expense.MealRepository
	otherCostRepo expense.OtherCostRepository
	schedules     schedule.Resolver
	tx            timesheet.TxRunner
	weekStart     WeekStart
}

func NewTimesheetService(
	punchRepo timesheet.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	siteRepo site.SiteRepository,
	mealRepo expense.MealRepository,
	otherCostRepo expense.OtherCostRepository,
	schedules schedule.Resolver,
	tx timesheet.TxRunner,
	weekStart WeekStart,
) *TimesheetService {
	return &TimesheetService{
		punchRepo:     punchRepo,
		employeeRepo:  employeeRepo,
		siteRepo:      siteRepo,
		mealRepo:      mealRepo,
		otherCostRepo: otherCostRepo,
		schedules:     schedules,
		tx:            tx,
		weekStart:     weekStart,
	}
}

func (s *TimesheetService) StorePunch(ctx context.Context, req timesheet.PunchRequest, adminID string) (timesheet.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PunchResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, adminID); err != nil {
		return timesheet.PunchResponse{}, err
	}
	if req.SiteID != nil {
		if _, err := s.siteRepo.GetByID(ctx, *req.SiteID, adminID); err != nil {
			if errors.Is(err, site.ErrSiteNotFound) {
				return timesheet.PunchResponse{}, timesheet.ErrSiteTenantMismatch
			}
			return timesheet.PunchResponse{}, err
		}
	}

	punch, err := punchFromRequest(req, adminID)
	if err != nil {
		return timesheet.PunchResponse{}, err
	}

	if err := s.derive(ctx, &punch); err != nil {
		return timesheet.PunchResponse{}, err
	}
	punch.ID = uuid.New().String()

	// The duplicate check and the insert share one transaction so a racing
	// write for the same (employee, date) cannot slip between them.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.punchRepo.GetByEmployeeAndDate(ctx, punch.EmployeeID, punch.Date, adminID)
		if err != nil {
			return fmt.Errorf("failed to check existing punch: %w", err)
		}
		if existing != nil {
			return timesheet.ErrDuplicatePunch
		}
		created, err := s.punchRepo.Create(ctx, punch)
		if err != nil {
			return fmt.Errorf("failed to create punch: %w", err)
		}
		punch = created
		return nil
	})
	if err != nil {
		return timesheet.PunchResponse{}, err
	}
	return toPunchResponse(punch), nil
}

func (s *TimesheetService) UpdatePunch(ctx context.Context, id string, req timesheet.PunchRequest, adminID string) (timesheet.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PunchResponse{}, err
	}

	current, err := s.punchRepo.GetByID(ctx, id, adminID)
	if err != nil {
		return timesheet.PunchResponse{}, err
	}

	punch, err := punchFromRequest(req, adminID)
	if err != nil {
		return timesheet.PunchResponse{}, err
	}
	punch.ID = current.ID
	punch.CreatedAt = current.CreatedAt

	if punch.EmployeeID != current.EmployeeID {
		if _, err := s.employeeRepo.GetByID(ctx, punch.EmployeeID, adminID); err != nil {
			return timesheet.PunchResponse{}, err
		}
	}
	if req.SiteID != nil {
		if _, err := s.siteRepo.GetByID(ctx, *req.SiteID, adminID); err != nil {
			if errors.Is(err, site.ErrSiteNotFound) {
				return timesheet.PunchResponse{}, timesheet.ErrSiteTenantMismatch
			}
			return timesheet.PunchResponse{}, err
		}
	}

	if err := s.derive(ctx, &punch); err != nil {
		return timesheet.PunchResponse{}, err
	}

	// Moving the punch to another (employee, date) must not collide; the
	// check and the write run in one transaction.
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if punch.EmployeeID != current.EmployeeID || !punch.Date.Equal(current.Date) {
			existing, err := s.punchRepo.GetByEmployeeAndDate(ctx, punch.EmployeeID, punch.Date, adminID)
			if err != nil {
				return fmt.Errorf("failed to check existing punch: %w", err)
			}
			if existing != nil {
				return timesheet.ErrDuplicatePunch
			}
		}
		if err := s.punchRepo.Update(ctx, punch); err != nil {
			return fmt.Errorf("failed to update punch: %w", err)
		}
		return nil
	})
	if err != nil {
		return timesheet.PunchResponse{}, err
	}
	return toPunchResponse(punch), nil
}

func (s *TimesheetService) DeletePunch(ctx context.Context, id string, adminID string) error {
	if _, err := s.punchRepo.GetByID(ctx, id, adminID); err != nil {
		return err
	}
	if err := s.punchRepo.Delete(ctx, id, adminID); err != nil {
		return fmt.Errorf("failed to delete punch: %w", err)
	}
	return nil
}

func (s *TimesheetService) ListPunches(ctx context.Context, filter timesheet.PunchFilter, adminID string) ([]timesheet.PunchResponse, error) {
	punches, err := s.punchRepo.ListByEmployee(ctx, filter.EmployeeID, filter.StartDate, filter.EndDate, adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	responses := make([]timesheet.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, toPunchResponse(p))
	}
	return responses, nil
}

func (s *TimesheetService) ComputeKPIs(ctx context.Context, employeeID string, start, end time.Time, adminID string) (timesheet.KPIBundle, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID, adminID)
	if err != nil {
		return timesheet.KPIBundle{}, err
	}
	return s.buildBundle(ctx, emp, start, end, adminID)
}

func (s *TimesheetService) ComputeKPIsAll(ctx context.Context, start, end time.Time, adminID string, includeInactive bool) (timesheet.KPIListResponse, error) {
	employees, err := s.employeeRepo.List(ctx, adminID, false)
	if err != nil {
		return timesheet.KPIListResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	withPunches, err := s.punchRepo.EmployeeIDsWithPunches(ctx, start, end, adminID)
	if err != nil {
		return timesheet.KPIListResponse{}, fmt.Errorf("failed to list employees with punches: %w", err)
	}

	resp := timesheet.KPIListResponse{
		Employees: []timesheet.KPIBundle{},
		Totals: timesheet.KPITotals{
			LaborCost:     decimal.Zero,
			MealCost:      decimal.Zero,
			TransportCost: decimal.Zero,
			OtherCosts:    decimal.Zero,
			TotalCost:     decimal.Zero,
		},
	}
	for _, emp := range employees {
		if !emp.Active && !includeInactive && !withPunches[emp.ID] {
			continue
		}
		bundle, err := s.buildBundle(ctx, emp, start, end, adminID)
		if err != nil {
			return timesheet.KPIListResponse{}, err
		}
		resp.Employees = append(resp.Employees, bundle)

		resp.Totals.HoursWorked = round2(resp.Totals.HoursWorked + bundle.HoursWorked)
		resp.Totals.OvertimeHours = round2(resp.Totals.OvertimeHours + bundle.OvertimeHours)
		resp.Totals.LaborCost = resp.Totals.LaborCost.Add(bundle.LaborCost)
		resp.Totals.MealCost = resp.Totals.MealCost.Add(bundle.MealCost)
		resp.Totals.TransportCost = resp.Totals.TransportCost.Add(bundle.TransportCost)
		resp.Totals.OtherCosts = resp.Totals.OtherCosts.Add(bundle.OtherCosts)
		resp.Totals.TotalCost = resp.Totals.TotalCost.Add(bundle.TotalCost)
	}
	return resp, nil
}

// buildBundle assembles one employee's KPI bundle. Punches that fail
// validation are reported as warnings and excluded from every aggregate,
// including the DSR walk.
func (s *TimesheetService) buildBundle(ctx context.Context, emp employee.Employee, start, end time.Time, adminID string) (timesheet.KPIBundle, error) {
	punches, err := s.punchRepo.ListByEmployee(ctx, emp.ID, start, end, adminID)
	if err != nil {
		return timesheet.KPIBundle{}, fmt.Errorf("failed to list punches: %w", err)
	}

	valid := make([]timesheet.Punch, 0, len(punches))
	var warnings []timesheet.Warning
	for _, p := range punches {
		check := p
		if err := Normalize(&check); err != nil {
			if timesheet.IsValidationError(err) {
				warnings = append(warnings, timesheet.Warning{
					PunchID: p.ID,
					Date:    p.Date.Format("2006-01-02"),
					Reason:  err.Error(),
				})
				continue
			}
			return timesheet.KPIBundle{}, err
		}
		valid = append(valid, p)
	}

	sched, err := s.schedules.Resolve(ctx, emp.ID, start, adminID)
	if err != nil {
		return timesheet.KPIBundle{}, err
	}

	mealCost, err := s.mealRepo.SumByEmployee(ctx, emp.ID, start, end, adminID)
	if err != nil {
		return timesheet.KPIBundle{}, fmt.Errorf("failed to sum meal records: %w", err)
	}
	foodCost, err := s.otherCostRepo.SumByEmployeeAndAssociation(ctx, emp.ID, expense.AssocFoodCost, start, end, adminID)
	if err != nil {
		return timesheet.KPIBundle{}, fmt.Errorf("failed to sum food costs: %w", err)
	}
	transportCost, err := s.otherCostRepo.SumByEmployeeAndAssociation(ctx, emp.ID, expense.AssocTransportCost, start, end, adminID)
	if err != nil {
		return timesheet.KPIBundle{}, fmt.Errorf("failed to sum transport costs: %w", err)
	}
	otherCosts := decimal.Zero
	for _, assoc := range []expense.KPIAssociation{expense.AssocOtherCosts, expense.AssocBenefit, expense.AssocDeduction} {
		sum, err := s.otherCostRepo.SumByEmployeeAndAssociation(ctx, emp.ID, assoc, start, end, adminID)
		if err != nil {
			return timesheet.KPIBundle{}, fmt.Errorf("failed to sum other costs: %w", err)
		}
		otherCosts = otherCosts.Add(sum)
	}

	return BuildKPIs(KPIInputs{
		EmployeeID:    emp.ID,
		EmployeeCode:  emp.Code,
		EmployeeName:  emp.Name,
		MonthlySalary: emp.MonthlySalary,
		PeriodStart:   start,
		PeriodEnd:     end,
		DailyHours:    sched.DailyHours,
		HourlyRate:    HourlyRate(emp.MonthlySalary, start, sched.DailyHours),
		Punches:       valid,
		DSR:           ComputeDSR(emp.MonthlySalary, valid, start, end, s.weekStart),
		MealCost:      mealCost.Add(foodCost),
		TransportCost: transportCost,
		OtherCosts:    otherCosts,
		Warnings:      warnings,
	}), nil
}

// derive runs the full normalization pipeline on a punch: default the type
// from the calendar, validate, then compute overtime against the effective
// schedule.
func (s *TimesheetService) derive(ctx context.Context, p *timesheet.Punch) error {
	if p.Type == "" {
		p.Type = SuggestType(p.Date)
	}
	if err := Normalize(p); err != nil {
		return err
	}
	sched, err := s.schedules.Resolve(ctx, p.EmployeeID, p.Date, p.AdminID)
	if err != nil {
		return err
	}
	ApplyOvertime(p, sched)
	return nil
}

func punchFromRequest(req timesheet.PunchRequest, adminID string) (timesheet.Punch, error) {
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		return timesheet.Punch{}, validator.ValidationErrors{{Field: "date", Message: "must be YYYY-MM-DD"}}
	}

	p := timesheet.Punch{
		EmployeeID: req.EmployeeID,
		SiteID:     req.SiteID,
		Date:       date,
		Type:       timesheet.PunchType(req.Type),
		Notes:      req.Notes,
		AdminID:    adminID,
	}
	if req.AbsenceDays != nil {
		p.AbsenceDays = *req.AbsenceDays
	}

	for _, c := range []struct {
		value  *string
		target **time.Time
	}{
		{req.Entry, &p.Entry},
		{req.Exit, &p.Exit},
		{req.LunchOut, &p.LunchOut},
		{req.LunchIn, &p.LunchIn},
	} {
		if c.value == nil {
			continue
		}
		t, ok := validator.IsValidClockTime(*c.value)
		if !ok {
			return timesheet.Punch{}, validator.ValidationErrors{{Field: "clock", Message: "must be HH:MM"}}
		}
		*c.target = &t
	}
	return p, nil
}

func toPunchResponse(p timesheet.Punch) timesheet.PunchResponse {
	clock := func(t *time.Time) *string {
		if t == nil {
			return nil
		}
		s := t.Format("15:04")
		return &s
	}
	return timesheet.PunchResponse{
		ID:                p.ID,
		EmployeeID:        p.EmployeeID,
		EmployeeName:      p.EmployeeName,
		SiteID:            p.SiteID,
		Date:              p.Date.Format("2006-01-02"),
		Type:              string(p.Type),
		Entry:             clock(p.Entry),
		Exit:              clock(p.Exit),
		LunchOut:          clock(p.LunchOut),
		LunchIn:           clock(p.LunchIn),
		HoursWorked:       p.HoursWorked,
		OvertimeHours:     p.OvertimeHours,
		OvertimePercent:   p.OvertimePercent,
		EarlyEntryMinutes: p.EarlyEntryMinutes,
		LateExitMinutes:   p.LateExitMinutes,
		LateEntryMinutes:  p.LateEntryMinutes,
		EarlyExitMinutes:  p.EarlyExitMinutes,
		TotalLateMinutes:  p.TotalLateMinutes,
		Notes:             p.Notes,
	}
}
