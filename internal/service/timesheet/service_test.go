package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estruturasvale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasvale/sige-backend-go/internal/domain/expense"
	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasvale/sige-backend-go/internal/domain/site"
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
)

type fakePunchRepo struct {
	punches map[string]timesheet.Punch
}

func newFakePunchRepo() *fakePunchRepo {
	return &fakePunchRepo{punches: make(map[string]timesheet.Punch)}
}

func (f *fakePunchRepo) Create(ctx context.Context, p timesheet.Punch) (timesheet.Punch, error) {
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	f.punches[p.ID] = p
	return p, nil
}

func (f *fakePunchRepo) Update(ctx context.Context, p timesheet.Punch) error {
	if _, ok := f.punches[p.ID]; !ok {
		return timesheet.ErrPunchNotFound
	}
	f.punches[p.ID] = p
	return nil
}

func (f *fakePunchRepo) GetByID(ctx context.Context, id string, adminID string) (timesheet.Punch, error) {
	p, ok := f.punches[id]
	if !ok || p.AdminID != adminID {
		return timesheet.Punch{}, timesheet.ErrPunchNotFound
	}
	return p, nil
}

func (f *fakePunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, adminID string) (*timesheet.Punch, error) {
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && p.Date.Equal(date) && p.AdminID == adminID {
			found := p
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakePunchRepo) ListByEmployee(ctx context.Context, employeeID string, start, end time.Time, adminID string) ([]timesheet.Punch, error) {
	var out []timesheet.Punch
	for _, p := range f.punches {
		if p.EmployeeID == employeeID && p.AdminID == adminID && !p.Date.Before(start) && !p.Date.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) ListBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) ([]timesheet.Punch, error) {
	var out []timesheet.Punch
	for _, p := range f.punches {
		if p.SiteID != nil && *p.SiteID == siteID && p.AdminID == adminID && !p.Date.Before(start) && !p.Date.After(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePunchRepo) EmployeeIDsWithPunches(ctx context.Context, start, end time.Time, adminID string) (map[string]bool, error) {
	ids := make(map[string]bool)
	for _, p := range f.punches {
		if p.AdminID == adminID && !p.Date.Before(start) && !p.Date.After(end) {
			ids[p.EmployeeID] = true
		}
	}
	return ids, nil
}

func (f *fakePunchRepo) Delete(ctx context.Context, id string, adminID string) error {
	p, ok := f.punches[id]
	if !ok || p.AdminID != adminID {
		return timesheet.ErrPunchNotFound
	}
	delete(f.punches, id)
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string, adminID string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok || e.AdminID != adminID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, adminID string, activeOnly bool) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.AdminID != adminID {
			continue
		}
		if activeOnly && !e.Active {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) HasPunchesBefore(ctx context.Context, id string, cutoff string, adminID string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, adminID string) error {
	return nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context, adminID string) (int, error) {
	n := 0
	for _, e := range f.employees {
		if e.AdminID == adminID && e.Active {
			n++
		}
	}
	return n, nil
}

type fakeSiteRepo struct {
	sites map[string]site.Site
}

func (f *fakeSiteRepo) Create(ctx context.Context, s site.Site) (site.Site, error) {
	return s, nil
}

func (f *fakeSiteRepo) GetByID(ctx context.Context, id string, adminID string) (site.Site, error) {
	s, ok := f.sites[id]
	if !ok || s.AdminID != adminID {
		return site.Site{}, site.ErrSiteNotFound
	}
	return s, nil
}

func (f *fakeSiteRepo) List(ctx context.Context, adminID string, activeOnly bool) ([]site.Site, error) {
	return nil, nil
}

func (f *fakeSiteRepo) CountActive(ctx context.Context, adminID string) (int, error) {
	return 0, nil
}

type fakeMealRepo struct{}

func (f *fakeMealRepo) Create(ctx context.Context, m expense.MealRecord) (expense.MealRecord, error) {
	return m, nil
}

func (f *fakeMealRepo) SumByEmployee(ctx context.Context, employeeID string, start, end time.Time, adminID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeMealRepo) SumBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fakeOtherCostRepo struct{}

func (f *fakeOtherCostRepo) Create(ctx context.Context, o expense.OtherCost) (expense.OtherCost, error) {
	return o, nil
}

func (f *fakeOtherCostRepo) SumByEmployeeAndAssociation(ctx context.Context, employeeID string, assoc expense.KPIAssociation, start, end time.Time, adminID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func (f *fakeOtherCostRepo) SumBySite(ctx context.Context, siteID string, start, end time.Time, adminID string) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type fixedScheduleResolver struct {
	eff schedule.Effective
}

func (f *fixedScheduleResolver) Resolve(ctx context.Context, employeeID string, d time.Time, adminID string) (schedule.Effective, error) {
	return f.eff, nil
}

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

func newTestService(t *testing.T, punchRepo *fakePunchRepo, empRepo *fakeEmployeeRepo, siteRepo *fakeSiteRepo) *TimesheetService {
	t.Helper()
	return NewTimesheetService(
		punchRepo,
		empRepo,
		siteRepo,
		&fakeMealRepo{},
		&fakeOtherCostRepo{},
		&fixedScheduleResolver{eff: standardSchedule(t)},
		&fakeTxRunner{},
		WeekStartSunday,
	)
}

func testEmployees(salary int64) *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID: "emp-1", Code: "E001", Name: "João da Silva",
			MonthlySalary: decimal.NewFromInt(salary),
			Active:        true, AdminID: "admin-1",
		},
	}}
}

func TestStorePunchComputesDerivedFields(t *testing.T) {
	punchRepo := newFakePunchRepo()
	svc := newTestService(t, punchRepo, testEmployees(2106), &fakeSiteRepo{})

	entry, exit := "07:05", "17:50"
	lunchOut, lunchIn := "12:00", "13:00"
	resp, err := svc.StorePunch(context.Background(), timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-15",
		Type:       "worked_normal",
		Entry:      &entry,
		Exit:       &exit,
		LunchOut:   &lunchOut,
		LunchIn:    &lunchIn,
	}, "admin-1")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 9.75, resp.HoursWorked)
	assert.Equal(t, 0.95, resp.OvertimeHours)
	assert.Equal(t, 7, resp.EarlyEntryMinutes)
	assert.Equal(t, 50, resp.LateExitMinutes)
}

func TestStorePunchRejectsDuplicateDate(t *testing.T) {
	punchRepo := newFakePunchRepo()
	svc := newTestService(t, punchRepo, testEmployees(2106), &fakeSiteRepo{})

	req := timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-15",
		Type:       "absence",
	}
	_, err := svc.StorePunch(context.Background(), req, "admin-1")
	require.NoError(t, err)

	_, err = svc.StorePunch(context.Background(), req, "admin-1")
	assert.ErrorIs(t, err, timesheet.ErrDuplicatePunch)
}

func TestStorePunchRejectsForeignSite(t *testing.T) {
	punchRepo := newFakePunchRepo()
	siteRepo := &fakeSiteRepo{sites: map[string]site.Site{
		"site-1": {ID: "site-1", AdminID: "admin-2"},
	}}
	svc := newTestService(t, punchRepo, testEmployees(2106), siteRepo)

	siteID := "site-1"
	_, err := svc.StorePunch(context.Background(), timesheet.PunchRequest{
		EmployeeID: "emp-1",
		SiteID:     &siteID,
		Date:       "2025-07-15",
		Type:       "absence",
	}, "admin-1")

	assert.ErrorIs(t, err, timesheet.ErrSiteTenantMismatch)
}

func TestStorePunchRejectsForeignEmployee(t *testing.T) {
	punchRepo := newFakePunchRepo()
	svc := newTestService(t, punchRepo, testEmployees(2106), &fakeSiteRepo{})

	_, err := svc.StorePunch(context.Background(), timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-15",
		Type:       "absence",
	}, "admin-2")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestStorePunchSuggestsTypeFromCalendar(t *testing.T) {
	punchRepo := newFakePunchRepo()
	svc := newTestService(t, punchRepo, testEmployees(2106), &fakeSiteRepo{})

	entry, exit := "08:00", "12:00"
	resp, err := svc.StorePunch(context.Background(), timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-05", // Saturday
		Entry:      &entry,
		Exit:       &exit,
	}, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "saturday_worked", resp.Type)
	assert.Equal(t, 4.0, resp.OvertimeHours)
	assert.Equal(t, 50, resp.OvertimePercent)
}

func TestUpdatePunchRecomputesDerivedFields(t *testing.T) {
	punchRepo := newFakePunchRepo()
	svc := newTestService(t, punchRepo, testEmployees(2106), &fakeSiteRepo{})

	entry, exit := "07:12", "17:00"
	lunchOut, lunchIn := "12:00", "13:00"
	created, err := svc.StorePunch(context.Background(), timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-15",
		Type:       "worked_normal",
		Entry:      &entry,
		Exit:       &exit,
		LunchOut:   &lunchOut,
		LunchIn:    &lunchIn,
	}, "admin-1")
	require.NoError(t, err)
	assert.Zero(t, created.OvertimeHours)

	lateExit := "18:00"
	updated, err := svc.UpdatePunch(context.Background(), created.ID, timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-15",
		Type:       "worked_normal",
		Entry:      &entry,
		Exit:       &lateExit,
		LunchOut:   &lunchOut,
		LunchIn:    &lunchIn,
	}, "admin-1")

	require.NoError(t, err)
	assert.Equal(t, 1.0, updated.OvertimeHours)
	assert.Equal(t, 60, updated.LateExitMinutes)
}

func TestPunchWritesRunInTransaction(t *testing.T) {
	punchRepo := newFakePunchRepo()
	tx := &fakeTxRunner{}
	svc := NewTimesheetService(
		punchRepo,
		testEmployees(2106),
		&fakeSiteRepo{},
		&fakeMealRepo{},
		&fakeOtherCostRepo{},
		&fixedScheduleResolver{eff: standardSchedule(t)},
		tx,
		WeekStartSunday,
	)

	created, err := svc.StorePunch(context.Background(), timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-15",
		Type:       "absence",
	}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)

	_, err = svc.UpdatePunch(context.Background(), created.ID, timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-16",
		Type:       "absence",
	}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, 2, tx.calls)
}

func TestDeletePunchScopedToTenant(t *testing.T) {
	punchRepo := newFakePunchRepo()
	svc := newTestService(t, punchRepo, testEmployees(2106), &fakeSiteRepo{})

	created, err := svc.StorePunch(context.Background(), timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-15",
		Type:       "absence",
	}, "admin-1")
	require.NoError(t, err)

	err = svc.DeletePunch(context.Background(), created.ID, "admin-2")
	assert.ErrorIs(t, err, timesheet.ErrPunchNotFound)

	require.NoError(t, svc.DeletePunch(context.Background(), created.ID, "admin-1"))
}

func TestComputeKPIsSkipsCorruptPunchesWithWarnings(t *testing.T) {
	punchRepo := newFakePunchRepo()
	svc := newTestService(t, punchRepo, testEmployees(2106), &fakeSiteRepo{})

	// A valid worked day stored through the service.
	entry, exit := "07:12", "17:00"
	lunchOut, lunchIn := "12:00", "13:00"
	_, err := svc.StorePunch(context.Background(), timesheet.PunchRequest{
		EmployeeID: "emp-1",
		Date:       "2025-07-15",
		Type:       "worked_normal",
		Entry:      &entry,
		Exit:       &exit,
		LunchOut:   &lunchOut,
		LunchIn:    &lunchIn,
	}, "admin-1")
	require.NoError(t, err)

	// A corrupt row written behind the service's back.
	badEntry := time.Date(0, 1, 1, 7, 0, 0, 0, time.UTC)
	punchRepo.punches["bad-1"] = timesheet.Punch{
		ID: "bad-1", EmployeeID: "emp-1", AdminID: "admin-1",
		Date: time.Date(2025, 7, 16, 0, 0, 0, 0, time.UTC),
		Type: timesheet.TypeWorkedNormal, Entry: &badEntry,
	}

	bundle, err := svc.ComputeKPIs(context.Background(), "emp-1",
		time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC),
		"admin-1")

	require.NoError(t, err)
	require.Len(t, bundle.Warnings, 1)
	assert.Equal(t, "bad-1", bundle.Warnings[0].PunchID)
	assert.Equal(t, 8.8, bundle.HoursWorked)
	assert.Equal(t, 1, bundle.WorkedDays)
}

func TestComputeKPIsAllHidesInactiveWithoutPunches(t *testing.T) {
	punchRepo := newFakePunchRepo()
	empRepo := testEmployees(2106)
	empRepo.employees["emp-2"] = employee.Employee{
		ID: "emp-2", Code: "E002", Name: "Maria Souza",
		MonthlySalary: decimal.NewFromInt(1800),
		Active:        false, AdminID: "admin-1",
	}
	svc := newTestService(t, punchRepo, empRepo, &fakeSiteRepo{})

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	list, err := svc.ComputeKPIsAll(context.Background(), start, end, "admin-1", false)
	require.NoError(t, err)
	require.Len(t, list.Employees, 1)
	assert.Equal(t, "emp-1", list.Employees[0].EmployeeID)

	list, err = svc.ComputeKPIsAll(context.Background(), start, end, "admin-1", true)
	require.NoError(t, err)
	assert.Len(t, list.Employees, 2)
}

func TestComputeKPIsAllTotalsSumBundles(t *testing.T) {
	punchRepo := newFakePunchRepo()
	empRepo := testEmployees(2106)
	empRepo.employees["emp-2"] = employee.Employee{
		ID: "emp-2", Code: "E002", Name: "Maria Souza",
		MonthlySalary: decimal.NewFromInt(1800),
		Active:        true, AdminID: "admin-1",
	}
	svc := newTestService(t, punchRepo, empRepo, &fakeSiteRepo{})

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	list, err := svc.ComputeKPIsAll(context.Background(), start, end, "admin-1", false)
	require.NoError(t, err)
	require.Len(t, list.Employees, 2)

	wantLabor := decimal.Zero
	wantTotal := decimal.Zero
	for _, b := range list.Employees {
		wantLabor = wantLabor.Add(b.LaborCost)
		wantTotal = wantTotal.Add(b.TotalCost)
	}
	assert.True(t, list.Totals.LaborCost.Equal(wantLabor))
	assert.True(t, list.Totals.TotalCost.Equal(wantTotal))
}
