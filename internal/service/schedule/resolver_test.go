package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estruturasvale/sige-backend-go/internal/config"
	"github.com/estruturasvale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
)

type fakeScheduleRepo struct {
	schedules map[string]schedule.Schedule
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string, adminID string) (schedule.Schedule, error) {
	s, ok := f.schedules[id]
	if !ok {
		return schedule.Schedule{}, schedule.ErrScheduleNotFound
	}
	return s, nil
}

func (f *fakeScheduleRepo) Create(ctx context.Context, s schedule.Schedule) (schedule.Schedule, error) {
	return s, nil
}

type fakeOverlayRepo struct {
	overlays []schedule.StandardSchedule
}

func (f *fakeOverlayRepo) ListActiveForDate(ctx context.Context, employeeID string, date time.Time, adminID string) ([]schedule.StandardSchedule, error) {
	return f.overlays, nil
}

func (f *fakeOverlayRepo) Create(ctx context.Context, o schedule.StandardSchedule) (schedule.StandardSchedule, error) {
	return o, nil
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
	return nil, nil
}

func (f *fakeEmployeeRepo) HasPunchesBefore(ctx context.Context, id string, cutoff string, adminID string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string, adminID string) error {
	return nil
}

func (f *fakeEmployeeRepo) CountActive(ctx context.Context, adminID string) (int, error) {
	return 0, nil
}

func testEngineConfig() config.EngineConfig {
	return config.EngineConfig{
		WeekStartsOn:    "sunday",
		DefaultEntry:    "07:12",
		DefaultLunchOut: "12:00",
		DefaultLunchIn:  "13:00",
		DefaultExit:     "17:00",
	}
}

func clock(t *testing.T, hhmm string) time.Time {
	t.Helper()
	parsed, err := time.Parse("15:04", hhmm)
	require.NoError(t, err)
	return parsed
}

func newTestResolver(t *testing.T, schedRepo *fakeScheduleRepo, overlayRepo *fakeOverlayRepo, empRepo *fakeEmployeeRepo) *Resolver {
	t.Helper()
	r, err := NewResolver(schedRepo, overlayRepo, empRepo, testEngineConfig())
	require.NoError(t, err)
	return r
}

func TestResolveOverlayWins(t *testing.T) {
	overlay := schedule.StandardSchedule{
		ID:         "ov-1",
		EmployeeID: "emp-1",
		Entry:      clock(t, "06:00"),
		LunchOut:   clock(t, "11:00"),
		LunchIn:    clock(t, "12:00"),
		Exit:       clock(t, "15:00"),
		Active:     true,
		StartDate:  time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	r := newTestResolver(t,
		&fakeScheduleRepo{},
		&fakeOverlayRepo{overlays: []schedule.StandardSchedule{overlay}},
		&fakeEmployeeRepo{},
	)

	eff, err := r.Resolve(context.Background(), "emp-1", time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "overlay", eff.Source)
	assert.Equal(t, clock(t, "06:00"), eff.Entry)
	assert.Equal(t, 8.0, eff.DailyHours)
}

func TestResolveEmployeeScheduleSecond(t *testing.T) {
	schedID := "sched-1"
	r := newTestResolver(t,
		&fakeScheduleRepo{schedules: map[string]schedule.Schedule{
			schedID: {
				ID:         schedID,
				Entry:      clock(t, "08:00"),
				LunchOut:   clock(t, "12:00"),
				LunchIn:    clock(t, "13:00"),
				Exit:       clock(t, "18:00"),
				DailyHours: 9.0,
			},
		}},
		&fakeOverlayRepo{},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", AdminID: "admin-1", ScheduleID: &schedID},
		}},
	)

	eff, err := r.Resolve(context.Background(), "emp-1", time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "schedule", eff.Source)
	assert.Equal(t, 9.0, eff.DailyHours)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	r := newTestResolver(t,
		&fakeScheduleRepo{},
		&fakeOverlayRepo{},
		&fakeEmployeeRepo{employees: map[string]employee.Employee{
			"emp-1": {ID: "emp-1", AdminID: "admin-1"},
		}},
	)

	eff, err := r.Resolve(context.Background(), "emp-1", time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), "admin-1")

	require.NoError(t, err)
	assert.Equal(t, "default", eff.Source)
	assert.Equal(t, clock(t, "07:12"), eff.Entry)
	assert.Equal(t, clock(t, "17:00"), eff.Exit)
	assert.InDelta(t, 8.8, eff.DailyHours, 0.001)
}

func TestResolveOverlappingOverlays(t *testing.T) {
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	mk := func(id string) schedule.StandardSchedule {
		return schedule.StandardSchedule{
			ID: id, EmployeeID: "emp-1", Active: true, StartDate: start,
			Entry: clock(t, "07:00"), Exit: clock(t, "16:00"),
			LunchOut: clock(t, "12:00"), LunchIn: clock(t, "13:00"),
		}
	}
	r := newTestResolver(t,
		&fakeScheduleRepo{},
		&fakeOverlayRepo{overlays: []schedule.StandardSchedule{mk("ov-1"), mk("ov-2")}},
		&fakeEmployeeRepo{},
	)

	_, err := r.Resolve(context.Background(), "emp-1", start, "admin-1")

	assert.ErrorIs(t, err, schedule.ErrOverlappingStandardSchedules)
}

func TestResolveMissingEmployee(t *testing.T) {
	r := newTestResolver(t, &fakeScheduleRepo{}, &fakeOverlayRepo{}, &fakeEmployeeRepo{})

	_, err := r.Resolve(context.Background(), "ghost", time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC), "admin-1")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestNewResolverRejectsBadDefaults(t *testing.T) {
	cfg := testEngineConfig()
	cfg.DefaultEntry = "7h12"

	_, err := NewResolver(&fakeScheduleRepo{}, &fakeOverlayRepo{}, &fakeEmployeeRepo{}, cfg)

	assert.Error(t, err)
}
