package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/estruturasvale/sige-backend-go/internal/config"
	"github.com/estruturasvale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
)

// Resolver implements schedule.Resolver with the three-layer lookup:
// per-employee overlay, employee schedule, deployment default.
type Resolver struct {
	scheduleRepo schedule.ScheduleRepository
	overlayRepo  schedule.StandardScheduleRepository
	employeeRepo employee.EmployeeRepository
	fallback     schedule.Effective
}

func NewResolver(
	scheduleRepo schedule.ScheduleRepository,
	overlayRepo schedule.StandardScheduleRepository,
	employeeRepo employee.EmployeeRepository,
	engine config.EngineConfig,
) (*Resolver, error) {
	fallback, err := defaultEffective(engine)
	if err != nil {
		return nil, fmt.Errorf("invalid default schedule configuration: %w", err)
	}
	return &Resolver{
		scheduleRepo: scheduleRepo,
		overlayRepo:  overlayRepo,
		employeeRepo: employeeRepo,
		fallback:     fallback,
	}, nil
}

func (r *Resolver) Resolve(ctx context.Context, employeeID string, date time.Time, adminID string) (schedule.Effective, error) {
	overlays, err := r.overlayRepo.ListActiveForDate(ctx, employeeID, date, adminID)
	if err != nil {
		return schedule.Effective{}, fmt.Errorf("failed to list standard schedules: %w", err)
	}
	if len(overlays) > 1 && overlays[0].StartDate.Equal(overlays[1].StartDate) {
		return schedule.Effective{}, schedule.ErrOverlappingStandardSchedules
	}
	if len(overlays) > 0 {
		o := overlays[0]
		return schedule.Effective{
			Entry:      o.Entry,
			LunchOut:   o.LunchOut,
			LunchIn:    o.LunchIn,
			Exit:       o.Exit,
			DailyHours: netHours(o.Entry, o.LunchOut, o.LunchIn, o.Exit),
			Source:     "overlay",
		}, nil
	}

	emp, err := r.employeeRepo.GetByID(ctx, employeeID, adminID)
	if err != nil {
		return schedule.Effective{}, err
	}
	if emp.ScheduleID != nil {
		sched, err := r.scheduleRepo.GetByID(ctx, *emp.ScheduleID, adminID)
		if err != nil {
			return schedule.Effective{}, err
		}
		return schedule.Effective{
			Entry:      sched.Entry,
			LunchOut:   sched.LunchOut,
			LunchIn:    sched.LunchIn,
			Exit:       sched.Exit,
			DailyHours: sched.DailyHours,
			Source:     "schedule",
		}, nil
	}

	return r.fallback, nil
}

// netHours is the schedule's daily workload: entry-to-exit minus lunch,
// in hours.
func netHours(entry, lunchOut, lunchIn, exit time.Time) float64 {
	span := func(a, b time.Time) int {
		d := (b.Hour()*60 + b.Minute()) - (a.Hour()*60 + a.Minute())
		if d < 0 {
			d += 24 * 60
		}
		return d
	}
	return float64(span(entry, exit)-span(lunchOut, lunchIn)) / 60.0
}

func defaultEffective(engine config.EngineConfig) (schedule.Effective, error) {
	parse := func(s string) (time.Time, error) {
		return time.Parse("15:04", s)
	}
	entry, err := parse(engine.DefaultEntry)
	if err != nil {
		return schedule.Effective{}, schedule.ErrNoScheduleForTenant
	}
	lunchOut, err := parse(engine.DefaultLunchOut)
	if err != nil {
		return schedule.Effective{}, schedule.ErrNoScheduleForTenant
	}
	lunchIn, err := parse(engine.DefaultLunchIn)
	if err != nil {
		return schedule.Effective{}, schedule.ErrNoScheduleForTenant
	}
	exit, err := parse(engine.DefaultExit)
	if err != nil {
		return schedule.Effective{}, schedule.ErrNoScheduleForTenant
	}
	return schedule.Effective{
		Entry:      entry,
		LunchOut:   lunchOut,
		LunchIn:    lunchIn,
		Exit:       exit,
		DailyHours: netHours(entry, lunchOut, lunchIn, exit),
		Source:     "default",
	}, nil
}
