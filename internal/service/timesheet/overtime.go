package timesheet

import (
	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
)

// ApplyOvertime fills the overtime and lateness fields of a normalized punch
// against the effective standard schedule (CLT: +50% weekday/Saturday,
// +100% Sunday/holiday).
//
// Weekday overtime is the minute delta outside the standard window: early
// arrival before standard entry plus late departure after standard exit.
// Saturday/Sunday/holiday punches count every worked hour as overtime with no
// per-minute accounting.
func ApplyOvertime(p *timesheet.Punch, sched schedule.Effective) {
	clearOvertime(p)

	switch p.Type {
	case timesheet.TypeWorked, timesheet.TypeWorkedNormal:
		if p.Entry == nil || p.Exit == nil {
			return
		}
		stdEntry := minutesOfDay(sched.Entry)
		stdExit := minutesOfDay(sched.Exit)
		actualEntry := minutesOfDay(*p.Entry)
		actualExit := minutesOfDay(*p.Exit)
		if actualExit < actualEntry {
			// Cross-midnight shift: exit counts as next-day.
			actualExit += 24 * 60
		}

		p.EarlyEntryMinutes = max(0, stdEntry-actualEntry)
		p.LateExitMinutes = max(0, actualExit-stdExit)
		p.OvertimeHours = round2(float64(p.EarlyEntryMinutes+p.LateExitMinutes) / 60.0)
		p.OvertimePercent = 50

		p.LateEntryMinutes = max(0, actualEntry-stdEntry)
		p.EarlyExitMinutes = max(0, stdExit-actualExit)
		p.TotalLateMinutes = p.LateEntryMinutes + p.EarlyExitMinutes

	case timesheet.TypeSaturdayWorked:
		p.OvertimeHours = p.HoursWorked
		p.OvertimePercent = 50

	case timesheet.TypeSundayWorked, timesheet.TypeHolidayWorked:
		p.OvertimeHours = p.HoursWorked
		p.OvertimePercent = 100
	}
	// half_day, absences and off-days keep everything at zero.
}
