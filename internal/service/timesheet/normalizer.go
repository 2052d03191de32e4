package timesheet

import (
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
)

// Normalize validates a punch's input fields and fills the derived
// hours_worked. Overtime and lateness fields are set afterwards by
// ApplyOvertime against the effective schedule.
//
// The function is idempotent: normalizing an already-normalized punch yields
// the same derived fields.
func Normalize(p *timesheet.Punch) error {
	if !p.Type.IsValid() {
		return timesheet.ErrUnknownPunchType
	}

	if p.Type.IsAbsenceOrOff() {
		if p.Entry != nil || p.Exit != nil || p.LunchOut != nil || p.LunchIn != nil {
			return timesheet.ErrClockTimesOnAbsence
		}
		if p.Type == timesheet.TypeAbsence {
			if p.AbsenceDays == 0 {
				p.AbsenceDays = 1.0
			}
			if p.AbsenceDays != 1.0 {
				// Fractional absences are reserved; only whole days for now.
				return timesheet.ErrInvalidAbsenceFraction
			}
		} else {
			p.AbsenceDays = 0
		}
		p.HoursWorked = 0
		clearOvertime(p)
		return nil
	}

	if p.Entry == nil || p.Exit == nil {
		return timesheet.ErrMissingClockTimes
	}
	if (p.LunchOut == nil) != (p.LunchIn == nil) {
		return timesheet.ErrIncompleteLunch
	}
	p.AbsenceDays = 0

	worked := spanMinutes(*p.Entry, *p.Exit)
	if p.LunchOut != nil && p.LunchIn != nil {
		worked -= spanMinutes(*p.LunchOut, *p.LunchIn)
	}
	if worked < 0 {
		worked = 0
	}
	p.HoursWorked = round2(float64(worked) / 60.0)
	clearOvertime(p)
	return nil
}

func clearOvertime(p *timesheet.Punch) {
	p.OvertimeHours = 0
	p.OvertimePercent = 0
	p.EarlyEntryMinutes = 0
	p.LateExitMinutes = 0
	p.LateEntryMinutes = 0
	p.EarlyExitMinutes = 0
	p.TotalLateMinutes = 0
}
