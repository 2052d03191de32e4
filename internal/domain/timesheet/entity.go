package timesheet

import (
	"time"
)

// PunchType classifies a day's punch record and drives overtime and DSR
// policy.
type PunchType string

const (
	TypeWorked         PunchType = "worked"
	TypeWorkedNormal   PunchType = "worked_normal"
	TypeSaturdayWorked PunchType = "saturday_worked"
	TypeSundayWorked   PunchType = "sunday_worked"
	TypeHolidayWorked  PunchType = "holiday_worked"
	TypeSaturdayOff    PunchType = "saturday_off"
	TypeSundayOff      PunchType = "sunday_off"
	TypeAbsence        PunchType = "absence"
	TypeJustifiedAbs   PunchType = "justified_absence"
	TypeHalfDay        PunchType = "half_day"
	TypeVacation       PunchType = "vacation"
	TypeLeave          PunchType = "leave"
)

// IsValid reports whether t is one of the known punch types.
func (t PunchType) IsValid() bool {
	switch t {
	case TypeWorked, TypeWorkedNormal, TypeSaturdayWorked, TypeSundayWorked,
		TypeHolidayWorked, TypeSaturdayOff, TypeSundayOff, TypeAbsence,
		TypeJustifiedAbs, TypeHalfDay, TypeVacation, TypeLeave:
		return true
	}
	return false
}

// IsAbsenceOrOff reports whether the type carries no clock times at all.
func (t PunchType) IsAbsenceOrOff() bool {
	switch t {
	case TypeAbsence, TypeJustifiedAbs, TypeVacation, TypeLeave,
		TypeSaturdayOff, TypeSundayOff:
		return true
	}
	return false
}

// CountsAsWorkedDay reports whether a punch of this type counts towards the
// worked_days KPI.
func (t PunchType) CountsAsWorkedDay() bool {
	return !t.IsAbsenceOrOff()
}

// CountsHoursWorked reports whether hours_worked accumulates into KPI #1.
func (t PunchType) CountsHoursWorked() bool {
	switch t {
	case TypeWorked, TypeWorkedNormal, TypeHalfDay, TypeSaturdayWorked,
		TypeSundayWorked, TypeHolidayWorked:
		return true
	}
	return false
}

// Punch is one time-clock record for a single (employee, date) pair. The
// derived fields are recomputed whenever any input field changes; they are
// never a source of truth for aggregates, which are always rebuilt on read.
type Punch struct {
	ID         string
	EmployeeID string
	SiteID     *string
	Date       time.Time
	Entry      *time.Time
	Exit       *time.Time
	LunchOut   *time.Time
	LunchIn    *time.Time
	Type       PunchType
	Notes      string
	AdminID    string

	// AbsenceDays is the fraction of a day lost on an absence punch.
	// Supported domain is {0.0, 1.0}; fractions are reserved.
	AbsenceDays float64

	// Derived fields, populated by the normalizer and overtime calculator.
	HoursWorked       float64
	OvertimeHours     float64
	OvertimePercent   int
	EarlyEntryMinutes int
	LateExitMinutes   int
	LateEntryMinutes  int
	EarlyExitMinutes  int
	TotalLateMinutes  int

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined for listings.
	EmployeeName *string
}
