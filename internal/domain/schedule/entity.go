package schedule

import (
	"time"

	"github.com/shopspring/decimal"
)

// Weekdays is a Mon..Sun set encoded as a bitmask, bit 0 = Sunday to match
// time.Weekday numbering.
type Weekdays uint8

func (w Weekdays) Contains(d time.Weekday) bool {
	return w&(1<<uint(d)) != 0
}

func (w Weekdays) With(d time.Weekday) Weekdays {
	return w | (1 << uint(d))
}

// WeekdaysMonFri is the usual construction crew week.
const WeekdaysMonFri Weekdays = 0b0111110

// Schedule is the tenant-level standard working schedule. Clock fields carry
// only wall-clock time of day; the date part is meaningless.
type Schedule struct {
	ID          string
	Name        string
	Entry       time.Time
	LunchOut    time.Time
	LunchIn     time.Time
	Exit        time.Time
	Weekdays    Weekdays
	DailyHours  float64
	HourlyValue *decimal.Decimal
	AdminID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StandardSchedule is the per-employee overlay. When one is active for a
// date it overrides the employee's Schedule for overtime calculation.
type StandardSchedule struct {
	ID         string
	EmployeeID string
	Entry      time.Time
	Exit       time.Time
	LunchOut   time.Time
	LunchIn    time.Time
	Active     bool
	StartDate  time.Time
	EndDate    *time.Time
	AdminID    string
	CreatedAt  time.Time
}

// Effective is the schedule actually applied to a punch after overlay
// resolution.
type Effective struct {
	Entry      time.Time
	LunchOut   time.Time
	LunchIn    time.Time
	Exit       time.Time
	DailyHours float64
	// Source records which layer won: "overlay", "schedule" or "default".
	Source string
}
