package timesheet

import (
	"time"

	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
)

// fixedHolidays are the Brazilian national fixed-date holidays, month/day.
var fixedHolidays = [][2]int{
	{1, 1},   // Confraternização Universal
	{4, 21},  // Tiradentes
	{5, 1},   // Dia do Trabalhador
	{9, 7},   // Independência
	{10, 12}, // Nossa Senhora Aparecida
	{11, 2},  // Finados
	{11, 15}, // Proclamação da República
	{12, 25}, // Natal
}

// IsNationalHoliday reports whether d falls on a fixed national holiday.
// Mobile holidays (Carnaval, Corpus Christi) are entered as holiday_worked
// punches by the site manager rather than derived here.
func IsNationalHoliday(d time.Time) bool {
	for _, h := range fixedHolidays {
		if int(d.Month()) == h[0] && d.Day() == h[1] {
			return true
		}
	}
	return false
}

// SuggestType classifies a date when a punch arrives without an explicit
// type: holidays and weekends get their dedicated worked types.
func SuggestType(d time.Time) timesheet.PunchType {
	switch {
	case IsNationalHoliday(d):
		return timesheet.TypeHolidayWorked
	case d.Weekday() == time.Saturday:
		return timesheet.TypeSaturdayWorked
	case d.Weekday() == time.Sunday:
		return timesheet.TypeSundayWorked
	default:
		return timesheet.TypeWorkedNormal
	}
}

// WorkdaysBetween counts the Mon-Fri dates in [start, end], excluding fixed
// national holidays so a holiday weekday never inflates expected hours.
func WorkdaysBetween(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if IsNationalHoliday(d) {
			continue
		}
		count++
	}
	return count
}

// WorkdaysInMonth counts the working days of the calendar month containing
// anchor. This is the divisor base of the hourly rate; the legacy 220 h/month
// shortcut is deliberately not used.
func WorkdaysInMonth(anchor time.Time) int {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	last := first.AddDate(0, 1, -1)
	return WorkdaysBetween(first, last)
}
