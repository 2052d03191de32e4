package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWorkdaysInMonth(t *testing.T) {
	cases := []struct {
		anchor string
		want   int
	}{
		{"2025-07-15", 23},
		{"2025-02-01", 20},
		{"2025-08-01", 21},
		// December 2025 has 23 weekdays but Natal falls on a Thursday.
		{"2025-12-01", 22},
	}
	for _, c := range cases {
		got := WorkdaysInMonth(date(t, c.anchor))
		assert.Equal(t, c.want, got, "anchor %s", c.anchor)
	}
}

func TestWorkdaysBetween(t *testing.T) {
	// One full Sun-Sat week has five weekdays.
	assert.Equal(t, 5, WorkdaysBetween(date(t, "2025-07-06"), date(t, "2025-07-12")))
	// Saturday-only range has none.
	assert.Equal(t, 0, WorkdaysBetween(date(t, "2025-07-05"), date(t, "2025-07-05")))
	// Inverted range is empty.
	assert.Equal(t, 0, WorkdaysBetween(date(t, "2025-07-10"), date(t, "2025-07-09")))
}

func TestWorkdaysBetweenSkipsNationalHolidays(t *testing.T) {
	// Mon Dec 22 - Fri Dec 26, 2025: Natal (Thursday) is not a workday.
	assert.Equal(t, 4, WorkdaysBetween(date(t, "2025-12-22"), date(t, "2025-12-26")))
}

func TestHourlyRateAnchorsOnPeriodMonth(t *testing.T) {
	// July 2025: 23 weekdays x 8.8h = 202.4 monthly hours.
	rate := HourlyRate(decimal.NewFromInt(2106), date(t, "2025-07-01"), 8.8)
	assert.True(t, rate.Equal(decimal.RequireFromString("10.41")), "got %s", rate)
}

func TestHourlyRateZeroInputs(t *testing.T) {
	assert.True(t, HourlyRate(decimal.Zero, date(t, "2025-07-01"), 8.8).IsZero())
	assert.True(t, HourlyRate(decimal.NewFromInt(2106), date(t, "2025-07-01"), 0).IsZero())
}

func TestSuggestType(t *testing.T) {
	cases := []struct {
		day  string
		want string
	}{
		{"2025-07-15", "worked_normal"},   // Tuesday
		{"2025-07-05", "saturday_worked"}, // Saturday
		{"2025-07-06", "sunday_worked"},   // Sunday
		{"2025-09-07", "holiday_worked"},  // Independência (also a Sunday)
		{"2025-12-25", "holiday_worked"},  // Natal (Thursday)
	}
	for _, c := range cases {
		got := SuggestType(date(t, c.day))
		assert.Equal(t, c.want, string(got), "date %s", c.day)
	}
}

func TestIsNationalHoliday(t *testing.T) {
	assert.True(t, IsNationalHoliday(date(t, "2025-04-21")))
	assert.True(t, IsNationalHoliday(date(t, "2025-11-15")))
	assert.False(t, IsNationalHoliday(date(t, "2025-04-22")))
}
