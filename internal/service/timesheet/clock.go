package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// round2 rounds to 2 decimal places, half up.
func round2(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

// round1 rounds to 1 decimal place, used for percentage display values.
func round1(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(1).Float64()
	return f
}

// minutesOfDay collapses a clock value to minutes since midnight. Dates on
// clock fields are meaningless; only wall-clock time matters.
func minutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// spanMinutes returns the minutes from a to b, treating b as next-day when it
// reads earlier than a.
func spanMinutes(a, b time.Time) int {
	d := minutesOfDay(b) - minutesOfDay(a)
	if d < 0 {
		d += 24 * 60
	}
	return d
}
