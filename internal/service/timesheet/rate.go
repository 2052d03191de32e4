package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

// HourlyRate computes the employee's hourly rate for a period: monthly salary
// divided by the working hours of the anchor month (the month of the period
// start), where working hours = Mon-Fri days x the schedule's daily hours.
func HourlyRate(monthlySalary decimal.Decimal, periodStart time.Time, dailyHours float64) decimal.Decimal {
	workdays := WorkdaysInMonth(periodStart)
	monthlyHours := decimal.NewFromInt(int64(workdays)).Mul(decimal.NewFromFloat(dailyHours))
	if monthlyHours.IsZero() || monthlySalary.IsZero() {
		return decimal.Zero
	}
	return monthlySalary.Div(monthlyHours).Round(2)
}
