package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
)

// KPIInputs carries everything BuildKPIs needs, already loaded and filtered
// by the service layer. Punches must be normalized; invalid ones belong in
// Warnings, not here.
type KPIInputs struct {
	EmployeeID    string
	EmployeeCode  string
	EmployeeName  string
	MonthlySalary decimal.Decimal

	PeriodStart time.Time
	PeriodEnd   time.Time
	DailyHours  float64
	HourlyRate  decimal.Decimal

	Punches  []timesheet.Punch
	DSR      timesheet.AbsenceReport
	MealCost decimal.Decimal
	// TransportCost and OtherCosts come from the employee's cost
	// associations in the period.
	TransportCost decimal.Decimal
	OtherCosts    decimal.Decimal

	Warnings []timesheet.Warning
}

// overtimeMultiplier maps the overtime percent to the pay multiplier.
func overtimeMultiplier(percent int) decimal.Decimal {
	if percent >= 100 {
		return decimal.NewFromFloat(2.0)
	}
	return decimal.NewFromFloat(1.5)
}

// BuildKPIs aggregates a period of normalized punches into the employee KPI
// bundle. It is a pure computation; the service resolves schedules, rates and
// expenses before calling it.
func BuildKPIs(in KPIInputs) timesheet.KPIBundle {
	b := timesheet.KPIBundle{
		EmployeeID:   in.EmployeeID,
		EmployeeCode: in.EmployeeCode,
		EmployeeName: in.EmployeeName,
		PeriodStart:  in.PeriodStart.Format("2006-01-02"),
		PeriodEnd:    in.PeriodEnd.Format("2006-01-02"),
		HourlyRate:   in.HourlyRate,
		DSR:          in.DSR,
		Warnings:     in.Warnings,
	}

	overtimeValue := decimal.Zero
	for _, p := range in.Punches {
		if p.Type.CountsHoursWorked() {
			b.HoursWorked += p.HoursWorked
		}
		b.OvertimeHours += p.OvertimeHours
		b.TotalLateMinutes += p.TotalLateMinutes
		if p.TotalLateMinutes > 0 {
			b.LatenessCount++
		}
		if p.Type.CountsAsWorkedDay() {
			b.WorkedDays++
		}
		switch p.Type {
		case timesheet.TypeAbsence:
			b.Absences += p.AbsenceDays
		case timesheet.TypeJustifiedAbs:
			b.JustifiedAbsences++
		}
		if p.OvertimeHours > 0 {
			overtimeValue = overtimeValue.Add(
				decimal.NewFromFloat(p.OvertimeHours).
					Mul(in.HourlyRate).
					Mul(overtimeMultiplier(p.OvertimePercent)))
		}
	}
	b.HoursWorked = round2(b.HoursWorked)
	b.OvertimeHours = round2(b.OvertimeHours)

	b.WorkdaysInPeriod = WorkdaysBetween(in.PeriodStart, in.PeriodEnd)
	b.ExpectedHours = round2(float64(b.WorkdaysInPeriod) * in.DailyHours)
	b.LostHours = round2(b.Absences*in.DailyHours + float64(b.TotalLateMinutes)/60.0)

	if b.WorkdaysInPeriod > 0 {
		b.AbsenteeismPct = round1(b.Absences / float64(b.WorkdaysInPeriod) * 100)
	}
	b.PunctualityPct = 100
	if b.WorkedDays > 0 {
		b.PunctualityPct = round1(float64(b.WorkedDays-b.LatenessCount) / float64(b.WorkedDays) * 100)
	}
	if b.ExpectedHours > 0 {
		b.ProductivityPct = round1(b.HoursWorked / b.ExpectedHours * 100)
	}

	b.OvertimeValue = overtimeValue.Round(2)
	b.AbsenceValue = in.DSR.TotalDeduction

	justifiedCost := decimal.NewFromInt(int64(b.JustifiedAbsences)).
		Mul(decimal.NewFromFloat(in.DailyHours)).
		Mul(in.HourlyRate)
	latenessDeduction := decimal.NewFromFloat(float64(b.TotalLateMinutes) / 60.0).
		Mul(in.HourlyRate)

	b.LaborCost = in.MonthlySalary.
		Add(b.OvertimeValue).
		Add(justifiedCost).
		Sub(b.AbsenceValue).
		Sub(latenessDeduction).
		Round(2)

	b.MealCost = in.MealCost.Round(2)
	b.TransportCost = in.TransportCost.Round(2)
	b.OtherCosts = in.OtherCosts.Round(2)
	b.TotalCost = b.LaborCost.
		Add(b.MealCost).
		Add(b.TransportCost).
		Add(b.OtherCosts).
		Round(2)
	return b
}
