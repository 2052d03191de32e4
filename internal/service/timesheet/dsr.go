package timesheet

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
)

// WeekStart selects which weekday opens the DSR week window.
type WeekStart int

const (
	WeekStartSunday WeekStart = iota
	WeekStartMonday
)

// ParseWeekStart maps the configuration value to a WeekStart.
func ParseWeekStart(s string) (WeekStart, error) {
	switch s {
	case "", "sunday":
		return WeekStartSunday, nil
	case "monday":
		return WeekStartMonday, nil
	}
	return WeekStartSunday, fmt.Errorf("invalid week start %q", s)
}

type weekWindow struct {
	Start time.Time
	End   time.Time
}

// partitionWeeks splits [start, end] into calendar weeks opening on the
// configured weekday. The first and last windows are clipped to the period so
// an absence outside the period can never cost a rest day inside it.
func partitionWeeks(start, end time.Time, ws WeekStart) []weekWindow {
	if end.Before(start) {
		return nil
	}
	offset := int(start.Weekday()) // days since Sunday
	if ws == WeekStartMonday {
		offset = (int(start.Weekday()) + 6) % 7
	}
	cur := start.AddDate(0, 0, -offset)

	var weeks []weekWindow
	for !cur.After(end) {
		w := weekWindow{Start: cur, End: cur.AddDate(0, 0, 6)}
		if w.Start.Before(start) {
			w.Start = start
		}
		if w.End.After(end) {
			w.End = end
		}
		weeks = append(weeks, w)
		cur = cur.AddDate(0, 0, 7)
	}
	return weeks
}

func sameOrBetween(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// ComputeDSR applies the strict weekly rest rule (Lei 605/49): the daily
// value is monthly salary / 30, each unjustified absence deducts one daily
// value, and any week containing at least one unjustified absence also
// forfeits that week's paid rest day.
//
// Justified absences, vacation and leave never cost a rest day; only punches
// of type "absence" count.
func ComputeDSR(salary decimal.Decimal, punches []timesheet.Punch, periodStart, periodEnd time.Time, ws WeekStart) timesheet.AbsenceReport {
	daily := salary.Div(decimal.NewFromInt(30)).Round(2)

	type absence struct {
		date time.Time
		days float64
	}
	var absences []absence
	totalAbsenceDays := 0.0
	for _, p := range punches {
		if p.Type != timesheet.TypeAbsence {
			continue
		}
		absences = append(absences, absence{date: p.Date, days: p.AbsenceDays})
		totalAbsenceDays += p.AbsenceDays
	}

	report := timesheet.AbsenceReport{
		DailyValue:  daily,
		AbsenceDays: totalAbsenceDays,
	}

	for _, w := range partitionWeeks(periodStart, periodEnd, ws) {
		detail := timesheet.WeekDetail{
			Start: w.Start.Format("2006-01-02"),
			End:   w.End.Format("2006-01-02"),
		}
		for _, a := range absences {
			if sameOrBetween(a.date, w.Start, w.End) {
				detail.AbsenceDays += a.days
			}
		}
		detail.LostRestDay = detail.AbsenceDays > 0
		if detail.LostRestDay {
			report.WeeksWithLoss++
		}
		report.Weeks = append(report.Weeks, detail)
	}

	report.DeductionForAbsences = daily.Mul(decimal.NewFromFloat(totalAbsenceDays)).Round(2)
	report.DeductionForDSR = daily.Mul(decimal.NewFromInt(int64(report.WeeksWithLoss))).Round(2)
	report.TotalDeduction = report.DeductionForAbsences.Add(report.DeductionForDSR).Round(2)
	return report
}
