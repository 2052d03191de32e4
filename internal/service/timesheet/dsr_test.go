package timesheet

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
)

func absenceOn(t *testing.T, ymd string) timesheet.Punch {
	t.Helper()
	return timesheet.Punch{
		Type:        timesheet.TypeAbsence,
		Date:        date(t, ymd),
		AbsenceDays: 1.0,
	}
}

func TestComputeDSRStrictWeeklyRule(t *testing.T) {
	// Salary 2100: daily value 70.00. Two absences in different weeks each
	// forfeit that week's rest day: 2x70 for the absences plus 2x70 for the
	// lost rest days.
	punches := []timesheet.Punch{
		absenceOn(t, "2025-07-10"),
		absenceOn(t, "2025-07-24"),
	}

	report := ComputeDSR(decimal.NewFromInt(2100), punches, date(t, "2025-07-01"), date(t, "2025-07-31"), WeekStartSunday)

	assert.True(t, report.DailyValue.Equal(decimal.RequireFromString("70.00")), "daily %s", report.DailyValue)
	assert.Equal(t, 2.0, report.AbsenceDays)
	assert.Equal(t, 2, report.WeeksWithLoss)
	assert.True(t, report.DeductionForAbsences.Equal(decimal.RequireFromString("140.00")))
	assert.True(t, report.DeductionForDSR.Equal(decimal.RequireFromString("140.00")))
	assert.True(t, report.TotalDeduction.Equal(decimal.RequireFromString("280.00")))
}

func TestComputeDSRSameWeekAbsencesLoseOneRestDay(t *testing.T) {
	// Monday and Thursday of the same Sun-Sat week: two daily values for the
	// absences, a single one for the rest day.
	punches := []timesheet.Punch{
		absenceOn(t, "2025-07-07"),
		absenceOn(t, "2025-07-10"),
	}

	report := ComputeDSR(decimal.NewFromInt(2100), punches, date(t, "2025-07-01"), date(t, "2025-07-31"), WeekStartSunday)

	assert.Equal(t, 1, report.WeeksWithLoss)
	assert.True(t, report.TotalDeduction.Equal(decimal.RequireFromString("210.00")))
}

func TestComputeDSRJustifiedAbsenceCostsNothing(t *testing.T) {
	punches := []timesheet.Punch{
		{Type: timesheet.TypeJustifiedAbs, Date: date(t, "2025-07-10")},
		{Type: timesheet.TypeVacation, Date: date(t, "2025-07-11")},
	}

	report := ComputeDSR(decimal.NewFromInt(2100), punches, date(t, "2025-07-01"), date(t, "2025-07-31"), WeekStartSunday)

	assert.Zero(t, report.AbsenceDays)
	assert.Zero(t, report.WeeksWithLoss)
	assert.True(t, report.TotalDeduction.IsZero())
}

func TestPartitionWeeksCoversEveryDateOnce(t *testing.T) {
	start := date(t, "2025-07-01")
	end := date(t, "2025-07-31")
	weeks := partitionWeeks(start, end, WeekStartSunday)
	require.Len(t, weeks, 5)

	// Windows are clipped to the period and contiguous.
	assert.Equal(t, start, weeks[0].Start)
	assert.Equal(t, end, weeks[len(weeks)-1].End)
	for i := 1; i < len(weeks); i++ {
		assert.Equal(t, weeks[i-1].End.AddDate(0, 0, 1), weeks[i].Start)
	}

	covered := 0
	for _, w := range weeks {
		covered += int(w.End.Sub(w.Start).Hours()/24) + 1
	}
	assert.Equal(t, 31, covered)
}

func TestPartitionWeeksMondayStart(t *testing.T) {
	// 2025-07-01 is a Tuesday; a Monday-start partition opens the first
	// clipped window on the 1st and the second full week on Monday the 7th.
	weeks := partitionWeeks(date(t, "2025-07-01"), date(t, "2025-07-31"), WeekStartMonday)
	require.NotEmpty(t, weeks)
	assert.Equal(t, date(t, "2025-07-01"), weeks[0].Start)
	assert.Equal(t, date(t, "2025-07-06"), weeks[0].End)
	assert.Equal(t, date(t, "2025-07-07"), weeks[1].Start)
}

func TestParseWeekStart(t *testing.T) {
	ws, err := ParseWeekStart("sunday")
	require.NoError(t, err)
	assert.Equal(t, WeekStartSunday, ws)

	ws, err = ParseWeekStart("monday")
	require.NoError(t, err)
	assert.Equal(t, WeekStartMonday, ws)

	ws, err = ParseWeekStart("")
	require.NoError(t, err)
	assert.Equal(t, WeekStartSunday, ws)

	_, err = ParseWeekStart("tuesday")
	assert.Error(t, err)
}
