package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
)

func standardSchedule(t *testing.T) schedule.Effective {
	t.Helper()
	return schedule.Effective{
		Entry:      *clockPtr(t, "07:12"),
		LunchOut:   *clockPtr(t, "12:00"),
		LunchIn:    *clockPtr(t, "13:00"),
		Exit:       *clockPtr(t, "17:00"),
		DailyHours: 8.8,
		Source:     "default",
	}
}

func TestApplyOvertimeEarlyEntryAndLateExit(t *testing.T) {
	p := timesheet.Punch{
		Type:     timesheet.TypeWorkedNormal,
		Entry:    clockPtr(t, "07:05"),
		LunchOut: clockPtr(t, "12:00"),
		LunchIn:  clockPtr(t, "13:00"),
		Exit:     clockPtr(t, "17:50"),
	}
	require.NoError(t, Normalize(&p))

	ApplyOvertime(&p, standardSchedule(t))

	assert.Equal(t, 9.75, p.HoursWorked)
	assert.Equal(t, 7, p.EarlyEntryMinutes)
	assert.Equal(t, 50, p.LateExitMinutes)
	assert.Equal(t, 0.95, p.OvertimeHours)
	assert.Equal(t, 50, p.OvertimePercent)
	assert.Zero(t, p.LateEntryMinutes)
	assert.Zero(t, p.EarlyExitMinutes)
	assert.Zero(t, p.TotalLateMinutes)
}

func TestApplyOvertimeSaturdayAllHours(t *testing.T) {
	p := timesheet.Punch{
		Type:  timesheet.TypeSaturdayWorked,
		Entry: clockPtr(t, "08:00"),
		Exit:  clockPtr(t, "12:00"),
	}
	require.NoError(t, Normalize(&p))

	ApplyOvertime(&p, standardSchedule(t))

	assert.Equal(t, 4.0, p.HoursWorked)
	assert.Equal(t, 4.0, p.OvertimeHours)
	assert.Equal(t, 50, p.OvertimePercent)
	assert.Zero(t, p.EarlyEntryMinutes)
	assert.Zero(t, p.LateExitMinutes)
	assert.Zero(t, p.TotalLateMinutes)
}

func TestApplyOvertimeSundayDoubles(t *testing.T) {
	p := timesheet.Punch{
		Type:  timesheet.TypeSundayWorked,
		Entry: clockPtr(t, "07:00"),
		Exit:  clockPtr(t, "13:00"),
	}
	require.NoError(t, Normalize(&p))

	ApplyOvertime(&p, standardSchedule(t))

	assert.Equal(t, 6.0, p.OvertimeHours)
	assert.Equal(t, 100, p.OvertimePercent)
}

func TestApplyOvertimeLatenessOnly(t *testing.T) {
	p := timesheet.Punch{
		Type:     timesheet.TypeWorkedNormal,
		Entry:    clockPtr(t, "07:30"),
		LunchOut: clockPtr(t, "12:00"),
		LunchIn:  clockPtr(t, "13:00"),
		Exit:     clockPtr(t, "16:40"),
	}
	require.NoError(t, Normalize(&p))

	ApplyOvertime(&p, standardSchedule(t))

	assert.Zero(t, p.OvertimeHours)
	assert.Equal(t, 18, p.LateEntryMinutes)
	assert.Equal(t, 20, p.EarlyExitMinutes)
	assert.Equal(t, 38, p.TotalLateMinutes)
}

func TestApplyOvertimeHalfDayStaysZero(t *testing.T) {
	p := timesheet.Punch{
		Type:  timesheet.TypeHalfDay,
		Entry: clockPtr(t, "07:12"),
		Exit:  clockPtr(t, "12:00"),
	}
	require.NoError(t, Normalize(&p))

	ApplyOvertime(&p, standardSchedule(t))

	assert.Zero(t, p.OvertimeHours)
	assert.Zero(t, p.OvertimePercent)
	assert.Zero(t, p.TotalLateMinutes)
}

func TestApplyOvertimeWorkedSameAsWorkedNormal(t *testing.T) {
	mk := func(typ timesheet.PunchType) timesheet.Punch {
		p := timesheet.Punch{
			Type:     typ,
			Entry:    clockPtr(t, "07:00"),
			LunchOut: clockPtr(t, "12:00"),
			LunchIn:  clockPtr(t, "13:00"),
			Exit:     clockPtr(t, "17:30"),
		}
		require.NoError(t, Normalize(&p))
		ApplyOvertime(&p, standardSchedule(t))
		return p
	}

	worked := mk(timesheet.TypeWorked)
	normal := mk(timesheet.TypeWorkedNormal)

	assert.Equal(t, normal.OvertimeHours, worked.OvertimeHours)
	assert.Equal(t, normal.EarlyEntryMinutes, worked.EarlyEntryMinutes)
	assert.Equal(t, normal.LateExitMinutes, worked.LateExitMinutes)
}
