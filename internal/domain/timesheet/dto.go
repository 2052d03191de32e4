package timesheet

import (
	"time"

	"github.com/estruturasvale/sige-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// PunchRequest is the write payload for a punch. Clock fields use "15:04";
// the date uses "2006-01-02".
type PunchRequest struct {
	EmployeeID  string   `json:"employee_id"`
	SiteID      *string  `json:"site_id,omitempty"`
	Date        string   `json:"date"`
	Type        string   `json:"type"`
	Entry       *string  `json:"entry,omitempty"`
	Exit        *string  `json:"exit,omitempty"`
	LunchOut    *string  `json:"lunch_out,omitempty"`
	LunchIn     *string  `json:"lunch_in,omitempty"`
	AbsenceDays *float64 `json:"absence_days,omitempty"`
	Notes       string   `json:"notes,omitempty"`
}

// Validate checks the request shape before any business rule runs.
func (r PunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.Type != "" && !PunchType(r.Type).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown punch type"})
	}
	for field, v := range map[string]*string{
		"entry": r.Entry, "exit": r.Exit, "lunch_out": r.LunchOut, "lunch_in": r.LunchIn,
	} {
		if v == nil {
			continue
		}
		if _, ok := validator.IsValidClockTime(*v); !ok {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must be HH:MM"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name,omitempty"`
	SiteID            *string `json:"site_id,omitempty"`
	Date              string  `json:"date"`
	Type              string  `json:"type"`
	Entry             *string `json:"entry,omitempty"`
	Exit              *string `json:"exit,omitempty"`
	LunchOut          *string `json:"lunch_out,omitempty"`
	LunchIn           *string `json:"lunch_in,omitempty"`
	HoursWorked       float64 `json:"hours_worked"`
	OvertimeHours     float64 `json:"overtime_hours"`
	OvertimePercent   int     `json:"overtime_percent"`
	EarlyEntryMinutes int     `json:"early_entry_minutes"`
	LateExitMinutes   int     `json:"late_exit_minutes"`
	LateEntryMinutes  int     `json:"late_entry_minutes"`
	EarlyExitMinutes  int     `json:"early_exit_minutes"`
	TotalLateMinutes  int     `json:"total_late_minutes"`
	Notes             string  `json:"notes,omitempty"`
}

// PunchFilter selects punches for period listings; dates are inclusive.
type PunchFilter struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
}

// Warning records a punch an aggregator skipped and why. Bundles carry the
// list instead of failing partially.
type Warning struct {
	PunchID string `json:"punch_id"`
	Date    string `json:"date,omitempty"`
	Reason  string `json:"reason"`
}

// WeekDetail is one Sun-Sat (or Mon-Sun) window of the DSR walk.
type WeekDetail struct {
	Start       string  `json:"start"`
	End         string  `json:"end"`
	AbsenceDays float64 `json:"absence_days"`
	LostRestDay bool    `json:"lost_rest_day"`
}

// AbsenceReport is the strict weekly DSR computation (Lei 605/49).
type AbsenceReport struct {
	DailyValue           decimal.Decimal `json:"daily_value"`
	AbsenceDays          float64         `json:"absence_days"`
	WeeksWithLoss        int             `json:"weeks_with_loss"`
	DeductionForAbsences decimal.Decimal `json:"deduction_for_absences"`
	DeductionForDSR      decimal.Decimal `json:"deduction_for_dsr"`
	TotalDeduction       decimal.Decimal `json:"total_deduction"`
	Weeks                []WeekDetail    `json:"weeks,omitempty"`
}

// KPIBundle is the per-employee KPI record for a period.
type KPIBundle struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	PeriodStart  string `json:"period_start"`
	PeriodEnd    string `json:"period_end"`

	HoursWorked       float64 `json:"hours_worked"`
	OvertimeHours     float64 `json:"overtime_hours"`
	Absences          float64 `json:"absences"`
	JustifiedAbsences int     `json:"justified_absences"`
	LatenessCount     int     `json:"lateness_count"`
	TotalLateMinutes  int     `json:"total_late_minutes"`
	LostHours         float64 `json:"lost_hours"`
	WorkdaysInPeriod  int     `json:"workdays_in_period"`
	WorkedDays        int     `json:"worked_days"`
	ExpectedHours     float64 `json:"expected_hours"`
	AbsenteeismPct    float64 `json:"absenteeism_pct"`
	PunctualityPct    float64 `json:"punctuality_pct"`
	ProductivityPct   float64 `json:"productivity_pct"`

	HourlyRate    decimal.Decimal `json:"hourly_rate"`
	OvertimeValue decimal.Decimal `json:"overtime_value"`
	AbsenceValue  decimal.Decimal `json:"absence_value"`
	LaborCost     decimal.Decimal `json:"labor_cost"`
	MealCost      decimal.Decimal `json:"meal_cost"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	OtherCosts    decimal.Decimal `json:"other_costs"`
	TotalCost     decimal.Decimal `json:"total_cost"`

	DSR      AbsenceReport `json:"dsr"`
	Warnings []Warning     `json:"warnings,omitempty"`
}

// KPITotals aggregates the monetary columns over a KPI listing.
type KPITotals struct {
	HoursWorked   float64         `json:"hours_worked"`
	OvertimeHours float64         `json:"overtime_hours"`
	LaborCost     decimal.Decimal `json:"labor_cost"`
	MealCost      decimal.Decimal `json:"meal_cost"`
	TransportCost decimal.Decimal `json:"transport_cost"`
	OtherCosts    decimal.Decimal `json:"other_costs"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

type KPIListResponse struct {
	Employees []KPIBundle `json:"employees"`
	Totals    KPITotals   `json:"totals"`
}
