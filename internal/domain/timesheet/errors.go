package timesheet

import "errors"

// Validation errors are rejected at the boundary and never persisted.
// Aggregators catch them per punch and report the punch as skipped.
var (
	ErrMissingClockTimes      = errors.New("entry and exit are required for a worked punch")
	ErrClockTimesOnAbsence    = errors.New("absence and off-day punches must not carry clock times")
	ErrIncompleteLunch        = errors.New("lunch_out and lunch_in must both be present or both absent")
	ErrInvalidAbsenceFraction = errors.New("absence fraction must be 0.0 or 1.0")
	ErrUnknownPunchType       = errors.New("unknown punch type")

	ErrPunchNotFound      = errors.New("punch record not found")
	ErrDuplicatePunch     = errors.New("a punch already exists for this employee and date")
	ErrSiteTenantMismatch = errors.New("punch site belongs to a different tenant than the employee")
)

// IsValidationError reports whether err is a per-punch validation failure
// that aggregators may skip, as opposed to a scope or invariant violation
// that must fail the whole request.
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrMissingClockTimes),
		errors.Is(err, ErrClockTimesOnAbsence),
		errors.Is(err, ErrIncompleteLunch),
		errors.Is(err, ErrInvalidAbsenceFraction),
		errors.Is(err, ErrUnknownPunchType):
		return true
	}
	return false
}
