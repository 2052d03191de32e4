package response

import (
	"errors"
	"net/http"

	"github.com/estruturasvale/sige-backend-go/internal/domain/auth"
	"github.com/estruturasvale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasvale/sige-backend-go/internal/domain/site"
	"github.com/estruturasvale/sige-backend-go/internal/domain/tenant"
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
	"github.com/estruturasvale/sige-backend-go/internal/domain/user"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is inactive")

	// Role errors
	case errors.Is(err, user.ErrAdminAccessRequired),
		errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")

	// Tenant resolution errors
	case errors.Is(err, tenant.ErrNoTenantContext):
		Forbidden(w, "No tenant context could be resolved")
	case errors.Is(err, tenant.ErrScopeViolation):
		Forbidden(w, "Resource belongs to a different tenant")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrCPFExists):
		Conflict(w, "CPF already registered")
	case errors.Is(err, employee.ErrInvalidCPF):
		BadRequest(w, "Invalid CPF", nil)
	case errors.Is(err, employee.ErrNegativeSalary):
		BadRequest(w, "Monthly salary must be non-negative", nil)
	case errors.Is(err, employee.ErrHasPunchesInPeriod):
		Conflict(w, "Employee has punch records and cannot be deleted")
	case errors.Is(err, employee.ErrScheduleTenantMismatch):
		Forbidden(w, "Schedule belongs to a different tenant")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrPunchNotFound):
		NotFound(w, "Punch record not found")
	case errors.Is(err, timesheet.ErrDuplicatePunch):
		Conflict(w, "A punch already exists for this employee and date")
	case errors.Is(err, timesheet.ErrSiteTenantMismatch):
		Forbidden(w, "Site belongs to a different tenant")
	case timesheet.IsValidationError(err):
		BadRequest(w, err.Error(), nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "Schedule not found")
	case errors.Is(err, schedule.ErrNoScheduleForTenant):
		InternalServerError(w, "No schedule available for tenant")
	case errors.Is(err, schedule.ErrOverlappingStandardSchedules):
		InternalServerError(w, "Overlapping active standard schedules")
	case errors.Is(err, schedule.ErrInvalidClockOrder):
		BadRequest(w, err.Error(), nil)

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Construction site not found")
	case errors.Is(err, site.ErrSiteCodeExists):
		Conflict(w, "Site code already exists")
	case errors.Is(err, site.ErrInvalidPeriod):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
