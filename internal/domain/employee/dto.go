package employee

import (
	"github.com/estruturasvale/sige-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest is the write payload for a new employee. The hire
// date uses "2006-01-02"; monthly_salary is a decimal string.
type CreateEmployeeRequest struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	CPF           string  `json:"cpf"`
	Email         *string `json:"email,omitempty"`
	MonthlySalary string  `json:"monthly_salary"`
	HireDate      string  `json:"hire_date"`
	ScheduleID    *string `json:"schedule_id,omitempty"`
}

// Validate checks the request shape; the CPF checksum and salary sign are
// business rules enforced by the service.
func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.CPF) {
		errs = append(errs, validator.ValidationError{Field: "cpf", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if validator.IsEmpty(r.MonthlySalary) {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	CPF           string  `json:"cpf"`
	Email         *string `json:"email,omitempty"`
	MonthlySalary string  `json:"monthly_salary"`
	HireDate      string  `json:"hire_date"`
	Active        bool    `json:"active"`
	ScheduleID    *string `json:"schedule_id,omitempty"`
}
