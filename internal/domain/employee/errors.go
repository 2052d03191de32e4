package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrEmployeeCodeExists     = errors.New("employee code already exists")
	ErrCPFExists              = errors.New("CPF already registered")
	ErrInvalidCPF             = errors.New("CPF failed checksum validation")
	ErrNegativeSalary         = errors.New("monthly salary must be non-negative")
	ErrHasPunchesInPeriod     = errors.New("employee has punch records in a closed period")
	ErrScheduleTenantMismatch = errors.New("schedule belongs to a different tenant")
)
