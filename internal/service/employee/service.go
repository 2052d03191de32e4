package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/estruturasvale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasvale/sige-backend-go/internal/domain/schedule"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/validator"
)

type EmployeeService struct {
	employeeRepo employee.EmployeeRepository
	scheduleRepo schedule.ScheduleRepository
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.ScheduleRepository,
) *EmployeeService {
	return &EmployeeService{
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
	}
}

// Create implements employee.EmployeeService. The CPF is stored as digits
// only; a request whose CPF fails the mod-11 checksum never reaches the
// database.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest, adminID string) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	cpf := validator.NormalizeCPF(req.CPF)
	if !validator.IsValidCPF(cpf) {
		return employee.EmployeeResponse{}, employee.ErrInvalidCPF
	}

	salary, err := decimal.NewFromString(req.MonthlySalary)
	if err != nil {
		return employee.EmployeeResponse{}, validator.ValidationErrors{
			{Field: "monthly_salary", Message: "must be a decimal number"},
		}
	}
	if salary.IsNegative() {
		return employee.EmployeeResponse{}, employee.ErrNegativeSalary
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	if req.ScheduleID != nil {
		if _, err := s.scheduleRepo.GetByID(ctx, *req.ScheduleID, adminID); err != nil {
			if errors.Is(err, schedule.ErrScheduleNotFound) {
				return employee.EmployeeResponse{}, employee.ErrScheduleTenantMismatch
			}
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check schedule: %w", err)
		}
	}

	emp := employee.Employee{
		ID:            uuid.New().String(),
		Code:          req.Code,
		Name:          req.Name,
		CPF:           cpf,
		Email:         req.Email,
		MonthlySalary: salary,
		HireDate:      hireDate,
		Active:        true,
		ScheduleID:    req.ScheduleID,
		AdminID:       adminID,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toEmployeeResponse(created), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeService) List(ctx context.Context, adminID string, activeOnly bool) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, adminID, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toEmployeeResponse(emp))
	}
	return responses, nil
}

// Delete implements employee.EmployeeService. Employees with punch history
// are kept: deleting them would silently change past period costs.
func (s *EmployeeService) Delete(ctx context.Context, id string, adminID string) error {
	if _, err := s.employeeRepo.GetByID(ctx, id, adminID); err != nil {
		return err
	}

	cutoff := time.Now().Format("2006-01-02")
	hasPunches, err := s.employeeRepo.HasPunchesBefore(ctx, id, cutoff, adminID)
	if err != nil {
		return fmt.Errorf("failed to check punch history: %w", err)
	}
	if hasPunches {
		return employee.ErrHasPunchesInPeriod
	}

	return s.employeeRepo.Delete(ctx, id, adminID)
}

func toEmployeeResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:            emp.ID,
		Code:          emp.Code,
		Name:          emp.Name,
		CPF:           emp.CPF,
		Email:         emp.Email,
		MonthlySalary: emp.MonthlySalary.StringFixed(2),
		HireDate:      emp.HireDate.Format("2006-01-02"),
		Active:        emp.Active,
		ScheduleID:    emp.ScheduleID,
	}
}
