package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	Code          string
	Name          string
	CPF           string
	Email         *string
	MonthlySalary decimal.Decimal
	HireDate      time.Time
	Active        bool
	ScheduleID    *string
	AdminID       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
