package site

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPlanned   Status = "planned"
	StatusActive    Status = "active"
	StatusPaused    Status = "paused"
	StatusFinished  Status = "finished"
	StatusCancelled Status = "cancelled"
)

// Site is a construction site (obra). Client-portal fields live on the web
// product and are not modeled here.
type Site struct {
	ID              string
	Name            string
	Code            string
	Address         string
	StartDate       time.Time
	ExpectedEndDate *time.Time
	Budget          *decimal.Decimal
	ContractValue   *decimal.Decimal
	AreaM2          *float64
	Status          Status
	OwnerEmployeeID *string
	AdminID         string
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
