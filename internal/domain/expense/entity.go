package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

type MealRecord struct {
	ID           string
	EmployeeID   string
	SiteID       *string
	RestaurantID *string
	Date         time.Time
	Type         MealType
	Value        decimal.Decimal
	AdminID      string
	CreatedAt    time.Time
}

type VehicleCostType string

const (
	VehicleFuel        VehicleCostType = "fuel"
	VehicleMaintenance VehicleCostType = "maintenance"
	VehicleWash        VehicleCostType = "wash"
	VehicleInsurance   VehicleCostType = "insurance"
	VehicleToll        VehicleCostType = "toll"
	VehicleOther       VehicleCostType = "other"
)

type VehicleExpense struct {
	ID        string
	VehicleID string
	SiteID    *string
	Date      time.Time
	Value     decimal.Decimal
	CostType  VehicleCostType
	AdminID   string
	CreatedAt time.Time
}

// KPIAssociation maps an OtherCost row onto the KPI column it feeds.
type KPIAssociation string

const (
	AssocFoodCost      KPIAssociation = "food_cost"
	AssocTransportCost KPIAssociation = "transport_cost"
	AssocOtherCosts    KPIAssociation = "other_costs"
	AssocBenefit       KPIAssociation = "benefit"
	AssocDeduction     KPIAssociation = "deduction"
)

// OtherCost covers transport vouchers, EPIs, benefits and deductions. Value
// may be negative for deductions.
type OtherCost struct {
	ID             string
	EmployeeID     *string
	SiteID         *string
	Date           time.Time
	Type           string
	Category       string
	Value          decimal.Decimal
	KPIAssociation KPIAssociation
	AdminID        string
	CreatedAt      time.Time
}
