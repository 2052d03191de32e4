package site

import (
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
	"github.com/shopspring/decimal"
)

// CostBundle is the per-site cost roll-up for a period. Labor is attributed
// per punch to the site recorded on the punch row.
type CostBundle struct {
	SiteID      string `json:"site_id"`
	SiteCode    string `json:"site_code"`
	SiteName    string `json:"site_name"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`

	Labor    decimal.Decimal `json:"labor"`
	Meals    decimal.Decimal `json:"meals"`
	Vehicles decimal.Decimal `json:"vehicles"`
	Other    decimal.Decimal `json:"other"`
	Total    decimal.Decimal `json:"total"`

	TotalWorkersOnSite int `json:"total_workers_on_site"`
	TotalWorkdays      int `json:"total_workdays"`

	Warnings []timesheet.Warning `json:"warnings,omitempty"`
}

// Dashboard is the tenant-level overview: entity counts plus the cost
// roll-up across every active site.
type Dashboard struct {
	ActiveEmployees int        `json:"active_employees"`
	ActiveSites     int        `json:"active_sites"`
	ActiveVehicles  int        `json:"active_vehicles"`
	PeriodCosts     CostBundle `json:"period_costs"`
}
