package site

import (
	"context"
	"time"
)

// CostService aggregates labor, meal, vehicle and other costs per site.
type CostService interface {
	SiteCosts(ctx context.Context, siteID string, start, end time.Time, adminID string) (CostBundle, error)

	// TenantDashboard returns entity counts plus the period cost roll-up
	// across all of the tenant's sites.
	TenantDashboard(ctx context.Context, start, end time.Time, adminID string) (Dashboard, error)
}
