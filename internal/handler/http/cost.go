package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estruturasvale/sige-backend-go/internal/domain/site"
	"github.com/estruturasvale/sige-backend-go/internal/domain/tenant"
	"github.com/estruturasvale/sige-backend-go/internal/handler/http/response"
)

type CostHandler interface {
	SiteCosts(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type CostHandlerImpl struct {
	costService    site.CostService
	tenantResolver tenant.Resolver
}

func NewCostHandler(costService site.CostService, tenantResolver tenant.Resolver) CostHandler {
	return &CostHandlerImpl{
		costService:    costService,
		tenantResolver: tenantResolver,
	}
}

// SiteCosts implements CostHandler.
func (h *CostHandlerImpl) SiteCosts(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	siteID := chi.URLParam(r, "id")

	start, end, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	bundle, err := h.costService.SiteCosts(r.Context(), siteID, start, end, adminID)
	if err != nil {
		slog.Error("SiteCosts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, bundle)
}

// Dashboard implements CostHandler.
func (h *CostHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	start, end, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	dashboard, err := h.costService.TenantDashboard(r.Context(), start, end, adminID)
	if err != nil {
		slog.Error("Dashboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, dashboard)
}
