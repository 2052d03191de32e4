package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estruturasvale/sige-backend-go/internal/domain/tenant"
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
	"github.com/estruturasvale/sige-backend-go/internal/handler/http/response"
)

type KPIHandler interface {
	EmployeeKPIs(w http.ResponseWriter, r *http.Request)
	ListKPIs(w http.ResponseWriter, r *http.Request)
}

type KPIHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	tenantResolver   tenant.Resolver
}

func NewKPIHandler(timesheetService timesheet.TimesheetService, tenantResolver tenant.Resolver) KPIHandler {
	return &KPIHandlerImpl{
		timesheetService: timesheetService,
		tenantResolver:   tenantResolver,
	}
}

// EmployeeKPIs implements KPIHandler.
func (h *KPIHandlerImpl) EmployeeKPIs(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "id")

	start, end, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	bundle, err := h.timesheetService.ComputeKPIs(r.Context(), employeeID, start, end, adminID)
	if err != nil {
		slog.Error("EmployeeKPIs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, bundle)
}

// ListKPIs implements KPIHandler.
func (h *KPIHandlerImpl) ListKPIs(w http.ResponseWriter, r *http.Request) {
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

	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	list, err := h.timesheetService.ComputeKPIsAll(r.Context(), start, end, adminID, includeInactive)
	if err != nil {
		slog.Error("ListKPIs service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}
