package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estruturasvale/sige-backend-go/internal/domain/tenant"
	"github.com/estruturasvale/sige-backend-go/internal/domain/timesheet"
	"github.com/estruturasvale/sige-backend-go/internal/handler/http/response"
	"github.com/estruturasvale/sige-backend-go/internal/pkg/validator"
)

type TimesheetHandler interface {
	CreatePunch(w http.ResponseWriter, r *http.Request)
	UpdatePunch(w http.ResponseWriter, r *http.Request)
	DeletePunch(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
}

type TimesheetHandlerImpl struct {
	timesheetService timesheet.TimesheetService
	tenantResolver   tenant.Resolver
}

func NewTimesheetHandler(timesheetService timesheet.TimesheetService, tenantResolver tenant.Resolver) TimesheetHandler {
	return &TimesheetHandlerImpl{
		timesheetService: timesheetService,
		tenantResolver:   tenantResolver,
	}
}

// CreatePunch implements TimesheetHandler.
func (h *TimesheetHandlerImpl) CreatePunch(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var punchReq timesheet.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&punchReq); err != nil {
		slog.Error("CreatePunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punchResp, err := h.timesheetService.StorePunch(r.Context(), punchReq, adminID)
	if err != nil {
		slog.Error("CreatePunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch created", punchResp)
}

// UpdatePunch implements TimesheetHandler.
func (h *TimesheetHandlerImpl) UpdatePunch(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	var punchReq timesheet.PunchRequest
	if err := json.NewDecoder(r.Body).Decode(&punchReq); err != nil {
		slog.Error("UpdatePunch decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	punchResp, err := h.timesheetService.UpdatePunch(r.Context(), id, punchReq, adminID)
	if err != nil {
		slog.Error("UpdatePunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch updated", punchResp)
}

// DeletePunch implements TimesheetHandler.
func (h *TimesheetHandlerImpl) DeletePunch(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.timesheetService.DeletePunch(r.Context(), id, adminID); err != nil {
		slog.Error("DeletePunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Punch deleted", nil)
}

// ListPunches implements TimesheetHandler.
func (h *TimesheetHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := r.URL.Query().Get("employee_id")
	if validator.IsEmpty(employeeID) {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	start, end, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	punches, err := h.timesheetService.ListPunches(r.Context(), timesheet.PunchFilter{
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
	}, adminID)
	if err != nil {
		slog.Error("ListPunches service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, punches)
}
