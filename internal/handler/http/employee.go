package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/estruturasvale/sige-backend-go/internal/domain/employee"
	"github.com/estruturasvale/sige-backend-go/internal/domain/tenant"
	"github.com/estruturasvale/sige-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	tenantResolver  tenant.Resolver
}

func NewEmployeeHandler(employeeService employee.EmployeeService, tenantResolver tenant.Resolver) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		tenantResolver:  tenantResolver,
	}
}

// CreateEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Create(r.Context(), req, adminID)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", resp)
}

// ListEmployees implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	activeOnly := r.URL.Query().Get("active_only") == "true"

	employees, err := h.employeeService.List(r.Context(), adminID, activeOnly)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

// DeleteEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	adminID, err := resolveAdminID(r, h.tenantResolver)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := chi.URLParam(r, "id")

	if err := h.employeeService.Delete(r.Context(), id, adminID); err != nil {
		slog.Error("DeleteEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted", nil)
}
