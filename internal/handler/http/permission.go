package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/permission"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/user"
	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/response"
)

type PermissionHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type permissionHandlerImpl struct {
	permissionService permission.PermissionService
}

func NewPermissionHandler(permissionService permission.PermissionService) PermissionHandler {
	return &permissionHandlerImpl{
		permissionService: permissionService,
	}
}

// Submit implements PermissionHandler.
func (h *permissionHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	var submitReq permission.SubmitPermissionRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit permission decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	submitReq.EmployeeID = employeeID

	if err := submitReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.permissionService.Submit(r.Context(), submitReq)
	if err != nil {
		slog.Error("Submit permission service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Permission recorded", result)
}

// List implements PermissionHandler. Admins may query any employee;
// employees only see their own records.
func (h *permissionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter permission.Filter

	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("date"); v != "" {
		filter.Date = &v
	}

	if roleFromRequest(r) != string(user.RoleAdmin) {
		employeeID, ok := employeeIDFromRequest(r)
		if !ok {
			response.Forbidden(w, "No employee record linked to this account")
			return
		}
		filter.EmployeeID = &employeeID
	}

	result, err := h.permissionService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List permissions service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
