package http

import (
	"log/slog"
	"net/http"

	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/user"
	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

// CheckIn implements AttendanceHandler. The employee always checks in as
// themselves; the ID comes from the access token, never the body.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), employeeID)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := employeeIDFromRequest(r)
	if !ok {
		response.Forbidden(w, "No employee record linked to this account")
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), employeeID)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// List implements AttendanceHandler. Admins may query any employee;
// employees only see their own records.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter attendance.Filter

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

	result, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List attendances service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
