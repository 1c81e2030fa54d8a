package leave

import (
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID string `json:"-"`
	FromDate   string `json:"from_date"` // YYYY-MM-DD
	ToDate     string `json:"to_date"`   // YYYY-MM-DD
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.FromDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "from_date",
			Message: "from_date must be in YYYY-MM-DD format",
		})
	}

	if _, valid := validator.IsValidDate(r.ToDate); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "to_date",
			Message: "to_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DecideLeaveRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"` // APPROVED or REJECTED
}

func (r *DecideLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "leave request id is required",
		})
	}

	if !validator.IsInSlice(r.Status, []string{string(LeaveRequestStatusApproved), string(LeaveRequestStatusRejected)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED or REJECTED",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && validator.IsEmpty(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not be empty",
		})
	}

	if f.Status != nil && *f.Status != "" {
		validStatuses := []string{
			string(LeaveRequestStatusPending),
			string(LeaveRequestStatusApproved),
			string(LeaveRequestStatusRejected),
		}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: PENDING, APPROVED, REJECTED",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	Department   *string `json:"department,omitempty"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Reason       string  `json:"reason"`
	TotalDays    int     `json:"total_days"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// SubmitLeaveResponse carries the created request plus the allowance left in
// the month after it.
type SubmitLeaveResponse struct {
	LeaveRequest  LeaveResponse `json:"leave_request"`
	RemainingDays int           `json:"remaining_days"`
}

// MapToResponse converts a LeaveRequest entity to its transport shape.
func MapToResponse(req LeaveRequest) LeaveResponse {
	return LeaveResponse{
		ID:           req.ID,
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		EmployeeCode: req.EmployeeCode,
		Department:   req.Department,
		FromDate:     req.FromDate.Format("2006-01-02"),
		ToDate:       req.ToDate.Format("2006-01-02"),
		Reason:       req.Reason,
		TotalDays:    req.TotalDays,
		Status:       string(req.Status),
		CreatedAt:    req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
