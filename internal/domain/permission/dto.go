package permission

import (
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

type SubmitPermissionRequest struct {
	EmployeeID string `json:"-"`
	StartTime  string `json:"start_time"` // RFC3339
	EndTime    string `json:"end_time"`   // RFC3339
	Reason     string `json:"reason"`
}

func (r *SubmitPermissionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDateTime(r.StartTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be an RFC3339 timestamp",
		})
	}

	if _, valid := validator.IsValidDateTime(r.EndTime); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be an RFC3339 timestamp",
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

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.EmployeeID != nil && validator.IsEmpty(*f.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must not be empty",
		})
	}

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PermissionResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	EmployeeCode    *string `json:"employee_code,omitempty"`
	Department      *string `json:"department,omitempty"`
	Date            string  `json:"date"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Reason          string  `json:"reason"`
	DurationMinutes int     `json:"duration_minutes"`
	ExtraMinutes    int     `json:"extra_minutes"`
	CreatedAt       string  `json:"created_at"`
}

// SubmitPermissionResponse carries the created record plus the day's usage
// summary. The cap is advisory: ExceededLimit flags overage but the request
// itself always succeeds.
type SubmitPermissionResponse struct {
	Permission       PermissionResponse `json:"permission"`
	TotalUsedMinutes int                `json:"total_used_minutes"`
	RemainingMinutes int                `json:"remaining_minutes"`
	ExceededLimit    bool               `json:"exceeded_limit"`
}

// MapToResponse converts a Permission entity to its transport shape.
func MapToResponse(p Permission) PermissionResponse {
	return PermissionResponse{
		ID:              p.ID,
		EmployeeID:      p.EmployeeID,
		EmployeeName:    p.EmployeeName,
		EmployeeCode:    p.EmployeeCode,
		Department:      p.Department,
		Date:            p.Date.Format("2006-01-02"),
		StartTime:       p.StartTime.Format(time.RFC3339),
		EndTime:         p.EndTime.Format(time.RFC3339),
		Reason:          p.Reason,
		DurationMinutes: p.DurationMinutes,
		ExtraMinutes:    p.ExtraMinutes,
		CreatedAt:       p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
