package attendance

import (
	"time"

	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

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

type AttendanceResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	EmployeeName *string  `json:"employee_name,omitempty"`
	EmployeeCode *string  `json:"employee_code,omitempty"`
	Department   *string  `json:"department,omitempty"`
	Date         string   `json:"date"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out,omitempty"`
	TotalHours   *float64 `json:"total_hours,omitempty"`
}

// MapToResponse converts an Attendance entity to its transport shape.
func MapToResponse(att Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		EmployeeName: att.EmployeeName,
		EmployeeCode: att.EmployeeCode,
		Department:   att.Department,
		Date:         att.Date.Format("2006-01-02"),
		CheckIn:      att.CheckIn.Format(time.RFC3339),
		TotalHours:   att.TotalHours,
	}
	if att.CheckOut != nil {
		out := att.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &out
	}
	return resp
}
