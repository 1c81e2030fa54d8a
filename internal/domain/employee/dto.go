package employee

import (
	"context"

	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	Name         *string `json:"name,omitempty"`
	Department   *string `json:"department,omitempty"`
	State        *string `json:"state,omitempty"`
	MobileNumber *string `json:"mobile_number,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.Department != nil && validator.IsEmpty(*r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must not be empty",
		})
	}

	if r.State != nil && validator.IsEmpty(*r.State) {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state must not be empty",
		})
	}

	if r.MobileNumber != nil && !validator.IsValidMobileNumber(*r.MobileNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "mobile_number",
			Message: "mobile number must be 10 digits",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID           string  `json:"id"`
	EmployeeCode string  `json:"employee_code"`
	Name         string  `json:"name"`
	Department   string  `json:"department"`
	State        string  `json:"state"`
	MobileNumber string  `json:"mobile_number"`
	Email        *string `json:"email,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type EmployeeService interface {
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	GetByCode(ctx context.Context, code string) (EmployeeResponse, error)
	List(ctx context.Context) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}
