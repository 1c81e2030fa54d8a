package auth

import (
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/validator"
)

// RegisterRequest creates the account identity together with its employee
// record in a single unit of work.
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmployeeCode string `json:"employee_code"`
	Name         string `json:"name"`
	Department   string `json:"department"`
	State        string `json:"state"`
	MobileNumber string `json:"mobile_number"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}

	if !validator.IsValidEmployeeCode(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee code must be 3-20 uppercase letters, digits or dashes",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	}

	if validator.IsEmpty(r.State) {
		errs = append(errs, validator.ValidationError{
			Field:   "state",
			Message: "state is required",
		})
	}

	if !validator.IsValidMobileNumber(r.MobileNumber) {
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

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email address is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken      string `json:"access_token"`
	ExpiresAt        int64  `json:"expires_at"`
	RefreshToken     string `json:"-"` // delivered as an HttpOnly cookie
	RefreshExpiresAt int64  `json:"-"`
	UserID           string `json:"user_id"`
	EmployeeID       string `json:"employee_id,omitempty"`
	Role             string `json:"role"`
}
