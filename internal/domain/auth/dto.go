package auth

import (
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
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

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RefreshToken) {
		errs = append(errs, validator.ValidationError{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`

	// RefreshExpiresAt feeds the refresh cookie; it is not part of the body.
	RefreshExpiresAt int64 `json:"-"`
}

type ProfileResponse struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	EmployeeID  *string  `json:"employee_id,omitempty"`
	FullName    string   `json:"full_name,omitempty"`
	Role        string   `json:"role"`
	Department  *string  `json:"department,omitempty"`
	Departments []string `json:"departments,omitempty"`
}
