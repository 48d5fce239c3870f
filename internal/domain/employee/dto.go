package employee

import (
	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName    string   `json:"full_name"`
	Role        string   `json:"role"`
	Department  *string  `json:"department,omitempty"`
	Departments []string `json:"departments,omitempty"`
	ManagerID   *string  `json:"manager_id,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(r.Departments) > 0 && role.Normalize(r.Role) != role.RoleGeneralManager {
		errs = append(errs, validator.ValidationError{
			Field:   "departments",
			Message: "only general managers may hold a department set",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID          string   `json:"-"`
	FullName    *string  `json:"full_name,omitempty"`
	Role        *string  `json:"role,omitempty"`
	Department  *string  `json:"department,omitempty"`
	Departments []string `json:"departments,omitempty"`
	ManagerID   *string  `json:"manager_id,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}

	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID          string   `json:"id"`
	FullName    string   `json:"full_name"`
	Role        string   `json:"role"`
	Department  *string  `json:"department,omitempty"`
	Departments []string `json:"departments,omitempty"`
	ManagerID   *string  `json:"manager_id,omitempty"`
	ManagerName *string  `json:"manager_name,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Active      bool     `json:"active"`
	CreatedAt   string   `json:"created_at"`
}

type Filter struct {
	Name       *string `json:"name,omitempty"`
	Role       *string `json:"role,omitempty"`
	Department *string `json:"department,omitempty"`
	Active     *bool   `json:"active,omitempty"`

	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListEmployeeResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	Employees  []EmployeeResponse `json:"employees"`
}
