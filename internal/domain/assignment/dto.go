package assignment

import (
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/validator"
)

type CreateAssignmentRequest struct {
	StaffID      string `json:"staff_id"`
	SupervisorID string `json:"supervisor_id"`
	LocationID   string `json:"location_id"`
}

func (r *CreateAssignmentRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]string{
		"staff_id":      r.StaffID,
		"supervisor_id": r.SupervisorID,
		"location_id":   r.LocationID,
	} {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		}
	}

	if !validator.IsEmpty(r.StaffID) && r.StaffID == r.SupervisorID {
		errs = append(errs, validator.ValidationError{
			Field:   "supervisor_id",
			Message: "staff member cannot supervise themselves",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AssignmentResponse struct {
	ID             string  `json:"id"`
	StaffID        string  `json:"staff_id"`
	StaffName      *string `json:"staff_name,omitempty"`
	SupervisorID   string  `json:"supervisor_id"`
	SupervisorName *string `json:"supervisor_name,omitempty"`
	LocationID     string  `json:"location_id"`
	LocationName   *string `json:"location_name,omitempty"`
	Active         bool    `json:"active"`
	CreatedAt      string  `json:"created_at"`
}
