package attendance

import (
	"mime/multipart"

	"github.com/utiliops/fieldforce-backend-go/internal/pkg/validator"
)

type ClockInRequest struct {
	StaffID             string  `json:"staff_id"`
	LocationID          string  `json:"location_id"`
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	OvertimeRequested   bool    `json:"overtime_requested"`
	DoubleDutyRequested bool    `json:"double_duty_requested"`

	ProofPhotoURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *ClockInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader != nil {
		if err := validator.ValidateProofPhoto(r.FileHeader.Filename, r.FileHeader.Size); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ClockOutRequest struct {
	StaffID    string  `json:"staff_id"`
	LocationID string  `json:"location_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	ProofPhotoURL *string               `json:"-"`
	File          multipart.File        `json:"-"`
	FileHeader    *multipart.FileHeader `json:"-"`
}

func (r *ClockOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staff_id",
			Message: "staff_id is required",
		})
	}

	if validator.IsEmpty(r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id is required",
		})
	}

	if r.Latitude < -90 || r.Latitude > 90 {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude < -180 || r.Longitude > 180 {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.FileHeader != nil {
		if err := validator.ValidateProofPhoto(r.FileHeader.Filename, r.FileHeader.Size); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "file",
				Message: err.Error(),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectRequest struct {
	ID     string `json:"-"`
	Reason string `json:"reason"`
}

func (r *RejectRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	StaffID      string  `json:"staff_id"`
	StaffName    string  `json:"staff_name,omitempty"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
	Date         string  `json:"date"`

	LocationID   *string `json:"location_id,omitempty"`
	LocationName *string `json:"location_name,omitempty"`

	ClockInTime      *string  `json:"clock_in_time,omitempty"`
	ClockOutTime     *string  `json:"clock_out_time,omitempty"`
	ClockInLatitude  *float64 `json:"clock_in_latitude,omitempty"`
	ClockInLongitude *float64 `json:"clock_in_longitude,omitempty"`
	ClockInProofURL  *string  `json:"clock_in_proof_url,omitempty"`
	ClockOutProofURL *string  `json:"clock_out_proof_url,omitempty"`

	Status         string `json:"status"`
	DisplayStatus  string `json:"display_status"`
	LateMinutes    *int   `json:"late_minutes,omitempty"`
	ApprovalStatus string `json:"approval_status"`

	Overtime         bool    `json:"overtime"`
	OvertimeStatus   *string `json:"overtime_status,omitempty"`
	DoubleDuty       bool    `json:"double_duty"`
	DoubleDutyStatus *string `json:"double_duty_status,omitempty"`

	OverrideBy *string `json:"override_by,omitempty"`

	RejectionReason *string `json:"rejection_reason,omitempty"`
}

type Filter struct {
	StaffID      *string `json:"staff_id,omitempty"`
	SupervisorID *string `json:"supervisor_id,omitempty"`
	Date         *string `json:"date,omitempty"`       // YYYY-MM-DD
	StartDate    *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate      *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Status       *string `json:"status,omitempty"`

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

	if f.Status != nil {
		valid := []string{StatusPresent, StatusLate, StatusAbsent, StatusOnLeave}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, late, absent, on_leave",
			})
		}
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}
