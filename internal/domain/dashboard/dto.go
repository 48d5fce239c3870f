package dashboard

import (
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/validator"
)

// StaffRow is one line of the daily attendance board.
type StaffRow struct {
	StaffID      string   `json:"staff_id"`
	StaffName    string   `json:"staff_name"`
	Role         string   `json:"role"`
	Department   *string  `json:"department,omitempty"`
	LocationID   *string  `json:"location_id,omitempty"`
	LocationName *string  `json:"location_name,omitempty"`
	ClockIn      *string  `json:"clock_in,omitempty"`
	ClockOut     *string  `json:"clock_out,omitempty"`
	Status       string   `json:"status"`
	LateMinutes  *int     `json:"late_minutes,omitempty"`
	Overtime     bool     `json:"overtime"`
	DoubleDuty   bool     `json:"double_duty"`
	PendingFlags []string `json:"pending_flags,omitempty"`
}

// Summary carries the counters shown above the board.
type Summary struct {
	TotalStaff       int `json:"total_staff"`
	Present          int `json:"present"`
	Late             int `json:"late"`
	Absent           int `json:"absent"`
	OnLeave          int `json:"on_leave"`
	MissingClockOut  int `json:"missing_clock_out"`
	PendingApprovals int `json:"pending_approvals"`
}

type DailyBoardResponse struct {
	Date    string     `json:"date"`
	Summary Summary    `json:"summary"`
	Rows    []StaffRow `json:"rows"`
}

type Filter struct {
	Date       string  `json:"date"` // YYYY-MM-DD, defaults to today
	Department *string `json:"department,omitempty"`
	LocationID *string `json:"location_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Date) {
		if _, ok := validator.IsValidDate(f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.Status != nil {
		valid := []string{"present", "late", "absent", "on_leave"}
		if !validator.IsInSlice(*f.Status, valid) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: present, late, absent, on_leave",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
