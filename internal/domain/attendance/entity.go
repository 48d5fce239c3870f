package attendance

import (
	"time"
)

// ApprovalStatus tracks the review lifecycle of a record or of one of its
// flags. Transitions happen once: pending to approved or rejected.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// Attendance day statuses.
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusOnLeave = "on_leave"
)

// Attendance is one record per (staff_id, date). Created on the first
// successful clock-in of the day; clock_out is set at most once.
type Attendance struct {
	ID           string
	StaffID      string
	SupervisorID *string
	Date         time.Time

	LocationID         *string
	ClockIn            *time.Time
	ClockInLatitude    *float64
	ClockInLongitude   *float64
	ClockInProofURL    *string
	ClockOutLocationID *string
	ClockOut           *time.Time
	ClockOutLatitude   *float64
	ClockOutLongitude  *float64
	ClockOutProofURL   *string

	Status      string
	LateMinutes *int

	ApprovalStatus  ApprovalStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	// Flag sub-approvals: nil status means the flag was never raised.
	Overtime         bool
	OvertimeStatus   *ApprovalStatus
	OvertimeReason   *string
	DoubleDuty       bool
	DoubleDutyStatus *ApprovalStatus
	DoubleDutyReason *string

	// OverrideBy is set when a manager clocked on behalf of the staff member
	// while bypassing geofencing. Audited, never cleared.
	OverrideBy *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joins
	StaffName    *string
	LocationName *string
}

// Open reports whether the record has a clock-in but no clock-out yet.
func (a *Attendance) Open() bool {
	return a.ClockIn != nil && a.ClockOut == nil
}
