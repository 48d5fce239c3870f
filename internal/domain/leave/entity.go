package leave

import "time"

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Leave types mirror the categories field staff can request.
const (
	TypeAnnual    = "annual"
	TypeSick      = "sick"
	TypeEmergency = "emergency"
	TypeUnpaid    = "unpaid"
)

type LeaveRequest struct {
	ID      string
	StaffID string
	// SupervisorID is informational: the supervisor the request was
	// submitted under, used to resolve the manager chain.
	SupervisorID *string
	LeaveType    string
	StartDate    time.Time
	EndDate      time.Time
	Reason       string

	Status          LeaveStatus
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	// ApproverAuthority is the display label of the tier expected to decide
	// the request. It carries no authorization weight.
	ApproverAuthority string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joins
	StaffName *string
}

// Covers reports whether the leave spans the given day (inclusive bounds).
func (l *LeaveRequest) Covers(day time.Time) bool {
	d := day.Truncate(24 * time.Hour)
	return !d.Before(l.StartDate.Truncate(24*time.Hour)) && !d.After(l.EndDate.Truncate(24*time.Hour))
}
