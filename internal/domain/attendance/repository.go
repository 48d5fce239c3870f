package attendance

import (
	"context"
	"time"
)

// Flag identifies which supervisor-raised condition an operation targets.
type Flag string

const (
	FlagOvertime   Flag = "overtime"
	FlagDoubleDuty Flag = "double_duty"
)

// ClockOutUpdate carries the fields set when closing an open record.
type ClockOutUpdate struct {
	ClockOut   time.Time
	LocationID string
	Latitude   float64
	Longitude  float64
	ProofURL   *string
	OverrideBy *string
}

// AttendanceRepository persists attendance records. Mutating methods are
// conditional updates: they transition a record only when the stored state
// matches the expected precondition, so concurrent actors cannot double
// clock-in or double-approve. A failed precondition surfaces as the
// corresponding sentinel error, never as a silent overwrite.
type AttendanceRepository interface {
	// Create inserts the first record for (staff_id, date). A duplicate day
	// maps to ErrAlreadyClockedIn.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByStaffAndDate returns nil without error when no record exists.
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*Attendance, error)

	// SetClockOut closes the record only while clock_out is still null;
	// otherwise ErrAlreadyClockedOut.
	SetClockOut(ctx context.Context, id string, upd ClockOutUpdate) error

	// RaiseFlag sets the flag and its sub-status to pending only when the
	// flag is not yet raised. Returns false without error when the flag was
	// already set (idempotent).
	RaiseFlag(ctx context.Context, id string, flag Flag) (bool, error)

	// SetFlagStatus transitions a flag's sub-status from pending to a
	// terminal state. Returns false without error when the row was not in
	// pending (the caller re-reads and decides between no-op and conflict).
	SetFlagStatus(ctx context.Context, id string, flag Flag, status ApprovalStatus, actorID string, reason *string) (bool, error)

	// SetApprovalStatus transitions the record's overall approval_status
	// from pending to a terminal state, same contract as SetFlagStatus.
	SetApprovalStatus(ctx context.Context, id string, status ApprovalStatus, actorID string, reason *string) (bool, error)

	List(ctx context.Context, filter Filter) ([]Attendance, int64, error)

	// ListOpenBefore returns records still open whose date is before the
	// given day, used by the stale-session closer.
	ListOpenBefore(ctx context.Context, day time.Time) ([]Attendance, error)

	// ListPendingByStaff returns records for the given staff ids that carry a
	// pending overall approval or a pending flag, oldest first.
	ListPendingByStaff(ctx context.Context, staffIDs []string) ([]Attendance, error)

	// CreateAbsences bulk-inserts synthetic absent records, skipping days
	// that already have one.
	CreateAbsences(ctx context.Context, records []Attendance) error
}
