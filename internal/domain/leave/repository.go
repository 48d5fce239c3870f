package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// SetStatus transitions the request from pending to a terminal state.
	// Returns false without error when the row was no longer pending.
	SetStatus(ctx context.Context, id string, status LeaveStatus, actorID string, reason *string) (bool, error)

	// HasApprovedLeaveOn reports whether an approved leave covers the day.
	HasApprovedLeaveOn(ctx context.Context, staffID string, day time.Time) (bool, error)

	// HasOverlapping reports whether a pending or approved request of the
	// staff member intersects the range.
	HasOverlapping(ctx context.Context, staffID string, start, end time.Time) (bool, error)

	List(ctx context.Context, filter Filter) ([]LeaveRequest, int64, error)

	// ListApprovedCovering returns approved requests covering the day for
	// the given staff ids. Used by the dashboard projection.
	ListApprovedCovering(ctx context.Context, staffIDs []string, day time.Time) ([]LeaveRequest, error)

	// ListPendingByStaff returns pending requests for the given staff ids,
	// oldest first.
	ListPendingByStaff(ctx context.Context, staffIDs []string) ([]LeaveRequest, error)
}
