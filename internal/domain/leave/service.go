package leave

import (
	"context"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/approval"
)

type LeaveService interface {
	// Submit creates a pending request after verifying that at least one
	// authorized approver exists; an unroutable request fails fast instead
	// of being persisted.
	Submit(ctx context.Context, actor approval.Actor, req SubmitLeaveRequest) (LeaveResponse, error)

	// Approve and Reject transition the request once. Gated by the approval
	// router; re-deciding an already-decided request in the same direction
	// is a no-op returning the current state.
	Approve(ctx context.Context, actor approval.Actor, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actor approval.Actor, req RejectLeaveRequest) (LeaveResponse, error)

	Get(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter Filter) (ListLeaveResponse, error)
	MyLeaves(ctx context.Context, actor approval.Actor, filter Filter) (ListLeaveResponse, error)
}
