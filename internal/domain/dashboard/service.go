package dashboard

import (
	"context"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/approval"
)

// DashboardService projects attendance, leave, and pending approvals into a
// single daily board, scoped to what the acting identity may see.
//
// Visibility follows the reporting chain: supervisors see staff assigned to
// them, managers see their direct reports and those reports' staff, general
// managers see their departments, executives see everyone.
type DashboardService interface {
	DailyBoard(ctx context.Context, actor approval.Actor, filter Filter) (DailyBoardResponse, error)

	// PendingApprovals lists attendance flags and leave requests awaiting a
	// decision that the actor is authorized to make.
	PendingApprovals(ctx context.Context, actor approval.Actor) (PendingApprovalsResponse, error)
}

type PendingApprovalItem struct {
	Kind        string  `json:"kind"` // overtime, double_duty, attendance, leave
	ReferenceID string  `json:"reference_id"`
	StaffID     string  `json:"staff_id"`
	StaffName   string  `json:"staff_name"`
	Department  *string `json:"department,omitempty"`
	SubmittedAt string  `json:"submitted_at"`
	Detail      string  `json:"detail,omitempty"`
}

type PendingApprovalsResponse struct {
	TotalCount int                   `json:"total_count"`
	Items      []PendingApprovalItem `json:"items"`
}
