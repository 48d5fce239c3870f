package attendance

import (
	"context"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/approval"
)

// AttendanceService is the clock-in/clock-out lifecycle. Every operation
// takes the acting identity explicitly; nothing reads an ambient current
// user.
type AttendanceService interface {
	// ClockIn creates the day's record. Acting for another employee requires
	// field leadership; bypassing the geofence requires management rank over
	// the target's department (override mode, audited).
	ClockIn(ctx context.Context, actor approval.Actor, req ClockInRequest) (AttendanceResponse, error)

	// ClockOut closes the day's open record. Geofence, override and office
	// rules are evaluated independently of clock-in; a different verified
	// location is permitted.
	ClockOut(ctx context.Context, actor approval.Actor, req ClockOutRequest) (AttendanceResponse, error)

	// MarkOvertime and MarkDoubleDuty raise the respective flag with a
	// pending sub-approval. Supervisor and above only.
	MarkOvertime(ctx context.Context, actor approval.Actor, attendanceID string) (AttendanceResponse, error)
	MarkDoubleDuty(ctx context.Context, actor approval.Actor, attendanceID string) (AttendanceResponse, error)

	// Flag approvals are gated by the approval router over the staff
	// member's reporting chain. Re-approving an already-approved flag is a
	// no-op returning the current record.
	ApproveOvertime(ctx context.Context, actor approval.Actor, attendanceID string) (AttendanceResponse, error)
	RejectOvertime(ctx context.Context, actor approval.Actor, req RejectRequest) (AttendanceResponse, error)
	ApproveDoubleDuty(ctx context.Context, actor approval.Actor, attendanceID string) (AttendanceResponse, error)
	RejectDoubleDuty(ctx context.Context, actor approval.Actor, req RejectRequest) (AttendanceResponse, error)

	// Approve and Reject decide the record's overall approval status.
	// Rejection forces the derived display status to absent.
	Approve(ctx context.Context, actor approval.Actor, attendanceID string) (AttendanceResponse, error)
	Reject(ctx context.Context, actor approval.Actor, req RejectRequest) (AttendanceResponse, error)

	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter Filter) (ListAttendanceResponse, error)
	MyAttendance(ctx context.Context, actor approval.Actor, filter Filter) (ListAttendanceResponse, error)
}
