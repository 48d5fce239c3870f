package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/leave"
	"github.com/utiliops/fieldforce-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `
	r.id, r.staff_id, r.supervisor_id, r.leave_type, r.start_date, r.end_date, r.reason,
	r.status, r.approved_by, r.approved_at, r.rejection_reason, r.approver_authority,
	r.created_at, r.updated_at, e.full_name
`

const leaveJoins = `
	FROM leave_requests r
	LEFT JOIN employees e ON e.id = r.staff_id
`

func scanLeave(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var status string
	err := row.Scan(
		&req.ID, &req.StaffID, &req.SupervisorID, &req.LeaveType,
		&req.StartDate, &req.EndDate, &req.Reason,
		&status, &req.ApprovedBy, &req.ApprovedAt, &req.RejectionReason,
		&req.ApproverAuthority, &req.CreatedAt, &req.UpdatedAt, &req.StaffName,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	req.Status = leave.LeaveStatus(status)
	return req, nil
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			staff_id, supervisor_id, leave_type, start_date, end_date,
			reason, status, approver_authority
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		req.StaffID, req.SupervisorID, req.LeaveType, req.StartDate, req.EndDate,
		req.Reason, string(req.Status), req.ApproverAuthority,
	).Scan(&id)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return r.GetByID(ctx, id)
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + leaveJoins + ` WHERE r.id = $1`

	req, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// SetStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) SetStatus(ctx context.Context, id string, status leave.LeaveStatus, actorID string, reason *string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, approved_by = $2, approved_at = NOW(),
			rejection_reason = $3, updated_at = NOW()
		WHERE id = $4 AND status = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		string(status), actorID, reason, id, string(leave.LeaveStatusPending),
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to set leave status: %w", err)
	}
	return true, nil
}

// HasApprovedLeaveOn implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasApprovedLeaveOn(ctx context.Context, staffID string, day time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE staff_id = $1 AND status = 'approved'
				AND start_date <= $2 AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, staffID, day).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}
	return exists, nil
}

// HasOverlapping implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) HasOverlapping(ctx context.Context, staffID string, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM leave_requests
			WHERE staff_id = $1 AND status IN ('pending', 'approved')
				AND start_date <= $3 AND end_date >= $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, staffID, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	return exists, nil
}

func (r *leaveRepositoryImpl) queryLeaves(ctx context.Context, query string, args ...interface{}) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return requests, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveRequest, int64, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argPos := 1

	add := func(cond string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(cond, argPos))
		args = append(args, value)
		argPos++
	}

	if filter.StaffID != nil && *filter.StaffID != "" {
		add("r.staff_id = $%d", *filter.StaffID)
	}
	if filter.Status != nil && *filter.Status != "" {
		add("r.status = $%d", *filter.Status)
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		add("r.end_date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		add("r.start_date <= $%d", *filter.EndDate)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests r " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := `SELECT ` + leaveColumns + leaveJoins + `
		` + where + fmt.Sprintf(`
		ORDER BY r.created_at DESC
		LIMIT $%d OFFSET $%d
	`, argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	requests, err := r.queryLeaves(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, total, nil
}

// ListApprovedCovering implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedCovering(ctx context.Context, staffIDs []string, day time.Time) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + leaveJoins + `
		WHERE r.staff_id = ANY($1) AND r.status = 'approved'
			AND r.start_date <= $2 AND r.end_date >= $2
	`
	return r.queryLeaves(ctx, query, staffIDs, day)
}

// ListPendingByStaff implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListPendingByStaff(ctx context.Context, staffIDs []string) ([]leave.LeaveRequest, error) {
	query := `SELECT ` + leaveColumns + leaveJoins + `
		WHERE r.staff_id = ANY($1) AND r.status = 'pending'
		ORDER BY r.created_at ASC
	`
	return r.queryLeaves(ctx, query, staffIDs)
}
