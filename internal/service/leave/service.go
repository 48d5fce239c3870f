package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/approval"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/leave"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

type LeaveServiceImpl struct {
	leave.LeaveRepository
	employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		LeaveRepository:    leaveRepo,
		EmployeeRepository: employeeRepo,
	}
}

func toResponse(req leave.LeaveRequest) leave.LeaveResponse {
	resp := leave.LeaveResponse{
		ID:                req.ID,
		StaffID:           req.StaffID,
		SupervisorID:      req.SupervisorID,
		LeaveType:         req.LeaveType,
		StartDate:         req.StartDate.Format("2006-01-02"),
		EndDate:           req.EndDate.Format("2006-01-02"),
		Reason:            req.Reason,
		Status:            string(req.Status),
		ApproverAuthority: req.ApproverAuthority,
		ApprovedBy:        req.ApprovedBy,
		RejectionReason:   req.RejectionReason,
		CreatedAt:         req.CreatedAt.Format(time.RFC3339),
	}
	if req.StaffName != nil {
		resp.StaffName = *req.StaffName
	}
	return resp
}

// subjectFor builds the routing subject for a leave request's staff member.
func (s *LeaveServiceImpl) subjectFor(ctx context.Context, req leave.LeaveRequest) (approval.Subject, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return approval.Subject{}, err
	}

	sub := approval.Subject{
		StaffID:    emp.ID,
		Role:       emp.Role,
		Department: emp.Department,
		ManagerID:  emp.ManagerID,
	}

	if req.SupervisorID != nil {
		sup, err := s.EmployeeRepository.GetByID(ctx, *req.SupervisorID)
		if err == nil {
			sub.SupervisorManagerID = sup.ManagerID
		}
	}

	return sub, nil
}

// hasRoutableApprover walks the candidate approver tiers and reports whether
// anyone is entitled to decide the subject's request. Requests with nobody to
// decide them fail fast at submission instead of going stale in a queue.
func (s *LeaveServiceImpl) hasRoutableApprover(ctx context.Context, sub approval.Subject) (bool, error) {
	tiers := []role.Role{role.RoleManager, role.RoleGeneralManager, role.RoleCEO, role.RoleSuperAdmin}

	for _, tier := range tiers {
		candidates, err := s.EmployeeRepository.ListByRole(ctx, tier, nil)
		if err != nil {
			return false, fmt.Errorf("failed to list candidate approvers: %w", err)
		}
		for _, cand := range candidates {
			actor := approval.Actor{
				ID:          cand.ID,
				Role:        cand.Role,
				Department:  cand.Department,
				Departments: cand.DepartmentSet(),
			}
			if approval.CanApprove(sub, actor) {
				return true, nil
			}
		}
	}

	return false, nil
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, actor approval.Actor, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !emp.Active {
		return leave.LeaveResponse{}, employee.ErrEmployeeInactive
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)

	overlaps, err := s.LeaveRepository.HasOverlapping(ctx, req.StaffID, start, end)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if overlaps {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	pending := leave.LeaveRequest{
		StaffID:           req.StaffID,
		SupervisorID:      req.SupervisorID,
		LeaveType:         req.LeaveType,
		StartDate:         start,
		EndDate:           end,
		Reason:            req.Reason,
		Status:            leave.LeaveStatusPending,
		ApproverAuthority: approval.AuthorityLabel(emp.Role),
	}

	sub, err := s.subjectFor(ctx, pending)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to resolve approval subject: %w", err)
	}

	routable, err := s.hasRoutableApprover(ctx, sub)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if !routable {
		return leave.LeaveResponse{}, approval.ErrNoApproverAvailable
	}

	created, err := s.LeaveRepository.Create(ctx, pending)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return toResponse(created), nil
}

func (s *LeaveServiceImpl) decide(ctx context.Context, actor approval.Actor, id string, target leave.LeaveStatus, reason *string) (leave.LeaveResponse, error) {
	req, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	sub, err := s.subjectFor(ctx, req)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to resolve approval subject: %w", err)
	}
	if !approval.CanApprove(sub, actor) {
		return leave.LeaveResponse{}, approval.ErrNotAuthorizedToApprove
	}

	ok, err := s.LeaveRepository.SetStatus(ctx, req.ID, target, actor.ID, reason)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to set leave status: %w", err)
	}

	current, err := s.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to reload leave request: %w", err)
	}

	if !ok {
		if current.Status == target {
			// Same decision landed twice; report the settled state.
			return toResponse(current), nil
		}
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	return toResponse(current), nil
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, actor approval.Actor, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, actor, id, leave.LeaveStatusApproved, nil)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, actor approval.Actor, req leave.RejectLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}
	return s.decide(ctx, actor, req.ID, leave.LeaveStatusRejected, &req.Reason)
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	req, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return toResponse(req), nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) (leave.ListLeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, total, err := s.LeaveRepository.List(ctx, filter)
	if err != nil {
		return leave.ListLeaveResponse{}, fmt.Errorf("failed to list leave requests: %w", err)
	}

	resp := leave.ListLeaveResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Leaves:     make([]leave.LeaveResponse, 0, len(requests)),
	}
	for _, req := range requests {
		resp.Leaves = append(resp.Leaves, toResponse(req))
	}
	return resp, nil
}

// MyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) MyLeaves(ctx context.Context, actor approval.Actor, filter leave.Filter) (leave.ListLeaveResponse, error) {
	filter.StaffID = &actor.ID
	return s.List(ctx, filter)
}
