package assignment

import (
	"context"
	"errors"
	"fmt"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/assignment"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/employee"
	"github.com/utiliops/fieldforce-backend-go/internal/domain/location"
)

type AssignmentServiceImpl struct {
	assignment.AssignmentRepository
	employee.EmployeeRepository
	location.LocationRepository
}

func NewAssignmentService(
	assignmentRepo assignment.AssignmentRepository,
	employeeRepo employee.EmployeeRepository,
	locationRepo location.LocationRepository,
) assignment.AssignmentService {
	return &AssignmentServiceImpl{
		AssignmentRepository: assignmentRepo,
		EmployeeRepository:   employeeRepo,
		LocationRepository:   locationRepo,
	}
}

func toResponse(a assignment.Assignment) assignment.AssignmentResponse {
	return assignment.AssignmentResponse{
		ID:             a.ID,
		StaffID:        a.StaffID,
		StaffName:      a.StaffName,
		SupervisorID:   a.SupervisorID,
		SupervisorName: a.SupervisorName,
		LocationID:     a.LocationID,
		LocationName:   a.LocationName,
		Active:         a.Active,
		CreatedAt:      a.CreatedAt.Format("2006-01-02"),
	}
}

// Assign implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Assign(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	staff, err := s.EmployeeRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if !staff.Active {
		return assignment.AssignmentResponse{}, employee.ErrEmployeeInactive
	}

	sup, err := s.EmployeeRepository.GetByID(ctx, req.SupervisorID)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}
	if !sup.Role.HasFieldLeadershipPrivileges() {
		return assignment.AssignmentResponse{}, fmt.Errorf("employee %s cannot supervise an assignment", sup.ID)
	}

	if _, err := s.LocationRepository.GetByID(ctx, req.LocationID); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	// An existing active assignment for the same pair stays authoritative.
	if existing, err := s.AssignmentRepository.GetActive(ctx, req.StaffID, req.LocationID); err == nil {
		if existing.SupervisorID == req.SupervisorID {
			return assignment.AssignmentResponse{}, assignment.ErrDuplicateActive
		}
	} else if !errors.Is(err, assignment.ErrAssignmentNotFound) {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to check existing assignment: %w", err)
	}

	created, err := s.AssignmentRepository.Create(ctx, assignment.Assignment{
		StaffID:      req.StaffID,
		SupervisorID: req.SupervisorID,
		LocationID:   req.LocationID,
		Active:       true,
	})
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}

	return toResponse(created), nil
}

// Unassign implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) Unassign(ctx context.Context, id string) error {
	return s.AssignmentRepository.Deactivate(ctx, id)
}

// ListByStaff implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) ListByStaff(ctx context.Context, staffID string) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.AssignmentRepository.ListActiveByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	out := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toResponse(a))
	}
	return out, nil
}

// ListBySupervisor implements assignment.AssignmentService.
func (s *AssignmentServiceImpl) ListBySupervisor(ctx context.Context, supervisorID string) ([]assignment.AssignmentResponse, error) {
	assignments, err := s.AssignmentRepository.ListActiveBySupervisor(ctx, supervisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	out := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		out = append(out, toResponse(a))
	}
	return out, nil
}
