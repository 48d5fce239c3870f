package assignment

import "context"

type AssignmentService interface {
	Assign(ctx context.Context, req CreateAssignmentRequest) (AssignmentResponse, error)
	Unassign(ctx context.Context, id string) error
	ListByStaff(ctx context.Context, staffID string) ([]AssignmentResponse, error)
	ListBySupervisor(ctx context.Context, supervisorID string) ([]AssignmentResponse, error)
}
