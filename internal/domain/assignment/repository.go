package assignment

import "context"

type AssignmentRepository interface {
	Create(ctx context.Context, a Assignment) (Assignment, error)

	// GetActive resolves the authoritative assignment for a staff member at a
	// location. Ordered by created_at descending so the most recently created
	// active assignment wins when duplicates exist.
	GetActive(ctx context.Context, staffID, locationID string) (Assignment, error)

	// ListActiveByStaff returns all active assignments for a staff member,
	// most recent first.
	ListActiveByStaff(ctx context.Context, staffID string) ([]Assignment, error)

	// ListActiveBySupervisor returns active assignments under a supervisor.
	ListActiveBySupervisor(ctx context.Context, supervisorID string) ([]Assignment, error)

	// ListActive returns every active assignment, used by the nightly
	// absence sweep.
	ListActive(ctx context.Context) ([]Assignment, error)

	Deactivate(ctx context.Context, id string) error
}
