package employee

import (
	"context"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string) (Employee, error)

	Update(ctx context.Context, emp Employee) error

	// Deactivate soft-deactivates the employee; records referencing the
	// employee are kept.
	Deactivate(ctx context.Context, id string) error

	List(ctx context.Context, filter Filter) ([]Employee, int64, error)

	// ListByRole returns active employees holding the given role, optionally
	// restricted to a department (nil means any department).
	ListByRole(ctx context.Context, r role.Role, department *string) ([]Employee, error)

	// ListByManager returns active employees whose manager_id is the given id.
	ListByManager(ctx context.Context, managerID string) ([]Employee, error)

	// ListActive returns active employees, optionally restricted to a
	// department. Used by the dashboard projection.
	ListActive(ctx context.Context, department *string) ([]Employee, error)
}
