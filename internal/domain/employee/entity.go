package employee

import (
	"time"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

type Employee struct {
	ID         string
	FullName   string
	Role       role.Role
	Department *string
	// Departments is populated for general managers, who may cover several
	// departments. For every other role it mirrors Department.
	Departments []string
	ManagerID   *string
	Phone       *string
	Email       *string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joins
	ManagerName *string
}

// DepartmentSet returns the departments this employee covers. A general
// manager's set comes from Departments; everyone else covers at most their
// single department.
func (e *Employee) DepartmentSet() []string {
	if e.Role == role.RoleGeneralManager && len(e.Departments) > 0 {
		return e.Departments
	}
	if e.Department != nil && *e.Department != "" {
		return []string{*e.Department}
	}
	return nil
}
