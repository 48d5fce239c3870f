package approval

import (
	"strings"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

// Subject describes the employee whose pending request (leave, overtime,
// double duty) is awaiting a decision, plus the reporting-line fields the
// routing rules need.
type Subject struct {
	StaffID    string
	Role       role.Role
	Department *string
	// ManagerID is the subject's own manager link.
	ManagerID *string
	// SupervisorManagerID is the manager of the supervisor the request was
	// submitted under. Only meaningful for staff subjects.
	SupervisorManagerID *string
}

// Actor is the candidate approver.
type Actor struct {
	ID         string
	Role       role.Role
	Department *string
	// Departments is the department set for general managers.
	Departments []string
}

// CanApprove reports whether the actor is entitled to decide the subject's
// request.
//
// The rules, top to bottom:
//  1. nobody approves their own request;
//  2. full-control roles approve anything else;
//  3. a general manager approves staff/supervisor/manager requests inside
//     their department set, and department scope is the only gate at that
//     tier;
//  4. a manager approves their direct-report supervisors and the staff under
//     those supervisors;
//  5. staff and supervisors never approve.
func CanApprove(sub Subject, actor Actor) bool {
	if sub.StaffID == actor.ID {
		return false
	}

	if actor.Role.HasFullControl() {
		return true
	}

	switch actor.Role {
	case role.RoleGeneralManager:
		switch sub.Role {
		case role.RoleStaff, role.RoleSupervisor, role.RoleManager:
			return SameDepartment(sub.Department, actor)
		}
		return false

	case role.RoleManager:
		switch sub.Role {
		case role.RoleSupervisor:
			return sub.ManagerID != nil && *sub.ManagerID == actor.ID
		case role.RoleStaff:
			if sub.ManagerID != nil && *sub.ManagerID == actor.ID {
				return true
			}
			return sub.SupervisorManagerID != nil && *sub.SupervisorManagerID == actor.ID
		}
		return false
	}

	return false
}

// SameDepartment applies the department-match rule: trimmed, case-insensitive
// equality, with membership against the actor's department set when one is
// present. A subject with no department on record is approvable by any
// department-scoped approver, so a request is never orphaned by missing
// metadata.
func SameDepartment(subjectDept *string, actor Actor) bool {
	if subjectDept == nil || strings.TrimSpace(*subjectDept) == "" {
		return true
	}
	want := strings.ToLower(strings.TrimSpace(*subjectDept))

	if len(actor.Departments) > 0 {
		for _, d := range actor.Departments {
			if strings.ToLower(strings.TrimSpace(d)) == want {
				return true
			}
		}
		return false
	}

	if actor.Department == nil {
		return false
	}
	return strings.ToLower(strings.TrimSpace(*actor.Department)) == want
}

// RequiredAuthority returns the role tier expected to approve a request from
// the given requester role, and whether any approver tier exists at all.
// ceo and super_admin requests are self-terminal: informational only, nobody
// above them.
func RequiredAuthority(requester role.Role) (role.Role, bool) {
	switch requester {
	case role.RoleStaff:
		return role.RoleManager, true
	case role.RoleSupervisor:
		return role.RoleManager, true
	case role.RoleManager:
		return role.RoleGeneralManager, true
	case role.RoleGeneralManager:
		return role.RoleCEO, true
	default:
		return "", false
	}
}

// AuthorityLabel is a display helper mapping a requester role to the human
// label of the expected approver tier. It carries no authorization weight.
func AuthorityLabel(requester role.Role) string {
	switch requester {
	case role.RoleStaff:
		return "Manager"
	case role.RoleSupervisor:
		return "Manager"
	case role.RoleManager:
		return "General Manager"
	case role.RoleGeneralManager:
		return "Executive"
	default:
		return "None"
	}
}
