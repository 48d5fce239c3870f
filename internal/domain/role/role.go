package role

import "strings"

// Role is the closed set of organizational roles. Privilege comparisons go
// through Rank; never compare general_manager-and-above roles for equality of
// privilege.
type Role string

const (
	RoleStaff          Role = "staff"
	RoleSupervisor     Role = "supervisor"
	RoleManager        Role = "manager"
	RoleGeneralManager Role = "general_manager"
	RoleCEO            Role = "ceo"
	RoleSuperAdmin     Role = "super_admin"
)

// rank values: ceo and super_admin share the top rank. They differ in scope,
// not in approval privilege.
var ranks = map[Role]int{
	RoleStaff:          1,
	RoleSupervisor:     2,
	RoleManager:        3,
	RoleGeneralManager: 4,
	RoleCEO:            5,
	RoleSuperAdmin:     5,
}

// Normalize maps an incoming role string to a Role. Unrecognized values
// normalize to staff, the least-privileged role. This is the single place
// where free-form role strings enter the system.
func Normalize(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ranks[r]; ok {
		return r
	}
	return RoleStaff
}

// Rank returns the privilege rank of the role. Unknown roles rank as staff.
func (r Role) Rank() int {
	if rank, ok := ranks[r]; ok {
		return rank
	}
	return ranks[RoleStaff]
}

// HasManagementPrivileges reports whether the role is manager or above.
func (r Role) HasManagementPrivileges() bool {
	return r.Rank() >= ranks[RoleManager]
}

// HasFullControl reports whether the role sees and approves everything.
func (r Role) HasFullControl() bool {
	return r == RoleCEO || r == RoleSuperAdmin
}

// HasFieldLeadershipPrivileges reports whether the role is supervisor or
// above. Used for field-side policy such as clocking staff in.
func (r Role) HasFieldLeadershipPrivileges() bool {
	return r.Rank() >= ranks[RoleSupervisor]
}
