package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		input string
		want  Role
	}{
		{"staff", RoleStaff},
		{"supervisor", RoleSupervisor},
		{"manager", RoleManager},
		{"general_manager", RoleGeneralManager},
		{"ceo", RoleCEO},
		{"super_admin", RoleSuperAdmin},
		{"  Manager  ", RoleManager},
		{"CEO", RoleCEO},
		{"", RoleStaff},
		{"administrator", RoleStaff},
		{"gm", RoleStaff},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.input), "Normalize(%q)", c.input)
	}
}

func TestRank_TotalOrder(t *testing.T) {
	assert.Less(t, RoleStaff.Rank(), RoleSupervisor.Rank())
	assert.Less(t, RoleSupervisor.Rank(), RoleManager.Rank())
	assert.Less(t, RoleManager.Rank(), RoleGeneralManager.Rank())
	assert.Less(t, RoleGeneralManager.Rank(), RoleCEO.Rank())

	// ceo and super_admin are equal in rank for approval purposes.
	assert.Equal(t, RoleCEO.Rank(), RoleSuperAdmin.Rank())
}

func TestRank_UnknownRole(t *testing.T) {
	assert.Equal(t, RoleStaff.Rank(), Role("intern").Rank())
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		role            Role
		management      bool
		fullControl     bool
		fieldLeadership bool
	}{
		{RoleStaff, false, false, false},
		{RoleSupervisor, false, false, true},
		{RoleManager, true, false, true},
		{RoleGeneralManager, true, false, true},
		{RoleCEO, true, true, true},
		{RoleSuperAdmin, true, true, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.management, c.role.HasManagementPrivileges(), "%s management", c.role)
		assert.Equal(t, c.fullControl, c.role.HasFullControl(), "%s full control", c.role)
		assert.Equal(t, c.fieldLeadership, c.role.HasFieldLeadershipPrivileges(), "%s field leadership", c.role)
	}
}
