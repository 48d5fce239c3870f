package approval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utiliops/fieldforce-backend-go/internal/domain/role"
)

func strPtr(s string) *string { return &s }

func TestCanApprove_Irreflexive(t *testing.T) {
	roles := []role.Role{
		role.RoleStaff, role.RoleSupervisor, role.RoleManager,
		role.RoleGeneralManager, role.RoleCEO, role.RoleSuperAdmin,
	}

	for _, subRole := range roles {
		for _, actRole := range roles {
			sub := Subject{StaffID: "e1", Role: subRole, Department: strPtr("sanitation")}
			actor := Actor{ID: "e1", Role: actRole, Department: strPtr("sanitation")}
			assert.False(t, CanApprove(sub, actor),
				"self-approval must fail for subject %s / actor %s", subRole, actRole)
		}
	}
}

func TestCanApprove_FullControl(t *testing.T) {
	sub := Subject{StaffID: "g1", Role: role.RoleGeneralManager, Department: strPtr("water_supply")}

	assert.True(t, CanApprove(sub, Actor{ID: "c1", Role: role.RoleCEO}))
	assert.True(t, CanApprove(sub, Actor{ID: "a1", Role: role.RoleSuperAdmin}))

	// Full control ignores department scoping entirely.
	assert.True(t, CanApprove(sub, Actor{ID: "c1", Role: role.RoleCEO, Department: strPtr("sanitation")}))
}

func TestCanApprove_GeneralManager_DepartmentScoped(t *testing.T) {
	gm := Actor{
		ID:          "g1",
		Role:        role.RoleGeneralManager,
		Departments: []string{"sanitation", "water_supply"},
	}

	inScope := Subject{StaffID: "s1", Role: role.RoleStaff, Department: strPtr("sanitation")}
	outOfScope := Subject{StaffID: "s2", Role: role.RoleStaff, Department: strPtr("electrical")}

	assert.True(t, CanApprove(inScope, gm))
	assert.False(t, CanApprove(outOfScope, gm))

	// Department is the sole gate: reporting-line fields do not matter.
	linked := inScope
	linked.ManagerID = strPtr("someone-else")
	linked.SupervisorManagerID = strPtr("another-manager")
	assert.True(t, CanApprove(linked, gm))

	// A general manager never approves another general manager.
	peer := Subject{StaffID: "g2", Role: role.RoleGeneralManager, Department: strPtr("sanitation")}
	assert.False(t, CanApprove(peer, gm))
}

func TestCanApprove_GeneralManager_CaseInsensitiveDepartment(t *testing.T) {
	gm := Actor{ID: "g1", Role: role.RoleGeneralManager, Departments: []string{"Sanitation"}}
	sub := Subject{StaffID: "s1", Role: role.RoleStaff, Department: strPtr("  sanitation ")}
	assert.True(t, CanApprove(sub, gm))
}

func TestCanApprove_GeneralManager_MissingSubjectDepartment(t *testing.T) {
	gm := Actor{ID: "g1", Role: role.RoleGeneralManager, Departments: []string{"sanitation"}}

	// Fail-open: no department on record means any department-scoped
	// approver may act.
	noDept := Subject{StaffID: "s1", Role: role.RoleStaff}
	assert.True(t, CanApprove(noDept, gm))

	blankDept := Subject{StaffID: "s1", Role: role.RoleStaff, Department: strPtr("  ")}
	assert.True(t, CanApprove(blankDept, gm))
}

func TestCanApprove_Manager_DirectReportSupervisor(t *testing.T) {
	mgr := Actor{ID: "m1", Role: role.RoleManager, Department: strPtr("sanitation")}

	direct := Subject{StaffID: "v1", Role: role.RoleSupervisor, ManagerID: strPtr("m1")}
	other := Subject{StaffID: "v2", Role: role.RoleSupervisor, ManagerID: strPtr("m2")}
	unlinked := Subject{StaffID: "v3", Role: role.RoleSupervisor}

	assert.True(t, CanApprove(direct, mgr))
	assert.False(t, CanApprove(other, mgr))
	assert.False(t, CanApprove(unlinked, mgr))
}

func TestCanApprove_Manager_StaffUnderOwnSupervisors(t *testing.T) {
	mgr := Actor{ID: "m1", Role: role.RoleManager}

	cases := []struct {
		name                string
		managerID           *string
		supervisorManagerID *string
		want                bool
	}{
		{"staff links to manager directly", strPtr("m1"), nil, true},
		{"staff's supervisor links to manager", nil, strPtr("m1"), true},
		{"either linkage suffices", strPtr("m1"), strPtr("m1"), true},
		{"staff under another manager's supervisor", strPtr("m2"), strPtr("m2"), false},
		{"no linkage at all", nil, nil, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sub := Subject{
				StaffID:             "s1",
				Role:                role.RoleStaff,
				ManagerID:           c.managerID,
				SupervisorManagerID: c.supervisorManagerID,
			}
			assert.Equal(t, c.want, CanApprove(sub, mgr))
		})
	}
}

func TestCanApprove_Manager_NeverAboveStaffTier(t *testing.T) {
	mgr := Actor{ID: "m1", Role: role.RoleManager}

	peerManager := Subject{StaffID: "m2", Role: role.RoleManager, ManagerID: strPtr("m1")}
	gm := Subject{StaffID: "g1", Role: role.RoleGeneralManager, ManagerID: strPtr("m1")}

	assert.False(t, CanApprove(peerManager, mgr))
	assert.False(t, CanApprove(gm, mgr))
}

func TestCanApprove_StaffAndSupervisorNeverApprove(t *testing.T) {
	sub := Subject{StaffID: "s1", Role: role.RoleStaff, ManagerID: strPtr("x")}

	assert.False(t, CanApprove(sub, Actor{ID: "s2", Role: role.RoleStaff}))
	assert.False(t, CanApprove(sub, Actor{ID: "v1", Role: role.RoleSupervisor}))
}

func TestCanApprove_LeaveScenario(t *testing.T) {
	// Staff "Ali" in sanitation, manager_id = M1, supervisor's manager = M1.
	ali := Subject{
		StaffID:             "ali",
		Role:                role.RoleStaff,
		Department:          strPtr("sanitation"),
		ManagerID:           strPtr("M1"),
		SupervisorManagerID: strPtr("M1"),
	}

	m1 := Actor{ID: "M1", Role: role.RoleManager, Department: strPtr("sanitation")}
	m2 := Actor{ID: "M2", Role: role.RoleManager, Department: strPtr("sanitation")}
	g1 := Actor{ID: "G1", Role: role.RoleGeneralManager, Departments: []string{"sanitation", "water_supply"}}

	assert.True(t, CanApprove(ali, m1))
	assert.False(t, CanApprove(ali, m2))
	assert.True(t, CanApprove(ali, g1))
}

func TestRequiredAuthority(t *testing.T) {
	cases := []struct {
		requester role.Role
		want      role.Role
		ok        bool
	}{
		{role.RoleStaff, role.RoleManager, true},
		{role.RoleSupervisor, role.RoleManager, true},
		{role.RoleManager, role.RoleGeneralManager, true},
		{role.RoleGeneralManager, role.RoleCEO, true},
		{role.RoleCEO, "", false},
		{role.RoleSuperAdmin, "", false},
	}

	for _, c := range cases {
		got, ok := RequiredAuthority(c.requester)
		assert.Equal(t, c.ok, ok, "requester %s", c.requester)
		assert.Equal(t, c.want, got, "requester %s", c.requester)
	}
}

func TestAuthorityLabel(t *testing.T) {
	assert.Equal(t, "Manager", AuthorityLabel(role.RoleStaff))
	assert.Equal(t, "Manager", AuthorityLabel(role.RoleSupervisor))
	assert.Equal(t, "General Manager", AuthorityLabel(role.RoleManager))
	assert.Equal(t, "Executive", AuthorityLabel(role.RoleGeneralManager))
	assert.Equal(t, "None", AuthorityLabel(role.RoleCEO))
}

func TestSameDepartment_SingleDepartmentActor(t *testing.T) {
	actor := Actor{ID: "m1", Role: role.RoleManager, Department: strPtr("Water_Supply")}

	assert.True(t, SameDepartment(strPtr("water_supply"), actor))
	assert.False(t, SameDepartment(strPtr("sanitation"), actor))
	assert.True(t, SameDepartment(nil, actor))

	noDeptActor := Actor{ID: "m2", Role: role.RoleManager}
	assert.False(t, SameDepartment(strPtr("sanitation"), noDeptActor))
}
