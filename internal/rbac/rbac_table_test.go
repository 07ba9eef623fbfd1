package rbac

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allResources = []Resource{
	ResourceUsers, ResourceAttendance, ResourceLeaves, ResourceShifts, ResourcePayroll,
	"reports", "settings", "",
}

var allActions = []Action{
	ActionRead, ActionCreate, ActionUpdate, ActionDelete, ActionApprove, ActionProcess,
	"export", "",
}

func TestHasPermission_Examples(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		resource Resource
		action   Action
		want     bool
	}{
		{"employee cannot process payroll", RoleEmployee, ResourcePayroll, ActionProcess, false},
		{"employee can create leaves", RoleEmployee, ResourceLeaves, ActionCreate, true},
		{"employee cannot read users", RoleEmployee, ResourceUsers, ActionRead, false},
		{"manager approves leaves", RoleManager, ResourceLeaves, ActionApprove, true},
		{"manager cannot create shifts", RoleManager, ResourceShifts, ActionCreate, false},
		{"finance processes payroll", RoleFinance, ResourcePayroll, ActionProcess, true},
		{"finance cannot read leaves", RoleFinance, ResourceLeaves, ActionRead, false},
		{"admin deletes users", RoleAdmin, ResourceUsers, ActionDelete, true},
		{"admin cannot delete payroll", RoleAdmin, ResourcePayroll, ActionDelete, false},
		{"unknown role", Role("intern"), ResourceLeaves, ActionRead, false},
		{"empty role", Role(""), ResourceLeaves, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPermission(tt.role, tt.resource, tt.action))
		})
	}
}

func TestHasPermission_SuperAdminAllowsEverything(t *testing.T) {
	for _, res := range allResources {
		for _, act := range allActions {
			assert.True(t, HasPermission(RoleSuperAdmin, res, act), "%s:%s", res, act)
		}
	}
}

func TestHasPermission_Deterministic(t *testing.T) {
	for _, role := range append(Roles(), "ghost") {
		for _, res := range allResources {
			for _, act := range allActions {
				first := HasPermission(role, res, act)
				for i := 0; i < 3; i++ {
					assert.Equal(t, first, HasPermission(role, res, act))
				}
			}
		}
	}
}

func TestTable_WildcardActionOnResource(t *testing.T) {
	table := Table{
		RoleManager: {Resources: map[Resource]ActionSet{ResourceShifts: AllActions()}},
	}

	assert.True(t, table.HasPermission(RoleManager, ResourceShifts, ActionDelete))
	assert.False(t, table.HasPermission(RoleManager, ResourcePayroll, ActionRead))
}

func TestTable_WildcardResourceWithoutWildcardAction(t *testing.T) {
	// Only the wildcard action on the wildcard resource is an escape hatch.
	table := Table{
		RoleAdmin: {AllResources: &ActionSet{Actions: []Action{ActionRead}}},
	}

	assert.False(t, table.HasPermission(RoleAdmin, ResourceUsers, ActionRead))
}

func TestAllowed(t *testing.T) {
	assert.True(t, Allowed("admin", "payroll", "process"))
	assert.False(t, Allowed("employee", "payroll", "process"))
	assert.False(t, Allowed("*", "payroll", "read"))
	assert.False(t, Allowed("", "", ""))
}

func TestParseRole(t *testing.T) {
	r, ok := ParseRole("finance")
	assert.True(t, ok)
	assert.Equal(t, RoleFinance, r)

	_, ok = ParseRole("Finance")
	assert.False(t, ok)
}

func TestTable_Policies(t *testing.T) {
	rows := DefaultTable.Policies()

	assert.Contains(t, rows, []string{"role:super_admin", "*", "*"})
	assert.Contains(t, rows, []string{"role:employee", "leaves", "create"})
	assert.NotContains(t, rows, []string{"role:employee", "payroll", "process"})
	for _, row := range rows {
		assert.NotContains(t, []string{"super_admin", "admin", "manager", "finance", "employee"}, row[0])
	}
}
