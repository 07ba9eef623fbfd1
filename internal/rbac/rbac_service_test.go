package rbac

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"
	"go-hrms/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAssignments struct {
	rows []RoleAssignment
	err  error
}

func (m *memAssignments) ListRoleAssignments(ctx context.Context) ([]RoleAssignment, error) {
	return m.rows, m.err
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	require.NoError(t, err)
	return NewService(repo, enforcer)
}

func TestRBACService_EnforceMatchesTable(t *testing.T) {
	repo := &memAssignments{}
	for _, role := range Roles() {
		repo.rows = append(repo.rows, RoleAssignment{EmployeeID: "emp-" + string(role), Role: string(role)})
	}
	svc := newTestService(t, repo)

	for _, role := range Roles() {
		for _, res := range allResources {
			for _, act := range allActions {
				got, err := svc.Enforce(domain.EnforceRequest{
					EmployeeID: "emp-" + string(role),
					Resource:   string(res),
					Action:     string(act),
				})
				require.NoError(t, err)
				assert.Equal(t, HasPermission(role, res, act), got, "%s %s:%s", role, res, act)
			}
		}
	}
}

func TestRBACService_UnassignedEmployeeDenied(t *testing.T) {
	svc := newTestService(t, &memAssignments{})

	allowed, err := svc.Enforce(domain.EnforceRequest{EmployeeID: "nobody", Resource: "leaves", Action: "read"})

	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_RoleChangeAppliesOnNextCheck(t *testing.T) {
	repo := &memAssignments{rows: []RoleAssignment{{EmployeeID: "1", Role: "employee"}}}
	svc := newTestService(t, repo)
	req := domain.EnforceRequest{EmployeeID: "1", Resource: "payroll", Action: "process"}

	allowed, err := svc.Enforce(req)
	require.NoError(t, err)
	assert.False(t, allowed)

	repo.rows = []RoleAssignment{{EmployeeID: "1", Role: "finance"}}
	allowed, err = svc.Enforce(req)
	require.NoError(t, err)
	assert.True(t, allowed)

	repo.rows = []RoleAssignment{{EmployeeID: "1", Role: "employee"}}
	allowed, err = svc.Enforce(req)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_RepositoryError(t *testing.T) {
	svc := newTestService(t, &memAssignments{err: errors.New("store down")})

	_, err := svc.Enforce(domain.EnforceRequest{EmployeeID: "1", Resource: "leaves", Action: "read"})

	assert.EqualError(t, err, "store down")
}

func TestRBACService_Permissions(t *testing.T) {
	svc := newTestService(t, &memAssignments{})

	resp, err := svc.Permissions("finance")
	require.NoError(t, err)
	assert.Equal(t, []domain.PermissionResponse{
		{Resource: "payroll", Actions: []string{"read", "process"}},
		{Resource: "users", Actions: []string{"read"}},
	}, resp.Permissions)

	resp, err = svc.Permissions("super_admin")
	require.NoError(t, err)
	assert.Equal(t, []domain.PermissionResponse{{Resource: "*", Actions: []string{"*"}}}, resp.Permissions)

	_, err = svc.Permissions("intern")
	assert.ErrorIs(t, err, rbacerrors.ErrUnknownRole)
}

// Employee ids that spell a role name must not pick up that role's grants
// or link one role into another.
func TestRBACService_EmployeeIDsNamedAfterRoles(t *testing.T) {
	repo := &memAssignments{rows: []RoleAssignment{
		{EmployeeID: "super_admin", Role: "employee"},
		{EmployeeID: "admin", Role: "super_admin"},
		{EmployeeID: "plain-admin", Role: "admin"},
		{EmployeeID: "finance", Role: "intern"},
	}}
	svc := newTestService(t, repo)

	cases := []struct {
		employeeID string
		role       Role
		resource   Resource
		action     Action
	}{
		{"super_admin", RoleEmployee, ResourcePayroll, ActionProcess},
		{"super_admin", RoleEmployee, ResourceUsers, ActionDelete},
		{"plain-admin", RoleAdmin, ResourcePayroll, ActionDelete},
		{"plain-admin", RoleAdmin, ResourceUsers, ActionDelete},
		{"admin", RoleSuperAdmin, ResourcePayroll, ActionDelete},
	}
	for _, tc := range cases {
		got, err := svc.Enforce(domain.EnforceRequest{
			EmployeeID: tc.employeeID,
			Resource:   string(tc.resource),
			Action:     string(tc.action),
		})
		require.NoError(t, err)
		assert.Equal(t, HasPermission(tc.role, tc.resource, tc.action), got,
			"%s (%s) %s:%s", tc.employeeID, tc.role, tc.resource, tc.action)
	}

	allowed, err := svc.Enforce(domain.EnforceRequest{EmployeeID: "finance", Resource: "payroll", Action: "read"})
	require.NoError(t, err)
	assert.False(t, allowed, "unknown role grants nothing")
}
