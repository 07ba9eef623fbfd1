package rbac

import "slices"

type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleManager    Role = "manager"
	RoleFinance    Role = "finance"
	RoleEmployee   Role = "employee"
)

var roles = []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleFinance, RoleEmployee}

// Roles returns every known role, most privileged first.
func Roles() []Role {
	return slices.Clone(roles)
}

// ParseRole reports false for anything outside the fixed enumeration.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	if slices.Contains(roles, r) {
		return r, true
	}
	return "", false
}

type Resource string

const (
	ResourceUsers      Resource = "users"
	ResourceAttendance Resource = "attendance"
	ResourceLeaves     Resource = "leaves"
	ResourceShifts     Resource = "shifts"
	ResourcePayroll    Resource = "payroll"
)

type Action string

const (
	ActionRead    Action = "read"
	ActionCreate  Action = "create"
	ActionUpdate  Action = "update"
	ActionDelete  Action = "delete"
	ActionApprove Action = "approve"
	ActionProcess Action = "process"
)

// ActionSet is either every action (Any) or an explicit list.
type ActionSet struct {
	Any     bool
	Actions []Action
}

func AllActions() ActionSet {
	return ActionSet{Any: true}
}

func Only(actions ...Action) ActionSet {
	return ActionSet{Actions: actions}
}

func (s ActionSet) Allows(a Action) bool {
	return s.Any || slices.Contains(s.Actions, a)
}

// Grants is one role's row of the permission table. AllResources is the
// wildcard resource entry; it is nil for every role but super_admin.
type Grants struct {
	AllResources *ActionSet
	Resources    map[Resource]ActionSet
}

type Table map[Role]Grants
