package rbac

// DefaultTable is the static permission table of the dashboard.
var DefaultTable = Table{
	RoleSuperAdmin: {
		AllResources: &ActionSet{Any: true},
	},
	RoleAdmin: {
		Resources: map[Resource]ActionSet{
			ResourceUsers:      Only(ActionRead, ActionCreate, ActionUpdate, ActionDelete),
			ResourceAttendance: Only(ActionRead, ActionCreate, ActionUpdate),
			ResourceLeaves:     Only(ActionRead, ActionCreate, ActionUpdate, ActionApprove),
			ResourceShifts:     Only(ActionRead, ActionCreate, ActionUpdate),
			ResourcePayroll:    Only(ActionRead, ActionProcess),
		},
	},
	RoleManager: {
		Resources: map[Resource]ActionSet{
			ResourceUsers:      Only(ActionRead),
			ResourceAttendance: Only(ActionRead),
			ResourceLeaves:     Only(ActionRead, ActionApprove),
			ResourceShifts:     Only(ActionRead),
			ResourcePayroll:    Only(ActionRead),
		},
	},
	RoleFinance: {
		Resources: map[Resource]ActionSet{
			ResourcePayroll: Only(ActionRead, ActionProcess),
			ResourceUsers:   Only(ActionRead),
		},
	},
	RoleEmployee: {
		Resources: map[Resource]ActionSet{
			ResourceAttendance: Only(ActionRead, ActionCreate),
			ResourceLeaves:     Only(ActionRead, ActionCreate),
			ResourceShifts:     Only(ActionRead),
			ResourcePayroll:    Only(ActionRead),
		},
	},
}

// HasPermission checks, in order: unknown role, the wildcard resource
// entry with the wildcard action, then the resource's own action set.
func (t Table) HasPermission(role Role, resource Resource, action Action) bool {
	grants, ok := t[role]
	if !ok {
		return false
	}

	if grants.AllResources != nil && grants.AllResources.Any {
		return true
	}

	set, ok := grants.Resources[resource]
	if !ok {
		return false
	}

	return set.Allows(action)
}

func HasPermission(role Role, resource Resource, action Action) bool {
	return DefaultTable.HasPermission(role, resource, action)
}

// Allowed is HasPermission for untyped input, e.g. a role read from a
// token or a CSV row.
func Allowed(role, resource, action string) bool {
	r, ok := ParseRole(role)
	if !ok {
		return false
	}
	return DefaultTable.HasPermission(r, Resource(resource), Action(action))
}
