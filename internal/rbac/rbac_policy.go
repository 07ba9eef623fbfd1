package rbac

import (
	"sort"

	"go-hrms/internal/rbac/infra"
)

// Policies flattens the table into casbin "p" rows (role subject, resource, action).
func (t Table) Policies() [][]string {
	var rows [][]string
	for _, role := range Roles() {
		grants, ok := t[role]
		if !ok {
			continue
		}
		sub := infra.RoleSubject(string(role))
		if grants.AllResources != nil && grants.AllResources.Any {
			rows = append(rows, []string{sub, infra.Wildcard, infra.Wildcard})
		}

		resources := make([]string, 0, len(grants.Resources))
		for res := range grants.Resources {
			resources = append(resources, string(res))
		}
		sort.Strings(resources)

		for _, res := range resources {
			set := grants.Resources[Resource(res)]
			if set.Any {
				rows = append(rows, []string{sub, res, infra.Wildcard})
			}
			for _, act := range set.Actions {
				rows = append(rows, []string{sub, res, string(act)})
			}
		}
	}
	return rows
}
