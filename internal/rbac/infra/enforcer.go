package infra

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Wildcard is how the permission table's "any" variants are spelled in
// casbin policies.
const Wildcard = "*"

// Subjects carry a kind prefix so an employee id can never be read as a
// role name, or the other way round.
const (
	rolePrefix = "role:"
	userPrefix = "user:"
)

// RoleSubject is the casbin subject of a role in "p" and "g" rows.
func RoleSubject(role string) string { return rolePrefix + role }

// UserSubject is the casbin subject of an employee in "g" rows and requests.
func UserSubject(employeeID string) string { return userPrefix + employeeID }

// ModelText grants when the subject (directly or through a g role) has
// the wildcard resource with the wildcard action, or has the exact
// resource with the requested action or the wildcard action.
const ModelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && ((p.obj == "*" && p.act == "*") || (r.obj == p.obj && (r.act == p.act || p.act == "*")))
`

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(ModelText)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}

func NewEnforcerFromFile(modelPath string) (*casbin.Enforcer, error) {
	return casbin.NewEnforcer(modelPath)
}
