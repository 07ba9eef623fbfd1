// Package visibility decides which user-owned records (attendance,
// leaves, payroll) a viewer may see.
package visibility

import (
	"context"

	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/contextutil"
)

type Viewer struct {
	ID   string
	Role string
}

// ManagerOf returns the manager id of userID, or "" when there is none.
type ManagerOf func(userID string) string

// SeesAll reports whether the role sees every user's records.
func SeesAll(role string) bool {
	switch rbac.Role(role) {
	case rbac.RoleSuperAdmin, rbac.RoleAdmin, rbac.RoleFinance:
		return true
	}
	return false
}

// CanSee: super_admin, admin and finance see everything; a manager sees
// their own records and their direct reports'; anyone else sees their own.
func CanSee(v Viewer, ownerID string, managerOf ManagerOf) bool {
	if SeesAll(v.Role) {
		return true
	}
	if v.ID == "" {
		return false
	}
	if ownerID == v.ID {
		return true
	}
	if rbac.Role(v.Role) == rbac.RoleManager && managerOf != nil {
		return managerOf(ownerID) == v.ID
	}
	return false
}

// Filter keeps the items whose owner the viewer can see, preserving order.
func Filter[T any](items []T, v Viewer, owner func(T) string, managerOf ManagerOf) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if CanSee(v, owner(it), managerOf) {
			out = append(out, it)
		}
	}
	return out
}

// FromContext builds the viewer from the identity AuthMiddleware stored.
func FromContext(ctx context.Context) Viewer {
	return Viewer{ID: contextutil.GetUserID(ctx), Role: contextutil.GetRole(ctx)}
}
