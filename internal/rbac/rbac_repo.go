package rbac

import "context"

type RoleAssignment struct {
	EmployeeID string
	Role       string
}

// Repository is the source of employee -> role assignments. The
// permission table itself is static and never read from here.
//
//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	ListRoleAssignments(ctx context.Context) ([]RoleAssignment, error)
}

// RepositoryFunc adapts a plain function to Repository.
type RepositoryFunc func(ctx context.Context) ([]RoleAssignment, error)

func (f RepositoryFunc) ListRoleAssignments(ctx context.Context) ([]RoleAssignment, error) {
	return f(ctx)
}
