package rbac

import (
	"context"
	"sort"
	"sync"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/shared/metrics"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy(ctx context.Context) error
	Enforce(req domain.EnforceRequest) (bool, error)
	Permissions(role string) (domain.RolePermissionsResponse, error)
}

type service struct {
	repo     Repository
	table    Table
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		table:    DefaultTable,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadPolicy(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked(ctx)
}

func (s *service) loadPolicyUnlocked(ctx context.Context) error {
	s.enforcer.ClearPolicy()

	for _, row := range s.table.Policies() {
		if _, err := s.enforcer.AddPolicy(row[0], row[1], row[2]); err != nil {
			return err
		}
	}

	assignments, err := s.repo.ListRoleAssignments(ctx)
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if a.EmployeeID == "" {
			continue
		}
		// Unknown roles grant nothing in HasPermission, so they get no link.
		role, ok := ParseRole(a.Role)
		if !ok {
			continue
		}
		if _, err := s.enforcer.AddGroupingPolicy(infra.UserSubject(a.EmployeeID), infra.RoleSubject(string(role))); err != nil {
			return err
		}
	}

	// ClearPolicy leaves stale role links behind in some casbin versions.
	if err := s.enforcer.BuildRoleLinks(); err != nil {
		return err
	}

	s.logger.Debug("rbac policy loaded", zap.Int("role_assignments", len(assignments)))
	return nil
}

// Enforce reloads the assignments on every call so role changes made
// through the employee store apply to the next request.
func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadPolicyUnlocked(context.Background()); err != nil {
		s.logger.Error("rbac load policy failed", zap.Error(err))
		return false, err
	}

	allowed, err := s.enforcer.Enforce(infra.UserSubject(req.EmployeeID), req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	metrics.ObservePermissionCheck(req.Resource, req.Action, allowed)
	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) Permissions(role string) (domain.RolePermissionsResponse, error) {
	r, ok := ParseRole(role)
	if !ok {
		return domain.RolePermissionsResponse{}, rbacerrors.ErrUnknownRole
	}
	grants := s.table[r]

	resp := domain.RolePermissionsResponse{Role: role, Permissions: []domain.PermissionResponse{}}
	if grants.AllResources != nil && grants.AllResources.Any {
		resp.Permissions = append(resp.Permissions, domain.PermissionResponse{
			Resource: infra.Wildcard,
			Actions:  []string{infra.Wildcard},
		})
	}
	for res, set := range grants.Resources {
		p := domain.PermissionResponse{Resource: string(res)}
		if set.Any {
			p.Actions = append(p.Actions, infra.Wildcard)
		}
		for _, a := range set.Actions {
			p.Actions = append(p.Actions, string(a))
		}
		resp.Permissions = append(resp.Permissions, p)
	}
	sort.Slice(resp.Permissions, func(i, j int) bool {
		return resp.Permissions[i].Resource < resp.Permissions[j].Resource
	})

	return resp, nil
}
