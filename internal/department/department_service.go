package department

import (
	"context"
	"regexp"
	"strings"

	departmenterrors "go-hrms/internal/department/errors"

	"go.uber.org/zap"
)

// Headcount returns the number of non-deleted employees per department value.
type Headcount func(ctx context.Context) (map[string]int, error)

var valuePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByValue(ctx context.Context, value string) (DepartmentResponse, error)
}

type service struct {
	repo      Repository
	headcount Headcount
	logger    *zap.Logger
}

func NewService(repo Repository, headcount Headcount, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	if headcount == nil {
		headcount = func(context.Context) (map[string]int, error) { return map[string]int{}, nil }
	}
	return &service{repo: repo, headcount: headcount, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	dept := Department{
		Value: strings.ToLower(strings.TrimSpace(req.Value)),
		Label: strings.TrimSpace(req.Label),
	}
	if !valuePattern.MatchString(dept.Value) {
		return DepartmentResponse{}, departmenterrors.ErrInvalidDepartmentValue
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		return DepartmentResponse{}, err
	}
	s.logger.Info("department created", zap.String("value", dept.Value))

	counts, err := s.headcount(ctx)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(dept, counts), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.headcount(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(depts, counts), nil
}

func (s *service) GetByValue(ctx context.Context, value string) (DepartmentResponse, error) {
	dept, err := s.repo.FindByValue(ctx, strings.ToLower(value))
	if err != nil {
		return DepartmentResponse{}, err
	}
	counts, err := s.headcount(ctx)
	if err != nil {
		return DepartmentResponse{}, err
	}
	return mapToResponse(*dept, counts), nil
}

func mapToResponse(dept Department, counts map[string]int) DepartmentResponse {
	return DepartmentResponse{
		Value:         dept.Value,
		Label:         dept.Label,
		EmployeeCount: counts[dept.Value],
	}
}

func mapToListResponse(depts []Department, counts map[string]int) []DepartmentResponse {
	res := make([]DepartmentResponse, len(depts))
	for i, d := range depts {
		res[i] = mapToResponse(d, counts)
	}
	return res
}
