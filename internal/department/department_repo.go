package department

import (
	"context"
	"sync"

	departmenterrors "go-hrms/internal/department/errors"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, dept Department) error
	FindAll(ctx context.Context) ([]Department, error)
	FindByValue(ctx context.Context, value string) (*Department, error)
}

type repository struct {
	mu    sync.RWMutex
	depts []Department
}

func NewRepository(seed ...Department) Repository {
	depts := make([]Department, len(seed))
	copy(depts, seed)
	return &repository{depts: depts}
}

func (r *repository) Create(_ context.Context, dept Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.depts {
		if d.Value == dept.Value {
			return departmenterrors.ErrDepartmentExists
		}
	}
	r.depts = append(r.depts, dept)
	return nil
}

func (r *repository) FindAll(_ context.Context) ([]Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Department, len(r.depts))
	copy(out, r.depts)
	return out, nil
}

func (r *repository) FindByValue(_ context.Context, value string) (*Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.depts {
		if d.Value == value {
			found := d
			return &found, nil
		}
	}
	return nil, departmenterrors.ErrDepartmentNotFound
}
