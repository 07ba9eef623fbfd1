package employee

import (
	"context"
	"strings"
	"sync"

	employeeerrors "go-hrms/internal/employee/errors"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	// Prepend puts items at the head of the list, keeping their order.
	Prepend(ctx context.Context, items ...Employee) error
	Update(ctx context.Context, e *Employee) error
}

// repository is the in-memory employee store, newest record first.
type repository struct {
	mu    sync.RWMutex
	items []Employee
}

func NewRepository(seed ...Employee) Repository {
	items := make([]Employee, len(seed))
	copy(items, seed)
	return &repository{items: items}
}

func (r *repository) FindAll(_ context.Context) ([]Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Employee, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repository) FindByID(_ context.Context, id string) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, employeeerrors.ErrEmployeeNotFound
}

func (r *repository) FindByEmail(_ context.Context, email string) (*Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items {
		if strings.EqualFold(e.Email, email) {
			found := e
			return &found, nil
		}
	}
	return nil, employeeerrors.ErrEmployeeNotFound
}

func (r *repository) Prepend(_ context.Context, items ...Employee) error {
	if len(items) == 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]Employee, 0, len(items)+len(r.items))
	next = append(next, items...)
	r.items = append(next, r.items...)
	return nil
}

func (r *repository) Update(_ context.Context, e *Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == e.ID {
			r.items[i] = *e
			return nil
		}
	}
	return employeeerrors.ErrEmployeeNotFound
}
