package leave

import (
	"context"
	"sync"

	leaveerrors "go-hrms/internal/leave/errors"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r Request) error
	FindAll(ctx context.Context) ([]Request, error)
	FindByID(ctx context.Context, id string) (*Request, error)
	Update(ctx context.Context, r Request) error
}

type repository struct {
	mu   sync.RWMutex
	rows []Request
}

func NewRepository(seed ...Request) Repository {
	rows := make([]Request, len(seed))
	copy(rows, seed)
	return &repository{rows: rows}
}

func (r *repository) Create(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, req)
	return nil
}

func (r *repository) FindAll(_ context.Context) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Request, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *repository) FindByID(_ context.Context, id string) (*Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			found := row
			return &found, nil
		}
	}
	return nil, leaveerrors.ErrLeaveNotFound
}

func (r *repository) Update(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == req.ID {
			r.rows[i] = req
			return nil
		}
	}
	return leaveerrors.ErrLeaveNotFound
}
