package attendance

import (
	"context"
	"sync"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r Record) error
	FindAll(ctx context.Context) ([]Record, error)
	FindByUser(ctx context.Context, userID string) ([]Record, error)
	// FindByUserAndDate returns nil when the user has no record that day.
	FindByUserAndDate(ctx context.Context, userID, date string) (*Record, error)
	Update(ctx context.Context, r Record) error
}

type repository struct {
	mu   sync.RWMutex
	rows []Record
}

func NewRepository(seed ...Record) Repository {
	rows := make([]Record, len(seed))
	copy(rows, seed)
	return &repository{rows: rows}
}

func (r *repository) Create(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rec)
	return nil
}

func (r *repository) FindAll(_ context.Context) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.rows))
	copy(out, r.rows)
	return out, nil
}

func (r *repository) FindByUser(_ context.Context, userID string) ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, 0)
	for _, rec := range r.rows {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *repository) FindByUserAndDate(_ context.Context, userID, date string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.rows {
		if rec.UserID == userID && rec.Date == date {
			found := rec
			return &found, nil
		}
	}
	return nil, nil
}

func (r *repository) Update(_ context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.rows {
		if r.rows[i].ID == rec.ID {
			r.rows[i] = rec
			return nil
		}
	}
	return nil
}
