package payroll

import (
	"context"
	"sync"

	payrollerrors "go-hrms/internal/payroll/errors"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, r Record) error
	FindAll(ctx context.Context) ([]Record, error)
	FindByID(ctx context.Context, id string) (*Record, error)
	ExistsForPeriod(ctx context.Context, userID, month string, year int) (bool, error)
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
	for _, row := range r.rows {
		if row.UserID == rec.UserID && row.Month == rec.Month && row.Year == rec.Year {
			return payrollerrors.ErrPayrollExists
		}
	}
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

func (r *repository) FindByID(_ context.Context, id string) (*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			found := row
			return &found, nil
		}
	}
	return nil, payrollerrors.ErrPayrollNotFound
}

func (r *repository) ExistsForPeriod(_ context.Context, userID, month string, year int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.UserID == userID && row.Month == month && row.Year == year {
			return true, nil
		}
	}
	return false, nil
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
	return payrollerrors.ErrPayrollNotFound
}
