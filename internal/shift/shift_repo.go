package shift

import (
	"context"
	"sync"

	shifterrors "go-hrms/internal/shift/errors"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	FindAllShifts(ctx context.Context) ([]Shift, error)
	FindShiftByID(ctx context.Context, id string) (*Shift, error)
	CreateShift(ctx context.Context, s Shift) error
	FindAllAssignments(ctx context.Context) ([]Assignment, error)
	// ReplaceOpenAssignment closes the user's open assignment with endDate
	// and stores next in the same critical section.
	ReplaceOpenAssignment(ctx context.Context, next Assignment, endDate string) error
}

type repository struct {
	mu          sync.RWMutex
	shifts      []Shift
	assignments []Assignment
}

func NewRepository(shifts []Shift, assignments []Assignment) Repository {
	r := &repository{
		shifts:      make([]Shift, 0, len(shifts)),
		assignments: make([]Assignment, len(assignments)),
	}
	for _, s := range shifts {
		r.shifts = append(r.shifts, cloneShift(s))
	}
	copy(r.assignments, assignments)
	return r
}

func cloneShift(s Shift) Shift {
	s.Days = append([]string(nil), s.Days...)
	return s
}

func (r *repository) FindAllShifts(_ context.Context) ([]Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Shift, len(r.shifts))
	for i, s := range r.shifts {
		out[i] = cloneShift(s)
	}
	return out, nil
}

func (r *repository) FindShiftByID(_ context.Context, id string) (*Shift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.shifts {
		if s.ID == id {
			found := cloneShift(s)
			return &found, nil
		}
	}
	return nil, shifterrors.ErrShiftNotFound
}

func (r *repository) CreateShift(_ context.Context, s Shift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shifts = append(r.shifts, cloneShift(s))
	return nil
}

func (r *repository) FindAllAssignments(_ context.Context) ([]Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Assignment, len(r.assignments))
	copy(out, r.assignments)
	return out, nil
}

func (r *repository) ReplaceOpenAssignment(_ context.Context, next Assignment, endDate string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	open := -1
	for i, a := range r.assignments {
		if a.UserID == next.UserID && a.Open() {
			open = i
		}
	}
	if open >= 0 {
		if next.StartDate <= r.assignments[open].StartDate {
			return shifterrors.ErrAssignmentOverlap
		}
		r.assignments[open].EndDate = endDate
	}
	r.assignments = append(r.assignments, next)
	return nil
}
