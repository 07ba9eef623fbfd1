package attendance

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/visibility"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, userID string, at time.Time) (RecordResponse, error)
	ClockOut(ctx context.Context, userID string, at time.Time) (RecordResponse, error)
	List(ctx context.Context, viewer visibility.Viewer, date string) ([]RecordResponse, error)
	ListByUser(ctx context.Context, viewer visibility.Viewer, userID string) ([]RecordResponse, error)
}

type service struct {
	repo      Repository
	managerOf visibility.ManagerOf
	// serialises the read-check-write of clock in/out
	mu     sync.Mutex
	logger *zap.Logger
}

func NewService(repo Repository, managerOf visibility.ManagerOf, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, managerOf: managerOf, logger: l}
}

func (s *service) ClockIn(ctx context.Context, userID string, at time.Time) (RecordResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := at.Format(DateLayout)
	existing, err := s.repo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return RecordResponse{}, err
	}
	if existing != nil {
		return RecordResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}

	status := StatusPresent
	if at.Hour()*60+at.Minute() >= lateFrom {
		status = StatusLate
	}

	row := Record{
		ID:      uuid.NewString(),
		UserID:  userID,
		Date:    date,
		CheckIn: at.Format(TimeLayout),
		Status:  status,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("clock in",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.String("status", status),
	)
	return mapToResponse(row), nil
}

func (s *service) ClockOut(ctx context.Context, userID string, at time.Time) (RecordResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	date := at.Format(DateLayout)
	row, err := s.repo.FindByUserAndDate(ctx, userID, date)
	if err != nil {
		return RecordResponse{}, err
	}
	if row == nil {
		return RecordResponse{}, attendanceerrors.ErrNotClockedIn
	}
	if !row.Open() {
		return RecordResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.CheckOut = at.Format(TimeLayout)
	hours, err := WorkHours(row.CheckIn, row.CheckOut)
	if err != nil {
		return RecordResponse{}, apperror.ErrInternal.WithCause(err)
	}
	row.WorkHours = hours

	if err := s.repo.Update(ctx, *row); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("clock out",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.String("work_hours", hours),
	)
	return mapToResponse(*row), nil
}

// List returns the records the viewer may see, newest date first. An
// empty date means every day.
func (s *service) List(ctx context.Context, viewer visibility.Viewer, date string) ([]RecordResponse, error) {
	if date != "" {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return nil, attendanceerrors.ErrInvalidDate
		}
	}

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rows = visibility.Filter(rows, viewer, func(r Record) string { return r.UserID }, s.managerOf)

	if date != "" {
		filtered := rows[:0]
		for _, r := range rows {
			if r.Date == date {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Date > rows[j].Date })
	return mapToResponses(rows), nil
}

func (s *service) ListByUser(ctx context.Context, viewer visibility.Viewer, userID string) ([]RecordResponse, error) {
	if !visibility.CanSee(viewer, userID, s.managerOf) {
		return nil, apperror.ErrForbidden
	}
	rows, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToResponses(rows), nil
}

// WorkHours formats the span between two HH:MM times as "9h 15m". A
// check-out earlier than check-in is taken to be on the next day.
func WorkHours(checkIn, checkOut string) (string, error) {
	in, err := time.Parse(TimeLayout, checkIn)
	if err != nil {
		return "", err
	}
	out, err := time.Parse(TimeLayout, checkOut)
	if err != nil {
		return "", err
	}
	d := out.Sub(in)
	if d < 0 {
		d += 24 * time.Hour
	}
	mins := int(d.Minutes())
	return fmt.Sprintf("%dh %dm", mins/60, mins%60), nil
}
