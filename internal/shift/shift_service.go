package shift

import (
	"context"
	"strings"
	"time"

	"go-hrms/internal/shared/visibility"
	shifterrors "go-hrms/internal/shift/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	ListShifts(ctx context.Context) ([]ShiftResponse, error)
	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	ListAssignments(ctx context.Context, viewer visibility.Viewer) ([]AssignmentResponse, error)
	Assign(ctx context.Context, req AssignShiftRequest) (AssignmentResponse, error)
	MyShift(ctx context.Context, userID string, on time.Time) (MyShiftResponse, error)
}

type service struct {
	repo      Repository
	managerOf visibility.ManagerOf
	logger    *zap.Logger
}

func NewService(repo Repository, managerOf visibility.ManagerOf, logger ...*zap.Logger) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{repo: repo, managerOf: managerOf, logger: l}
}

func (s *service) ListShifts(ctx context.Context) ([]ShiftResponse, error) {
	rows, err := s.repo.FindAllShifts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ShiftResponse, len(rows))
	for i, r := range rows {
		out[i] = mapShift(r)
	}
	return out, nil
}

func (s *service) CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error) {
	if _, err := time.Parse(TimeLayout, req.StartTime); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidTime
	}
	if _, err := time.Parse(TimeLayout, req.EndTime); err != nil {
		return ShiftResponse{}, shifterrors.ErrInvalidTime
	}

	days := make([]string, 0, len(req.Days))
	seen := make(map[string]bool, len(req.Days))
	for _, d := range req.Days {
		d = strings.ToLower(strings.TrimSpace(d))
		if !validDay(d) {
			return ShiftResponse{}, shifterrors.ErrInvalidDay
		}
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}

	row := Shift{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Days:      days,
	}
	if err := s.repo.CreateShift(ctx, row); err != nil {
		return ShiftResponse{}, err
	}
	s.logger.Info("shift created", zap.String("shift_id", row.ID), zap.String("name", row.Name))
	return mapShift(row), nil
}

func (s *service) ListAssignments(ctx context.Context, viewer visibility.Viewer) ([]AssignmentResponse, error) {
	rows, err := s.repo.FindAllAssignments(ctx)
	if err != nil {
		return nil, err
	}
	rows = visibility.Filter(rows, viewer, func(a Assignment) string { return a.UserID }, s.managerOf)
	out := make([]AssignmentResponse, len(rows))
	for i, r := range rows {
		out[i] = mapAssignment(r)
	}
	return out, nil
}

// Assign starts a new assignment and ends the user's open one the day before.
func (s *service) Assign(ctx context.Context, req AssignShiftRequest) (AssignmentResponse, error) {
	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return AssignmentResponse{}, shifterrors.ErrInvalidDate
	}
	if _, err := s.repo.FindShiftByID(ctx, req.ShiftID); err != nil {
		return AssignmentResponse{}, err
	}

	row := Assignment{
		ID:        uuid.NewString(),
		UserID:    req.UserID,
		ShiftID:   req.ShiftID,
		StartDate: req.StartDate,
	}
	end := start.AddDate(0, 0, -1).Format(DateLayout)
	if err := s.repo.ReplaceOpenAssignment(ctx, row, end); err != nil {
		return AssignmentResponse{}, err
	}
	s.logger.Info("shift assigned",
		zap.String("user_id", row.UserID),
		zap.String("shift_id", row.ShiftID),
		zap.String("start_date", row.StartDate),
	)
	return mapAssignment(row), nil
}

// MyShift returns the assignment covering the given day, latest start first.
func (s *service) MyShift(ctx context.Context, userID string, on time.Time) (MyShiftResponse, error) {
	rows, err := s.repo.FindAllAssignments(ctx)
	if err != nil {
		return MyShiftResponse{}, err
	}

	date := on.Format(DateLayout)
	var current *Assignment
	for i := range rows {
		a := rows[i]
		if a.UserID != userID || !a.ActiveOn(date) {
			continue
		}
		if current == nil || a.StartDate > current.StartDate {
			current = &rows[i]
		}
	}
	if current == nil {
		return MyShiftResponse{}, shifterrors.ErrAssignmentNotFound
	}

	sh, err := s.repo.FindShiftByID(ctx, current.ShiftID)
	if err != nil {
		return MyShiftResponse{}, err
	}
	return MyShiftResponse{Assignment: mapAssignment(*current), Shift: mapShift(*sh)}, nil
}
