package leave

import (
	"context"
	"sort"
	"sync"
	"time"

	leaveerrors "go-hrms/internal/leave/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/visibility"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, actorID string, req ApplyLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, viewer visibility.Viewer) ([]LeaveResponse, error)
	GetByID(ctx context.Context, viewer visibility.Viewer, id string) (LeaveResponse, error)
	PendingApprovals(ctx context.Context, viewer visibility.Viewer) ([]LeaveResponse, error)
	Approve(ctx context.Context, viewer visibility.Viewer, id string) (LeaveResponse, error)
	Reject(ctx context.Context, viewer visibility.Viewer, id string) (LeaveResponse, error)
}

type service struct {
	repo      Repository
	managerOf visibility.ManagerOf
	mu        sync.Mutex
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, managerOf visibility.ManagerOf, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{repo: repo, managerOf: managerOf, now: time.Now, logger: l}
}

func (s *service) Apply(ctx context.Context, actorID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	if !validType(req.Type) {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}
	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	end, err := time.Parse(DateLayout, req.EndDate)
	if err != nil || end.Before(start) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	row := Request{
		ID:        uuid.NewString(),
		UserID:    actorID,
		Type:      req.Type,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    req.Reason,
		Status:    StatusPending,
		CreatedAt: s.now().Format(DateLayout),
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("leave_id", row.ID),
		zap.String("user_id", actorID),
		zap.String("type", row.Type),
	)
	return mapToResponse(row), nil
}

func (s *service) visible(ctx context.Context, viewer visibility.Viewer) ([]Request, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rows = visibility.Filter(rows, viewer, func(r Request) string { return r.UserID }, s.managerOf)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].CreatedAt > rows[j].CreatedAt })
	return rows, nil
}

func (s *service) List(ctx context.Context, viewer visibility.Viewer) ([]LeaveResponse, error) {
	rows, err := s.visible(ctx, viewer)
	if err != nil {
		return nil, err
	}
	return mapToResponses(rows), nil
}

func (s *service) GetByID(ctx context.Context, viewer visibility.Viewer, id string) (LeaveResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !visibility.CanSee(viewer, row.UserID, s.managerOf) {
		return LeaveResponse{}, apperror.ErrForbidden
	}
	return mapToResponse(*row), nil
}

// PendingApprovals lists visible pending requests other than the viewer's own.
func (s *service) PendingApprovals(ctx context.Context, viewer visibility.Viewer) ([]LeaveResponse, error) {
	rows, err := s.visible(ctx, viewer)
	if err != nil {
		return nil, err
	}
	out := make([]Request, 0, len(rows))
	for _, r := range rows {
		if r.Status == StatusPending && r.UserID != viewer.ID {
			out = append(out, r)
		}
	}
	return mapToResponses(out), nil
}

func (s *service) Approve(ctx context.Context, viewer visibility.Viewer, id string) (LeaveResponse, error) {
	return s.review(ctx, viewer, id, StatusApproved)
}

func (s *service) Reject(ctx context.Context, viewer visibility.Viewer, id string) (LeaveResponse, error) {
	return s.review(ctx, viewer, id, StatusRejected)
}

func (s *service) review(ctx context.Context, viewer visibility.Viewer, id, status string) (LeaveResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !visibility.CanSee(viewer, row.UserID, s.managerOf) {
		return LeaveResponse{}, apperror.ErrForbidden
	}
	if row.UserID == viewer.ID {
		return LeaveResponse{}, leaveerrors.ErrSelfApproval
	}
	if row.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}

	row.Status = status
	if status == StatusApproved {
		row.ApprovedBy = viewer.ID
	}
	if err := s.repo.Update(ctx, *row); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave reviewed",
		zap.String("leave_id", id),
		zap.String("status", status),
		zap.String("reviewer_id", viewer.ID),
	)
	return mapToResponse(*row), nil
}
