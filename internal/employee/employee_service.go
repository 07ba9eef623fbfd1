package employee

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/rbac"
	"go-hrms/internal/shared/audit"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/metrics"
	"go-hrms/internal/shared/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultPageSize = 10

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, q ListQuery) ([]EmployeeResponse, int64, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Manager(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, csvText string) ([]EmployeeResponse, error)
	Export(ctx context.Context) (string, error)
	ExportXLSX(ctx context.Context) ([]byte, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	audit     audit.Logger
	newID     func() string
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(repo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	auditLogger audit.Logger,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	return &service{
		repo:      repo,
		publisher: NewOutboxEventPublisher(outboxRepo),
		audit:     auditLogger,
		newID:     uuid.NewString,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.String("role", req.Role),
	)

	if _, ok := rbac.ParseRole(req.Role); !ok {
		return EmployeeResponse{}, employeeerrors.ErrInvalidRole
	}
	if err := s.ensureEmailFree(ctx, req.Email, ""); err != nil {
		return EmployeeResponse{}, err
	}
	if req.ManagerID != "" {
		if _, err := s.repo.FindByID(ctx, req.ManagerID); err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidManager
		}
	}

	empl := Employee{
		Name:         req.Name,
		Email:        req.Email,
		Password:     req.Password,
		Role:         req.Role,
		Department:   req.Department,
		Position:     req.Position,
		Avatar:       req.Avatar,
		Phone:        req.Phone,
		Address:      req.Address,
		DateOfBirth:  req.DateOfBirth,
		CNIC:         req.CNIC,
		Gender:       req.Gender,
		JoinDate:     req.JoinDate,
		IsDeleted:    boolFlag(req.IsDeleted),
		IsManager:    boolFlag(req.IsManager),
		LeaveBalance: req.LeaveBalance,
		ManagerID:    req.ManagerID,
	}
	empl.applyDefaults(s.newID)

	if err := s.repo.Prepend(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	event := events.EmployeeCreatedEvent{
		EventType:  events.EventEmployeeCreated,
		EmployeeID: empl.ID,
		Email:      empl.Email,
		Role:       empl.Role,
		OccurredAt: s.now().UTC(),
	}
	if err := s.publisher.PublishEmployeeCreated(ctx, event); err != nil {
		s.logger.Warn("enqueue employee_created failed",
			zap.String("request_id", rid),
			zap.String("employee_id", empl.ID),
			zap.Error(err),
		)
	}

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID),
	)
	return toResponse(empl), nil
}

func (s *service) GetAll(ctx context.Context, q ListQuery) ([]EmployeeResponse, int64, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	search := strings.ToLower(strings.TrimSpace(q.Q))
	dept := strings.TrimSpace(q.Department)
	filtered := make([]Employee, 0, len(items))
	for _, e := range items {
		if e.Deleted() && !q.IncludeDeleted {
			continue
		}
		if dept != "" && dept != "all" && e.Department != dept {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(e.Name), search) &&
			!strings.Contains(strings.ToLower(e.Email), search) &&
			!strings.Contains(strings.ToLower(e.Position), search) {
			continue
		}
		filtered = append(filtered, e)
	}

	sortEmployees(filtered, q.SortBy, q.SortDir)

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	start, end := response.Paginate(len(filtered), page, pageSize)

	return toResponses(filtered[start:end]), int64(len(filtered)), nil
}

// sortEmployees keeps store order (newest first) when sortBy is empty.
func sortEmployees(items []Employee, sortBy, sortDir string) {
	key := strings.ToLower(strings.TrimSpace(sortBy))
	var field func(Employee) string
	switch key {
	case "name":
		field = func(e Employee) string { return strings.ToLower(e.Name) }
	case "email":
		field = func(e Employee) string { return strings.ToLower(e.Email) }
	case "join_date":
		field = func(e Employee) string { return e.JoinDate }
	case "id":
		field = func(e Employee) string { return e.ID }
	default:
		return
	}
	desc := strings.EqualFold(strings.TrimSpace(sortDir), "desc")
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return field(items[i]) > field(items[j])
		}
		return field(items[i]) < field(items[j])
	})
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return toResponse(*empl), nil
}

func (s *service) Manager(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}
	if empl.ManagerID == "" {
		return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
	}
	mgr, err := s.repo.FindByID(ctx, empl.ManagerID)
	if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
		return EmployeeResponse{}, employeeerrors.ErrManagerNotFound
	}
	if err != nil {
		return EmployeeResponse{}, err
	}
	return toResponse(*mgr), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, err
	}

	if req.Role != nil {
		if _, ok := rbac.ParseRole(*req.Role); !ok {
			return EmployeeResponse{}, employeeerrors.ErrInvalidRole
		}
		empl.Role = *req.Role
	}
	if req.Email != nil && !strings.EqualFold(*req.Email, empl.Email) {
		if err := s.ensureEmailFree(ctx, *req.Email, empl.ID); err != nil {
			return EmployeeResponse{}, err
		}
		empl.Email = *req.Email
	}
	if req.ManagerID != nil {
		mid := *req.ManagerID
		if mid == empl.ID {
			return EmployeeResponse{}, employeeerrors.ErrInvalidManager
		}
		if mid != "" {
			if _, err := s.repo.FindByID(ctx, mid); err != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidManager
			}
		}
		empl.ManagerID = mid
	}
	if req.IsManager != nil {
		empl.IsManager = boolFlag(*req.IsManager)
	}
	setIf(&empl.Name, req.Name)
	setIf(&empl.Department, req.Department)
	setIf(&empl.Position, req.Position)
	setIf(&empl.Avatar, req.Avatar)
	setIf(&empl.Phone, req.Phone)
	setIf(&empl.Address, req.Address)
	setIf(&empl.DateOfBirth, req.DateOfBirth)
	setIf(&empl.CNIC, req.CNIC)
	setIf(&empl.Gender, req.Gender)
	setIf(&empl.JoinDate, req.JoinDate)
	setIf(&empl.LeaveBalance, req.LeaveBalance)

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}
	return toResponse(*empl), nil
}

func setIf(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// Delete is a soft delete; the record stays in the store and in exports.
func (s *service) Delete(ctx context.Context, id string) error {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if empl.Deleted() {
		return employeeerrors.ErrEmployeeDeleted
	}
	empl.IsDeleted = flagTrue
	if err := s.repo.Update(ctx, empl); err != nil {
		return err
	}
	s.logger.Info("employee deleted", zap.String("employee_id", id))
	return nil
}

func (s *service) Import(ctx context.Context, csvText string) ([]EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	imported, err := ParseCSV(csvText, s.newID)
	if err != nil {
		metrics.IncImportFailures()
		s.logger.Warn("csv import rejected", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}

	if err := s.repo.Prepend(ctx, imported...); err != nil {
		s.logger.Error("csv import persist failed", zap.String("request_id", rid), zap.Error(err))
		return nil, err
	}
	metrics.AddImportedEmployees(len(imported))

	ids := make([]string, len(imported))
	for i, e := range imported {
		ids[i] = e.ID
	}
	if len(ids) > 0 {
		event := events.EmployeesImportedEvent{
			EventType:   events.EventEmployeesImported,
			EmployeeIDs: ids,
			ImportedBy:  contextutil.GetUserID(ctx),
			OccurredAt:  s.now().UTC(),
		}
		if err := s.publisher.PublishEmployeesImported(ctx, event); err != nil {
			s.logger.Warn("enqueue employees_imported failed", zap.String("request_id", rid), zap.Error(err))
		}
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  "EMPLOYEES_IMPORTED",
		Message: "employees imported from CSV",
		Meta:    map[string]any{"count": len(imported)},
	})
	s.logger.Info("csv import completed", zap.String("request_id", rid), zap.Int("count", len(imported)))

	return toResponses(imported), nil
}

func (s *service) Export(ctx context.Context) (string, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return "", err
	}
	return WriteCSV(items), nil
}

func (s *service) ExportXLSX(ctx context.Context) ([]byte, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return WriteXLSX(items)
}

func (s *service) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return employeeerrors.ErrEmployeeAlreadyExists
	}
	return nil
}
