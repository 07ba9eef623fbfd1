package payroll

import (
	"context"
	"fmt"
	"time"

	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/audit"
	"go-hrms/internal/shared/visibility"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// NameOf resolves a user id to a display name for payslips.
type NameOf func(userID string) string

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, viewer visibility.Viewer, q ListQuery) ([]PayrollResponse, error)
	GetByID(ctx context.Context, viewer visibility.Viewer, id string) (PayrollResponse, error)
	Process(ctx context.Context, actorID string, req ProcessPayrollRequest) (PayrollResponse, error)
	MarkPaid(ctx context.Context, actorID, id string) (PayrollResponse, error)
	Payslip(ctx context.Context, viewer visibility.Viewer, id string) ([]byte, string, error)
}

type service struct {
	repo      Repository
	managerOf visibility.ManagerOf
	nameOf    NameOf
	audit     audit.Logger
	logger    *zap.Logger
}

func NewService(repo Repository, managerOf visibility.ManagerOf, nameOf NameOf, auditLogger audit.Logger, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop()
	}
	if nameOf == nil {
		nameOf = func(string) string { return "" }
	}
	return &service{repo: repo, managerOf: managerOf, nameOf: nameOf, audit: auditLogger, logger: l}
}

func (s *service) List(ctx context.Context, viewer visibility.Viewer, q ListQuery) ([]PayrollResponse, error) {
	month := ""
	if q.Month != "" {
		m, ok := ParseMonth(q.Month)
		if !ok {
			return nil, payrollerrors.ErrInvalidMonth
		}
		month = m
	}

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	rows = visibility.Filter(rows, viewer, func(r Record) string { return r.UserID }, s.managerOf)

	out := make([]Record, 0, len(rows))
	for _, r := range rows {
		if month != "" && r.Month != month {
			continue
		}
		if q.Year != 0 && r.Year != q.Year {
			continue
		}
		out = append(out, r)
	}
	return mapToListResponse(out), nil
}

func (s *service) GetByID(ctx context.Context, viewer visibility.Viewer, id string) (PayrollResponse, error) {
	row, err := s.visibleRecord(ctx, viewer, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) visibleRecord(ctx context.Context, viewer visibility.Viewer, id string) (*Record, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !visibility.CanSee(viewer, row.UserID, s.managerOf) {
		return nil, apperror.ErrForbidden
	}
	return row, nil
}

func (s *service) Process(ctx context.Context, actorID string, req ProcessPayrollRequest) (PayrollResponse, error) {
	month, ok := ParseMonth(req.Month)
	if !ok {
		return PayrollResponse{}, payrollerrors.ErrInvalidMonth
	}
	if req.Year < 2000 || req.Year > 9999 {
		return PayrollResponse{}, payrollerrors.ErrInvalidYear
	}
	if req.BasicSalary.IsNegative() || req.Allowances.IsNegative() || req.Deductions.IsNegative() {
		return PayrollResponse{}, payrollerrors.ErrNegativeAmount
	}

	row := Record{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Month:       month,
		Year:        req.Year,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
		Deductions:  req.Deductions,
		NetSalary:   NetSalary(req.BasicSalary, req.Allowances, req.Deductions),
		Status:      StatusProcessed,
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return PayrollResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  "PAYROLL_PROCESSED",
		Message: fmt.Sprintf("payroll %s %d processed", month, req.Year),
		Meta:    map[string]any{"payroll_id": row.ID, "user_id": row.UserID, "actor_id": actorID},
	})
	s.logger.Info("payroll processed",
		zap.String("payroll_id", row.ID),
		zap.String("user_id", row.UserID),
		zap.String("net_salary", row.NetSalary.String()),
	)
	return mapToResponse(row), nil
}

func (s *service) MarkPaid(ctx context.Context, actorID, id string) (PayrollResponse, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return PayrollResponse{}, err
	}
	if row.Status != StatusProcessed {
		return PayrollResponse{}, payrollerrors.ErrInvalidStatusTransition
	}

	row.Status = StatusPaid
	if err := s.repo.Update(ctx, *row); err != nil {
		return PayrollResponse{}, err
	}

	s.audit.Log(ctx, audit.Entry{
		Action:  "PAYROLL_PAID",
		Message: "payroll marked as paid",
		Meta:    map[string]any{"payroll_id": id, "actor_id": actorID, "paid_at": time.Now().UTC().Format(time.RFC3339)},
	})
	return mapToResponse(*row), nil
}

// Payslip renders the record as PDF and returns the file name with it.
func (s *service) Payslip(ctx context.Context, viewer visibility.Viewer, id string) ([]byte, string, error) {
	row, err := s.visibleRecord(ctx, viewer, id)
	if err != nil {
		return nil, "", err
	}
	pdf := renderPDF(payslipLines(*row, s.nameOf(row.UserID)))
	filename := fmt.Sprintf("payslip-%s-%s-%d.pdf", row.UserID, row.Month, row.Year)
	return pdf, filename, nil
}
