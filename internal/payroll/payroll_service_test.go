package payroll_test

import (
	"bytes"
	"context"
	"testing"

	"go-hrms/internal/payroll"
	payrollerrors "go-hrms/internal/payroll/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/visibility"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func managerOf(id string) string { return map[string]string{"1": "4"}[id] }

func seedPayroll() []payroll.Record {
	return []payroll.Record{
		{ID: "p1", UserID: "1", Month: "May", Year: 2023, BasicSalary: d(5000), Allowances: d(500), Deductions: d(1000), NetSalary: d(4500), Status: "paid"},
		{ID: "p2", UserID: "1", Month: "April", Year: 2023, BasicSalary: d(5000), Allowances: d(500), Deductions: d(1000), NetSalary: d(4500), Status: "paid"},
		{ID: "p3", UserID: "3", Month: "May", Year: 2023, BasicSalary: d(4500), Allowances: d(450), Deductions: d(900), NetSalary: d(4050), Status: "processed"},
	}
}

func newService() payroll.Service {
	names := map[string]string{"1": "John Doe", "3": "Robert Jones"}
	return payroll.NewService(payroll.NewRepository(seedPayroll()...), managerOf,
		func(id string) string { return names[id] }, nil)
}

func TestNetSalary(t *testing.T) {
	got := payroll.NetSalary(decimal.RequireFromString("5000.50"), decimal.RequireFromString("500.25"), decimal.RequireFromString("1000.10"))
	assert.True(t, decimal.RequireFromString("4500.65").Equal(got), got.String())
}

func TestParseMonth(t *testing.T) {
	m, ok := payroll.ParseMonth("may")
	assert.True(t, ok)
	assert.Equal(t, "May", m)

	_, ok = payroll.ParseMonth("Mayo")
	assert.False(t, ok)
}

func TestPayrollService_List(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	all, err := svc.List(ctx, visibility.Viewer{ID: "5", Role: "finance"}, payroll.ListQuery{Month: "may", Year: 2023})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	team, err := svc.List(ctx, visibility.Viewer{ID: "4", Role: "manager"}, payroll.ListQuery{})
	require.NoError(t, err)
	assert.Len(t, team, 2)

	own, err := svc.List(ctx, visibility.Viewer{ID: "3", Role: "employee"}, payroll.ListQuery{Year: 2023})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "p3", own[0].ID)

	_, err = svc.List(ctx, visibility.Viewer{ID: "5", Role: "finance"}, payroll.ListQuery{Month: "13"})
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidMonth)
}

func TestPayrollService_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("computes net salary", func(t *testing.T) {
		svc := newService()
		resp, err := svc.Process(ctx, "5", payroll.ProcessPayrollRequest{
			UserID: "3", Month: "June", Year: 2023,
			BasicSalary: d(4500), Allowances: d(450), Deductions: d(900),
		})
		require.NoError(t, err)
		assert.True(t, d(4050).Equal(resp.NetSalary))
		assert.Equal(t, payroll.StatusProcessed, resp.Status)
	})

	t.Run("one record per user and period", func(t *testing.T) {
		svc := newService()
		_, err := svc.Process(ctx, "5", payroll.ProcessPayrollRequest{UserID: "1", Month: "May", Year: 2023, BasicSalary: d(1)})
		assert.ErrorIs(t, err, payrollerrors.ErrPayrollExists)
	})

	t.Run("negative amount", func(t *testing.T) {
		svc := newService()
		_, err := svc.Process(ctx, "5", payroll.ProcessPayrollRequest{UserID: "1", Month: "June", Year: 2023, Deductions: d(-1)})
		assert.ErrorIs(t, err, payrollerrors.ErrNegativeAmount)
	})

	t.Run("bad year", func(t *testing.T) {
		svc := newService()
		_, err := svc.Process(ctx, "5", payroll.ProcessPayrollRequest{UserID: "1", Month: "June", Year: 23})
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidYear)
	})
}

func TestPayrollService_MarkPaid(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	resp, err := svc.MarkPaid(ctx, "5", "p3")
	require.NoError(t, err)
	assert.Equal(t, payroll.StatusPaid, resp.Status)

	_, err = svc.MarkPaid(ctx, "5", "p3")
	assert.ErrorIs(t, err, payrollerrors.ErrInvalidStatusTransition)

	_, err = svc.MarkPaid(ctx, "5", "missing")
	assert.ErrorIs(t, err, payrollerrors.ErrPayrollNotFound)
}

func TestPayrollService_Payslip(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	pdf, name, err := svc.Payslip(ctx, visibility.Viewer{ID: "1", Role: "employee"}, "p1")
	require.NoError(t, err)
	assert.Equal(t, "payslip-1-May-2023.pdf", name)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-1.4")))
	assert.True(t, bytes.HasSuffix(pdf, []byte("%%EOF")))
	assert.Contains(t, string(pdf), "(Employee: John Doe) Tj")
	assert.Contains(t, string(pdf), "(Net salary: 4500.00) Tj")

	_, _, err = svc.Payslip(ctx, visibility.Viewer{ID: "1", Role: "employee"}, "p3")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
