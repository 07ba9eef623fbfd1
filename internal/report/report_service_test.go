package report_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go-hrms/internal/attendance"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/report"
	reporterrors "go-hrms/internal/report/errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingEmployees struct {
	employee.Repository
	calls atomic.Int32
}

func (c *countingEmployees) FindAll(ctx context.Context) ([]employee.Employee, error) {
	c.calls.Add(1)
	return c.Repository.FindAll(ctx)
}

func fixtures() (*countingEmployees, attendance.Repository, leave.Repository) {
	emps := &countingEmployees{Repository: employee.NewRepository(
		employee.Employee{ID: "1", Department: "engineering", IsDeleted: "false"},
		employee.Employee{ID: "2", Department: "hr", IsDeleted: "false"},
		employee.Employee{ID: "3", Department: "engineering", IsDeleted: "false"},
		employee.Employee{ID: "4", Department: "sales", IsDeleted: "true"},
		employee.Employee{ID: "5", Department: "finance", IsDeleted: "false"},
	)}
	att := attendance.NewRepository(
		attendance.Record{ID: "1", UserID: "1", Date: "2023-05-01", Status: attendance.StatusPresent},
		attendance.Record{ID: "2", UserID: "2", Date: "2023-05-01", Status: attendance.StatusLate},
		attendance.Record{ID: "3", UserID: "1", Date: "2023-05-02", Status: attendance.StatusPresent},
	)
	leaves := leave.NewRepository(
		leave.Request{ID: "1", UserID: "1", StartDate: "2023-06-10", Status: leave.StatusApproved},
		leave.Request{ID: "2", UserID: "2", StartDate: "2023-05-15", Status: leave.StatusPending},
		leave.Request{ID: "3", UserID: "3", StartDate: "2023-05-20", Status: leave.StatusApproved},
		leave.Request{ID: "4", UserID: "3", StartDate: "2023-05-28", Status: leave.StatusRejected},
	)
	return emps, att, leaves
}

func TestReportService_Dashboard(t *testing.T) {
	emps, att, leaves := fixtures()
	svc := report.NewService(emps, att, leaves, nil)

	got, err := svc.Dashboard(context.Background(), "2023-05-01")
	require.NoError(t, err)

	assert.Equal(t, 4, got.TotalEmployees)
	assert.Equal(t, 2, got.PresentToday)
	assert.Equal(t, 1, got.PendingLeaves)
	assert.Equal(t, []report.DepartmentCount{
		{Department: "engineering", Count: 2},
		{Department: "finance", Count: 1},
		{Department: "hr", Count: 1},
	}, got.DepartmentDistribution)
	assert.Equal(t, []report.AttendancePoint{
		{Date: "2023-05-01", Present: 1, Late: 1},
		{Date: "2023-05-02", Present: 1},
	}, got.AttendanceTrend)
	assert.Equal(t, []report.MonthCount{
		{Month: "2023-05", Count: 1},
		{Month: "2023-06", Count: 1},
	}, got.LeavesByMonth)
}

func TestReportService_DashboardInvalidDate(t *testing.T) {
	emps, att, leaves := fixtures()
	_, err := report.NewService(emps, att, leaves, nil).Dashboard(context.Background(), "yesterday")
	assert.ErrorIs(t, err, reporterrors.ErrInvalidDate)
}

func TestReportService_DashboardCached(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	emps, att, leaves := fixtures()
	svc := report.NewService(emps, att, leaves, rdb)
	ctx := context.Background()

	first, err := svc.Dashboard(ctx, "2023-05-01")
	require.NoError(t, err)
	assert.True(t, mr.Exists(report.GetDashboardKey("2023-05-01")))

	second, err := svc.Dashboard(ctx, "2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), emps.calls.Load())

	mr.FastForward(2 * time.Minute)
	_, err = svc.Dashboard(ctx, "2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, int32(2), emps.calls.Load())
}

func TestReportService_DashboardConcurrent(t *testing.T) {
	emps, att, leaves := fixtures()
	svc := report.NewService(emps, att, leaves, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := svc.Dashboard(context.Background(), "2023-05-02")
			assert.NoError(t, err)
			assert.Equal(t, 1, got.PresentToday)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, emps.calls.Load(), int32(8))
}
