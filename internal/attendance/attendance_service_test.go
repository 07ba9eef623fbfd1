package attendance_test

import (
	"context"
	"testing"
	"time"

	"go-hrms/internal/attendance"
	attendanceerrors "go-hrms/internal/attendance/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/visibility"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hh, mm int) time.Time {
	return time.Date(2024, 3, 4, hh, mm, 0, 0, time.Local)
}

func managerOf(id string) string {
	return map[string]string{"1": "4", "3": "2"}[id]
}

func seedRecords() []attendance.Record {
	return []attendance.Record{
		{ID: "a1", UserID: "1", Date: "2023-05-01", CheckIn: "08:00", CheckOut: "17:00", Status: "present", WorkHours: "9h 0m"},
		{ID: "a2", UserID: "3", Date: "2023-05-02", CheckIn: "09:00", CheckOut: "18:00", Status: "late", WorkHours: "9h 0m"},
		{ID: "a3", UserID: "4", Date: "2023-05-03", CheckIn: "08:30", CheckOut: "17:30", Status: "present", WorkHours: "9h 0m"},
	}
}

func TestAttendanceService_ClockIn(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		at         time.Time
		wantStatus string
	}{
		{"before nine is present", at(8, 59), attendance.StatusPresent},
		{"exactly nine is late", at(9, 0), attendance.StatusLate},
		{"afternoon is late", at(13, 5), attendance.StatusLate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := attendance.NewService(attendance.NewRepository(), managerOf)
			resp, err := svc.ClockIn(ctx, "1", tt.at)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, "2024-03-04", resp.Date)
			assert.Equal(t, tt.at.Format("15:04"), resp.CheckIn)
		})
	}

	t.Run("twice on the same day", func(t *testing.T) {
		svc := attendance.NewService(attendance.NewRepository(), managerOf)
		_, err := svc.ClockIn(ctx, "1", at(8, 0))
		require.NoError(t, err)
		_, err = svc.ClockIn(ctx, "1", at(10, 0))
		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedIn)
	})
}

func TestAttendanceService_ClockOut(t *testing.T) {
	ctx := context.Background()
	svc := attendance.NewService(attendance.NewRepository(), managerOf)

	_, err := svc.ClockOut(ctx, "1", at(17, 0))
	assert.ErrorIs(t, err, attendanceerrors.ErrNotClockedIn)

	_, err = svc.ClockIn(ctx, "1", at(8, 15))
	require.NoError(t, err)

	resp, err := svc.ClockOut(ctx, "1", at(17, 30))
	require.NoError(t, err)
	assert.Equal(t, "17:30", resp.CheckOut)
	assert.Equal(t, "9h 15m", resp.WorkHours)

	_, err = svc.ClockOut(ctx, "1", at(18, 0))
	assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyClockedOut)
}

func TestWorkHours(t *testing.T) {
	got, err := attendance.WorkHours("08:00", "17:00")
	require.NoError(t, err)
	assert.Equal(t, "9h 0m", got)

	got, err = attendance.WorkHours("22:00", "06:30")
	require.NoError(t, err)
	assert.Equal(t, "8h 30m", got)

	_, err = attendance.WorkHours("8am", "17:00")
	assert.Error(t, err)
}

func TestAttendanceService_List(t *testing.T) {
	ctx := context.Background()
	svc := attendance.NewService(attendance.NewRepository(seedRecords()...), managerOf)

	ids := func(rs []attendance.RecordResponse) []string {
		out := make([]string, len(rs))
		for i, r := range rs {
			out[i] = r.ID
		}
		return out
	}

	all, err := svc.List(ctx, visibility.Viewer{ID: "5", Role: "finance"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a2", "a1"}, ids(all))

	mgr, err := svc.List(ctx, visibility.Viewer{ID: "4", Role: "manager"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a3", "a1"}, ids(mgr))

	own, err := svc.List(ctx, visibility.Viewer{ID: "3", Role: "employee"}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, ids(own))

	day, err := svc.List(ctx, visibility.Viewer{ID: "6", Role: "super_admin"}, "2023-05-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1"}, ids(day))

	_, err = svc.List(ctx, visibility.Viewer{ID: "6", Role: "super_admin"}, "May 1")
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}

func TestAttendanceService_ListByUser(t *testing.T) {
	ctx := context.Background()
	svc := attendance.NewService(attendance.NewRepository(seedRecords()...), managerOf)

	rows, err := svc.ListByUser(ctx, visibility.Viewer{ID: "4", Role: "manager"}, "1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	_, err = svc.ListByUser(ctx, visibility.Viewer{ID: "1", Role: "employee"}, "3")
	assert.ErrorIs(t, err, apperror.ErrForbidden)
}
