package department_test

import (
	"context"
	"errors"
	"testing"

	"go-hrms/internal/department"
	departmenterrors "go-hrms/internal/department/errors"
	mock_department "go-hrms/internal/department/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func headcount(context.Context) (map[string]int, error) {
	return map[string]int{"engineering": 2, "hr": 1}, nil
}

func newService() department.Service {
	return department.NewService(department.NewRepository(department.DefaultDepartments...), headcount)
}

func TestDepartmentService_GetAll(t *testing.T) {
	res, err := newService().GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, res, len(department.DefaultDepartments))
	assert.Equal(t, department.DepartmentResponse{Value: "engineering", Label: "Engineering", EmployeeCount: 2}, res[0])
	assert.Equal(t, 0, res[5].EmployeeCount)
}

func TestDepartmentService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("normalises value", func(t *testing.T) {
		svc := newService()
		res, err := svc.Create(ctx, department.CreateDepartmentRequest{Value: " Legal ", Label: "Legal"})
		require.NoError(t, err)
		assert.Equal(t, "legal", res.Value)

		got, err := svc.GetByValue(ctx, "LEGAL")
		require.NoError(t, err)
		assert.Equal(t, "Legal", got.Label)
	})

	t.Run("duplicate", func(t *testing.T) {
		_, err := newService().Create(ctx, department.CreateDepartmentRequest{Value: "hr", Label: "HR"})
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentExists)
	})

	t.Run("invalid value", func(t *testing.T) {
		_, err := newService().Create(ctx, department.CreateDepartmentRequest{Value: "r&d", Label: "R&D"})
		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentValue)
	})
}

func TestDepartmentService_GetByValueMissing(t *testing.T) {
	_, err := newService().GetByValue(context.Background(), "space")
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}

func TestDepartmentService_WithMockRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("repository error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_department.NewMockRepository(ctrl)
		svc := department.NewService(repo, headcount)

		repo.EXPECT().FindAll(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := svc.GetAll(ctx)
		assert.EqualError(t, err, "boom")
	})

	t.Run("invalid value never reaches the repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_department.NewMockRepository(ctrl)
		svc := department.NewService(repo, headcount)

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Value: "a b", Label: "AB"})
		assert.ErrorIs(t, err, departmenterrors.ErrInvalidDepartmentValue)
	})

	t.Run("headcount error after create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_department.NewMockRepository(ctrl)
		failing := func(context.Context) (map[string]int, error) { return nil, errors.New("directory down") }
		svc := department.NewService(repo, failing)

		repo.EXPECT().
			Create(gomock.Any(), department.Department{Value: "legal", Label: "Legal"}).
			Return(nil)

		_, err := svc.Create(ctx, department.CreateDepartmentRequest{Value: "legal", Label: "Legal"})
		assert.EqualError(t, err, "directory down")
	})
}
