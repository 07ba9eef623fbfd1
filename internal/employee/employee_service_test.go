package employee_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"go-hrms/internal/employee"
	employeeerrors "go-hrms/internal/employee/errors"
	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type serviceDeps struct {
	repo    employee.Repository
	outbox  kafka.OutboxRepository
	service employee.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	seed := sampleEmployees()
	seed[0].ManagerID = "2"
	repo := employee.NewRepository(seed...)
	outbox := kafka.NewOutboxRepository()
	return &serviceDeps{
		repo:    repo,
		outbox:  outbox,
		service: employee.NewServiceWithOutbox(repo, outbox, nil),
	}
}

func pendingEvents(t *testing.T, outbox kafka.OutboxRepository) []kafka.OutboxEvent {
	t.Helper()
	evs, err := outbox.ListPending(context.Background(), 100)
	require.NoError(t, err)
	return evs
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		Name:       "New Hire",
		Email:      "new@example.com",
		Password:   "pw",
		Role:       "employee",
		Department: "Engineering",
		Position:   "Intern",
		JoinDate:   "2024-07-01",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - defaults and prepend", func(t *testing.T) {
		deps := setupServiceTest(t)

		resp, err := deps.service.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "30", resp.LeaveBalance)
		assert.False(t, resp.IsDeleted)
		assert.False(t, resp.IsManager)

		all, err := deps.repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, resp.ID, all[0].ID)

		evs := pendingEvents(t, deps.outbox)
		require.Len(t, evs, 1)
		assert.Equal(t, events.EventEmployeeCreated, evs[0].EventType)
		assert.Equal(t, events.EmployeeLifecycleTopic, evs[0].Topic)
		var payload events.EmployeeCreatedEvent
		require.NoError(t, json.Unmarshal(evs[0].Payload, &payload))
		assert.Equal(t, resp.ID, payload.EmployeeID)
	})

	t.Run("invalid role", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.Role = "ceo"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidRole)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.Email = "JOHN@example.com"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("unknown manager", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := validCreateRequest()
		req.ManagerID = "404"

		_, err := deps.service.Create(ctx, req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidManager)
	})

	t.Run("without outbox", func(t *testing.T) {
		svc := employee.NewService(employee.NewRepository())
		_, err := svc.Create(ctx, validCreateRequest())
		assert.NoError(t, err)
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	t.Run("search by position is case insensitive", func(t *testing.T) {
		resp, total, err := deps.service.GetAll(ctx, employee.ListQuery{Q: "hr MANAGER"})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, "2", resp[0].ID)
	})

	t.Run("department all means no filter", func(t *testing.T) {
		_, total, err := deps.service.GetAll(ctx, employee.ListQuery{Department: "all"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})

	t.Run("sort by name desc and paginate", func(t *testing.T) {
		resp, total, err := deps.service.GetAll(ctx, employee.ListQuery{SortBy: "name", SortDir: "desc", Page: 1, PageSize: 1})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, resp, 1)
		assert.Equal(t, "John Doe", resp[0].Name)
	})

	t.Run("deleted records hidden unless requested", func(t *testing.T) {
		require.NoError(t, deps.service.Delete(ctx, "1"))

		_, total, err := deps.service.GetAll(ctx, employee.ListQuery{})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)

		_, total, err = deps.service.GetAll(ctx, employee.ListQuery{IncludeDeleted: true})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
	})
}

func TestEmployeeService_Manager(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	mgr, err := deps.service.Manager(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "2", mgr.ID)

	_, err = deps.service.Manager(ctx, "2")
	assert.ErrorIs(t, err, employeeerrors.ErrManagerNotFound)

	_, err = deps.service.Manager(ctx, "nope")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		deps := setupServiceTest(t)
		pos := "Staff Engineer"
		mgr := true

		resp, err := deps.service.Update(ctx, "1", employee.UpdateEmployeeRequest{Position: &pos, IsManager: &mgr})
		require.NoError(t, err)
		assert.Equal(t, "Staff Engineer", resp.Position)
		assert.True(t, resp.IsManager)
		assert.Equal(t, "John Doe", resp.Name)
	})

	t.Run("self as manager rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		self := "1"
		_, err := deps.service.Update(ctx, "1", employee.UpdateEmployeeRequest{ManagerID: &self})
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidManager)
	})

	t.Run("email taken", func(t *testing.T) {
		deps := setupServiceTest(t)
		email := "jane@example.com"
		_, err := deps.service.Update(ctx, "1", employee.UpdateEmployeeRequest{Email: &email})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Update(ctx, "x", employee.UpdateEmployeeRequest{})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	require.NoError(t, deps.service.Delete(ctx, "2"))
	got, err := deps.service.GetByID(ctx, "2")
	require.NoError(t, err)
	assert.True(t, got.IsDeleted)

	assert.ErrorIs(t, deps.service.Delete(ctx, "2"), employeeerrors.ErrEmployeeDeleted)
	assert.ErrorIs(t, deps.service.Delete(ctx, "x"), employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeService_Import(t *testing.T) {
	ctx := context.Background()
	header := strings.Join(employee.CSVColumns, ",")

	t.Run("two rows are prepended in file order", func(t *testing.T) {
		deps := setupServiceTest(t)
		text := header + "\n" +
			`"10","Row One","one@example.com","","employee","Ops","A","","","","","","","2024-01-01","false","false","30"` + "\n" +
			`"11","Row Two","two@example.com","","employee","Ops","B","","","","","","","2024-01-02","false","false","30"`

		imported, err := deps.service.Import(ctx, text)
		require.NoError(t, err)
		require.Len(t, imported, 2)

		all, err := deps.repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, []string{"10", "11", "1", "2"}, []string{all[0].ID, all[1].ID, all[2].ID, all[3].ID})

		evs := pendingEvents(t, deps.outbox)
		require.Len(t, evs, 1)
		assert.Equal(t, events.EventEmployeesImported, evs[0].EventType)
	})

	t.Run("missing email column leaves store unchanged", func(t *testing.T) {
		deps := setupServiceTest(t)
		badHeader := strings.Replace(header, ",email", "", 1)

		_, err := deps.service.Import(ctx, badHeader+"\n1,x")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email")

		all, err := deps.repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, sampleEmployees()[1], all[1])
		assert.Len(t, all, 2)
		assert.Empty(t, pendingEvents(t, deps.outbox))
	})

	t.Run("export then import round trips", func(t *testing.T) {
		deps := setupServiceTest(t)
		exported, err := deps.service.Export(ctx)
		require.NoError(t, err)

		fresh := employee.NewRepository()
		svc := employee.NewService(fresh)
		_, err = svc.Import(ctx, exported)
		require.NoError(t, err)

		all, err := fresh.FindAll(ctx)
		require.NoError(t, err)
		want := sampleEmployees()
		assert.Equal(t, want, all)
	})
}

func TestEmployeeService_ExportXLSX(t *testing.T) {
	deps := setupServiceTest(t)
	body, err := deps.service.ExportXLSX(context.Background())
	require.NoError(t, err)
	// xlsx files are zip archives
	assert.Equal(t, []byte("PK"), body[:2])
}
