package app

import (
	"context"

	"go-hrms/internal/attendance"
	"go-hrms/internal/auth"
	"go-hrms/internal/config"
	"go-hrms/internal/department"
	"go-hrms/internal/employee"
	"go-hrms/internal/leave"
	"go-hrms/internal/messaging/kafka"
	"go-hrms/internal/middleware"
	"go-hrms/internal/payroll"
	"go-hrms/internal/rbac"
	"go-hrms/internal/rbac/infra"
	"go-hrms/internal/report"
	"go-hrms/internal/seed"
	"go-hrms/internal/shared/audit"
	"go-hrms/internal/shift"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type modules struct {
	outbox kafka.OutboxRepository
}

// directory answers manager and name lookups for the scoped services.
type directory struct {
	repo employee.Repository
}

func (d directory) managerOf(userID string) string {
	e, err := d.repo.FindByID(context.Background(), userID)
	if err != nil {
		return ""
	}
	return e.ManagerID
}

func (d directory) nameOf(userID string) string {
	e, err := d.repo.FindByID(context.Background(), userID)
	if err != nil {
		return ""
	}
	return e.Name
}

func (d directory) roleAssignments(ctx context.Context) ([]rbac.RoleAssignment, error) {
	emps, err := d.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]rbac.RoleAssignment, 0, len(emps))
	for _, e := range emps {
		if e.Deleted() {
			continue
		}
		out = append(out, rbac.RoleAssignment{EmployeeID: e.ID, Role: e.Role})
	}
	return out, nil
}

func (d directory) headcount(ctx context.Context) (map[string]int, error) {
	emps, err := d.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, e := range emps {
		if e.Deleted() {
			continue
		}
		counts[e.Department]++
	}
	return counts, nil
}

func newEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath != "" {
		return infra.NewEnforcerFromFile(modelPath)
	}
	return infra.NewEnforcer()
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	rdb *redis.Client,
	auditLogger audit.Logger,
	logger *zap.Logger,
) (*modules, error) {
	data := seed.Empty()
	if cfg.Seed {
		data = seed.Demo()
	}

	// --- Repositories ---
	employeeRepo := employee.NewRepository(data.Employees...)
	attendanceRepo := attendance.NewRepository(data.Attendance...)
	leaveRepo := leave.NewRepository(data.Leaves...)
	payrollRepo := payroll.NewRepository(data.Payroll...)
	shiftRepo := shift.NewRepository(data.Shifts, data.Assignments)
	departmentRepo := department.NewRepository(department.DefaultDepartments...)
	outboxRepo := kafka.NewOutboxRepository()

	var sessions auth.SessionStore = auth.NewMemorySessionStore()
	if rdb != nil {
		sessions = auth.NewRedisSessionStore(rdb)
	}

	dir := directory{repo: employeeRepo}

	// --- RBAC Core ---
	enforcer, err := newEnforcer(cfg.Auth.RBACModelPath)
	if err != nil {
		return nil, err
	}
	rbacService := rbac.NewService(rbac.RepositoryFunc(dir.roleAssignments), enforcer, logger)
	if err := rbacService.LoadPolicy(context.Background()); err != nil {
		return nil, err
	}

	// --- Services ---
	authCfg := auth.Config{Secret: []byte(cfg.Auth.JWTSecret), SessionTTL: cfg.Auth.SessionTTL}
	authService := auth.NewService(employeeRepo, sessions, authCfg, logger)
	employeeService := employee.NewServiceWithOutbox(employeeRepo, outboxRepo, auditLogger, logger)
	attendanceService := attendance.NewService(attendanceRepo, dir.managerOf, logger)
	leaveService := leave.NewService(leaveRepo, dir.managerOf, logger)
	payrollService := payroll.NewService(payrollRepo, dir.managerOf, dir.nameOf, auditLogger, logger)
	shiftService := shift.NewService(shiftRepo, dir.managerOf, logger)
	departmentService := department.NewService(departmentRepo, dir.headcount, logger)
	reportService := report.NewService(employeeRepo, attendanceRepo, leaveRepo, rdb, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, authCfg, cfg.IsProduction(), logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	payrollHandler := payroll.NewHandler(payrollService, logger)
	shiftHandler := shift.NewHandler(shiftService, logger)
	departmentHandler := department.NewHandler(departmentService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	requireAuth := middleware.AuthMiddleware(authService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, requireAuth)
		employee.RegisterRoutes(api, employeeHandler, rbacService, requireAuth, rdb, logger)
		department.RegisterRoutes(api, departmentHandler, rbacService, requireAuth, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, requireAuth, logger)
		leave.RegisterRoutes(api, leaveHandler, rbacService, requireAuth, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, requireAuth, logger)
		shift.RegisterRoutes(api, shiftHandler, rbacService, requireAuth, logger)
		report.RegisterRoutes(api, reportHandler, requireAuth, logger)
		rbac.RegisterRoutes(api, rbacHandler, requireAuth)
	}

	logger.Info("modules registered",
		zap.Int("employees", len(data.Employees)),
		zap.Bool("demo_data", cfg.Seed),
		zap.Bool("redis", rdb != nil),
	)
	return &modules{outbox: outboxRepo}, nil
}
