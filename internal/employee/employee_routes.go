package employee

import (
	"time"

	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	users := string(rbac.ResourceUsers)

	employees := r.Group("/employees")
	employees.Use(auth)
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionRead)),
			handler.GetAll,
		)

		employees.GET("/export.csv",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionRead)),
			handler.Export,
		)

		employees.GET("/export.xlsx",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionRead)),
			handler.ExportXLSX,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionRead)),
			handler.GetById,
		)

		employees.GET("/:id/manager",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionRead)),
			handler.Manager,
		)

		employees.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionCreate)),
			middleware.Idempotency(rdb, 24*time.Hour),
			handler.Create,
		)

		employees.POST("/import",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionCreate)),
			middleware.Idempotency(rdb, 24*time.Hour),
			handler.Import,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionUpdate)),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionDelete)),
			handler.Delete,
		)
	}
}
