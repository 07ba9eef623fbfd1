package report

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts /reports. Reports are not a permission-table
// resource, so access is by role.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc, logger *zap.Logger) {
	reports := r.Group("/reports")
	reports.Use(auth)
	reports.Use(middleware.ContextLogger(logger))
	reports.Use(middleware.RoleMiddleware(
		string(rbac.RoleSuperAdmin),
		string(rbac.RoleAdmin),
		string(rbac.RoleFinance),
	))
	{
		reports.GET("/dashboard", middleware.RateLimitByUser(2, 10), handler.Dashboard)
	}
}
