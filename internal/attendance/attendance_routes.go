package attendance

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	resource := string(rbac.ResourceAttendance)

	attendance := r.Group("/attendance")
	attendance.Use(auth)
	attendance.Use(middleware.ContextLogger(logger))
	{
		attendance.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionRead)),
			handler.GetAll,
		)
		attendance.GET("/users/:id",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionRead)),
			handler.GetByUser,
		)
		attendance.POST("/clock-in",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionCreate)),
			handler.ClockIn,
		)
		attendance.POST("/clock-out",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionCreate)),
			handler.ClockOut,
		)
	}
}
