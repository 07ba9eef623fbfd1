package shift

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
	resource := string(rbac.ResourceShifts)
	read := middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionRead))
	create := middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionCreate))
	update := middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionUpdate))

	shifts := r.Group("/shifts")
	shifts.Use(auth)
	shifts.Use(middleware.ContextLogger(logger))
	{
		shifts.GET("", middleware.RateLimitByUser(5, 20), read, handler.GetShifts)
		shifts.GET("/me", middleware.RateLimitByUser(5, 20), read, handler.MyShift)
		shifts.GET("/assignments", middleware.RateLimitByUser(5, 20), read, handler.GetAssignments)
		shifts.POST("", middleware.RateLimitByUser(1, 5), create, handler.CreateShift)
		shifts.POST("/assignments", middleware.RateLimitByUser(1, 5), update, handler.Assign)
	}
}
