package leave

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
	resource := string(rbac.ResourceLeaves)
	read := middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionRead))
	approve := middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionApprove))

	leaves := r.Group("/leaves")
	leaves.Use(auth)
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.GET("", read, handler.GetAll)
		leaves.GET("/pending", approve, handler.Pending)
		leaves.GET("/:id", read, handler.GetById)
		leaves.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionCreate)),
			handler.Apply,
		)
		leaves.POST("/:id/approve", middleware.RateLimitByUser(1, 5), approve, handler.Approve)
		leaves.POST("/:id/reject", middleware.RateLimitByUser(1, 5), approve, handler.Reject)
	}
}
