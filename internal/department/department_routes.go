package department

import (
	"go-hrms/internal/middleware"
	"go-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts /departments. The catalogue belongs to the
// employee directory, so it is guarded by the users resource.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	auth gin.HandlerFunc,
	logger *zap.Logger,
) {
	users := string(rbac.ResourceUsers)

	departments := r.Group("/departments")
	departments.Use(auth)
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionRead)),
			handler.GetAll,
		)
		departments.GET("/:value",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionRead)),
			handler.GetByValue,
		)
		departments.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, users, string(rbac.ActionCreate)),
			handler.Create,
		)
	}
}
