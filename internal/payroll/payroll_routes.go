package payroll

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
	resource := string(rbac.ResourcePayroll)
	read := middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionRead))
	process := middleware.RBACAuthorize(rbacService, resource, string(rbac.ActionProcess))

	payrolls := r.Group("/payroll")
	payrolls.Use(auth)
	payrolls.Use(middleware.ContextLogger(logger))
	{
		payrolls.GET("", middleware.RateLimitByUser(5, 20), read, handler.GetAll)
		payrolls.GET("/:id", middleware.RateLimitByUser(5, 20), read, handler.GetById)
		payrolls.GET("/:id/payslip", middleware.RateLimitByUser(1, 5), read, handler.DownloadPayslip)
		payrolls.POST("", middleware.RateLimitByUser(1, 5), process, handler.Process)
		payrolls.POST("/:id/mark-paid", middleware.RateLimitByUser(1, 5), process, handler.MarkAsPaid)
	}
}
