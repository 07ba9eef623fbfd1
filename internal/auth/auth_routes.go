package auth

import (
	"go-hrms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	group := r.Group("/auth")
	{
		group.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		group.POST("/register", middleware.RateLimitByIP(0.2, 5), handler.Register)
		group.POST("/logout", auth, middleware.RateLimitByUser(2, 5), handler.Logout)
		group.GET("/me", auth, middleware.RateLimitByUser(2, 5), handler.Me)
		group.GET("/navigation", auth, middleware.RateLimitByUser(2, 5), handler.Navigation)
		group.PUT("/profile", auth, middleware.RateLimitByUser(1, 5), handler.UpdateProfile)
		group.PUT("/password", auth, middleware.RateLimitByUser(0.5, 3), handler.ChangePassword)
	}
}
