package middleware

import (
	"context"
	"strings"

	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/contextutil"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Principal is the authenticated caller. Every user is an employee, so
// UserID doubles as the employee id used for RBAC checks.
type Principal struct {
	UserID    string
	Role      string
	SessionID string
}

// SessionVerifier resolves a bearer token to a live session.
type SessionVerifier interface {
	Verify(ctx context.Context, token string) (Principal, error)
}

const AccessTokenCookie = "access_token"

func AuthMiddleware(verifier SessionVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, apperror.ErrUnauthorized.HTTPStatus, apperror.CodeUnauthorized, "Token not found", nil)
			c.Abort()
			return
		}

		p, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set("user_id", p.UserID)
		c.Set(string(ContextEmployeeID), p.UserID)
		c.Set("role", p.Role)
		c.Set("session_id", p.SessionID)

		ctx := contextutil.WithUserID(c.Request.Context(), p.UserID)
		ctx = contextutil.WithRole(ctx, p.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RoleMiddleware admits only the listed roles. Used for pages that are
// gated by role name rather than by a permission (reports, settings).
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")

		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		forbidden := apperror.ErrForbidden
		response.Error(c, forbidden.HTTPStatus, forbidden.Code, forbidden.Message, nil)
		c.Abort()
	}
}
