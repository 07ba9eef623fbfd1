package rbac

import (
	"net/http"
	"strings"

	"go-hrms/internal/domain"
	rbacerrors "go-hrms/internal/rbac/errors"
	"go-hrms/internal/shared/apperror"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rbac request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Enforce(c *gin.Context) {
	var req domain.EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	req.EmployeeID = strings.TrimSpace(req.EmployeeID)
	req.Resource = strings.TrimSpace(req.Resource)
	req.Action = strings.TrimSpace(req.Action)
	if req.EmployeeID == "" || req.Resource == "" || req.Action == "" {
		h.writeError(c, rbacerrors.ErrMissingRequiredFields)
		return
	}

	// Asking about someone else needs users:read.
	if caller := c.GetString("user_id"); req.EmployeeID != caller {
		ok, err := h.service.Enforce(domain.EnforceRequest{
			EmployeeID: caller,
			Resource:   string(ResourceUsers),
			Action:     string(ActionRead),
		})
		if err != nil {
			h.writeError(c, err)
			return
		}
		if !ok {
			h.writeError(c, apperror.ErrForbidden)
			return
		}
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

// Permissions lists the grants of ?role=, defaulting to the caller's role.
func (h *Handler) Permissions(c *gin.Context) {
	role := strings.TrimSpace(c.Query("role"))
	if role == "" {
		role = c.GetString("role")
	}

	resp, err := h.service.Permissions(role)
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Check answers ?resource=&action= for the caller's role using the static
// table only.
func (h *Handler) Check(c *gin.Context) {
	role := c.GetString("role")
	resource := strings.TrimSpace(c.Query("resource"))
	action := strings.TrimSpace(c.Query("action"))

	response.Success(c, http.StatusOK, domain.EnforceResponse{
		Allowed: Allowed(role, resource, action),
	}, nil)
}
