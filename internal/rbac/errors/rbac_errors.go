package rbacerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrUnknownRole = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown role",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeValidation,
		"employee_id, resource, and action are required",
		http.StatusBadRequest,
	)
)
