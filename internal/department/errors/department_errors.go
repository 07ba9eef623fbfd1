package departmenterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrDepartmentExists = apperror.New(
		apperror.CodeConflict,
		"Department already exists",
		http.StatusConflict,
	)
	ErrInvalidDepartmentValue = apperror.New(
		apperror.CodeInvalidInput,
		"Department value must be lower-case letters, digits, '-' or '_'",
		http.StatusBadRequest,
	)
)
