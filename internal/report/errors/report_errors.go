package reporterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var ErrInvalidDate = apperror.New(
	apperror.CodeInvalidInput,
	"Invalid date, expected YYYY-MM-DD",
	http.StatusBadRequest,
)
