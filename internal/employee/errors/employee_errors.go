package employeeerrors

import (
	"net/http"
	"strings"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee has no manager",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)
	ErrInvalidManager = apperror.New(
		apperror.CodeInvalidInput,
		"Manager must be another existing employee",
		http.StatusBadRequest,
	)
	ErrEmployeeDeleted = apperror.New(
		apperror.CodeInvalidState,
		"Employee is already deleted",
		http.StatusConflict,
	)
	ErrInvalidCSV = apperror.New(
		apperror.CodeValidation,
		"Failed to import CSV. Please check the file format.",
		http.StatusBadRequest,
	)
	ErrImportTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"CSV file is too large",
		http.StatusRequestEntityTooLarge,
	)
	ErrEmptyImport = apperror.New(
		apperror.CodeInvalidInput,
		"CSV file is required",
		http.StatusBadRequest,
	)
)

// MissingColumns names every required column, not only the absent ones.
func MissingColumns(required []string) *apperror.AppError {
	return apperror.New(
		apperror.CodeValidation,
		"CSV must have columns: "+strings.Join(required, ", "),
		http.StatusBadRequest,
	)
}
