package shifterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"No current shift assignment",
		http.StatusNotFound,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidDay = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid day, expected a lower-case weekday name",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAssignmentOverlap = apperror.New(
		apperror.CodeConflict,
		"Start date must be after the current assignment's start date",
		http.StatusConflict,
	)
)
