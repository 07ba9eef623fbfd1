package autherrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrSessionNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Session expired or logged out",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue token",
		http.StatusInternalServerError,
	)
	ErrNameRequired = apperror.New(
		apperror.CodeValidation,
		"First name and last name are required",
		http.StatusBadRequest,
	)
	ErrProfileNameRequired = apperror.New(
		apperror.CodeValidation,
		"Name is required",
		http.StatusBadRequest,
	)
	ErrEmailRequired = apperror.New(
		apperror.CodeValidation,
		"Email is required",
		http.StatusBadRequest,
	)
	ErrPasswordRequired = apperror.New(
		apperror.CodeValidation,
		"Password is required",
		http.StatusBadRequest,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeValidation,
		"Passwords do not match",
		http.StatusBadRequest,
	)
	ErrTermsNotAccepted = apperror.New(
		apperror.CodeValidation,
		"You must agree to the terms and conditions",
		http.StatusBadRequest,
	)
	ErrCurrentPasswordInvalid = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email is already used by another account",
		http.StatusConflict,
	)
	ErrDemoAccountCredentials = apperror.New(
		apperror.CodeInvalidState,
		"Demo account credentials cannot be changed",
		http.StatusConflict,
	)
)
