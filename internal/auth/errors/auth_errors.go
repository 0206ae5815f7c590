package autherrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrTokenMissing = apperror.New(
		apperror.CodeUnauthorized,
		"Authorization token is missing",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrInvalidCredentials = apperror.New(
		"AUTH_FAILED",
		"Incorrect email or password",
		http.StatusUnauthorized,
	)
	ErrAccountInactive = apperror.New(
		"ACCOUNT_INACTIVE",
		"Account is inactive",
		http.StatusForbidden,
	)
	ErrRefreshTokenMissing = apperror.New(
		"NO_REFRESH_TOKEN",
		"Missing refresh token",
		http.StatusUnauthorized,
	)
	ErrInvalidRefreshToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid refresh token",
		http.StatusUnauthorized,
	)
	ErrRefreshTokenRevoked = apperror.New(
		"INVALID_TOKEN",
		"Refresh token has been revoked",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusConflict,
	)
	ErrAdminAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"An administrator already exists",
		http.StatusConflict,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeInvalidInput,
		"Current password is incorrect",
		http.StatusBadRequest,
	)
)
