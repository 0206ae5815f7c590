package policyerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrPolicyNotFound = apperror.New(
		apperror.CodeNotFound,
		"policy not found",
		http.StatusNotFound,
	)
	ErrPolicyNotActive = apperror.New(
		apperror.CodeInvalidInput,
		"policy is not active",
		http.StatusBadRequest,
	)
	ErrAlreadyAcknowledged = apperror.New(
		apperror.CodeConflict,
		"policy version already acknowledged",
		http.StatusConflict,
	)
	ErrInvalidPolicyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid policy id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
