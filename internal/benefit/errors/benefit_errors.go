package benefiterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrBenefitNotFound = apperror.New(
		apperror.CodeNotFound,
		"benefit not found",
		http.StatusNotFound,
	)
	ErrBenefitInactive = apperror.New(
		apperror.CodeInvalidState,
		"benefit is not active",
		http.StatusBadRequest,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"benefit assignment not found",
		http.StatusNotFound,
	)
	ErrAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"employee already has this benefit",
		http.StatusConflict,
	)
	ErrInvalidBenefitID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid benefit id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidAssignmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid assignment id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"end_date must not be before start_date",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
)
