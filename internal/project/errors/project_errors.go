package projecterrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"project not found",
		http.StatusNotFound,
	)
	ErrProjectNotActive = apperror.New(
		apperror.CodeInvalidInput,
		"project is not active",
		http.StatusBadRequest,
	)
	ErrAlreadyAssigned = apperror.New(
		apperror.CodeConflict,
		"employee is already assigned to this project",
		http.StatusConflict,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"active project assignment not found",
		http.StatusNotFound,
	)
	ErrInvalidAllocation = apperror.New(
		apperror.CodeValidation,
		"allocation_percentage must be between 1 and 100",
		http.StatusBadRequest,
	)
	ErrOverAllocated = apperror.New(
		apperror.CodeValidation,
		"total allocation for the employee would exceed 100%",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeValidation,
		"start_date must not be after end_date",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNegativeBudget = apperror.New(
		apperror.CodeValidation,
		"budget must not be negative",
		http.StatusBadRequest,
	)
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid project id",
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
)
