package certificationerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrTypeNotFound = apperror.New(
		apperror.CodeNotFound,
		"certification type not found",
		http.StatusNotFound,
	)
	ErrTypeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"certification type already exists",
		http.StatusConflict,
	)
	ErrTypeInUse = apperror.New(
		apperror.CodeConflict,
		"certification type is referenced by employee certifications",
		http.StatusConflict,
	)
	ErrCertificationNotFound = apperror.New(
		apperror.CodeNotFound,
		"certification not found",
		http.StatusNotFound,
	)
	ErrInvalidTypeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid certification type id",
		http.StatusBadRequest,
	)
	ErrInvalidCertificationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid certification id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrExpiryBeforeIssue = apperror.New(
		apperror.CodeValidation,
		"expiry_date must not be before issue_date",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
)
