package courseerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrCourseNotFound = apperror.New(
		apperror.CodeNotFound,
		"course not found",
		http.StatusNotFound,
	)
	ErrCourseInactive = apperror.New(
		apperror.CodeInvalidInput,
		"course is not active",
		http.StatusBadRequest,
	)
	ErrEnrollmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"enrollment not found",
		http.StatusNotFound,
	)
	ErrAlreadyEnrolled = apperror.New(
		apperror.CodeConflict,
		"employee is already enrolled in this course",
		http.StatusConflict,
	)
	ErrInvalidCourseID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid course id",
		http.StatusBadRequest,
	)
	ErrInvalidEnrollmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid enrollment id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid completion_date, expected RFC3339 or YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
)
