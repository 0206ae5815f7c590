package performanceerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrRatingNotFound = apperror.New(
		apperror.CodeNotFound,
		"rating not found",
		http.StatusNotFound,
	)
	ErrReviewNotFound = apperror.New(
		apperror.CodeNotFound,
		"review not found",
		http.StatusNotFound,
	)
	ErrInvalidRating = apperror.New(
		apperror.CodeValidation,
		"rating must be between 1 and 5",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidation,
		"period_start must not be after period_end",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidInput,
		"review status cannot move backwards",
		http.StatusBadRequest,
	)
	ErrReviewNotDraft = apperror.New(
		apperror.CodeInvalidInput,
		"only draft reviews can be deleted",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidRatingID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid rating id",
		http.StatusBadRequest,
	)
	ErrInvalidReviewID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid review id",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
)
