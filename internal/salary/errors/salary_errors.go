package salaryerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary details not found",
		http.StatusNotFound,
	)
	ErrTaxInfoNotFound = apperror.New(
		apperror.CodeNotFound,
		"tax information not found",
		http.StatusNotFound,
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
	ErrNegativeAmount = apperror.New(
		apperror.CodeValidation,
		"salary amounts must not be negative",
		http.StatusBadRequest,
	)
	ErrBasicSalaryRequired = apperror.New(
		apperror.CodeValidation,
		"basic_salary is required for the first salary record",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid effective_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPAN = apperror.New(
		apperror.CodeValidation,
		"invalid PAN number, expected format AAAAA9999A",
		http.StatusBadRequest,
	)
	ErrInvalidTaxRegime = apperror.New(
		apperror.CodeValidation,
		"tax_regime must be old or new",
		http.StatusBadRequest,
	)
)
