package payrollerrors

import (
	"net/http"

	"go-hrms/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"payslip not found",
		http.StatusNotFound,
	)
	ErrPayslipAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"payslip already generated for this period",
		http.StatusConflict,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary details not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payslip id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeValidation,
		"month must be 1-12 and year between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrRenderFailed = apperror.New(
		apperror.CodeInternalError,
		"failed to render payslip",
		http.StatusInternalServerError,
	)
)
