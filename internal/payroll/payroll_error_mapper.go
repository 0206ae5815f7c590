package payroll

import (
	"errors"

	payrollerrors "go-hrms/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		if pgErr.ConstraintName == "uq_payslips_employee_period" {
			return payrollerrors.ErrPayslipAlreadyExists
		}
	case "23503":
		switch pgErr.ConstraintName {
		case "payslips_employee_id_fkey":
			return payrollerrors.ErrEmployeeNotFound
		case "payslips_salary_id_fkey":
			return payrollerrors.ErrSalaryNotFound
		}
	case "23514":
		return payrollerrors.ErrInvalidPeriod
	}
	return err
}
