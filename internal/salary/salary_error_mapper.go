package salary

import (
	"errors"

	salaryerrors "go-hrms/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23503":
		return salaryerrors.ErrEmployeeNotFound
	case "23514":
		if pgErr.ConstraintName == "tax_infos_tax_regime_check" {
			return salaryerrors.ErrInvalidTaxRegime
		}
		return salaryerrors.ErrNegativeAmount
	}
	return err
}
