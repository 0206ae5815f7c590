package benefit

import (
	"errors"

	benefiterrors "go-hrms/internal/benefit/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		if pgErr.ConstraintName == "uq_employee_benefits_active" {
			return benefiterrors.ErrAlreadyAssigned
		}
	case "23503":
		switch pgErr.ConstraintName {
		case "employee_benefits_employee_id_fkey":
			return benefiterrors.ErrEmployeeNotFound
		case "employee_benefits_benefit_id_fkey":
			return benefiterrors.ErrBenefitNotFound
		}
	}
	return err
}
