package certification

import (
	"errors"

	certificationerrors "go-hrms/internal/certification/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates constraint violations. fkViolation is returned
// for a certification_type_id foreign key failure, which means "type missing"
// on insert and "type in use" on delete.
func mapRepositoryError(err error, fkViolation error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		if pgErr.ConstraintName == "uq_certification_types_name" {
			return certificationerrors.ErrTypeAlreadyExists
		}
	case "23503":
		switch pgErr.ConstraintName {
		case "employee_certifications_certification_type_id_fkey":
			return fkViolation
		case "employee_certifications_employee_id_fkey":
			return certificationerrors.ErrEmployeeNotFound
		}
	}
	return err
}
