package attendance

import (
	"errors"

	attendanceerrors "go-hrms/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// mapRepositoryError translates constraint violations. A clash on the
// one-record-per-day constraint becomes duplicate.
func mapRepositoryError(err error, duplicate error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		if pgErr.ConstraintName == "uq_attendance_employee_date" {
			return duplicate
		}
	case "23503":
		if pgErr.ConstraintName == "attendance_employee_id_fkey" {
			return attendanceerrors.ErrInvalidEmployeeID
		}
	}
	return err
}
