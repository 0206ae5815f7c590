package course

import (
	"errors"

	courseerrors "go-hrms/internal/course/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		if pgErr.ConstraintName == "uq_course_enrollments_employee_course" {
			return courseerrors.ErrAlreadyEnrolled
		}
	case "23503":
		switch pgErr.ConstraintName {
		case "course_enrollments_employee_id_fkey":
			return courseerrors.ErrEmployeeNotFound
		case "course_enrollments_course_id_fkey":
			return courseerrors.ErrCourseNotFound
		}
	}
	return err
}
