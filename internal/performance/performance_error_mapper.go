package performance

import (
	"errors"

	performanceerrors "go-hrms/internal/performance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23503":
		switch pgErr.ConstraintName {
		case "performance_ratings_employee_id_fkey", "performance_reviews_employee_id_fkey":
			return performanceerrors.ErrEmployeeNotFound
		}
	case "23514":
		return performanceerrors.ErrInvalidRating
	}
	return err
}
