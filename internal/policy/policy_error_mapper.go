package policy

import (
	"errors"

	policyerrors "go-hrms/internal/policy/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		if pgErr.ConstraintName == "uq_policy_ack_employee_policy_version" {
			return policyerrors.ErrAlreadyAcknowledged
		}
	case "23503":
		if pgErr.ConstraintName == "policy_acknowledgments_policy_id_fkey" {
			return policyerrors.ErrPolicyNotFound
		}
	}
	return err
}
