package leave

import (
	"errors"

	leaveerrors "go-hrms/internal/leave/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		switch pgErr.ConstraintName {
		case "uq_leave_types_name":
			return leaveerrors.ErrLeaveTypeAlreadyExists
		case "uq_leave_balances_employee_type_year":
			return leaveerrors.ErrBalanceAlreadyExists
		}
	case "23503":
		switch pgErr.ConstraintName {
		case "leave_balances_employee_id_fkey", "leaves_employee_id_fkey":
			return leaveerrors.ErrEmployeeNotFound
		case "leave_balances_leave_type_id_fkey", "leaves_leave_type_id_fkey":
			return leaveerrors.ErrInvalidLeaveType
		}
	case "23514":
		if pgErr.ConstraintName == "chk_leaves_period" {
			return leaveerrors.ErrInvalidDateRange
		}
	}

	return err
}
