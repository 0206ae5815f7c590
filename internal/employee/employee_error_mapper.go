package employee

import (
	"errors"

	employeeerrors "go-hrms/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			switch pgErr.ConstraintName {
			case "uq_employees_number":
				return employeeerrors.ErrEmployeeNumberAlreadyExists
			case "uq_employees_email":
				return employeeerrors.ErrEmployeeAlreadyExists
			}
		case "23503":
			switch pgErr.ConstraintName {
			case "employees_department_id_fkey":
				return employeeerrors.ErrDepartmentNotFound
			case "employees_role_id_fkey":
				return employeeerrors.ErrRoleNotFound
			case "employees_manager_id_fkey":
				return employeeerrors.ErrManagerNotFound
			}
		case "23514":
			if pgErr.ConstraintName == "chk_employees_manager" {
				return employeeerrors.ErrSelfManager
			}
		}
	}

	return err
}
