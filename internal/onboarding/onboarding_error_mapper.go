package onboarding

import (
	"errors"

	onboardingerrors "go-hrms/internal/onboarding/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	if pgErr.Code == "23503" {
		switch pgErr.ConstraintName {
		case "onboarding_tasks_department_id_fkey":
			return onboardingerrors.ErrDepartmentNotFound
		case "onboarding_tasks_role_id_fkey":
			return onboardingerrors.ErrRoleNotFound
		case "employee_tasks_employee_id_fkey":
			return onboardingerrors.ErrEmployeeNotFound
		case "employee_tasks_task_id_fkey":
			return onboardingerrors.ErrTaskNotFound
		}
	}
	return err
}
