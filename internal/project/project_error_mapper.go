package project

import (
	"errors"

	projecterrors "go-hrms/internal/project/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case "23505":
		if pgErr.ConstraintName == "uq_project_assignments_active" {
			return projecterrors.ErrAlreadyAssigned
		}
	case "23503":
		switch pgErr.ConstraintName {
		case "project_assignments_employee_id_fkey":
			return projecterrors.ErrEmployeeNotFound
		case "project_assignments_project_id_fkey":
			return projecterrors.ErrProjectNotFound
		}
	case "23514":
		if pgErr.ConstraintName == "project_assignments_allocation_percentage_check" {
			return projecterrors.ErrInvalidAllocation
		}
		if pgErr.ConstraintName == "projects_budget_check" {
			return projecterrors.ErrNegativeBudget
		}
	}
	return err
}
