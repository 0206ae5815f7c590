package rbacerrors

import (
	"go-hrms/internal/shared/apperror"
	"net/http"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Role not found",
		http.StatusNotFound,
	)
	ErrRoleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Role with the same name already exists",
		http.StatusConflict,
	)
	ErrBuiltinRole = apperror.New(
		apperror.CodeInvalidState,
		"Built-in roles cannot be deleted or renamed",
		http.StatusBadRequest,
	)
	ErrRoleInUse = apperror.New(
		apperror.CodeConflict,
		"Role is still assigned to employees",
		http.StatusConflict,
	)
	ErrParentRoleNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Parent role not found",
		http.StatusBadRequest,
	)
	ErrUnknownPermission = apperror.New(
		apperror.CodeInvalidInput,
		"One or more permissions do not exist",
		http.StatusBadRequest,
	)
)
