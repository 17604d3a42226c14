package employeeerrors

import (
	"net/http"

	"go-empdir/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email already exists",
		http.StatusConflict,
	)
	ErrDocNumberAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Document Number already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid Employee Id",
		http.StatusBadRequest,
	)
	ErrInvalidBirthDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid Birth Date Format. Use yyyy/MM/dd",
		http.StatusBadRequest,
	)
	ErrEmployeeIsMinor = apperror.New(
		apperror.CodeInvalidInput,
		"Employee Must Be At Least 18 Years Old",
		http.StatusBadRequest,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid Role. Allowed Values: 1 (Director), 2 (Leader), 3 (Employee)",
		http.StatusBadRequest,
	)
	ErrCreateRoleTooHigh = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to create Employee with higher role level",
		http.StatusForbidden,
	)
	ErrUpdateRoleTooHigh = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to update to a higher role level",
		http.StatusForbidden,
	)
	ErrDeleteRoleTooHigh = apperror.New(
		apperror.CodeForbidden,
		"Unauthorized to remove Employee with higher role level",
		http.StatusForbidden,
	)
)
