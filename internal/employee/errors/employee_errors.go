package employeeerrors

import (
	"go-workforce/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrNameAndEmailRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Name and email are required",
		http.StatusBadRequest,
	)
)
