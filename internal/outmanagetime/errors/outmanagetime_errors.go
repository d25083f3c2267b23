package outmanagetimeerrors

import (
	"net/http"

	"ssms/internal/shared/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"period_start must be on or before period_end",
		http.StatusBadRequest,
	)
	ErrUsageNotFound = apperror.New(
		apperror.CodeNotFound,
		"usage entry not found",
		http.StatusNotFound,
	)
)
