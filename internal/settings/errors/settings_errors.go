package settingserrors

import (
	"net/http"

	"github.com/david-vardanov/teambie/internal/shared/apperror"
)

var (
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidOffset = apperror.New(
		apperror.CodeInvalidInput,
		"timezone offset must be between -12 and 14",
		http.StatusBadRequest,
	)
	ErrInvalidInterval = apperror.New(
		apperror.CodeInvalidInput,
		"interval must be a positive number of minutes",
		http.StatusBadRequest,
	)
)
