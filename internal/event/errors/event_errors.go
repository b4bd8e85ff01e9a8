package eventerrors

import (
	"net/http"

	"github.com/david-vardanov/teambie/internal/shared/apperror"
)

var (
	ErrEventNotFound = apperror.New(
		apperror.CodeNotFound,
		"event not found",
		http.StatusNotFound,
	)
	ErrInvalidEventID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid event id",
		http.StatusBadRequest,
	)
	ErrInvalidEventType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid event type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrAlreadyModerated = apperror.New(
		apperror.CodeInvalidState,
		"event has already been moderated",
		http.StatusConflict,
	)
	ErrNotDayOffRequest = apperror.New(
		apperror.CodeInvalidState,
		"payment disposition only applies to day-off requests",
		http.StatusBadRequest,
	)
	ErrVacationTooSoon = apperror.New(
		apperror.CodeInvalidInput,
		"vacation must be requested at least two days in advance",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidState,
		"not enough vacation days left in the current period",
		http.StatusBadRequest,
	)
	ErrDateInFuture = apperror.New(
		apperror.CodeInvalidInput,
		"sick day cannot be reported for a future date",
		http.StatusBadRequest,
	)
	ErrBackdateTooFar = apperror.New(
		apperror.CodeInvalidInput,
		"sick day can be backdated at most 7 days",
		http.StatusBadRequest,
	)
	ErrDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"date must not be in the past",
		http.StatusBadRequest,
	)
	ErrDuplicatePendingRequest = apperror.New(
		apperror.CodeConflict,
		"a pending request already exists for this date",
		http.StatusConflict,
	)
)
