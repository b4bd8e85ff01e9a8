package attendanceerrors

import (
	"net/http"

	"github.com/david-vardanov/teambie/internal/shared/apperror"
)

var (
	ErrNoRecordToday = apperror.New(
		apperror.CodeNotFound,
		"no attendance record for today",
		http.StatusNotFound,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeInvalidState,
		"arrival is already confirmed for today",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeInvalidState,
		"departure is already confirmed for today",
		http.StatusConflict,
	)
	ErrNotArrivedYet = apperror.New(
		apperror.CodeInvalidState,
		"arrival has not been confirmed yet",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"the attendance record is not in a state that allows this action",
		http.StatusConflict,
	)
	ErrUnparseableTime = apperror.New(
		apperror.CodeInvalidInput,
		"could not understand the time, try \"in 30 min\", \"in 1 hour\" or \"10:30\"",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time, expected HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
