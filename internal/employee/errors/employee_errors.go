package employeeerrors

import (
	"net/http"

	"github.com/david-vardanov/teambie/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrChatAlreadyLinked = apperror.New(
		apperror.CodeConflict,
		"This chat is already linked to another employee",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid email format",
		http.StatusBadRequest,
	)
	ErrInvalidTimeWindow = apperror.New(
		apperror.CodeInvalidInput,
		"arrival window must be two HH:MM times with start before end",
		http.StatusBadRequest,
	)
	ErrInvalidStartDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid start date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrEmployeeArchived = apperror.New(
		apperror.CodeInvalidState,
		"Employee is archived",
		http.StatusBadRequest,
	)
)
