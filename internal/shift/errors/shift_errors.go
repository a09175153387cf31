package shifterrors

import (
	"net/http"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/apperror"
)

var (
	ErrNotApprovedForGig = apperror.New(
		apperror.CodeForbidden,
		"Usher does not have an approved application for this gig",
		http.StatusForbidden,
	)
	ErrAlreadyCheckedIn = apperror.New(
		apperror.CodeConflict,
		"Already checked in",
		http.StatusConflict,
	)
	ErrShiftClosed = apperror.New(
		apperror.CodeConflict,
		"Shift already closed",
		http.StatusConflict,
	)
	ErrMustCheckInFirst = apperror.New(
		apperror.CodeConflict,
		"Must check in first",
		http.StatusConflict,
	)
	ErrAlreadyCheckedOut = apperror.New(
		apperror.CodeConflict,
		"Already checked out",
		http.StatusConflict,
	)
	ErrUnknownAction = apperror.New(
		apperror.CodeInvalidInput,
		"Action must be check_in or check_out",
		http.StatusBadRequest,
	)
	ErrShiftNotFound = apperror.New(
		apperror.CodeNotFound,
		"Shift not found",
		http.StatusNotFound,
	)
)
