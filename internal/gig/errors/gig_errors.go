package gigerrors

import (
	"net/http"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/apperror"
)

var (
	ErrGigNotFound = apperror.New(
		apperror.CodeNotFound,
		"Gig not found",
		http.StatusNotFound,
	)
	ErrNotGigOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the gig owner can perform this action",
		http.StatusForbidden,
	)
	ErrGigNotActive = apperror.New(
		apperror.CodeInvalidState,
		"Gig is not in an active state",
		http.StatusConflict,
	)
	ErrInvalidStartTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid start_time format, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrAlreadyApplied = apperror.New(
		apperror.CodeConflict,
		"Usher has already applied to this gig",
		http.StatusConflict,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrApplicationNotPending = apperror.New(
		apperror.CodeConflict,
		"Application has already been decided",
		http.StatusConflict,
	)
)
