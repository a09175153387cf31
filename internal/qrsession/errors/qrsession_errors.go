package qrsessionerrors

import (
	"net/http"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/apperror"
)

var (
	ErrSessionNotFound = apperror.New(
		apperror.CodeNotFound,
		"QR session not found",
		http.StatusNotFound,
	)
	ErrSessionExpired = apperror.New(
		apperror.CodeExpired,
		"QR session has expired",
		http.StatusGone,
	)
	ErrNotGigOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the gig owner can manage QR sessions",
		http.StatusForbidden,
	)
	ErrGigNotActive = apperror.New(
		apperror.CodeInvalidState,
		"QR sessions can only be generated for active gigs",
		http.StatusConflict,
	)
	ErrOutOfWindow = apperror.New(
		apperror.CodeOutOfWindow,
		"QR session can only be generated between the gig start and ten minutes after",
		http.StatusUnprocessableEntity,
	)
	ErrNoActiveSession = apperror.New(
		apperror.CodeNotFound,
		"No active QR session for this gig",
		http.StatusNotFound,
	)
)
