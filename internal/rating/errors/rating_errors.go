package ratingerrors

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
	ErrNotGigOwner = apperror.New(
		apperror.CodeForbidden,
		"Only the gig owner can rate its ushers",
		http.StatusForbidden,
	)
	ErrInvalidTotalGigDays = apperror.New(
		apperror.CodeInvalidInput,
		"total_gig_days must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidBrandRating = apperror.New(
		apperror.CodeInvalidInput,
		"brand_rating must be between 1 and 5",
		http.StatusBadRequest,
	)
	ErrRatingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Rating not found",
		http.StatusNotFound,
	)
	ErrNegativeAttendanceDays = apperror.New(
		apperror.CodeInvalidInput,
		"attendance_days must not be negative",
		http.StatusBadRequest,
	)
)
