package rating

import (
	"math"

	ratingerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/rating/errors"
)

// Attendance contributes at most 2 of the 5 stars; the brand's score the
// remaining 3.
const (
	attendanceMaxStars = 2.0
	brandMaxStars      = 3.0
	finalMaxStars      = 5.0
)

type Calculation struct {
	AttendanceRating float64
	BrandRatingStars float64
	FinalRating      float64
}

// Calculate derives the weighted five-star rating. attendanceDays above
// totalGigDays is silently capped; a negative value or an out-of-range
// brand rating is rejected.
func Calculate(attendanceDays, totalGigDays, brandRating int) (Calculation, error) {
	if totalGigDays <= 0 {
		return Calculation{}, ratingerrors.ErrInvalidTotalGigDays
	}
	if attendanceDays < 0 {
		return Calculation{}, ratingerrors.ErrNegativeAttendanceDays
	}
	if brandRating < 1 || brandRating > 5 {
		return Calculation{}, ratingerrors.ErrInvalidBrandRating
	}

	if attendanceDays > totalGigDays {
		attendanceDays = totalGigDays
	}

	attendanceRating := round2(float64(attendanceDays) / float64(totalGigDays) * attendanceMaxStars)
	brandRatingStars := round2(float64(brandRating) / 5.0 * brandMaxStars)
	finalRating := clamp(round2(attendanceRating+brandRatingStars), 0, finalMaxStars)

	return Calculation{
		AttendanceRating: attendanceRating,
		BrandRatingStars: brandRatingStars,
		FinalRating:      finalRating,
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
