package rating_test

import (
	"testing"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/rating"
	ratingerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/rating/errors"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name           string
		attendanceDays int
		totalGigDays   int
		brandRating    int
		wantAttendance float64
		wantBrand      float64
		wantFinal      float64
	}{
		{
			name:           "Partial Attendance Partial Brand",
			attendanceDays: 3, totalGigDays: 4, brandRating: 4,
			wantAttendance: 1.5, wantBrand: 2.4, wantFinal: 3.9,
		},
		{
			name:           "Perfect Score",
			attendanceDays: 5, totalGigDays: 5, brandRating: 5,
			wantAttendance: 2, wantBrand: 3, wantFinal: 5,
		},
		{
			name:           "No Attendance Lowest Brand",
			attendanceDays: 0, totalGigDays: 3, brandRating: 1,
			wantAttendance: 0, wantBrand: 0.6, wantFinal: 0.6,
		},
		{
			name:           "Attendance Above Total Is Capped",
			attendanceDays: 7, totalGigDays: 5, brandRating: 5,
			wantAttendance: 2, wantBrand: 3, wantFinal: 5,
		},
		{
			name:           "Thirds Round To Cents",
			attendanceDays: 1, totalGigDays: 3, brandRating: 2,
			wantAttendance: 0.67, wantBrand: 1.2, wantFinal: 1.87,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc, err := rating.Calculate(tt.attendanceDays, tt.totalGigDays, tt.brandRating)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAttendance, calc.AttendanceRating)
			assert.Equal(t, tt.wantBrand, calc.BrandRatingStars)
			assert.Equal(t, tt.wantFinal, calc.FinalRating)
		})
	}
}

func TestCalculate_Invalid(t *testing.T) {
	t.Run("Zero Total Gig Days", func(t *testing.T) {
		_, err := rating.Calculate(1, 0, 3)
		assert.Equal(t, ratingerrors.ErrInvalidTotalGigDays, err)
	})

	t.Run("Negative Total Gig Days", func(t *testing.T) {
		_, err := rating.Calculate(1, -2, 3)
		assert.Equal(t, ratingerrors.ErrInvalidTotalGigDays, err)
	})

	t.Run("Negative Attendance Days", func(t *testing.T) {
		_, err := rating.Calculate(-1, 3, 3)
		assert.Equal(t, ratingerrors.ErrNegativeAttendanceDays, err)
	})

	t.Run("Brand Rating Below Range", func(t *testing.T) {
		_, err := rating.Calculate(1, 3, 0)
		assert.Equal(t, ratingerrors.ErrInvalidBrandRating, err)
	})

	t.Run("Brand Rating Above Range", func(t *testing.T) {
		_, err := rating.Calculate(1, 3, 6)
		assert.Equal(t, ratingerrors.ErrInvalidBrandRating, err)
	})
}
