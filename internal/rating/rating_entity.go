package rating

import (
	"time"

	"github.com/google/uuid"
)

// GigRating is a pure projection of two facts: attendance (from the
// completion sweep) and the brand's quality score. Resubmission overwrites
// in place; (gig, usher) never has more than one row.
type GigRating struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GigID            uuid.UUID `gorm:"column:gig_id;type:uuid;not null;uniqueIndex:uq_gig_rating_gig_usher"`
	UsherID          uuid.UUID `gorm:"column:usher_id;type:uuid;not null;uniqueIndex:uq_gig_rating_gig_usher"`
	BrandRating      int       `gorm:"column:brand_rating;not null"`
	AttendanceDays   int       `gorm:"column:attendance_days;not null;default:0"`
	TotalGigDays     int       `gorm:"column:total_gig_days;not null"`
	AttendanceRating float64   `gorm:"column:attendance_rating;not null;default:0"`
	BrandRatingStars float64   `gorm:"column:brand_rating_stars;not null;default:0"`
	FinalRating      float64   `gorm:"column:final_rating;not null;default:0"`
	Notes            *string   `gorm:"column:notes;type:text"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (GigRating) TableName() string {
	return "gig_ratings"
}

// UsherAggregate is always a full recomputation over the usher's GigRating
// rows, never an incremental patch, so concurrent submissions converge.
type UsherAggregate struct {
	UsherID             uuid.UUID `gorm:"column:usher_id;type:uuid;primaryKey"`
	OverallRating       float64   `gorm:"column:overall_rating;not null;default:0"`
	AttendanceRatingAvg float64   `gorm:"column:attendance_rating_avg;not null;default:0"`
	BrandRatingAvg      float64   `gorm:"column:brand_rating_avg;not null;default:0"`
	TotalRatingsCount   int       `gorm:"column:total_ratings_count;not null;default:0"`
	TotalGigsCompleted  int       `gorm:"column:total_gigs_completed;not null;default:0"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (UsherAggregate) TableName() string {
	return "usher_aggregates"
}
