package rating

type SubmitRatingRequest struct {
	UsherID        string  `json:"usher_id" binding:"required,uuid"`
	BrandRating    int     `json:"brand_rating" binding:"required,min=1,max=5"`
	AttendanceDays int     `json:"attendance_days" binding:"min=0"`
	TotalGigDays   int     `json:"total_gig_days" binding:"required,min=1"`
	Notes          *string `json:"notes"`
}

type RatingResponse struct {
	GigID            string  `json:"gig_id"`
	UsherID          string  `json:"usher_id"`
	BrandRating      int     `json:"brand_rating"`
	AttendanceDays   int     `json:"attendance_days"`
	TotalGigDays     int     `json:"total_gig_days"`
	AttendanceRating float64 `json:"attendance_rating"`
	BrandRatingStars float64 `json:"brand_rating_stars"`
	FinalRating      float64 `json:"final_rating"`
	Notes            *string `json:"notes,omitempty"`
}

type AggregateResponse struct {
	UsherID             string  `json:"usher_id"`
	OverallRating       float64 `json:"overall_rating"`
	AttendanceRatingAvg float64 `json:"attendance_rating_avg"`
	BrandRatingAvg      float64 `json:"brand_rating_avg"`
	TotalRatingsCount   int     `json:"total_ratings_count"`
	TotalGigsCompleted  int     `json:"total_gigs_completed"`
}
