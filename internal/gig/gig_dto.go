package gig

import "time"

type CreateGigRequest struct {
	Title         string  `json:"title" binding:"required"`
	Location      *string `json:"location"`
	StartTime     string  `json:"start_time" binding:"required"` // RFC3339
	DurationHours float64 `json:"duration_hours" binding:"required,gt=0"`
	PayRate       float64 `json:"pay_rate" binding:"required,gt=0"`
	TotalGigDays  int     `json:"total_gig_days" binding:"required,min=1"`
}

type GigResponse struct {
	ID            string  `json:"id"`
	BrandID       string  `json:"brand_id"`
	Code          string  `json:"code"`
	Title         string  `json:"title"`
	Location      *string `json:"location,omitempty"`
	StartTime     string  `json:"start_time"`
	DurationHours float64 `json:"duration_hours"`
	PayRate       float64 `json:"pay_rate"`
	TotalGigDays  int     `json:"total_gig_days"`
	Status        string  `json:"status"`
}

type ApplicationResponse struct {
	ID      string `json:"id"`
	GigID   string `json:"gig_id"`
	UsherID string `json:"usher_id"`
	Status  string `json:"status"`
}

// Schedule is the read-only projection the attendance core consumes.
// Immutable once the gig is active.
type Schedule struct {
	GigID         string
	BrandID       string
	StartTime     time.Time
	DurationHours float64
	PayRate       float64
	TotalGigDays  int
	Status        string
}
