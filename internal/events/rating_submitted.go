package events

import "time"

const RatingSubmittedTopic = "ushering.rating.submitted.v1"

type RatingSubmittedEvent struct {
	EventType   string    `json:"event_type"` // rating_submitted | rating_attendance_updated
	RequestID   string    `json:"request_id,omitempty"`
	GigID       string    `json:"gig_id"`
	UsherID     string    `json:"usher_id"`
	FinalRating float64   `json:"final_rating"`
	OccurredAt  time.Time `json:"occurred_at"`
}
