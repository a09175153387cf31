package events

import "time"

const AttendanceRecordedTopic = "ushering.attendance.recorded.v1"

// AttendanceRecordedEvent is emitted after every verified check-in and
// check-out. Consumed by the notification service; delivery is best-effort
// and never gates the shift mutation.
type AttendanceRecordedEvent struct {
	EventType   string    `json:"event_type"` // attendance_checked_in | attendance_checked_out
	RequestID   string    `json:"request_id,omitempty"`
	GigID       string    `json:"gig_id"`
	UsherID     string    `json:"usher_id"`
	HoursWorked *float64  `json:"hours_worked,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
