package shift

const (
	ActionCheckIn  = "check_in"
	ActionCheckOut = "check_out"
)

type ScanRequest struct {
	Token  string `json:"token" binding:"required"`
	Action string `json:"action" binding:"required,oneof=check_in check_out"`
}

type ShiftResponse struct {
	ID               string   `json:"id"`
	GigID            string   `json:"gig_id"`
	UsherID          string   `json:"usher_id"`
	CheckInTime      *string  `json:"check_in_time,omitempty"`
	CheckOutTime     *string  `json:"check_out_time,omitempty"`
	CheckInVerified  bool     `json:"check_in_verified"`
	CheckOutVerified bool     `json:"check_out_verified"`
	HoursWorked      *float64 `json:"hours_worked,omitempty"`
	PayoutAmount     *float64 `json:"payout_amount,omitempty"`
	PayoutStatus     string   `json:"payout_status"`
	AttendanceStatus string   `json:"attendance_status"`
}

type DailyAttendanceResponse struct {
	GigID       string  `json:"gig_id"`
	UsherID     string  `json:"usher_id"`
	Date        string  `json:"date"`
	IsPresent   bool    `json:"is_present"`
	HoursWorked float64 `json:"hours_worked"`
}
