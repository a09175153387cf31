package shift

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
)

const (
	PayoutPending   = "PENDING"
	PayoutCompleted = "COMPLETED"
)

// Shift is one usher's presence record for one gig. It is created on the
// first verified check-in and closed by check-out; there is no re-entry.
type Shift struct {
	ID               uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GigID            uuid.UUID  `gorm:"column:gig_id;type:uuid;not null;uniqueIndex:uq_shift_gig_usher"`
	UsherID          uuid.UUID  `gorm:"column:usher_id;type:uuid;not null;uniqueIndex:uq_shift_gig_usher"`
	CheckInTime      *time.Time `gorm:"column:check_in_time;type:timestamptz"`
	CheckOutTime     *time.Time `gorm:"column:check_out_time;type:timestamptz"`
	CheckInVerified  bool       `gorm:"column:check_in_verified;not null;default:false"`
	CheckOutVerified bool       `gorm:"column:check_out_verified;not null;default:false"`
	HoursWorked      *float64   `gorm:"column:hours_worked"`
	PayoutAmount     *float64   `gorm:"column:payout_amount"`
	PayoutStatus     string     `gorm:"column:payout_status;type:varchar(20);not null;default:PENDING"`
	AttendanceStatus string     `gorm:"column:attendance_status;type:varchar(20);not null"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
}

func (Shift) TableName() string {
	return "shifts"
}

// DailyAttendance is the per-day fact the completion sweep materializes from
// shift history; attendance_days for ratings is a count over these rows.
type DailyAttendance struct {
	GigID       uuid.UUID `gorm:"column:gig_id;type:uuid;primaryKey"`
	UsherID     uuid.UUID `gorm:"column:usher_id;type:uuid;primaryKey"`
	Date        time.Time `gorm:"column:attendance_date;type:date;primaryKey"`
	IsPresent   bool      `gorm:"column:is_present;not null;default:false"`
	HoursWorked float64   `gorm:"column:hours_worked;not null;default:0"`
}

func (DailyAttendance) TableName() string {
	return "daily_attendances"
}
