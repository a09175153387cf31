package gig

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusActive    = "ACTIVE"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

const (
	ApplicationPending  = "PENDING"
	ApplicationApproved = "APPROVED"
	ApplicationRejected = "REJECTED"
)

type Gig struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	BrandID       uuid.UUID      `gorm:"column:brand_id;type:uuid;not null;index;uniqueIndex:uq_gig_brand_code"`
	Code          string         `gorm:"column:code;type:varchar(32);not null;uniqueIndex:uq_gig_brand_code"`
	Title         string         `gorm:"column:title;type:varchar(200);not null"`
	Location      *string        `gorm:"column:location;type:varchar(200)"`
	StartTime     time.Time      `gorm:"column:start_time;type:timestamptz;not null"`
	DurationHours float64        `gorm:"column:duration_hours;not null"`
	PayRate       float64        `gorm:"column:pay_rate;not null"`
	TotalGigDays  int            `gorm:"column:total_gig_days;not null;default:1"`
	Status        string         `gorm:"column:status;type:varchar(20);not null;default:DRAFT"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Gig) TableName() string {
	return "gigs"
}

// Application is an usher's request to work a gig. Only APPROVED rows grant
// access to check-in and rating.
type Application struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GigID     uuid.UUID `gorm:"column:gig_id;type:uuid;not null;uniqueIndex:uq_application_gig_usher"`
	UsherID   uuid.UUID `gorm:"column:usher_id;type:uuid;not null;uniqueIndex:uq_application_gig_usher"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:PENDING"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Application) TableName() string {
	return "gig_applications"
}
