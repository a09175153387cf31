package qrsession

import (
	"time"

	"github.com/google/uuid"
)

// SessionTTL is the proof-of-presence window: a session always expires ten
// minutes after the gig's scheduled start, regardless of when it was issued.
const SessionTTL = 10 * time.Minute

type QRSession struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	GigID     uuid.UUID `gorm:"column:gig_id;type:uuid;not null;index"`
	Token     string    `gorm:"column:token;type:varchar(100);not null;uniqueIndex:uq_qr_session_token"`
	CreatedAt time.Time `gorm:"column:created_at"`
	ExpiresAt time.Time `gorm:"column:expires_at;type:timestamptz;not null"`
	IsActive  bool      `gorm:"column:is_active;not null;default:true"`
}

func (QRSession) TableName() string {
	return "qr_sessions"
}

// QRScan records one usher having presented the session token. The unique
// pair gives the scanned-by set union semantics: concurrent and repeated
// scans collapse into a single row instead of racing an array append.
type QRScan struct {
	SessionID uuid.UUID `gorm:"column:session_id;type:uuid;primaryKey"`
	UsherID   uuid.UUID `gorm:"column:usher_id;type:uuid;primaryKey"`
	ScannedAt time.Time `gorm:"column:scanned_at;type:timestamptz;not null"`
}

func (QRScan) TableName() string {
	return "qr_session_scans"
}
