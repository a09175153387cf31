package qrsession

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=qrsession_repo.go -destination=mock/qrsession_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *QRSession) error
	FindByToken(ctx context.Context, token string) (*QRSession, error)
	FindByID(ctx context.Context, id string) (*QRSession, error)
	FindLatestActiveByGig(ctx context.Context, gigID string) (*QRSession, error)
	Deactivate(ctx context.Context, id string) error
	UpsertScan(ctx context.Context, scan *QRScan) error
	FindScanUsherIDs(ctx context.Context, sessionID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto the caller's transaction.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	sess := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	sess.Statement.ConnPool = tx
	return &repository{db: sess}
}

func (r *repository) Create(ctx context.Context, s *QRSession) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByToken(ctx context.Context, token string) (*QRSession, error) {
	var s QRSession
	err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&s).Error
	return &s, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*QRSession, error) {
	var s QRSession
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&s).Error
	return &s, err
}

func (r *repository) FindLatestActiveByGig(ctx context.Context, gigID string) (*QRSession, error) {
	var s QRSession
	err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		Where("is_active = ?", true).
		Order("created_at DESC").
		First(&s).Error
	return &s, err
}

func (r *repository) Deactivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&QRSession{}).
		Where("id = ?", id).
		Update("is_active", false).Error
}

// UpsertScan is the set-union write: a repeat scan hits the primary key and
// becomes a no-op instead of an error or a duplicate.
func (r *repository) UpsertScan(ctx context.Context, scan *QRScan) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(scan).Error
}

func (r *repository) FindScanUsherIDs(ctx context.Context, sessionID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&QRScan{}).
		Where("session_id = ?", sessionID).
		Order("scanned_at ASC").
		Pluck("usher_id", &ids).Error
	return ids, err
}
