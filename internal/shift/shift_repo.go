package shift

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=shift_repo.go -destination=mock/shift_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *Shift) error
	FindByGigAndUsher(ctx context.Context, gigID, usherID string) (*Shift, error)
	FindAllByGig(ctx context.Context, gigID string) ([]Shift, error)
	FindAllByUsher(ctx context.Context, usherID string) ([]Shift, error)
	Update(ctx context.Context, s *Shift) error
	MarkPayoutCompleted(ctx context.Context, shiftID string) error
	UpsertDailyAttendance(ctx context.Context, d *DailyAttendance) error
	CountPresentDays(ctx context.Context, gigID, usherID string) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto the caller's transaction, so the shift
// write and the staged outbox event share one commit.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	sess := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	sess.Statement.ConnPool = tx
	return &repository{db: sess}
}

func (r *repository) Create(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindByGigAndUsher(ctx context.Context, gigID, usherID string) (*Shift, error) {
	var s Shift
	err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		Where("usher_id = ?", usherID).
		First(&s).Error
	return &s, err
}

func (r *repository) FindAllByGig(ctx context.Context, gigID string) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByUsher(ctx context.Context, usherID string) ([]Shift, error) {
	var rows []Shift
	err := r.db.WithContext(ctx).
		Where("usher_id = ?", usherID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, s *Shift) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *repository) MarkPayoutCompleted(ctx context.Context, shiftID string) error {
	return r.db.WithContext(ctx).
		Model(&Shift{}).
		Where("id = ?", shiftID).
		Where("payout_status = ?", PayoutPending).
		Update("payout_status", PayoutCompleted).Error
}

// UpsertDailyAttendance is keyed on (gig, usher, date) so re-running the
// completion sweep converges instead of duplicating rows.
func (r *repository) UpsertDailyAttendance(ctx context.Context, d *DailyAttendance) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "gig_id"}, {Name: "usher_id"}, {Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"is_present", "hours_worked"}),
		}).
		Create(d).Error
}

func (r *repository) CountPresentDays(ctx context.Context, gigID, usherID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DailyAttendance{}).
		Where("gig_id = ?", gigID).
		Where("usher_id = ?", usherID).
		Where("is_present = ?", true).
		Count(&count).Error
	return int(count), err
}
