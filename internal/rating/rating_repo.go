package rating

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rating_repo.go -destination=mock/rating_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Upsert(ctx context.Context, r *GigRating) error
	FindByGigAndUsher(ctx context.Context, gigID, usherID string) (*GigRating, error)
	FindAllByUsher(ctx context.Context, usherID string) ([]GigRating, error)
	UpsertAggregate(ctx context.Context, a *UsherAggregate) error
	FindAggregate(ctx context.Context, usherID string) (*UsherAggregate, error)
	CountCompletedShifts(ctx context.Context, usherID string) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository onto the caller's transaction, so the rating
// upsert and the staged outbox event share one commit.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	sess := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	sess.Statement.ConnPool = tx
	return &repository{db: sess}
}

// Upsert hits the (gig_id, usher_id) unique index so resubmission overwrites
// the existing row instead of duplicating it.
func (r *repository) Upsert(ctx context.Context, row *GigRating) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "gig_id"}, {Name: "usher_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"brand_rating",
				"attendance_days",
				"total_gig_days",
				"attendance_rating",
				"brand_rating_stars",
				"final_rating",
				"notes",
				"updated_at",
			}),
		}).
		Create(row).Error
}

func (r *repository) FindByGigAndUsher(ctx context.Context, gigID, usherID string) (*GigRating, error) {
	var row GigRating
	err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		Where("usher_id = ?", usherID).
		First(&row).Error
	return &row, err
}

func (r *repository) FindAllByUsher(ctx context.Context, usherID string) ([]GigRating, error) {
	var rows []GigRating
	err := r.db.WithContext(ctx).
		Where("usher_id = ?", usherID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpsertAggregate(ctx context.Context, a *UsherAggregate) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "usher_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"overall_rating",
				"attendance_rating_avg",
				"brand_rating_avg",
				"total_ratings_count",
				"total_gigs_completed",
				"updated_at",
			}),
		}).
		Create(a).Error
}

func (r *repository) FindAggregate(ctx context.Context, usherID string) (*UsherAggregate, error) {
	var a UsherAggregate
	err := r.db.WithContext(ctx).
		Where("usher_id = ?", usherID).
		First(&a).Error
	return &a, err
}

func (r *repository) CountCompletedShifts(ctx context.Context, usherID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("shifts").
		Where("usher_id = ?", usherID).
		Where("attendance_status = ?", "CHECKED_OUT").
		Count(&count).Error
	return int(count), err
}
