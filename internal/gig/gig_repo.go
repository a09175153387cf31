package gig

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=gig_repo.go -destination=mock/gig_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, g *Gig) error
	FindByID(ctx context.Context, id string) (*Gig, error)
	FindAllByBrand(ctx context.Context, brandID string) ([]Gig, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CreateApplication(ctx context.Context, a *Application) error
	FindApplication(ctx context.Context, gigID, usherID string) (*Application, error)
	FindApplicationByID(ctx context.Context, id string) (*Application, error)
	UpdateApplicationStatus(ctx context.Context, id, status string) error
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

func (r *repository) Create(ctx context.Context, g *Gig) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Gig, error) {
	var g Gig
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&g).Error
	return &g, err
}

func (r *repository) FindAllByBrand(ctx context.Context, brandID string) ([]Gig, error) {
	var rows []Gig
	err := r.db.WithContext(ctx).
		Where("brand_id = ?", brandID).
		Order("start_time DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&Gig{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CreateApplication(ctx context.Context, a *Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindApplication(ctx context.Context, gigID, usherID string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Where("gig_id = ?", gigID).
		Where("usher_id = ?", usherID).
		First(&a).Error
	return &a, err
}

func (r *repository) FindApplicationByID(ctx context.Context, id string) (*Application, error) {
	var a Application
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error
	return &a, err
}

func (r *repository) UpdateApplicationStatus(ctx context.Context, id, status string) error {
	return r.db.WithContext(ctx).
		Model(&Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}
