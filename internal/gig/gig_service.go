package gig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	gigerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig/errors"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/contextutil"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CompletionSweeper is implemented by the shift module. Completing a gig
// settles verified shifts and materializes daily attendance.
type CompletionSweeper interface {
	SweepGig(ctx context.Context, gigID string) error
}

//go:generate mockgen -source=gig_service.go -destination=mock/gig_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, brandID string, req CreateGigRequest) (GigResponse, error)
	Publish(ctx context.Context, gigID, brandID string) (GigResponse, error)
	GetAllByBrand(ctx context.Context, brandID string) ([]GigResponse, error)
	GetSchedule(ctx context.Context, gigID string) (Schedule, error)
	Apply(ctx context.Context, gigID, usherID string) (ApplicationResponse, error)
	Decide(ctx context.Context, applicationID, brandID string, approve bool) (ApplicationResponse, error)
	IsApprovedForGig(ctx context.Context, gigID, usherID string) (bool, error)
	Complete(ctx context.Context, gigID, brandID string) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	counters counter.Repository
	sweeper  CompletionSweeper
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counters counter.Repository, sweeper CompletionSweeper, logger ...*zap.Logger) Service {
	l := zap.L().Named("gig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gig.service")
	}
	return &service{db: db, repo: repo, counters: counters, sweeper: sweeper, logger: l}
}

func (s *service) Create(ctx context.Context, brandID string, req CreateGigRequest) (GigResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create gig requested",
		zap.String("request_id", rid),
		zap.String("brand_id", brandID),
		zap.String("title", req.Title),
	)

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return GigResponse{}, gigerrors.ErrInvalidStartTime
	}

	// Human-readable reference, sequential per brand.
	seq, err := s.counters.GetNextValue(ctx, brandID, "gig")
	if err != nil {
		s.logger.Error("allocate gig code failed", zap.String("request_id", rid), zap.Error(err))
		return GigResponse{}, err
	}

	g := &Gig{
		ID:            uuid.New(),
		BrandID:       uuid.MustParse(brandID),
		Code:          fmt.Sprintf("GIG-%05d", seq),
		Title:         req.Title,
		Location:      req.Location,
		StartTime:     startTime.UTC(),
		DurationHours: req.DurationHours,
		PayRate:       req.PayRate,
		TotalGigDays:  req.TotalGigDays,
		Status:        StatusDraft,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		s.logger.Error("create gig persist failed", zap.String("request_id", rid), zap.Error(err))
		return GigResponse{}, err
	}

	s.logger.Info("create gig success",
		zap.String("request_id", rid),
		zap.String("gig_id", g.ID.String()),
	)
	return mapToResponse(*g), nil
}

func (s *service) Publish(ctx context.Context, gigID, brandID string) (GigResponse, error) {
	g, err := s.ownedGig(ctx, gigID, brandID)
	if err != nil {
		return GigResponse{}, err
	}
	if g.Status != StatusDraft {
		return GigResponse{}, gigerrors.ErrGigNotActive
	}

	if err := s.repo.UpdateStatus(ctx, gigID, StatusActive); err != nil {
		s.logger.Error("publish gig failed", zap.String("gig_id", gigID), zap.Error(err))
		return GigResponse{}, err
	}
	g.Status = StatusActive

	s.logger.Info("gig published", zap.String("gig_id", gigID))
	return mapToResponse(*g), nil
}

func (s *service) GetAllByBrand(ctx context.Context, brandID string) ([]GigResponse, error) {
	rows, err := s.repo.FindAllByBrand(ctx, brandID)
	if err != nil {
		return nil, err
	}
	res := make([]GigResponse, len(rows))
	for i, g := range rows {
		res[i] = mapToResponse(g)
	}
	return res, nil
}

func (s *service) GetSchedule(ctx context.Context, gigID string) (Schedule, error) {
	g, err := s.repo.FindByID(ctx, gigID)
	if err != nil {
		return Schedule{}, mapRepositoryError(err)
	}
	return Schedule{
		GigID:         g.ID.String(),
		BrandID:       g.BrandID.String(),
		StartTime:     g.StartTime,
		DurationHours: g.DurationHours,
		PayRate:       g.PayRate,
		TotalGigDays:  g.TotalGigDays,
		Status:        g.Status,
	}, nil
}

func (s *service) Apply(ctx context.Context, gigID, usherID string) (ApplicationResponse, error) {
	g, err := s.repo.FindByID(ctx, gigID)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}
	if g.Status != StatusActive {
		return ApplicationResponse{}, gigerrors.ErrGigNotActive
	}

	a := &Application{
		ID:      uuid.New(),
		GigID:   g.ID,
		UsherID: uuid.MustParse(usherID),
		Status:  ApplicationPending,
	}
	if err := s.repo.CreateApplication(ctx, a); err != nil {
		return ApplicationResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("application created",
		zap.String("gig_id", gigID),
		zap.String("usher_id", usherID),
	)
	return mapApplication(*a), nil
}

func (s *service) Decide(ctx context.Context, applicationID, brandID string, approve bool) (ApplicationResponse, error) {
	a, err := s.repo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplicationResponse{}, gigerrors.ErrApplicationNotFound
		}
		return ApplicationResponse{}, err
	}

	if _, err := s.ownedGig(ctx, a.GigID.String(), brandID); err != nil {
		return ApplicationResponse{}, err
	}
	if a.Status != ApplicationPending {
		return ApplicationResponse{}, gigerrors.ErrApplicationNotPending
	}

	status := ApplicationRejected
	if approve {
		status = ApplicationApproved
	}
	if err := s.repo.UpdateApplicationStatus(ctx, applicationID, status); err != nil {
		return ApplicationResponse{}, err
	}
	a.Status = status

	s.logger.Info("application decided",
		zap.String("application_id", applicationID),
		zap.String("status", status),
	)
	return mapApplication(*a), nil
}

func (s *service) IsApprovedForGig(ctx context.Context, gigID, usherID string) (bool, error) {
	a, err := s.repo.FindApplication(ctx, gigID, usherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return a.Status == ApplicationApproved, nil
}

func (s *service) Complete(ctx context.Context, gigID, brandID string) error {
	g, err := s.ownedGig(ctx, gigID, brandID)
	if err != nil {
		return err
	}

	switch g.Status {
	case StatusActive:
		if err := s.repo.UpdateStatus(ctx, gigID, StatusCompleted); err != nil {
			s.logger.Error("complete gig failed", zap.String("gig_id", gigID), zap.Error(err))
			return err
		}
	case StatusCompleted:
		// Re-running the sweep is a no-op, so repeat completions are allowed.
	default:
		return gigerrors.ErrGigNotActive
	}

	if s.sweeper != nil {
		if err := s.sweeper.SweepGig(ctx, gigID); err != nil {
			s.logger.Error("completion sweep failed", zap.String("gig_id", gigID), zap.Error(err))
			return err
		}
	}

	s.logger.Info("gig completed", zap.String("gig_id", gigID))
	return nil
}

func (s *service) ownedGig(ctx context.Context, gigID, brandID string) (*Gig, error) {
	g, err := s.repo.FindByID(ctx, gigID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	if g.BrandID.String() != brandID {
		return nil, gigerrors.ErrNotGigOwner
	}
	return g, nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return gigerrors.ErrGigNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_application_gig_usher" {
			return gigerrors.ErrAlreadyApplied
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_application_gig_usher") {
		return gigerrors.ErrAlreadyApplied
	}

	return err
}

func mapToResponse(g Gig) GigResponse {
	return GigResponse{
		ID:            g.ID.String(),
		BrandID:       g.BrandID.String(),
		Code:          g.Code,
		Title:         g.Title,
		Location:      g.Location,
		StartTime:     g.StartTime.Format(time.RFC3339),
		DurationHours: g.DurationHours,
		PayRate:       g.PayRate,
		TotalGigDays:  g.TotalGigDays,
		Status:        g.Status,
	}
}

func mapApplication(a Application) ApplicationResponse {
	return ApplicationResponse{
		ID:      a.ID.String(),
		GigID:   a.GigID.String(),
		UsherID: a.UsherID.String(),
		Status:  a.Status,
	}
}
