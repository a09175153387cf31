package rating

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/events"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/messaging/kafka"
	ratingerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/rating/errors"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const AggregateKeyPrefix = "ushers:aggregate:"

const aggregateCacheTTL = 10 * time.Minute

// attendanceOnlyBrandRating is the neutral placeholder used when the
// completion sweep rates before the brand has. The brand's real submission
// overwrites it through the same upsert.
const attendanceOnlyBrandRating = 3

func GetAggregateKey(usherID string) string {
	return AggregateKeyPrefix + usherID
}

type ApprovalChecker interface {
	IsApprovedForGig(ctx context.Context, gigID, usherID string) (bool, error)
}

type ScheduleReader interface {
	GetSchedule(ctx context.Context, gigID string) (gig.Schedule, error)
}

//go:generate mockgen -source=rating_service.go -destination=mock/rating_service_mock.go -package=mock
type Service interface {
	// Submit upserts the brand's rating for (gig, usher) and synchronously
	// recomputes the usher's aggregate. Resubmission overwrites in place.
	Submit(ctx context.Context, gigID, brandID string, req SubmitRatingRequest) (RatingResponse, error)

	// SubmitAttendanceOnly is the completion sweep's path: same calculate
	// and upsert, with the brand component preserved if the brand already
	// rated and a neutral placeholder otherwise.
	SubmitAttendanceOnly(ctx context.Context, gigID, usherID string, attendanceDays, totalGigDays int) error

	// RecomputeAggregate re-averages every GigRating row for the usher.
	// It is the only writer of UsherAggregate.
	RecomputeAggregate(ctx context.Context, usherID string) error

	GetAggregate(ctx context.Context, usherID string) (AggregateResponse, error)
	GetForGig(ctx context.Context, gigID, usherID string) (RatingResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	approvals ApprovalChecker
	schedules ScheduleReader
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	approvals ApprovalChecker,
	schedules ScheduleReader,
	outbox kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("rating.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rating.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		approvals: approvals,
		schedules: schedules,
		outbox:    outbox,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) Submit(ctx context.Context, gigID, brandID string, req SubmitRatingRequest) (RatingResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	sched, err := s.schedules.GetSchedule(ctx, gigID)
	if err != nil {
		return RatingResponse{}, err
	}
	if sched.BrandID != brandID {
		return RatingResponse{}, ratingerrors.ErrNotGigOwner
	}

	approved, err := s.approvals.IsApprovedForGig(ctx, gigID, req.UsherID)
	if err != nil {
		return RatingResponse{}, err
	}
	if !approved {
		return RatingResponse{}, ratingerrors.ErrNotApprovedForGig
	}

	calc, err := Calculate(req.AttendanceDays, req.TotalGigDays, req.BrandRating)
	if err != nil {
		return RatingResponse{}, err
	}

	attendanceDays := req.AttendanceDays
	if attendanceDays > req.TotalGigDays {
		attendanceDays = req.TotalGigDays
	}

	row := &GigRating{
		ID:               uuid.New(),
		GigID:            uuid.MustParse(gigID),
		UsherID:          uuid.MustParse(req.UsherID),
		BrandRating:      req.BrandRating,
		AttendanceDays:   attendanceDays,
		TotalGigDays:     req.TotalGigDays,
		AttendanceRating: calc.AttendanceRating,
		BrandRatingStars: calc.BrandRatingStars,
		FinalRating:      calc.FinalRating,
		Notes:            req.Notes,
		UpdatedAt:        time.Now().UTC(),
	}

	if err := s.persistRating(ctx, rid, "rating_submitted", row); err != nil {
		return RatingResponse{}, err
	}

	if err := s.RecomputeAggregate(ctx, req.UsherID); err != nil {
		return RatingResponse{}, err
	}

	s.logger.Info("rating submitted",
		zap.String("request_id", rid),
		zap.String("gig_id", gigID),
		zap.String("usher_id", req.UsherID),
		zap.Float64("final_rating", calc.FinalRating),
	)
	return mapToResponse(*row), nil
}

func (s *service) SubmitAttendanceOnly(ctx context.Context, gigID, usherID string, attendanceDays, totalGigDays int) error {
	rid := contextutil.GetRequestID(ctx)

	brandRating := attendanceOnlyBrandRating
	var notes *string
	existing, err := s.repo.FindByGigAndUsher(ctx, gigID, usherID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		// The brand already rated; keep its component and refresh only the
		// attendance side.
		brandRating = existing.BrandRating
		notes = existing.Notes
	}

	calc, err := Calculate(attendanceDays, totalGigDays, brandRating)
	if err != nil {
		return err
	}

	if attendanceDays > totalGigDays {
		attendanceDays = totalGigDays
	}

	row := &GigRating{
		ID:               uuid.New(),
		GigID:            uuid.MustParse(gigID),
		UsherID:          uuid.MustParse(usherID),
		BrandRating:      brandRating,
		AttendanceDays:   attendanceDays,
		TotalGigDays:     totalGigDays,
		AttendanceRating: calc.AttendanceRating,
		BrandRatingStars: calc.BrandRatingStars,
		FinalRating:      calc.FinalRating,
		Notes:            notes,
		UpdatedAt:        time.Now().UTC(),
	}

	if err := s.persistRating(ctx, rid, "rating_attendance_updated", row); err != nil {
		return err
	}

	return s.RecomputeAggregate(ctx, usherID)
}

func (s *service) RecomputeAggregate(ctx context.Context, usherID string) error {
	rows, err := s.repo.FindAllByUsher(ctx, usherID)
	if err != nil {
		return err
	}

	completed, err := s.repo.CountCompletedShifts(ctx, usherID)
	if err != nil {
		return err
	}

	agg := &UsherAggregate{
		UsherID:            uuid.MustParse(usherID),
		TotalRatingsCount:  len(rows),
		TotalGigsCompleted: completed,
		UpdatedAt:          time.Now().UTC(),
	}
	if len(rows) > 0 {
		var final, attendance, brand float64
		for _, r := range rows {
			final += r.FinalRating
			attendance += r.AttendanceRating
			brand += r.BrandRatingStars
		}
		n := float64(len(rows))
		agg.OverallRating = round2(final / n)
		agg.AttendanceRatingAvg = round2(attendance / n)
		agg.BrandRatingAvg = round2(brand / n)
	}

	if err := s.repo.UpsertAggregate(ctx, agg); err != nil {
		return err
	}

	if s.rdb != nil {
		cacheKey := GetAggregateKey(usherID)
		if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
			s.logger.Error("failed to invalidate usher aggregate cache",
				zap.Error(err),
				zap.String("key", cacheKey),
			)
		}
	}

	return nil
}

func (s *service) GetAggregate(ctx context.Context, usherID string) (AggregateResponse, error) {
	cacheKey := GetAggregateKey(usherID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp AggregateResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		agg, err := s.repo.FindAggregate(ctx, usherID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// No ratings yet; an empty aggregate, not an error.
				return AggregateResponse{UsherID: usherID}, nil
			}
			return nil, err
		}

		resp := mapAggregate(*agg)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, aggregateCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return AggregateResponse{}, err
	}

	return v.(AggregateResponse), nil
}

func (s *service) GetForGig(ctx context.Context, gigID, usherID string) (RatingResponse, error) {
	row, err := s.repo.FindByGigAndUsher(ctx, gigID, usherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RatingResponse{}, ratingerrors.ErrRatingNotFound
		}
		return RatingResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) persistRating(ctx context.Context, rid, eventType string, row *GigRating) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Upsert(ctx, row); err != nil {
		s.logger.Error("rating upsert failed",
			zap.String("request_id", rid),
			zap.String("gig_id", row.GigID.String()),
			zap.String("usher_id", row.UsherID.String()),
			zap.Error(err),
		)
		return err
	}

	if s.outbox != nil {
		event := events.RatingSubmittedEvent{
			EventType:   eventType,
			RequestID:   rid,
			GigID:       row.GigID.String(),
			UsherID:     row.UsherID.String(),
			FinalRating: row.FinalRating,
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "gig_rating",
			AggregateID:   row.UsherID.String(),
			EventType:     eventType,
			Topic:         events.RatingSubmittedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func mapToResponse(r GigRating) RatingResponse {
	return RatingResponse{
		GigID:            r.GigID.String(),
		UsherID:          r.UsherID.String(),
		BrandRating:      r.BrandRating,
		AttendanceDays:   r.AttendanceDays,
		TotalGigDays:     r.TotalGigDays,
		AttendanceRating: r.AttendanceRating,
		BrandRatingStars: r.BrandRatingStars,
		FinalRating:      r.FinalRating,
		Notes:            r.Notes,
	}
}

func mapAggregate(a UsherAggregate) AggregateResponse {
	return AggregateResponse{
		UsherID:             a.UsherID.String(),
		OverallRating:       a.OverallRating,
		AttendanceRatingAvg: a.AttendanceRatingAvg,
		BrandRatingAvg:      a.BrandRatingAvg,
		TotalRatingsCount:   a.TotalRatingsCount,
		TotalGigsCompleted:  a.TotalGigsCompleted,
	}
}
