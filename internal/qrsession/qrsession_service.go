package qrsession

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig"
	qrsessionerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/qrsession/errors"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ScheduleReader is the slice of the gig module this core reads.
type ScheduleReader interface {
	GetSchedule(ctx context.Context, gigID string) (gig.Schedule, error)
}

//go:generate mockgen -source=qrsession_service.go -destination=mock/qrsession_service_mock.go -package=mock
type Service interface {
	// Generate issues a fresh proof-of-presence session. Only the gig's brand
	// may call it, only while the gig is active, and only inside the window
	// [startTime, startTime+10m). Prior active sessions are left untouched.
	Generate(ctx context.Context, gigID, requesterID string, now time.Time) (SessionResponse, error)

	// Validate resolves a token to its session and gig. Read-only: it never
	// mutates the session, so racing check-ins see a consistent view.
	Validate(ctx context.Context, token string, now time.Time) (SessionRef, error)

	// RecordScan adds the usher to the session's scanned-by set. Idempotent;
	// never gates the check-in decision.
	RecordScan(ctx context.Context, sessionID, usherID string, now time.Time) error

	GetActive(ctx context.Context, gigID, requesterID string) (SessionResponse, error)
	Revoke(ctx context.Context, sessionID, requesterID string) error
}

type service struct {
	repo      Repository
	schedules ScheduleReader
	logger    *zap.Logger
}

func NewService(repo Repository, schedules ScheduleReader, logger ...*zap.Logger) Service {
	l := zap.L().Named("qrsession.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("qrsession.service")
	}
	return &service{repo: repo, schedules: schedules, logger: l}
}

func (s *service) Generate(ctx context.Context, gigID, requesterID string, now time.Time) (SessionResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	sched, err := s.schedules.GetSchedule(ctx, gigID)
	if err != nil {
		return SessionResponse{}, err
	}
	if sched.BrandID != requesterID {
		return SessionResponse{}, qrsessionerrors.ErrNotGigOwner
	}
	if sched.Status != gig.StatusActive {
		return SessionResponse{}, qrsessionerrors.ErrGigNotActive
	}

	windowStart := sched.StartTime
	windowEnd := sched.StartTime.Add(SessionTTL)
	if now.Before(windowStart) || !now.Before(windowEnd) {
		s.logger.Warn("qr generation outside window",
			zap.String("request_id", rid),
			zap.String("gig_id", gigID),
			zap.Time("now", now),
			zap.Time("window_start", windowStart),
			zap.Time("window_end", windowEnd),
		)
		return SessionResponse{}, qrsessionerrors.ErrOutOfWindow.WithDetails(WindowDetails{
			WindowStart: windowStart.UTC().Format(time.RFC3339),
			WindowEnd:   windowEnd.UTC().Format(time.RFC3339),
		})
	}

	token, err := newToken()
	if err != nil {
		return SessionResponse{}, err
	}

	session := &QRSession{
		ID:        uuid.New(),
		GigID:     uuid.MustParse(gigID),
		Token:     token,
		CreatedAt: now.UTC(),
		ExpiresAt: windowEnd.UTC(),
		IsActive:  true,
	}
	if err := s.repo.Create(ctx, session); err != nil {
		s.logger.Error("create qr session failed",
			zap.String("request_id", rid),
			zap.String("gig_id", gigID),
			zap.Error(err),
		)
		return SessionResponse{}, err
	}

	s.logger.Info("qr session generated",
		zap.String("request_id", rid),
		zap.String("gig_id", gigID),
		zap.String("session_id", session.ID.String()),
		zap.Time("expires_at", session.ExpiresAt),
	)
	return mapToResponse(*session, nil), nil
}

func (s *service) Validate(ctx context.Context, token string, now time.Time) (SessionRef, error) {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionRef{}, qrsessionerrors.ErrSessionNotFound
		}
		return SessionRef{}, err
	}

	// A revoked session is reported the same as a timed-out one: the token
	// was real but is no longer usable.
	if !session.IsActive || !now.Before(session.ExpiresAt) {
		return SessionRef{}, qrsessionerrors.ErrSessionExpired
	}

	return SessionRef{SessionID: session.ID.String(), GigID: session.GigID.String()}, nil
}

func (s *service) RecordScan(ctx context.Context, sessionID, usherID string, now time.Time) error {
	sid, err := uuid.Parse(sessionID)
	if err != nil {
		return qrsessionerrors.ErrSessionNotFound
	}
	uid, err := uuid.Parse(usherID)
	if err != nil {
		return err
	}

	return s.repo.UpsertScan(ctx, &QRScan{
		SessionID: sid,
		UsherID:   uid,
		ScannedAt: now.UTC(),
	})
}

func (s *service) GetActive(ctx context.Context, gigID, requesterID string) (SessionResponse, error) {
	sched, err := s.schedules.GetSchedule(ctx, gigID)
	if err != nil {
		return SessionResponse{}, err
	}
	if sched.BrandID != requesterID {
		return SessionResponse{}, qrsessionerrors.ErrNotGigOwner
	}

	session, err := s.repo.FindLatestActiveByGig(ctx, gigID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SessionResponse{}, qrsessionerrors.ErrNoActiveSession
		}
		return SessionResponse{}, err
	}

	scannedBy, err := s.repo.FindScanUsherIDs(ctx, session.ID.String())
	if err != nil {
		return SessionResponse{}, err
	}

	return mapToResponse(*session, scannedBy), nil
}

func (s *service) Revoke(ctx context.Context, sessionID, requesterID string) error {
	session, err := s.repo.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return qrsessionerrors.ErrSessionNotFound
		}
		return err
	}

	sched, err := s.schedules.GetSchedule(ctx, session.GigID.String())
	if err != nil {
		return err
	}
	if sched.BrandID != requesterID {
		return qrsessionerrors.ErrNotGigOwner
	}

	if err := s.repo.Deactivate(ctx, sessionID); err != nil {
		return err
	}

	s.logger.Info("qr session revoked",
		zap.String("session_id", sessionID),
		zap.String("gig_id", session.GigID.String()),
	)
	return nil
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func mapToResponse(s QRSession, scannedBy []string) SessionResponse {
	return SessionResponse{
		SessionID: s.ID.String(),
		GigID:     s.GigID.String(),
		Token:     s.Token,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
		ExpiresAt: s.ExpiresAt.UTC().Format(time.RFC3339),
		IsActive:  s.IsActive,
		ScannedBy: scannedBy,
	}
}
