package shift

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/events"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/messaging/kafka"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/payout"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/qrsession"
	shifterrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shift/errors"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SessionGateway is the slice of the QR session manager the tracker needs:
// token validation (read-only) and the fire-and-forget scan record.
type SessionGateway interface {
	Validate(ctx context.Context, token string, now time.Time) (qrsession.SessionRef, error)
	RecordScan(ctx context.Context, sessionID, usherID string, now time.Time) error
}

// ApprovalChecker answers whether an usher holds an approved application.
type ApprovalChecker interface {
	IsApprovedForGig(ctx context.Context, gigID, usherID string) (bool, error)
}

// ScheduleReader provides the gig facts (duration, pay rate) the tracker
// reads but never writes.
type ScheduleReader interface {
	GetSchedule(ctx context.Context, gigID string) (gig.Schedule, error)
}

// AttendanceRater receives attendance-only rating updates from the sweep.
type AttendanceRater interface {
	SubmitAttendanceOnly(ctx context.Context, gigID, usherID string, attendanceDays, totalGigDays int) error
}

//go:generate mockgen -source=shift_service.go -destination=mock/shift_service_mock.go -package=mock
type Service interface {
	// Scan applies one proof-of-presence token to the usher's shift. The
	// action decides which transition is attempted; the state machine
	// rejects anything but NoShift->CheckedIn and CheckedIn->CheckedOut.
	Scan(ctx context.Context, token, usherID, action string, now time.Time) (ShiftResponse, error)

	// SweepGig settles a completed gig: flips verified shifts' payouts to
	// completed, materializes daily attendance, and pushes attendance-only
	// rating updates. Idempotent; re-runs converge.
	SweepGig(ctx context.Context, gigID string) error

	GetByGigAndUsher(ctx context.Context, gigID, usherID string) (ShiftResponse, error)
	GetAllByUsher(ctx context.Context, usherID string) ([]ShiftResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	sessions  SessionGateway
	approvals ApprovalChecker
	schedules ScheduleReader
	rater     AttendanceRater
	outbox    kafka.OutboxRepository
	locks     keyedMutex
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	sessions SessionGateway,
	approvals ApprovalChecker,
	schedules ScheduleReader,
	rater AttendanceRater,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("shift.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shift.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		sessions:  sessions,
		approvals: approvals,
		schedules: schedules,
		rater:     rater,
		outbox:    outbox,
		logger:    l,
	}
}

func (s *service) Scan(ctx context.Context, token, usherID, action string, now time.Time) (ShiftResponse, error) {
	switch action {
	case ActionCheckIn:
		return s.checkIn(ctx, token, usherID, now)
	case ActionCheckOut:
		return s.checkOut(ctx, token, usherID, now)
	default:
		return ShiftResponse{}, shifterrors.ErrUnknownAction
	}
}

func (s *service) checkIn(ctx context.Context, token, usherID string, now time.Time) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	ref, err := s.sessions.Validate(ctx, token, now)
	if err != nil {
		return ShiftResponse{}, err
	}

	// Serialize racing scans for the same (gig, usher); other ushers on the
	// same gig proceed in parallel.
	unlock := s.locks.lock(ref.GigID + "/" + usherID)
	defer unlock()

	approved, err := s.approvals.IsApprovedForGig(ctx, ref.GigID, usherID)
	if err != nil {
		return ShiftResponse{}, err
	}
	if !approved {
		return ShiftResponse{}, shifterrors.ErrNotApprovedForGig
	}

	existing, err := s.repo.FindByGigAndUsher(ctx, ref.GigID, usherID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return ShiftResponse{}, err
	}
	if err == nil {
		switch existing.AttendanceStatus {
		case StatusCheckedIn:
			return ShiftResponse{}, shifterrors.ErrAlreadyCheckedIn
		default:
			return ShiftResponse{}, shifterrors.ErrShiftClosed
		}
	}

	// All checks passed; the insert and the event share one transaction.
	checkInTime := now.UTC()
	row := &Shift{
		ID:               uuid.New(),
		GigID:            uuid.MustParse(ref.GigID),
		UsherID:          uuid.MustParse(usherID),
		CheckInTime:      &checkInTime,
		CheckInVerified:  true,
		PayoutStatus:     PayoutPending,
		AttendanceStatus: StatusCheckedIn,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("check-in persist failed",
			zap.String("request_id", rid),
			zap.String("gig_id", ref.GigID),
			zap.String("usher_id", usherID),
			zap.Error(err),
		)
		return ShiftResponse{}, err
	}

	if err := s.stageAttendanceEvent(ctx, tx, rid, "attendance_checked_in", row, nil); err != nil {
		return ShiftResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	// Side effect only; a scan-record failure never undoes the check-in.
	if err := s.sessions.RecordScan(ctx, ref.SessionID, usherID, now); err != nil {
		s.logger.Warn("record scan failed",
			zap.String("session_id", ref.SessionID),
			zap.String("usher_id", usherID),
			zap.Error(err),
		)
	}

	s.logger.Info("usher checked in",
		zap.String("request_id", rid),
		zap.String("gig_id", ref.GigID),
		zap.String("usher_id", usherID),
	)
	return mapToResponse(*row), nil
}

func (s *service) checkOut(ctx context.Context, token, usherID string, now time.Time) (ShiftResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	ref, err := s.sessions.Validate(ctx, token, now)
	if err != nil {
		return ShiftResponse{}, err
	}

	unlock := s.locks.lock(ref.GigID + "/" + usherID)
	defer unlock()

	row, err := s.repo.FindByGigAndUsher(ctx, ref.GigID, usherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrMustCheckInFirst
		}
		return ShiftResponse{}, err
	}
	if row.AttendanceStatus != StatusCheckedIn {
		return ShiftResponse{}, shifterrors.ErrAlreadyCheckedOut
	}

	sched, err := s.schedules.GetSchedule(ctx, ref.GigID)
	if err != nil {
		return ShiftResponse{}, err
	}

	// Hours come from the actual presence window, capped at the scheduled
	// duration. Leaving early pays for time worked; overstaying does not
	// pay extra. A checkout clocked before the check-in counts as zero.
	elapsed := maxFloat(now.Sub(*row.CheckInTime).Hours(), 0)
	hoursWorked := round2(minFloat(elapsed, sched.DurationHours))
	amount := payout.Compute(hoursWorked, sched.PayRate)

	checkOutTime := now.UTC()
	row.CheckOutTime = &checkOutTime
	row.CheckOutVerified = true
	row.HoursWorked = &hoursWorked
	row.PayoutAmount = &amount
	row.AttendanceStatus = StatusCheckedOut

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ShiftResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("check-out persist failed",
			zap.String("request_id", rid),
			zap.String("gig_id", ref.GigID),
			zap.String("usher_id", usherID),
			zap.Error(err),
		)
		return ShiftResponse{}, err
	}

	if err := s.stageAttendanceEvent(ctx, tx, rid, "attendance_checked_out", row, &hoursWorked); err != nil {
		return ShiftResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ShiftResponse{}, err
	}

	if err := s.sessions.RecordScan(ctx, ref.SessionID, usherID, now); err != nil {
		s.logger.Warn("record scan failed",
			zap.String("session_id", ref.SessionID),
			zap.String("usher_id", usherID),
			zap.Error(err),
		)
	}

	s.logger.Info("usher checked out",
		zap.String("request_id", rid),
		zap.String("gig_id", ref.GigID),
		zap.String("usher_id", usherID),
		zap.Float64("hours_worked", hoursWorked),
		zap.Float64("payout_amount", amount),
	)
	return mapToResponse(*row), nil
}

func (s *service) SweepGig(ctx context.Context, gigID string) error {
	sched, err := s.schedules.GetSchedule(ctx, gigID)
	if err != nil {
		return err
	}

	shifts, err := s.repo.FindAllByGig(ctx, gigID)
	if err != nil {
		return err
	}

	for _, row := range shifts {
		if !row.CheckInVerified || !row.CheckOutVerified {
			continue
		}

		if row.PayoutStatus == PayoutPending {
			if err := s.repo.MarkPayoutCompleted(ctx, row.ID.String()); err != nil {
				return err
			}
		}

		hours := 0.0
		if row.HoursWorked != nil {
			hours = *row.HoursWorked
		}
		day := row.CheckInTime.UTC().Truncate(24 * time.Hour)
		if err := s.repo.UpsertDailyAttendance(ctx, &DailyAttendance{
			GigID:       row.GigID,
			UsherID:     row.UsherID,
			Date:        day,
			IsPresent:   true,
			HoursWorked: hours,
		}); err != nil {
			return err
		}

		attendanceDays, err := s.repo.CountPresentDays(ctx, gigID, row.UsherID.String())
		if err != nil {
			return err
		}
		if s.rater != nil {
			if err := s.rater.SubmitAttendanceOnly(ctx, gigID, row.UsherID.String(), attendanceDays, sched.TotalGigDays); err != nil {
				return err
			}
		}
	}

	s.logger.Info("completion sweep finished",
		zap.String("gig_id", gigID),
		zap.Int("shifts", len(shifts)),
	)
	return nil
}

func (s *service) GetByGigAndUsher(ctx context.Context, gigID, usherID string) (ShiftResponse, error) {
	row, err := s.repo.FindByGigAndUsher(ctx, gigID, usherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ShiftResponse{}, shifterrors.ErrShiftNotFound
		}
		return ShiftResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) GetAllByUsher(ctx context.Context, usherID string) ([]ShiftResponse, error) {
	rows, err := s.repo.FindAllByUsher(ctx, usherID)
	if err != nil {
		return nil, err
	}
	res := make([]ShiftResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) stageAttendanceEvent(
	ctx context.Context,
	tx *sql.Tx,
	rid, eventType string,
	row *Shift,
	hours *float64,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.AttendanceRecordedEvent{
		EventType:   eventType,
		RequestID:   rid,
		GigID:       row.GigID.String(),
		UsherID:     row.UsherID.String(),
		HoursWorked: hours,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "shift",
		AggregateID:   row.ID.String(),
		EventType:     eventType,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// keyedMutex hands out one mutex per key. Entries are never evicted; the key
// space is bounded by active (gig, usher) pairs.
type keyedMutex struct {
	mus sync.Map
}

func (k *keyedMutex) lock(key string) func() {
	v, _ := k.mus.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func mapToResponse(s Shift) ShiftResponse {
	resp := ShiftResponse{
		ID:               s.ID.String(),
		GigID:            s.GigID.String(),
		UsherID:          s.UsherID.String(),
		CheckInVerified:  s.CheckInVerified,
		CheckOutVerified: s.CheckOutVerified,
		HoursWorked:      s.HoursWorked,
		PayoutAmount:     s.PayoutAmount,
		PayoutStatus:     s.PayoutStatus,
		AttendanceStatus: s.AttendanceStatus,
	}
	if s.CheckInTime != nil {
		v := s.CheckInTime.UTC().Format(time.RFC3339)
		resp.CheckInTime = &v
	}
	if s.CheckOutTime != nil {
		v := s.CheckOutTime.UTC().Format(time.RFC3339)
		resp.CheckOutTime = &v
	}
	return resp
}
