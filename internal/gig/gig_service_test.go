package gig_test

import (
	"context"
	"testing"
	"time"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig"
	gigerrors "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig/errors"
	gigMock "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig/mock"
	counterMock "github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/counter/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type gigFixture struct {
	repo     *gigMock.MockRepository
	counters *counterMock.MockRepository
	sweeper  *gigMock.MockCompletionSweeper
	service  gig.Service
}

func newGigFixture(ctrl *gomock.Controller) *gigFixture {
	f := &gigFixture{
		repo:     gigMock.NewMockRepository(ctrl),
		counters: counterMock.NewMockRepository(ctrl),
		sweeper:  gigMock.NewMockCompletionSweeper(ctrl),
	}
	f.service = gig.NewService(nil, f.repo, f.counters, f.sweeper)
	return f
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	brandID := uuid.NewString()

	req := gig.CreateGigRequest{
		Title:         "Product Launch",
		StartTime:     "2026-03-14T18:00:00Z",
		DurationHours: 4,
		PayRate:       50,
		TotalGigDays:  3,
	}

	t.Run("Success With Sequential Code", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.counters.EXPECT().GetNextValue(ctx, brandID, "gig").Return(int64(7), nil)

		var created *gig.Gig
		f.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, g *gig.Gig) error {
				created = g
				return nil
			})

		resp, err := f.service.Create(ctx, brandID, req)

		assert.NoError(t, err)
		assert.Equal(t, "GIG-00007", resp.Code)
		assert.Equal(t, gig.StatusDraft, resp.Status)
		assert.Equal(t, time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC), created.StartTime)
	})

	t.Run("Invalid Start Time", func(t *testing.T) {
		f := newGigFixture(ctrl)

		bad := req
		bad.StartTime = "next friday"

		_, err := f.service.Create(ctx, brandID, bad)
		assert.Equal(t, gigerrors.ErrInvalidStartTime, err)
	})
}

func TestService_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	gigID := uuid.New()
	brandID := uuid.New()

	draft := func() *gig.Gig {
		return &gig.Gig{ID: gigID, BrandID: brandID, Status: gig.StatusDraft}
	}

	t.Run("Draft Becomes Active", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(draft(), nil)
		f.repo.EXPECT().UpdateStatus(ctx, gigID.String(), gig.StatusActive).Return(nil)

		resp, err := f.service.Publish(ctx, gigID.String(), brandID.String())
		assert.NoError(t, err)
		assert.Equal(t, gig.StatusActive, resp.Status)
	})

	t.Run("Non-Owner Rejected", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(draft(), nil)

		_, err := f.service.Publish(ctx, gigID.String(), uuid.NewString())
		assert.Equal(t, gigerrors.ErrNotGigOwner, err)
	})

	t.Run("Already Active Rejected", func(t *testing.T) {
		f := newGigFixture(ctrl)

		g := draft()
		g.Status = gig.StatusActive
		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(g, nil)

		_, err := f.service.Publish(ctx, gigID.String(), brandID.String())
		assert.Equal(t, gigerrors.ErrGigNotActive, err)
	})
}

func TestService_Apply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	gigID := uuid.New()
	usherID := uuid.NewString()

	activeGig := func() *gig.Gig {
		return &gig.Gig{ID: gigID, BrandID: uuid.New(), Status: gig.StatusActive}
	}

	t.Run("Success", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(activeGig(), nil)
		f.repo.EXPECT().
			CreateApplication(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, a *gig.Application) error {
				assert.Equal(t, gig.ApplicationPending, a.Status)
				return nil
			})

		resp, err := f.service.Apply(ctx, gigID.String(), usherID)
		assert.NoError(t, err)
		assert.Equal(t, gig.ApplicationPending, resp.Status)
	})

	t.Run("Gig Not Active", func(t *testing.T) {
		f := newGigFixture(ctrl)

		g := activeGig()
		g.Status = gig.StatusDraft
		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(g, nil)

		_, err := f.service.Apply(ctx, gigID.String(), usherID)
		assert.Equal(t, gigerrors.ErrGigNotActive, err)
	})

	t.Run("Gig Not Found", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := f.service.Apply(ctx, gigID.String(), usherID)
		assert.Equal(t, gigerrors.ErrGigNotFound, err)
	})

	t.Run("Duplicate Application", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(activeGig(), nil)
		f.repo.EXPECT().
			CreateApplication(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_application_gig_usher"})

		_, err := f.service.Apply(ctx, gigID.String(), usherID)
		assert.Equal(t, gigerrors.ErrAlreadyApplied, err)
	})
}

func TestService_Decide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	applicationID := uuid.New()
	gigID := uuid.New()
	brandID := uuid.New()
	usherID := uuid.New()

	pending := func() *gig.Application {
		return &gig.Application{
			ID:      applicationID,
			GigID:   gigID,
			UsherID: usherID,
			Status:  gig.ApplicationPending,
		}
	}
	owned := &gig.Gig{ID: gigID, BrandID: brandID, Status: gig.StatusActive}

	t.Run("Approve", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().FindApplicationByID(ctx, applicationID.String()).Return(pending(), nil)
		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(owned, nil)
		f.repo.EXPECT().
			UpdateApplicationStatus(ctx, applicationID.String(), gig.ApplicationApproved).
			Return(nil)

		resp, err := f.service.Decide(ctx, applicationID.String(), brandID.String(), true)
		assert.NoError(t, err)
		assert.Equal(t, gig.ApplicationApproved, resp.Status)
	})

	t.Run("Reject", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().FindApplicationByID(ctx, applicationID.String()).Return(pending(), nil)
		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(owned, nil)
		f.repo.EXPECT().
			UpdateApplicationStatus(ctx, applicationID.String(), gig.ApplicationRejected).
			Return(nil)

		resp, err := f.service.Decide(ctx, applicationID.String(), brandID.String(), false)
		assert.NoError(t, err)
		assert.Equal(t, gig.ApplicationRejected, resp.Status)
	})

	t.Run("Already Decided", func(t *testing.T) {
		f := newGigFixture(ctrl)

		a := pending()
		a.Status = gig.ApplicationApproved
		f.repo.EXPECT().FindApplicationByID(ctx, applicationID.String()).Return(a, nil)
		f.repo.EXPECT().FindByID(ctx, gigID.String()).Return(owned, nil)

		_, err := f.service.Decide(ctx, applicationID.String(), brandID.String(), false)
		assert.Equal(t, gigerrors.ErrApplicationNotPending, err)
	})

	t.Run("Unknown Application", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().
			FindApplicationByID(ctx, applicationID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := f.service.Decide(ctx, applicationID.String(), brandID.String(), true)
		assert.Equal(t, gigerrors.ErrApplicationNotFound, err)
	})
}

func TestService_IsApprovedForGig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	f := newGigFixture(ctrl)
	gigID := uuid.NewString()
	usherID := uuid.NewString()

	t.Run("Approved", func(t *testing.T) {
		f.repo.EXPECT().
			FindApplication(ctx, gigID, usherID).
			Return(&gig.Application{Status: gig.ApplicationApproved}, nil)

		ok, err := f.service.IsApprovedForGig(ctx, gigID, usherID)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Pending Is Not Approved", func(t *testing.T) {
		f.repo.EXPECT().
			FindApplication(ctx, gigID, usherID).
			Return(&gig.Application{Status: gig.ApplicationPending}, nil)

		ok, err := f.service.IsApprovedForGig(ctx, gigID, usherID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("No Application Is Not An Error", func(t *testing.T) {
		f.repo.EXPECT().
			FindApplication(ctx, gigID, usherID).
			Return(nil, gorm.ErrRecordNotFound)

		ok, err := f.service.IsApprovedForGig(ctx, gigID, usherID)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	gigID := uuid.New()
	brandID := uuid.New()

	t.Run("Active Gig Completed And Swept", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().
			FindByID(ctx, gigID.String()).
			Return(&gig.Gig{ID: gigID, BrandID: brandID, Status: gig.StatusActive}, nil)
		f.repo.EXPECT().UpdateStatus(ctx, gigID.String(), gig.StatusCompleted).Return(nil)
		f.sweeper.EXPECT().SweepGig(ctx, gigID.String()).Return(nil)

		assert.NoError(t, f.service.Complete(ctx, gigID.String(), brandID.String()))
	})

	t.Run("Repeat Completion Re-Sweeps Only", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().
			FindByID(ctx, gigID.String()).
			Return(&gig.Gig{ID: gigID, BrandID: brandID, Status: gig.StatusCompleted}, nil)
		f.sweeper.EXPECT().SweepGig(ctx, gigID.String()).Return(nil)

		assert.NoError(t, f.service.Complete(ctx, gigID.String(), brandID.String()))
	})

	t.Run("Draft Gig Cannot Complete", func(t *testing.T) {
		f := newGigFixture(ctrl)

		f.repo.EXPECT().
			FindByID(ctx, gigID.String()).
			Return(&gig.Gig{ID: gigID, BrandID: brandID, Status: gig.StatusDraft}, nil)

		err := f.service.Complete(ctx, gigID.String(), brandID.String())
		assert.Equal(t, gigerrors.ErrGigNotActive, err)
	})
}
