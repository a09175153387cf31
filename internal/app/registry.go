package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/auth"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/gig"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/messaging/kafka"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/qrsession"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/rating"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shared/counter"
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/shift"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// completionSweeper breaks the constructor cycle between gig and shift: gig
// completion triggers the sweep, and the sweep reads gig facts back. The
// delegate is bound once the shift service exists.
type completionSweeper struct {
	delegate shift.Service
}

func (c *completionSweeper) SweepGig(ctx context.Context, gigID string) error {
	if c.delegate == nil {
		return fmt.Errorf("completion sweeper not bound")
	}
	return c.delegate.SweepGig(ctx, gigID)
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	gigRepo := gig.NewRepository(gormDB)
	qrSessionRepo := qrsession.NewRepository(gormDB)
	shiftRepo := shift.NewRepository(gormDB)
	ratingRepo := rating.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	sweeper := &completionSweeper{}
	gigService := gig.NewService(db, gigRepo, counterRepo, sweeper)
	qrSessionService := qrsession.NewService(qrSessionRepo, gigService)
	ratingService := rating.NewService(db, ratingRepo, gigService, gigService, outboxRepo, rdb)
	shiftService := shift.NewService(db, shiftRepo, qrSessionService, gigService, gigService, ratingService, outboxRepo)
	sweeper.delegate = shiftService
	authService := auth.NewService(authRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	gigHandler := gig.NewHandler(gigService)
	qrSessionHandler := qrsession.NewHandler(qrSessionService)
	shiftHandler := shift.NewHandler(shiftService)
	ratingHandler := rating.NewHandler(ratingService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		gig.RegisterRoutes(api, gigHandler)
		qrsession.RegisterRoutes(api, qrSessionHandler)
		shift.RegisterRoutes(api, shiftHandler, rdb)
		rating.RegisterRoutes(api, ratingHandler, rdb)
	}

	return nil
}
