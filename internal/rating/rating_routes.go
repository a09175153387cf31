package rating

import (
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	r.POST("/gigs/:id/ratings",
		middleware.AuthMiddleware(),
		middleware.RequireRole(middleware.RoleBrand),
		middleware.Idempotency(rdb),
		h.Submit,
	)
	r.GET("/gigs/:id/ratings/:usherId",
		middleware.AuthMiddleware(),
		h.GetForGig,
	)
	r.GET("/ushers/:usherId/aggregate",
		middleware.AuthMiddleware(),
		h.GetAggregate,
	)
}
