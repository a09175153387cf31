package shift

import (
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	shifts := r.Group("/shifts")
	shifts.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleUsher))
	{
		shifts.POST("/scan", middleware.Idempotency(rdb), h.Scan)
		shifts.GET("", h.GetMine)
		shifts.GET("/:gigId", h.GetOne)
	}
}
