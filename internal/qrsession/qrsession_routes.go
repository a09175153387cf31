package qrsession

import (
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	sessions := r.Group("/gigs/:id/qr-sessions")
	sessions.Use(middleware.AuthMiddleware(), middleware.RequireRole(middleware.RoleBrand))
	{
		sessions.POST("", h.Generate)
		sessions.GET("/active", h.GetActive)
	}

	r.POST("/qr-sessions/:sessionId/revoke",
		middleware.AuthMiddleware(),
		middleware.RequireRole(middleware.RoleBrand),
		h.Revoke,
	)
}
