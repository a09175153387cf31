package gig

import (
	"github.com/mohamedmoamen2194/ushering-platform-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	gigs := r.Group("/gigs")
	gigs.Use(middleware.AuthMiddleware())
	{
		gigs.GET("", middleware.RequireRole(middleware.RoleBrand), h.GetAll)
		gigs.POST("", middleware.RequireRole(middleware.RoleBrand), h.Create)
		gigs.POST("/:id/publish", middleware.RequireRole(middleware.RoleBrand), h.Publish)
		gigs.POST("/:id/apply", middleware.RequireRole(middleware.RoleUsher), h.Apply)
		gigs.POST("/:id/complete", middleware.RequireRole(middleware.RoleBrand), h.Complete)
	}

	r.POST("/applications/:applicationId/decide",
		middleware.AuthMiddleware(),
		middleware.RequireRole(middleware.RoleBrand),
		h.Decide,
	)
}
