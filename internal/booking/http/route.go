package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the user-facing booking endpoints under /bookings.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")

	group.Use(authMiddleware)
	{
		group.GET("/my", h.ListMine)
		group.GET("/:id", h.Get)
		group.POST("", h.Create)
		group.PUT("/:id/cancel", h.Cancel)
	}
}

// RegisterServicerRoutes mounts the servicer-facing booking endpoints. The
// caller is expected to guard the group with auth + servicer-role middleware.
func RegisterServicerRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/bookings")
	{
		group.GET("", h.ListForServicer)
		group.PUT("/:id/approve", h.Approve)
		group.PUT("/:id/reject", h.Reject)
	}
}
