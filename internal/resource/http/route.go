package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public catalog endpoints under /resources.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/resources")
	{
		group.GET("", h.Search)
		group.GET("/:id", h.Get)
		group.GET("/category/:categoryId", h.ListByCategory)
	}
}

// RegisterServicerRoutes mounts the servicer-scoped CRUD endpoints. The
// caller is expected to guard the group with auth + servicer-role middleware.
func RegisterServicerRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/resources")
	{
		group.GET("", h.ListMine)
		group.POST("", h.Create)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Delete)
	}
}
