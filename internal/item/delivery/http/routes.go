package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under rg.
// /search is registered before /:id so it is never read as an id.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	items := rg.Group("/items")
	{
		items.GET("", h.List)
		items.GET("/search", h.Search)
		items.GET("/:id", h.Detail)
		items.POST("", h.Create)
		items.PUT("/:id", h.Replace)
		items.PATCH("/:id", h.Patch)
		items.DELETE("/:id", h.Delete)
	}
}
