// Package aliases provides the /api/aliases routes
package aliases

import (
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/internal/store"
)

// AddRoutes adds the alias CRUD routes to the router
func AddRoutes(rg *gin.RouterGroup, aliases *store.AliasStore) {
	h := &handler{store: aliases}
	ar := rg.Group("/aliases")
	ar.GET("", h.list)
	ar.GET("/:id", h.get)
	ar.POST("", h.create)
	ar.PUT("/:id", h.update)
	ar.DELETE("/:id", h.remove)
}
