// Package aiconfig provides the /api/config routes
package aiconfig

import (
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/internal/store"
)

// AddRoutes adds the AI configuration routes to the router
func AddRoutes(rg *gin.RouterGroup, configs *store.ConfigStore) {
	h := &handler{store: configs}
	cr := rg.Group("/config")
	cr.GET("/ai", h.list)
	cr.GET("/ai-providers", h.providers)
	cr.GET("/ai/:id", h.get)
	cr.POST("/ai", h.create)
	cr.PUT("/ai/:id", h.update)
	cr.DELETE("/ai/:id", h.remove)
	cr.POST("/ai/:id/activate", h.activate)
}
