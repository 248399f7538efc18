// Package packages provides the /api/packages routes
package packages

import (
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/internal/packages"
)

// AddRoutes adds the package inventory routes to the router
func AddRoutes(rg *gin.RouterGroup, collector *packages.Collector) {
	h := &handler{collector: collector}
	pr := rg.Group("/packages")
	pr.GET("", h.list)
	pr.GET("/search/:query", h.search)
	pr.GET("/:id", h.get)
}
