// Package system provides the /api/system routes
package system

import (
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/internal/packages"
	"github.com/DanZai233/LPH/internal/system"
)

// AddRoutes adds the system routes to the router
func AddRoutes(rg *gin.RouterGroup, prober *system.Prober, collector *packages.Collector) {
	h := &handler{prober: prober, collector: collector}
	sr := rg.Group("/system")
	sr.GET("/info", h.getInfo)
	sr.GET("/stats", h.getStats)
	sr.GET("/package-managers", h.getManagers)
}
