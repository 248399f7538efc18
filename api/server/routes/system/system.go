package system

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/api/types"
	"github.com/DanZai233/LPH/internal/packages"
	"github.com/DanZai233/LPH/internal/system"
)

type handler struct {
	prober    *system.Prober
	collector *packages.Collector
}

func (h *handler) getInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.prober.Info())
}

func (h *handler) getStats(c *gin.Context) {
	pkgs := h.collector.Collect()
	info := h.prober.Info()

	counts := make(map[types.PackageManager]int)
	for _, pkg := range pkgs {
		counts[pkg.Manager]++
	}

	c.JSON(http.StatusOK, types.SystemStats{
		TotalPackages:   len(pkgs),
		PackageCounts:   counts,
		PackageManagers: len(info.Managers),
		DiskUsage:       h.prober.DiskUsage(),
		SystemInfo:      info,
	})
}

func (h *handler) getManagers(c *gin.Context) {
	c.JSON(http.StatusOK, h.prober.Status())
}
