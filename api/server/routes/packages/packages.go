package packages

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/api/types"
	"github.com/DanZai233/LPH/internal/packages"
)

type handler struct {
	collector *packages.Collector
}

func (h *handler) list(c *gin.Context) {
	pkgs := h.collector.Collect()
	pkgs = packages.FilterByManager(pkgs, c.Query("manager"))
	if search := c.Query("search"); search != "" {
		pkgs = packages.Search(pkgs, search)
	}
	if pkgs == nil {
		pkgs = []types.Package{}
	}
	c.JSON(http.StatusOK, pkgs)
}

func (h *handler) get(c *gin.Context) {
	id := c.Param("id")
	for _, pkg := range h.collector.Collect() {
		if pkg.ID == id {
			c.JSON(http.StatusOK, pkg)
			return
		}
	}
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Package not found"})
}

func (h *handler) search(c *gin.Context) {
	results := packages.Search(h.collector.Collect(), c.Param("query"))
	if results == nil {
		results = []types.Package{}
	}
	c.JSON(http.StatusOK, results)
}
