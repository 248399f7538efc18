// Package ai provides the /api/ai feature routes
package ai

import (
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/internal/ai"
)

// AddRoutes adds the AI feature routes to the router
func AddRoutes(rg *gin.RouterGroup, svc *ai.Service) {
	h := &handler{svc: svc}
	ar := rg.Group("/ai")
	ar.POST("/explain-package", h.explainPackage)
	ar.POST("/search-commands", h.searchCommands)
	ar.POST("/suggest-alias", h.suggestAlias)
}
