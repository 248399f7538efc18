// Package routes contains all the routes for the API
package routes

import (
	"github.com/gin-gonic/gin"

	aiRoute "github.com/DanZai233/LPH/api/server/routes/ai"
	"github.com/DanZai233/LPH/api/server/routes/aiconfig"
	"github.com/DanZai233/LPH/api/server/routes/aliases"
	pkgRoute "github.com/DanZai233/LPH/api/server/routes/packages"
	systemRoute "github.com/DanZai233/LPH/api/server/routes/system"
	"github.com/DanZai233/LPH/internal/ai"
	"github.com/DanZai233/LPH/internal/packages"
	"github.com/DanZai233/LPH/internal/store"
	"github.com/DanZai233/LPH/internal/system"
)

// Deps are the shared services the route packages operate on.
type Deps struct {
	Configs   *store.ConfigStore
	Aliases   *store.AliasStore
	Collector *packages.Collector
	Prober    *system.Prober
	AI        *ai.Service
}

// Add adds the resource routes to the router
func Add(rg *gin.RouterGroup, deps *Deps) {
	systemRoute.AddRoutes(rg, deps.Prober, deps.Collector)
	pkgRoute.AddRoutes(rg, deps.Collector)
	aliases.AddRoutes(rg, deps.Aliases)
	aiRoute.AddRoutes(rg, deps.AI)
	aiconfig.AddRoutes(rg, deps.Configs)
}
