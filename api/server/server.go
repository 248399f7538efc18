// Package server contains the main server struct and methods
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/DanZai233/LPH/api/server/routes"
	"github.com/DanZai233/LPH/internal/ai"
	"github.com/DanZai233/LPH/internal/config"
	"github.com/DanZai233/LPH/internal/packages"
	"github.com/DanZai233/LPH/internal/store"
	"github.com/DanZai233/LPH/internal/system"
)

// Server is the main server struct
type Server struct {
	router *gin.Engine
	conf   *config.Config
	srv    *http.Server
}

// NewServer creates a new server
func NewServer(conf *config.Config) *Server {
	if !conf.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{conf.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	configs := store.NewConfigStore(conf.DataDir)
	aliases := store.NewAliasStore(conf.DataDir)
	collector := packages.NewCollector(nil)
	prober := system.NewProber(nil)

	routes.Add(router.Group("/api"), &routes.Deps{
		Configs:   configs,
		Aliases:   aliases,
		Collector: collector,
		Prober:    prober,
		AI:        ai.NewService(configs),
	})

	return &Server{
		router: router,
		conf:   conf,
	}
}

// Start starts the server
func (s *Server) Start() error {
	s.srv = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", s.conf.Host, s.conf.Port),
		Handler: s.router,
	}
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop gracefully stops the server
func (s *Server) Stop() error {
	if s.srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.srv.Shutdown(ctx)
}

// Router exposes the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
