// Package daemon provides the daemon interface and implementation.
package daemon

import (
	"github.com/DanZai233/LPH/api/server"
	"github.com/DanZai233/LPH/internal/config"
)

// Daemon is the interface that describes an lph daemon.
type Daemon interface {
	// Start starts the daemon.
	Start() error
	// Stop stops the daemon.
	Stop() error
}

type daemon struct {
	conf   *config.Config
	server *server.Server
}

// NewDaemon creates a new daemon.
func NewDaemon(conf *config.Config) Daemon {
	return &daemon{conf: conf}
}

func (d *daemon) Start() error {
	d.server = server.NewServer(d.conf)
	return d.server.Start()
}

func (d *daemon) Stop() error {
	if d.server == nil {
		return nil
	}
	return d.server.Stop()
}
