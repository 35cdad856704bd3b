// Package app ties the configured components of the redpen webhook service
// together and owns their lifecycle.
package app

import (
	"log/slog"

	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/core"
	"github.com/chkwon/redpen-app/internal/server"
)

// App holds the main application components.
type App struct {
	cfg      *config.Config
	server   *server.Server
	recorder core.DeliveryRecorder
	logger   *slog.Logger
}

// NewApp assembles the application from its already-constructed parts.
func NewApp(cfg *config.Config, srv *server.Server, recorder core.DeliveryRecorder, logger *slog.Logger) *App {
	return &App{
		cfg:      cfg,
		server:   srv,
		recorder: recorder,
		logger:   logger,
	}
}

// Start runs the HTTP server and blocks until shutdown or error.
func (a *App) Start() error {
	a.logger.Info("starting redpen-app",
		"server_port", a.cfg.ServerPort,
		"app_id", a.cfg.GitHub.AppID,
		"trigger_phrases", a.cfg.Review.TriggerPhrases,
		"audit_log", a.cfg.Database.Enabled())

	return a.server.Start()
}

// Stop shuts down the application cleanly: the server first so no new
// deliveries arrive, then the recorder so queued audit records are flushed.
func (a *App) Stop() error {
	a.logger.Info("shutting down redpen-app")

	err := a.server.Stop()
	if err != nil {
		a.logger.Error("error during HTTP server shutdown", "error", err)
	}

	a.recorder.Stop()

	if err != nil {
		return err
	}
	a.logger.Info("redpen-app stopped successfully")
	return nil
}
