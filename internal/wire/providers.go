package wire

import (
	"io"
	"log/slog"
	"os"

	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/core"
	"github.com/chkwon/redpen-app/internal/db"
	"github.com/chkwon/redpen-app/internal/jobs"
	"github.com/chkwon/redpen-app/internal/logger"
	"github.com/chkwon/redpen-app/internal/storage"
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter(cfg *config.Config) io.Writer {
	switch cfg.Logging.Output {
	case "stderr":
		return os.Stderr
	case "file":
		f, _ := os.OpenFile("redpen-app.log", os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
		return f
	default:
		return os.Stdout
	}
}

func provideSlogLogger(loggerConfig logger.Config, writer io.Writer) *slog.Logger {
	return logger.NewLogger(loggerConfig, writer)
}

// provideRecorder builds the delivery recorder. Without a configured database
// the audit log degrades to a no-op and the webhook path never touches Postgres.
func provideRecorder(cfg *config.Config, log *slog.Logger) (core.DeliveryRecorder, func(), error) {
	if !cfg.Database.Enabled() {
		log.Info("delivery database not configured, audit log disabled")
		return jobs.NewNoopRecorder(), func() {}, nil
	}

	database, closeDB, err := db.NewDatabase(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	rec := jobs.NewRecorder(storage.NewStore(database.DB), cfg.RecorderWorkers, log)
	return rec, func() {
		rec.Stop()
		closeDB()
	}, nil
}
