// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"fmt"

	"github.com/chkwon/redpen-app/internal/app"
	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/github"
	"github.com/chkwon/redpen-app/internal/review"
	"github.com/chkwon/redpen-app/internal/server"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp() (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logWriter := provideLogWriter(cfg)
	logger := provideSlogLogger(provideLoggerConfig(cfg), logWriter)

	recorder, cleanup, err := provideRecorder(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize delivery recorder: %w", err)
	}

	clientFactory := github.NewClientFactory(cfg, logger)
	processor := review.NewProcessor(cfg, clientFactory, logger)
	httpServer := server.NewServer(cfg, processor, recorder, logger)
	application := app.NewApp(cfg, httpServer, recorder, logger)

	return application, cleanup, nil
}
