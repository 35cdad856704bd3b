//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"

	"github.com/chkwon/redpen-app/internal/app"
	"github.com/chkwon/redpen-app/internal/config"
	"github.com/chkwon/redpen-app/internal/github"
	"github.com/chkwon/redpen-app/internal/review"
	"github.com/chkwon/redpen-app/internal/server"
)

func InitializeApp() (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		config.LoadConfig,
		review.NewProcessor,
		github.NewClientFactory,
		provideRecorder,
		provideLoggerConfig,
		provideLogWriter,
		provideSlogLogger,
	)
	return &app.App{}, nil, nil
}
