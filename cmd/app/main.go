package main

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/pr-poehali-dev/wild-politics-portal/config"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/app"
)

func main() {
	fx.New(
		app.CreateApp(),
		fx.Invoke(run),
	).Run()
}

func run(
	lc fx.Lifecycle,
	cfg *config.Config,
	logger zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info().
				Str("service", cfg.Service.Name).
				Str("port", cfg.Service.Port).
				Msg("Starting portal service")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Portal service stopped")
			return nil
		},
	})
}
