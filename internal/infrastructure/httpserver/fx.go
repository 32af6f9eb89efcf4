package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/pr-poehali-dev/wild-politics-portal/config"
)

// Module provides the gin engine and runs the HTTP server lifecycle
var Module = fx.Module("httpserver",
	fx.Provide(NewEngine),
	fx.Invoke(registerLifecycle),
)

// registerLifecycle starts the HTTP server after all routes are registered
func registerLifecycle(lc fx.Lifecycle, cfg *config.ServiceConfig, engine *gin.Engine, log zerolog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				log.Info().
					Str("service", cfg.Name).
					Str("addr", srv.Addr).
					Msg("HTTP server listening")

				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error().Err(err).Msg("HTTP server stopped unexpectedly")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return srv.Shutdown(ctx)
		},
	})
}
