package app

import (
	"go.uber.org/fx"

	"github.com/pr-poehali-dev/wild-politics-portal/config"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/domain"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/database"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/httpserver"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/kafka"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/logger"
	"github.com/pr-poehali-dev/wild-politics-portal/internal/infrastructure/telegram"
)

// CreateApp creates the fx application with all dependencies
func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(config.Out),
		fx.Provide(logger.NewLogger),
		database.Module,
		kafka.Module,
		telegram.Module,
		httpserver.Module,
		domain.Module,
	)
}
