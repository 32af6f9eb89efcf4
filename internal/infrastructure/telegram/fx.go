// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/pr-poehali-dev/wild-politics-portal/config"
)

// Module provides Telegram bot for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideBot),
)

// provideBot creates Telegram bot from config
func provideBot(cfg *config.TelegramConfig, logger zerolog.Logger) (*Bot, error) {
	return NewBot(cfg.BotToken, logger.With().Str("component", "telegram-bot").Logger())
}
