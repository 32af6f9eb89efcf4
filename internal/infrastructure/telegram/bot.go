// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// Bot wraps the Telegram bot used to deliver admin codes out-of-band.
// When no token is configured the bot is disabled: the service still starts
// but code delivery fails with an explicit error.
type Bot struct {
	bot    *tgbot.Bot
	logger zerolog.Logger
}

// NewBot creates a new Telegram bot wrapper
func NewBot(token string, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		logger.Warn().Msg("TELEGRAM_BOT_TOKEN is not set, admin code delivery is disabled")
		return &Bot{logger: logger}, nil
	}

	bot, err := tgbot.New(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info().Msg("Telegram bot created successfully")

	return &Bot{
		bot:    bot,
		logger: logger,
	}, nil
}

// SendAdminCode sends a one-time elevation code to the user's Telegram chat
func (b *Bot) SendAdminCode(ctx context.Context, chatID int64, code string, ttl time.Duration) error {
	if b.bot == nil {
		return fmt.Errorf("telegram bot is not configured")
	}

	text := fmt.Sprintf(
		"🔐 Ваш код администратора ГТРК ОГФ: *%s*\n\nДействителен %d минут.",
		code, int(ttl.Minutes()),
	)

	_, err := b.bot.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeMarkdown,
	})
	if err != nil {
		b.logger.Error().Err(err).
			Int64("chat_id", chatID).
			Msg("Failed to send admin code")
		return fmt.Errorf("failed to send admin code: %w", err)
	}

	b.logger.Info().
		Int64("chat_id", chatID).
		Msg("Admin code sent")

	return nil
}
