// Package telegram connects the go-telegram/bot transport to the intent router.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// NewTelegramBot creates a new Telegram bot instance using the go-telegram/bot library.
func NewTelegramBot(token string, logger *slog.Logger, opts ...bot.Option) (*bot.Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram bot token cannot be empty")
	}
	if logger == nil {
		logger = slog.Default()
	}
	log := logger.With("component", "telegram_bot")

	b, err := bot.New(token, opts...)
	if err != nil {
		log.Error("Failed to create Telegram bot instance", "error", err)
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	log.Info("Telegram bot instance created successfully", "token_prefix", tokenPrefix(token))
	return b, nil
}

// Commands lists the bot commands advertised in the chat menu.
func Commands() []models.BotCommand {
	return []models.BotCommand{
		{Command: "start", Description: "Начать работу с ботом"},
	}
}

// RegisterCommands publishes Commands to Telegram.
func RegisterCommands(ctx context.Context, b *bot.Bot, logger *slog.Logger) error {
	if b == nil {
		return fmt.Errorf("bot instance cannot be nil")
	}
	if _, err := b.SetMyCommands(ctx, &bot.SetMyCommandsParams{Commands: Commands()}); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	logger.InfoContext(ctx, "Registered bot commands", "count", len(Commands()))
	return nil
}

// ErrorsHandler logs polling and API errors reported by the library.
func ErrorsHandler(logger *slog.Logger) bot.ErrorsHandler {
	log := logger.With("component", "telegram_bot")
	return func(err error) {
		log.Error("Telegram API error", "error", err)
	}
}

func tokenPrefix(token string) string {
	if len(token) <= 8 {
		return "..."
	}
	return token[:8] + "..."
}
