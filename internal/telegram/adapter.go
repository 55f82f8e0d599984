package telegram

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/edgard/airbot/internal/airquality"
	"github.com/edgard/airbot/internal/bot/handlers"
	"github.com/edgard/airbot/internal/location"
)

// Router classifies a message and produces the reply to send, if any.
type Router interface {
	Route(ctx context.Context, msg handlers.Message) (*handlers.Reply, error)
}

// sender is the subset of *bot.Bot used to deliver replies.
type sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// NewUpdateHandler returns the default update handler: every message update
// is routed through router and the resulting reply is sent back to its chat.
func NewUpdateHandler(router Router, logger *slog.Logger) bot.HandlerFunc {
	log := logger.With("component", "update_handler")
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		handleUpdate(ctx, b, router, log, update)
	}
}

func handleUpdate(ctx context.Context, s sender, router Router, log *slog.Logger, update *models.Update) {
	msg, ok := toMessage(update)
	if !ok {
		log.DebugContext(ctx, "Ignoring update without a message")
		return
	}

	reply, err := router.Route(ctx, msg)
	if err != nil {
		attrs := []any{"chat_id", msg.ChatID, "error", err}
		var fe *airquality.FetchError
		if errors.As(err, &fe) {
			attrs = append(attrs, "kind", fe.Kind.String(), "status", fe.StatusCode)
		}
		log.ErrorContext(ctx, "Handler failed", attrs...)
	}
	if reply == nil {
		return
	}

	params := &bot.SendMessageParams{
		ChatID:    msg.ChatID,
		Text:      reply.Text,
		ParseMode: toParseMode(reply.ParseMode),
	}
	if markup := toReplyMarkup(reply.Keyboard); markup != nil {
		params.ReplyMarkup = markup
	}
	if _, err := s.SendMessage(ctx, params); err != nil {
		log.ErrorContext(ctx, "Failed to send reply", "chat_id", msg.ChatID, "error", err)
	}
}

// toMessage extracts the routed fields of a message update.
func toMessage(update *models.Update) (handlers.Message, bool) {
	if update == nil || update.Message == nil {
		return handlers.Message{}, false
	}
	m := update.Message
	msg := handlers.Message{
		ChatID: m.Chat.ID,
		Text:   m.Text,
	}
	if m.From != nil {
		msg.UserID = m.From.ID
	}
	if m.Location != nil {
		msg.Location = &location.Coordinate{
			Latitude:  m.Location.Latitude,
			Longitude: m.Location.Longitude,
		}
	}
	return msg, true
}

func toParseMode(mode handlers.ParseMode) models.ParseMode {
	if mode == handlers.ParseModeMarkdownV2 {
		return models.ParseModeMarkdown
	}
	return ""
}

func toReplyMarkup(kb *handlers.Keyboard) *models.ReplyKeyboardMarkup {
	if kb == nil {
		return nil
	}
	rows := make([][]models.KeyboardButton, 0, len(kb.Rows))
	for _, row := range kb.Rows {
		buttons := make([]models.KeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, models.KeyboardButton{
				Text:            btn.Text,
				RequestLocation: btn.RequestLocation,
			})
		}
		rows = append(rows, buttons)
	}
	return &models.ReplyKeyboardMarkup{
		Keyboard:       rows,
		ResizeKeyboard: kb.Resize,
	}
}
