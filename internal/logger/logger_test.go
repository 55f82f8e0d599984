package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		require.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewHandlerJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, slog.LevelInfo, true))
	log.Debug("hidden")
	log.Info("shown", "chat_id", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "shown", entry["msg"])
	require.EqualValues(t, 42, entry["chat_id"])
}

func TestNewHandlerText(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newHandler(&buf, slog.LevelWarn, false))
	log.Info("hidden")
	log.Warn("shown", "kind", "upstream_error")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
	require.Contains(t, buf.String(), "upstream_error")
}

func TestTruncateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "short", truncateString("short", 10))
	require.Equal(t, "abcd...", truncateString("abcdefghij", 7))
	require.Equal(t, "...", truncateString("abcdef", 2))
	require.Equal(t, "🌫 К...", truncateString("🌫 Качество воздуха", 6))
}

func TestMiddlewareCallsNext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	called := false
	next := func(ctx context.Context, b *bot.Bot, update *models.Update) { called = true }

	update := &models.Update{
		ID: 7,
		Message: &models.Message{
			ID:       3,
			Chat:     models.Chat{ID: 100},
			From:     &models.User{ID: 200},
			Location: &models.Location{Latitude: 55.75, Longitude: 37.62},
		},
	}
	Middleware(log)(next)(context.Background(), nil, update)

	require.True(t, called)
	require.Contains(t, buf.String(), `"chat_id":100`)
	require.Contains(t, buf.String(), `"has_location":true`)
	require.Contains(t, buf.String(), "Finished processing update")
}

func TestGocronLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	gl := NewGocronLogger(log)

	gl.Info("job scheduled", "name", "location_stats")
	require.Empty(t, buf.String(), "gocron info is logged at debug")

	gl.Error("job failed", "name", "location_stats")
	require.Contains(t, buf.String(), `"component":"gocron"`)
	require.Contains(t, buf.String(), "job failed")
}
