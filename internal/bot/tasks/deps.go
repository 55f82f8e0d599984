// Package tasks implements scheduled background tasks for the bot.
package tasks

import (
	"log/slog"

	"github.com/edgard/airbot/internal/location"
	"github.com/edgard/airbot/internal/metrics"
)

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger  *slog.Logger
	Store   location.Store
	Metrics *metrics.Metrics // optional
}
