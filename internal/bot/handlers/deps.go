package handlers

import (
	"log/slog"

	"github.com/edgard/airbot/internal/airquality"
	"github.com/edgard/airbot/internal/location"
	"github.com/edgard/airbot/internal/metrics"
)

// ReportFormatter turns a reading into the message text sent to the user.
type ReportFormatter interface {
	Format(reading airquality.Reading) string
}

// HandlerDeps provides dependencies for the intent handlers.
type HandlerDeps struct {
	Logger    *slog.Logger
	Store     location.Store
	AirClient airquality.Client
	Formatter ReportFormatter
	Metrics   *metrics.Metrics // optional
}
