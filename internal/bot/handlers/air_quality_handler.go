package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/edgard/airbot/internal/airquality"
)

// NewAirQualityHandler returns a handler that reports air quality for the
// chat's stored location.
func NewAirQualityHandler(deps HandlerDeps) HandlerFunc {
	return airQualityHandler{deps}.Handle
}

type airQualityHandler struct {
	deps HandlerDeps
}

// Handle looks up the chat's coordinate and, when one is known, fetches and
// formats the current reading. Without a coordinate no request is made.
// Provider failures produce a generic reply plus the error for logging.
func (h airQualityHandler) Handle(ctx context.Context, msg Message) (*Reply, error) {
	log := h.deps.Logger.With("handler", "air_quality")

	coord, ok := h.deps.Store.Get(msg.ChatID)
	if !ok {
		log.InfoContext(ctx, "Air quality requested without a stored location", "chat_id", msg.ChatID)
		return &Reply{Text: msgLocationRequired, Keyboard: LocationKeyboard()}, nil
	}

	reading, err := h.deps.AirClient.Fetch(ctx, coord)
	if err != nil {
		result := "error"
		var fe *airquality.FetchError
		if errors.As(err, &fe) {
			result = fe.Kind.String()
		}
		h.deps.Metrics.ObserveFetch(result)
		return &Reply{Text: msgFetchFailed, Keyboard: MainKeyboard()},
			fmt.Errorf("fetch air quality for chat %d: %w", msg.ChatID, err)
	}
	h.deps.Metrics.ObserveFetch("success")

	log.InfoContext(ctx, "Fetched air quality", "chat_id", msg.ChatID, "city", reading.City, "aqi", reading.AQI)
	return &Reply{
		Text:      h.deps.Formatter.Format(reading),
		ParseMode: ParseModeMarkdownV2,
		Keyboard:  MainKeyboard(),
	}, nil
}
