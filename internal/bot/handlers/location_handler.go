package handlers

import (
	"context"
	"fmt"
)

// NewLocationHandler returns a handler that records a shared location.
func NewLocationHandler(deps HandlerDeps) HandlerFunc {
	return locationHandler{deps}.Handle
}

type locationHandler struct {
	deps HandlerDeps
}

func (h locationHandler) Handle(ctx context.Context, msg Message) (*Reply, error) {
	log := h.deps.Logger.With("handler", "location")

	if msg.Location == nil {
		log.WarnContext(ctx, "Location handler called without a location", "chat_id", msg.ChatID)
		return nil, nil
	}

	coord := *msg.Location
	h.deps.Store.Set(msg.ChatID, coord)
	h.deps.Metrics.SetKnownLocations(h.deps.Store.Len())

	log.InfoContext(ctx, "Stored location", "chat_id", msg.ChatID, "lat", coord.Latitude, "lon", coord.Longitude)
	return &Reply{
		Text:     fmt.Sprintf(msgLocationSavedFmt, coord),
		Keyboard: MainKeyboard(),
	}, nil
}
