package handlers

import (
	"context"
)

// NewStartHandler returns a handler for the /start command.
func NewStartHandler(deps HandlerDeps) HandlerFunc {
	return startHandler{deps}.Handle
}

// startHandler greets the user, telling new and returning users apart by
// whether a location is already on file.
type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, msg Message) (*Reply, error) {
	log := h.deps.Logger.With("handler", "start")

	if _, ok := h.deps.Store.Get(msg.ChatID); ok {
		log.DebugContext(ctx, "Greeting returning user", "chat_id", msg.ChatID)
		return &Reply{Text: msgWelcomeBack, Keyboard: MainKeyboard()}, nil
	}

	log.DebugContext(ctx, "Greeting new user", "chat_id", msg.ChatID)
	return &Reply{Text: msgWelcomeNew, Keyboard: LocationKeyboard()}, nil
}
