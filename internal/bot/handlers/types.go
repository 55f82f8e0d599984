// Package handlers classifies inbound chat messages into intents and runs
// the matching handler. It knows nothing about the chat transport: the
// telegram package converts updates into Message values and sends Replies.
package handlers

import (
	"context"

	"github.com/edgard/airbot/internal/location"
)

// Intent is the classified purpose of one inbound message.
type Intent int

const (
	IntentNone Intent = iota
	IntentStart
	IntentReportLocation
	IntentRequestAirQuality
)

func (i Intent) String() string {
	switch i {
	case IntentStart:
		return "start"
	case IntentReportLocation:
		return "report_location"
	case IntentRequestAirQuality:
		return "request_air_quality"
	default:
		return "none"
	}
}

// Message is the part of an inbound chat message the handlers consume.
type Message struct {
	ChatID   int64
	UserID   int64
	Text     string
	Location *location.Coordinate // nil when the message carries no location
}

// ParseMode selects how the transport interprets reply text.
type ParseMode string

const (
	ParseModePlain      ParseMode = ""
	ParseModeMarkdownV2 ParseMode = "MarkdownV2"
)

// Button is a suggested reply. When RequestLocation is set, pressing it
// shares the user's device location instead of sending Text.
type Button struct {
	Text            string
	RequestLocation bool
}

// Keyboard is a suggested-reply keyboard laid out in rows.
type Keyboard struct {
	Rows   [][]Button
	Resize bool
}

// Reply is the outbound message a handler asks the transport to send.
type Reply struct {
	Text      string
	ParseMode ParseMode
	Keyboard  *Keyboard
}

// HandlerFunc handles a classified message. A handler may return both a
// reply and an error: the reply is still sent and the error is logged.
type HandlerFunc func(ctx context.Context, msg Message) (*Reply, error)
