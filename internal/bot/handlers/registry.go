package handlers

import (
	"context"
	"io"
	"log/slog"

	"github.com/edgard/airbot/internal/metrics"
)

// Route pairs a classification predicate with the handler for its intent.
type Route struct {
	Intent  Intent
	Match   func(msg Message) bool
	Handler HandlerFunc
}

// RegisterAllRoutes returns the routes in evaluation order. The first route
// whose predicate matches wins, so /start takes priority over a location
// attached to the same message.
func RegisterAllRoutes(deps HandlerDeps) []Route {
	return []Route{
		{
			Intent:  IntentStart,
			Match:   func(msg Message) bool { return msg.Text == CommandStart },
			Handler: NewStartHandler(deps),
		},
		{
			Intent:  IntentReportLocation,
			Match:   func(msg Message) bool { return msg.Location != nil },
			Handler: NewLocationHandler(deps),
		},
		{
			Intent:  IntentRequestAirQuality,
			Match:   func(msg Message) bool { return msg.Text == ButtonAirQuality },
			Handler: NewAirQualityHandler(deps),
		},
	}
}

// Router dispatches each message to the first matching route.
type Router struct {
	routes  []Route
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewRouter builds a Router over the default route table.
func NewRouter(deps HandlerDeps) *Router {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Router{
		routes:  RegisterAllRoutes(deps),
		logger:  deps.Logger.With("component", "router"),
		metrics: deps.Metrics,
	}
}

// Classify returns the intent of msg, or IntentNone when no route matches.
func (r *Router) Classify(msg Message) Intent {
	if rt := r.match(msg); rt != nil {
		return rt.Intent
	}
	return IntentNone
}

// Route runs the handler of the first matching route. Unmatched messages
// are ignored: Route returns a nil reply and a nil error.
func (r *Router) Route(ctx context.Context, msg Message) (*Reply, error) {
	rt := r.match(msg)
	if rt == nil {
		r.metrics.ObserveIntent(IntentNone.String())
		r.logger.DebugContext(ctx, "No route matched, ignoring message", "chat_id", msg.ChatID)
		return nil, nil
	}
	r.metrics.ObserveIntent(rt.Intent.String())
	r.logger.DebugContext(ctx, "Routing message", "chat_id", msg.ChatID, "intent", rt.Intent.String())
	return rt.Handler(ctx, msg)
}

func (r *Router) match(msg Message) *Route {
	for i := range r.routes {
		if r.routes[i].Match(msg) {
			return &r.routes[i]
		}
	}
	return nil
}
