// Package metrics exposes Prometheus instruments for the bot.
// All methods are safe to call on a nil *Metrics, which records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "airbot"

// Metrics holds the bot's instruments and the registry they belong to.
type Metrics struct {
	registry       *prometheus.Registry
	updates        *prometheus.CounterVec
	fetches        *prometheus.CounterVec
	knownLocations prometheus.Gauge
}

// New creates the instruments on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "updates_total",
			Help:      "Inbound chat messages by classified intent.",
		}, []string{"intent"}),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_total",
			Help:      "Air quality provider requests by result.",
		}, []string{"result"}),
		knownLocations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "known_locations",
			Help:      "Chats with a stored location.",
		}),
	}
	reg.MustRegister(
		m.updates,
		m.fetches,
		m.knownLocations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveIntent counts one routed message.
func (m *Metrics) ObserveIntent(intent string) {
	if m == nil {
		return
	}
	m.updates.WithLabelValues(intent).Inc()
}

// ObserveFetch counts one provider request outcome.
func (m *Metrics) ObserveFetch(result string) {
	if m == nil {
		return
	}
	m.fetches.WithLabelValues(result).Inc()
}

// SetKnownLocations records the current size of the location store.
func (m *Metrics) SetKnownLocations(n int) {
	if m == nil {
		return
	}
	m.knownLocations.Set(float64(n))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
