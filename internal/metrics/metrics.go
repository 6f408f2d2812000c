// Package metrics exposes the bridge's Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// EventsReceived counts accepted webhook events by detected kind.
	EventsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panoptikauth",
		Name:      "events_received_total",
		Help:      "Webhook events accepted, labeled by detected event kind.",
	}, []string{"kind"})

	// ExtractionFallbacks counts events whose embedded literal could not be
	// decoded and fell back to default formatting.
	ExtractionFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "panoptikauth",
		Name:      "extraction_fallbacks_total",
		Help:      "Events downgraded to default formatting after a malformed literal.",
	})

	// Dispatches counts outbound deliveries by channel and outcome.
	Dispatches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "panoptikauth",
		Name:      "dispatches_total",
		Help:      "Outbound notification deliveries, labeled by channel and outcome.",
	}, []string{"channel", "outcome"})
)

// Outcome labels for Dispatches.
const (
	OutcomeOK            = "ok"
	OutcomeError         = "error"
	OutcomeNotConfigured = "not_configured"
)

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
