// Package metrics exposes Prometheus instrumentation for the hotel bot.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors used across the application.
type Metrics struct {
	registry *prometheus.Registry

	// MessagesTotal counts processed chat messages by intent, status and
	// reply language.
	MessagesTotal *prometheus.CounterVec

	// ResponseDuration observes end-to-end message handling time.
	ResponseDuration *prometheus.HistogramVec

	// FallbacksTotal counts fallback replies by escalation tier.
	FallbacksTotal *prometheus.CounterVec

	// RateLimitDropsTotal counts messages rejected by a rate limiter.
	RateLimitDropsTotal *prometheus.CounterVec

	// ActiveProfiles tracks the number of user profiles held in memory.
	ActiveProfiles prometheus.Gauge
}

// New creates a Metrics instance backed by its own registry, with the
// standard Go runtime and process collectors attached.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry: registry,

		MessagesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hotelbot",
				Name:      "messages_total",
				Help:      "Total chat messages processed, by intent, status and language.",
			},
			[]string{"intent", "status", "language"},
		),

		ResponseDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "hotelbot",
				Name:      "response_duration_seconds",
				Help:      "Time spent handling a chat message.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"intent"},
		),

		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hotelbot",
				Name:      "fallbacks_total",
				Help:      "Fallback replies served, by escalation tier.",
			},
			[]string{"tier"},
		),

		RateLimitDropsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "hotelbot",
				Name:      "rate_limit_drops_total",
				Help:      "Messages rejected by a rate limiter.",
			},
			[]string{"limiter"},
		),

		ActiveProfiles: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "hotelbot",
				Name:      "active_profiles",
				Help:      "User profiles currently held in memory.",
			},
		),
	}
}

// Registry returns the underlying registry for the metrics HTTP handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
