// Package metrics records search and cache activity with Prometheus collectors.
//
// Collectors live on a private registry so several instances can coexist,
// and Write renders them in the text exposition format.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/pathforge/internal/core/domain"
	"go.trai.ch/zerr"
)

const namespace = "pathforge"

// Prometheus implements ports.Metrics.
type Prometheus struct {
	registry *prometheus.Registry

	// Searches counts finished searches. Labels: algorithm, status.
	Searches *prometheus.CounterVec
	// Expanded observes nodes expanded per search. Labels: algorithm.
	Expanded *prometheus.HistogramVec
	// Duration observes search wall time in seconds. Labels: algorithm.
	Duration *prometheus.HistogramVec
	// CacheEvents counts result cache events. Labels: event.
	CacheEvents *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Prometheus {
	m := &Prometheus{
		registry: prometheus.NewRegistry(),
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "total",
				Help:      "Finished searches by algorithm and status",
			},
			[]string{"algorithm", "status"},
		),
		Expanded: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "expanded_nodes",
				Help:      "Nodes expanded per search",
				Buckets:   prometheus.ExponentialBuckets(16, 4, 8),
			},
			[]string{"algorithm"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "duration_seconds",
				Help:      "Search wall time",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
			[]string{"algorithm"},
		),
		CacheEvents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "cache",
				Name:      "events_total",
				Help:      "Result cache events by kind",
			},
			[]string{"event"},
		),
	}
	m.registry.MustRegister(m.Searches, m.Expanded, m.Duration, m.CacheEvents)
	return m
}

// ObserveSearch records one finished search.
func (m *Prometheus) ObserveSearch(algorithm string, status domain.PathStatus, expanded int, elapsed time.Duration) {
	m.Searches.WithLabelValues(algorithm, status.String()).Inc()
	m.Expanded.WithLabelValues(algorithm).Observe(float64(expanded))
	m.Duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
}

// ObserveCache adds the given cache event counts. Zero counts still create
// their series so a dump always lists every event kind.
func (m *Prometheus) ObserveCache(delta domain.CacheStats) {
	m.CacheEvents.WithLabelValues("hit").Add(float64(delta.Hits))
	m.CacheEvents.WithLabelValues("miss").Add(float64(delta.Misses))
	m.CacheEvents.WithLabelValues("eviction").Add(float64(delta.Evictions))
	m.CacheEvents.WithLabelValues("expiration").Add(float64(delta.Expirations))
}

// Write dumps every collected family in text exposition format.
func (m *Prometheus) Write(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "failed to gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to write metric family"), "family", mf.GetName())
		}
	}
	return nil
}
