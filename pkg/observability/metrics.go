package observability

import (
	"fmt"
	"io"

	"github.com/aretw0/waymark/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Metrics holds the session collectors.
type Metrics struct {
	registry *prometheus.Registry

	intents         *prometheus.CounterVec
	computeDuration prometheus.Histogram
	unreachable     prometheus.Counter
	waypoints       prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "waymark_intents_total",
				Help: "Total number of intents handled, by intent and outcome",
			},
			[]string{"intent", "outcome"},
		),
		computeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "waymark_compute_duration_seconds",
				Help:    "Duration of route computations",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		unreachable: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "waymark_unreachable_pairs_total",
				Help: "Total number of waypoint pairs without a route",
			},
		),
		waypoints: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "waymark_waypoints",
				Help: "Waypoints in the most recent computation",
			},
		),
	}
	m.registry.MustRegister(m.intents, m.computeDuration, m.unreachable, m.waypoints)
	return m
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnIntent: func(e *domain.IntentEvent) {
			m.intents.WithLabelValues(string(e.Intent), e.Outcome).Inc()
		},
		OnCompute: func(e *domain.ComputeEvent) {
			m.computeDuration.Observe(e.Duration.Seconds())
			m.unreachable.Add(float64(e.Unreachable))
			m.waypoints.Set(float64(e.Waypoints))
		},
		OnReset: func(e *domain.ResetEvent) {
			m.waypoints.Set(0)
		},
	}
}

// WriteText writes every metric family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("failed to encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
