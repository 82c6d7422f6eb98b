package observability

import (
	"context"

	"github.com/aretw0/textops/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "textops"

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics records operation calls in Prometheus collectors.
type Metrics struct {
	calls     *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	cacheHits *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is convenient in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operation_calls_total",
				Help:      "Total number of operation calls",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of operation calls",
				Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"operation"},
		),
		cacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cache_hits_total",
				Help:      "Total number of operation results served from the cache",
			},
			[]string{"operation"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.calls, m.duration, m.cacheHits)
	}
	return m
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnToolReturn: func(ctx context.Context, e *domain.ToolEvent) {
			outcome := OutcomeSuccess
			if e.IsError {
				outcome = OutcomeError
			}
			m.calls.WithLabelValues(e.ToolName, outcome).Inc()
			m.duration.WithLabelValues(e.ToolName).Observe(e.Duration.Seconds())
			if e.Cached {
				m.cacheHits.WithLabelValues(e.ToolName).Inc()
			}
		},
	}
}
