package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "loom"

// metrics holds the Prometheus metrics for the session server.
type metrics struct {
	cyclesTotal    prometheus.Counter
	cycleDuration  prometheus.Histogram
	cycleErrors    *prometheus.CounterVec
	patchesSent    prometheus.Counter
	patchBytes     prometheus.Counter
	activeSessions prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		cyclesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cycles_total",
			Help:      "Total number of event/diff/apply cycles.",
		}),
		cycleDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "cycle_duration_seconds",
			Help:      "Duration of a full dispatch, diff, and apply cycle.",
			Buckets:   prometheus.DefBuckets,
		}),
		cycleErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cycle_errors_total",
			Help:      "Cycle failures by stage.",
		}, []string{"stage"}),
		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patches_sent_total",
			Help:      "Total number of patches sent to clients.",
		}),
		patchBytes: factory.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "patch_bytes_total",
			Help:      "Total encoded patch payload bytes sent to clients.",
		}),
		activeSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      "active_sessions",
			Help:      "Number of live WebSocket sessions.",
		}),
	}
}
