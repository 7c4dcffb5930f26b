package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Request outcomes recorded against the listing endpoint.
const (
	OutcomeOK              = "ok"
	OutcomeNonLeader       = "non_leader"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeUpstreamError   = "upstream_error"
)

type RequestMetrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

func NewRequestMetrics(registerer prometheus.Registerer) *RequestMetrics {
	m := &RequestMetrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "marathon",
			Subsystem: "tasks_api",
			Name:      "requests_total",
			Help:      "Task listing requests by outcome.",
		}, []string{"outcome"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "marathon",
			Subsystem: "tasks_api",
			Name:      "request_duration_seconds",
			Help:      "Task listing request latency.",
			Buckets:   prometheus.DefBuckets,
		}),
	}

	registerer.MustRegister(m.requests, m.duration)

	return m
}

func (m *RequestMetrics) Record(outcome string, elapsed time.Duration) {
	m.requests.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
}
