package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/repairtime/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Metrics are created and registered on first use, so constructing a collector
// that is never exercised leaves the registry untouched.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	solves        *prometheus.CounterVec
	solveDuration *prometheus.HistogramVec
	iterations    prometheus.Histogram
	workers       prometheus.Histogram
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "repairtime" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "repairtime"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.solves = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solves_total",
			Help:      "Total solve attempts by outcome (solved, invalid_input, overflow, ceiling_too_low, ceiling_error).",
		}, []string{"outcome"})

		p.solveDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "solve_duration_seconds",
			Help:      "Solve latency in seconds by outcome.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 12), // 1µs .. ~4s
		}, []string{"outcome"})

		p.iterations = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "search_iterations",
			Help:      "Predicate evaluations per binary search.",
			Buckets:   prometheus.LinearBuckets(0, 8, 9), // 0 .. 64
		})

		p.workers = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "solver",
			Name:      "workers",
			Help:      "Number of workers per solved problem.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 7), // 1 .. 10^6
		})

		p.reg.MustRegister(p.solves)
		p.reg.MustRegister(p.solveDuration)
		p.reg.MustRegister(p.iterations)
		p.reg.MustRegister(p.workers)
	})
}

// RecordSolve counts the outcome and observes its latency.
func (p *PrometheusCollector) RecordSolve(outcome string, duration float64) {
	p.ensureRegistered()
	p.solves.WithLabelValues(outcome).Inc()
	p.solveDuration.WithLabelValues(outcome).Observe(duration)
}

// RecordSearchIterations observes the number of predicate evaluations.
func (p *PrometheusCollector) RecordSearchIterations(iterations int) {
	p.ensureRegistered()
	p.iterations.Observe(float64(iterations))
}

// RecordWorkerCount observes the worker count.
func (p *PrometheusCollector) RecordWorkerCount(count int) {
	p.ensureRegistered()
	p.workers.Observe(float64(count))
}
