package repairtime

import (
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/repairtime/internal/logging"
	"github.com/arloliu/repairtime/internal/metrics"
)

// Option configures a Solver with optional dependencies.
type Option func(*solverOptions)

// solverOptions holds optional Solver configuration.
type solverOptions struct {
	ceiling CeilingStrategy
	metrics MetricsCollector
	logger  Logger
}

// WithCeilingStrategy overrides the ceiling strategy selected by Config.Ceiling.
//
// Parameters:
//   - strategy: CeilingStrategy implementation
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	solver, err := repairtime.NewSolver(nil, repairtime.WithCeilingStrategy(strategy.NewDoubling()))
func WithCeilingStrategy(strategy CeilingStrategy) Option {
	return func(o *solverOptions) {
		o.ceiling = strategy
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	collector := repairtime.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")
//	solver, err := repairtime.NewSolver(&cfg, repairtime.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *solverOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for NewSolver
//
// Example:
//
//	logger := zap.NewExample().Sugar()
//	solver, err := repairtime.NewSolver(&cfg, repairtime.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *solverOptions) {
		o.logger = logger
	}
}

// NewPrometheusMetrics returns a MetricsCollector that records to Prometheus.
//
// Parameters:
//   - reg: Registerer for the solver metrics (prometheus.DefaultRegisterer if nil)
//   - namespace: Metric namespace ("repairtime" if empty)
func NewPrometheusMetrics(reg prometheus.Registerer, namespace string) MetricsCollector {
	return metrics.NewPrometheus(reg, namespace)
}

// NewSlogLogger returns a Logger backed by log/slog writing to w.
//
// Parameters:
//   - w: Destination for log records
//   - level: Minimum level emitted
//   - json: Emit JSON records instead of logfmt-style text
func NewSlogLogger(w io.Writer, level slog.Level, json bool) Logger {
	return logging.NewSlogWriter(w, level, json)
}

// WrapSlogLogger adapts an existing slog.Logger, keeping its handler and
// attributes.
//
// Parameters:
//   - l: Logger to forward to (slog.Default() if nil)
//
// Example:
//
//	base := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("component", "planner")
//	solver, err := repairtime.NewSolver(nil, repairtime.WithLogger(repairtime.WrapSlogLogger(base)))
func WrapSlogLogger(l *slog.Logger) Logger {
	return logging.NewSlog(l)
}
