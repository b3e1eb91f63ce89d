// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/arloliu/repairtime/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. It is the Solver's default collector.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Example:
//
//	solver, _ := repairtime.NewSolver(&cfg, repairtime.WithMetrics(metrics.NewNop()))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordSolve discards the solve outcome.
func (n *NopMetrics) RecordSolve(_ /* outcome */ string, _ /* duration */ float64) {
	// No-op
}

// RecordSearchIterations discards the iteration count.
func (n *NopMetrics) RecordSearchIterations(_ /* iterations */ int) {
	// No-op
}

// RecordWorkerCount discards the worker count.
func (n *NopMetrics) RecordWorkerCount(_ /* count */ int) {
	// No-op
}
