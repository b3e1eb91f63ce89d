package metrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/repairtime/types"
)

func TestNewPrometheus_Defaults(t *testing.T) {
	p := NewPrometheus(nil, "")

	require.Equal(t, prometheus.DefaultRegisterer, p.reg)
	require.Equal(t, "repairtime", p.namespace)
}

func TestPrometheusCollector_LazyRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_ = NewPrometheus(reg, "test")

	families, err := reg.Gather()
	require.NoError(t, err)
	require.Empty(t, families)
}

func TestPrometheusCollector_RecordSolve(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordSolve(types.OutcomeSolved, 0.0002)
	p.RecordSolve(types.OutcomeSolved, 0.0003)
	p.RecordSolve(types.OutcomeInvalidInput, 0.00001)

	require.InDelta(t, 2, testutil.ToFloat64(p.solves.WithLabelValues(types.OutcomeSolved)), 0)
	require.InDelta(t, 1, testutil.ToFloat64(p.solves.WithLabelValues(types.OutcomeInvalidInput)), 0)

	expected := `
# HELP test_solver_solves_total Total solve attempts by outcome (solved, invalid_input, overflow, ceiling_too_low, ceiling_error).
# TYPE test_solver_solves_total counter
test_solver_solves_total{outcome="invalid_input"} 1
test_solver_solves_total{outcome="solved"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "test_solver_solves_total"))
}

func TestPrometheusCollector_Histograms(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	p.RecordSearchIterations(51)
	p.RecordWorkerCount(4)

	count, err := testutil.GatherAndCount(reg, "test_solver_search_iterations", "test_solver_workers")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestPrometheusCollector_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := NewPrometheus(reg, "test")

	require.NotPanics(t, func() {
		for range 3 {
			p.RecordSolve(types.OutcomeOverflow, 0)
			p.RecordWorkerCount(1)
		}
	})
}
