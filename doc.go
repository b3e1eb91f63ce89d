// Package repairtime computes the minimum time a crew of workers needs to
// complete a fixed number of work units when each worker slows down as it goes.
//
// A worker with rank r completes floor(sqrt(t / r)) units within time t, so the
// n-th unit costs that worker r * (2n - 1) more time than the one before. Given
// the ranks of all workers and the number of units required, the solver finds
// the smallest t at which the workers' combined capacity meets the requirement.
//
// # Quick Start
//
//	t, err := repairtime.MinimalTime([]int64{4, 2, 3, 1}, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t) // 16
//
// # Algorithm
//
// The capacity predicate (package capacity) is monotonically non-decreasing in
// t, so the feasible times form a suffix [T, ∞). The solver binary-searches
// [0, ceiling] for its first element T. Each step is linear in the number of
// workers and the search takes O(log ceiling) steps.
//
// The ceiling comes from a CeilingStrategy (package strategy):
//
//   - derived (default): minRank * requirement², the time the fastest worker
//     needs on its own
//   - fixed: a configured constant, 10^15 by default
//   - doubling: the first power of two at which the crew meets the requirement
//
// # Errors
//
// Inputs are checked before the search. Failures match sentinel errors via errors.Is:
//
//   - ErrInvalidArgument: empty ranks, non-positive rank or requirement, too many workers
//   - ErrOverflow: the ceiling does not fit in int64
//   - ErrCeilingTooLow: the requirement is not met even at a fixed ceiling
//
// # Advanced Usage
//
//	cfg := repairtime.Config{
//	    Ceiling: repairtime.CeilingConfig{Mode: repairtime.CeilingFixed},
//	    Limits:  repairtime.LimitsConfig{MaxWorkers: 100_000},
//	}
//
//	solver, err := repairtime.NewSolver(&cfg,
//	    repairtime.WithLogger(repairtime.NewSlogLogger(os.Stderr, slog.LevelDebug, false)),
//	    repairtime.WithMetrics(repairtime.NewPrometheusMetrics(prometheus.DefaultRegisterer, "")),
//	)
//
//	sol, err := solver.Solve(repairtime.Problem{Ranks: ranks, Requirement: 10})
//	fmt.Println(sol.Time, sol.Capacities, sol.Allocation())
//
// The solver performs no I/O and keeps no state between calls; identical input
// always yields an identical result. See the examples/ directory for complete
// programs.
package repairtime
