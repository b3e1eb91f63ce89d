package repairtime

import (
	"errors"
	"fmt"
	"time"

	"github.com/arloliu/repairtime/capacity"
	"github.com/arloliu/repairtime/internal/hash"
	"github.com/arloliu/repairtime/internal/logger"
	"github.com/arloliu/repairtime/internal/metrics"
	"github.com/arloliu/repairtime/strategy"
)

// Feasible reports whether workers with the given ranks complete at least
// requirement units within time t.
//
// Unlike capacity.Feasible, which divides by each rank, it checks the problem
// first and reports false for empty ranks, a non-positive rank or requirement,
// or a negative t.
func Feasible(ranks []int64, requirement, t int64) bool {
	p := Problem{Ranks: ranks, Requirement: requirement}
	if t < 0 || p.Validate() != nil {
		return false
	}

	return capacity.Feasible(ranks, requirement, t)
}

// MinimalTime returns the smallest time at which workers with the given ranks
// complete at least requirement units.
//
// The search is bounded by the derived ceiling minRank * requirement², so it is
// correct for every input whose bound fits in int64.
//
// Parameters:
//   - ranks: Worker ranks (non-empty, each positive; not modified)
//   - requirement: Units to complete (positive)
//
// Returns:
//   - int64: Minimal completion time
//   - error: Error matching ErrInvalidArgument, or ErrOverflow
//
// Example:
//
//	t, err := repairtime.MinimalTime([]int64{4, 2, 3, 1}, 10) // 16
func MinimalTime(ranks []int64, requirement int64) (int64, error) {
	p := Problem{Ranks: ranks, Requirement: requirement}
	if err := p.Validate(); err != nil {
		return 0, err
	}

	ceiling, err := strategy.NewDerived().Ceiling(ranks, requirement)
	if err != nil {
		return 0, err
	}

	t, _ := search(ranks, requirement, ceiling)

	return t, nil
}

// Solver computes minimal completion times with a configurable search ceiling,
// logging and metrics.
//
// A Solver holds no per-call state and is safe for concurrent use as long as
// its logger and metrics collector are.
type Solver struct {
	cfg     Config
	ceiling CeilingStrategy
	metrics MetricsCollector
	logger  Logger
}

// NewSolver creates a Solver from the provided configuration.
//
// Returns a concrete *Solver struct following the "accept interfaces, return structs" principle.
//
// Parameters:
//   - cfg: Solver configuration (DefaultConfig() if nil; copied, not retained)
//   - opts: Optional configuration (ceiling strategy, metrics, logger)
//
// Returns:
//   - *Solver: Initialized solver
//   - error: Error wrapping ErrInvalidConfig if the configuration is invalid
//
// Example:
//
//	cfg := repairtime.Config{Ceiling: repairtime.CeilingConfig{Mode: repairtime.CeilingFixed}}
//	solver, err := repairtime.NewSolver(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t, err := solver.MinimalTime([]int64{5, 1, 8}, 6) // 16
func NewSolver(cfg *Config, opts ...Option) (*Solver, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}

	ApplyDefaults(&c)
	if err := c.Validate(); err != nil {
		return nil, err
	}

	options := &solverOptions{}
	for _, opt := range opts {
		opt(options)
	}

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	c.ValidateWithWarnings(loggerInstance)

	ceiling := options.ceiling
	if ceiling == nil {
		ceiling = c.newCeilingStrategy(loggerInstance)
	}

	return &Solver{
		cfg:     c,
		ceiling: ceiling,
		metrics: metricsCollector,
		logger:  loggerInstance,
	}, nil
}

// Config returns a copy of the solver's effective configuration.
func (s *Solver) Config() Config {
	return s.cfg
}

// Feasible reports whether the workers complete requirement units within time t.
//
// Input the solver would reject (see Solve), or a negative t, reports false.
func (s *Solver) Feasible(ranks []int64, requirement, t int64) bool {
	if t < 0 || s.validate(Problem{Ranks: ranks, Requirement: requirement}) != nil {
		return false
	}

	return capacity.Feasible(ranks, requirement, t)
}

// MinimalTime returns the smallest time at which the workers meet the requirement.
//
// Returns:
//   - int64: Minimal completion time
//   - error: See Solve
func (s *Solver) MinimalTime(ranks []int64, requirement int64) (int64, error) {
	sol, err := s.Solve(Problem{Ranks: ranks, Requirement: requirement})
	if err != nil {
		return 0, err
	}

	return sol.Time, nil
}

// Solve validates the problem, bounds the search and returns the minimal time
// with its per-worker breakdown.
//
// The algorithm:
//  1. Check preconditions (non-empty ranks, positive ranks and requirement, worker limit)
//  2. Ask the ceiling strategy for an upper bound and confirm it is feasible
//  3. Binary-search [0, ceiling] for the first feasible time
//
// Parameters:
//   - p: Problem to solve (ranks are read, never modified or retained)
//
// Returns:
//   - *Solution: Minimal time and supporting detail
//   - error: Error matching ErrInvalidArgument, ErrOverflow or ErrCeilingTooLow
func (s *Solver) Solve(p Problem) (*Solution, error) {
	start := time.Now()

	if err := s.validate(p); err != nil {
		s.logger.Warn("rejected solver input", "workers", len(p.Ranks), "requirement", p.Requirement, "error", err)
		s.metrics.RecordSolve(OutcomeInvalidInput, time.Since(start).Seconds())

		return nil, err
	}

	ceiling, err := s.ceiling.Ceiling(p.Ranks, p.Requirement)
	if err != nil {
		outcome := OutcomeCeilingError
		if errors.Is(err, ErrOverflow) {
			outcome = OutcomeOverflow
		}
		s.logger.Error("time ceiling unavailable", "workers", len(p.Ranks), "requirement", p.Requirement, "error", err)
		s.metrics.RecordSolve(outcome, time.Since(start).Seconds())

		return nil, err
	}

	if !capacity.Feasible(p.Ranks, p.Requirement, ceiling) {
		err := fmt.Errorf("%w: requirement %d exceeds capacity %d at ceiling %d",
			ErrCeilingTooLow, p.Requirement, capacity.Total(p.Ranks, ceiling), ceiling)
		s.logger.Warn("time ceiling too low", "ceiling", ceiling, "requirement", p.Requirement)
		s.metrics.RecordSolve(OutcomeCeilingLow, time.Since(start).Seconds())

		return nil, err
	}

	t, iterations := search(p.Ranks, p.Requirement, ceiling)

	sol := &Solution{
		Time:        t,
		Requirement: p.Requirement,
		Ceiling:     ceiling,
		Iterations:  iterations,
		Capacities:  capacity.Breakdown(p.Ranks, t),
		Total:       capacity.Total(p.Ranks, t),
		Fingerprint: hash.Fingerprint(p.Ranks, p.Requirement, s.cfg.FingerprintSeed),
	}

	s.metrics.RecordSolve(OutcomeSolved, time.Since(start).Seconds())
	s.metrics.RecordSearchIterations(iterations)
	s.metrics.RecordWorkerCount(len(p.Ranks))

	s.logger.Debug("solved minimal completion time",
		"workers", len(p.Ranks),
		"requirement", p.Requirement,
		"ceiling", ceiling,
		"minTime", t,
		"iterations", iterations,
		"fingerprint", fmt.Sprintf("%016x", sol.Fingerprint),
	)

	return sol, nil
}

func (s *Solver) validate(p Problem) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if limit := s.cfg.Limits.MaxWorkers; limit > 0 && len(p.Ranks) > limit {
		return fmt.Errorf("%w: %d workers, limit %d", ErrTooManyWorkers, len(p.Ranks), limit)
	}

	return nil
}

// search returns the smallest t in [0, ceiling] for which capacity.Feasible
// holds, together with the number of predicate evaluations.
//
// The predicate is monotone in t, so the feasible set is [answer, ceiling].
// The caller guarantees that ceiling itself is feasible.
func search(ranks []int64, requirement, ceiling int64) (int64, int) {
	low, high := int64(0), ceiling
	best := ceiling
	iterations := 0

	for low <= high {
		mid := low + (high-low)/2
		iterations++

		if capacity.Feasible(ranks, requirement, mid) {
			best = mid
			high = mid - 1
		} else {
			low = mid + 1
		}
	}

	return best, iterations
}
