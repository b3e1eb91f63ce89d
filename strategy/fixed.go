package strategy

import (
	"github.com/arloliu/repairtime/types"
)

// DefaultFixedCeiling is the bound used by NewFixed when given a non-positive value.
//
// It covers inputs of up to 10^5 workers with ranks up to 100 and a requirement
// up to 10^6: one rank-100 worker completes 10^6 units by 100 * 10^12 = 10^14.
const DefaultFixedCeiling int64 = 1_000_000_000_000_000

// Fixed returns the same ceiling for every problem.
type Fixed struct {
	ceiling int64
}

var _ types.CeilingStrategy = (*Fixed)(nil)

// NewFixed creates a constant ceiling strategy.
//
// Parameters:
//   - ceiling: Inclusive upper bound (DefaultFixedCeiling if <= 0)
//
// Returns:
//   - *Fixed: Initialized fixed strategy
//
// Example:
//
//	s := strategy.NewFixed(strategy.DefaultFixedCeiling)
//	solver, _ := repairtime.NewSolver(&cfg, repairtime.WithCeilingStrategy(s))
func NewFixed(ceiling int64) *Fixed {
	if ceiling <= 0 {
		ceiling = DefaultFixedCeiling
	}

	return &Fixed{ceiling: ceiling}
}

// Ceiling returns the configured constant.
func (f *Fixed) Ceiling(_ /* ranks */ []int64, _ /* requirement */ int64) (int64, error) {
	return f.ceiling, nil
}
