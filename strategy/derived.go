package strategy

import (
	"fmt"
	"math"
	"math/bits"
	"slices"

	"github.com/arloliu/repairtime/internal/logger"
	"github.com/arloliu/repairtime/types"
)

// Derived bounds the search by the time the fastest worker needs on its own.
//
// A worker with rank r completes n units once floor(sqrt(t / r)) >= n, which
// holds at t = r * n². Taking the smallest rank gives a feasible ceiling for
// the whole crew.
type Derived struct {
	logger types.Logger
}

var _ types.CeilingStrategy = (*Derived)(nil)

// DerivedOption configures a Derived strategy.
type DerivedOption func(*Derived)

// NewDerived creates an analytic ceiling strategy.
//
// Parameters:
//   - opts: Optional configuration (WithDerivedLogger)
//
// Returns:
//   - *Derived: Initialized derived strategy
//
// Example:
//
//	s := strategy.NewDerived()
//	ceiling, err := s.Ceiling([]int64{4, 2, 3, 1}, 10) // 1 * 10² = 100
func NewDerived(opts ...DerivedOption) *Derived {
	d := &Derived{
		logger: logger.NewNop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithDerivedLogger sets the logger used for debug diagnostics.
func WithDerivedLogger(l types.Logger) DerivedOption {
	return func(d *Derived) {
		if l != nil {
			d.logger = l
		}
	}
}

// Ceiling returns minRank * requirement².
//
// Parameters:
//   - ranks: Worker ranks (non-empty, each positive)
//   - requirement: Units to complete (positive)
//
// Returns:
//   - int64: Feasible inclusive upper bound
//   - error: ErrOverflow if the product exceeds math.MaxInt64
func (d *Derived) Ceiling(ranks []int64, requirement int64) (int64, error) {
	minRank := slices.Min(ranks)

	bound, ok := mulInt64(requirement, requirement)
	if ok {
		bound, ok = mulInt64(bound, minRank)
	}
	if !ok {
		return 0, fmt.Errorf("%w: min rank %d, requirement %d", ErrOverflow, minRank, requirement)
	}

	d.logger.Debug("derived time ceiling", "minRank", minRank, "requirement", requirement, "ceiling", bound)

	return bound, nil
}

// mulInt64 multiplies two non-negative values, reporting false on overflow.
func mulInt64(a, b int64) (int64, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}
