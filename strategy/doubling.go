package strategy

import (
	"fmt"
	"math"

	"github.com/arloliu/repairtime/capacity"
	"github.com/arloliu/repairtime/types"
)

// Doubling finds a ceiling by probing t = 1, 2, 4, ... until the predicate holds.
type Doubling struct{}

var _ types.CeilingStrategy = (*Doubling)(nil)

// NewDoubling creates an exponential probing ceiling strategy.
//
// The returned ceiling is the first power of two at which the workers meet the
// requirement, so it is less than twice the minimal time.
//
// Returns:
//   - *Doubling: Initialized doubling strategy
func NewDoubling() *Doubling {
	return &Doubling{}
}

// Ceiling probes powers of two until capacity.Feasible holds.
//
// After 2^62 the next power of two does not fit in int64, so math.MaxInt64 is
// probed last; answers in (2^62, MaxInt64] are still found.
//
// Returns:
//   - int64: First feasible power of two, or math.MaxInt64
//   - error: ErrOverflow if the workers cannot meet the requirement by math.MaxInt64
func (d *Doubling) Ceiling(ranks []int64, requirement int64) (int64, error) {
	for t := int64(1); ; t <<= 1 {
		if capacity.Feasible(ranks, requirement, t) {
			return t, nil
		}
		if t > math.MaxInt64/2 {
			break
		}
	}

	if capacity.Feasible(ranks, requirement, math.MaxInt64) {
		return math.MaxInt64, nil
	}

	return 0, fmt.Errorf("%w: requirement %d not met by time %d", ErrOverflow, requirement, int64(math.MaxInt64))
}
