package testing

import (
	"math/rand"

	"github.com/arloliu/repairtime/capacity"
	"github.com/arloliu/repairtime/types"
)

// LinearMinimalTime scans t = 0, 1, ..., limit and returns the first time at
// which capacity.Feasible holds.
//
// It is deliberately naive and only suitable for small answers; tests use it
// as an oracle for the binary search.
//
// Returns:
//   - int64: First feasible time
//   - bool: false if no t <= limit is feasible
func LinearMinimalTime(ranks []int64, requirement, limit int64) (int64, bool) {
	for t := int64(0); t <= limit; t++ {
		if capacity.Feasible(ranks, requirement, t) {
			return t, true
		}
	}

	return 0, false
}

// ProblemLimits bounds the problems produced by RandomProblem.
type ProblemLimits struct {
	MaxWorkers     int   // at least 1 worker is always generated
	MaxRank        int64 // ranks are drawn from [1, MaxRank]
	MaxRequirement int64 // requirement is drawn from [1, MaxRequirement]
}

// RandomProblem draws a valid problem within the given limits.
//
// Non-positive limits are treated as 1.
func RandomProblem(rng *rand.Rand, limits ProblemLimits) types.Problem {
	maxWorkers := max(limits.MaxWorkers, 1)
	maxRank := max(limits.MaxRank, 1)
	maxReq := max(limits.MaxRequirement, 1)

	ranks := make([]int64, 1+rng.Intn(maxWorkers))
	for i := range ranks {
		ranks[i] = 1 + rng.Int63n(maxRank)
	}

	return types.Problem{
		Ranks:       ranks,
		Requirement: 1 + rng.Int63n(maxReq),
	}
}
