package capacity

import (
	"math"
)

// Worker returns the number of units a worker with the given rank completes in time t.
//
// Parameters:
//   - rank: Worker rank (must be positive)
//   - t: Elapsed time (must be non-negative)
//
// Returns:
//   - int64: floor(sqrt(t / rank))
func Worker(rank, t int64) int64 {
	return Sqrt(t / rank)
}

// Feasible reports whether the workers complete at least requirement units in time t.
//
// The running total is compared against the requirement after each worker and
// the loop exits early once it is met, so the sum never grows past
// requirement plus one worker's capacity.
//
// Inputs are not checked: a zero rank panics with a division by zero.
// repairtime.Feasible validates before calling it.
//
// Parameters:
//   - ranks: Worker ranks (each positive)
//   - requirement: Units to complete (positive)
//   - t: Candidate time (non-negative)
//
// Returns:
//   - bool: true if the combined capacity at t is >= requirement
//
// Example:
//
//	capacity.Feasible([]int64{4, 2, 3, 1}, 10, 16) // true: 2+2+2+4 = 10
//	capacity.Feasible([]int64{4, 2, 3, 1}, 10, 15) // false: 1+2+2+3 = 8
func Feasible(ranks []int64, requirement, t int64) bool {
	remaining := requirement
	for _, r := range ranks {
		remaining -= Worker(r, t)
		if remaining <= 0 {
			return true
		}
	}

	return remaining <= 0
}

// Total returns the combined capacity of all workers at time t.
//
// The sum saturates at math.MaxInt64.
func Total(ranks []int64, t int64) int64 {
	var total int64
	for _, r := range ranks {
		c := Worker(r, t)
		if total > math.MaxInt64-c {
			return math.MaxInt64
		}
		total += c
	}

	return total
}

// Breakdown returns each worker's capacity at time t, in rank order.
func Breakdown(ranks []int64, t int64) []int64 {
	caps := make([]int64, len(ranks))
	for i, r := range ranks {
		caps[i] = Worker(r, t)
	}

	return caps
}

// Sqrt returns floor(sqrt(n)) for n >= 0 and 0 for negative n.
//
// The float estimate is corrected with integer arithmetic, since float64
// cannot represent every int64 and math.Sqrt may land one off for large n.
func Sqrt(n int64) int64 {
	if n <= 0 {
		return 0
	}

	x := uint64(n)
	r := uint64(math.Sqrt(float64(n)))
	for r*r > x {
		r--
	}
	for (r+1)*(r+1) <= x {
		r++
	}

	return int64(r)
}
