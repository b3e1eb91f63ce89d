package types

// CeilingStrategy chooses the upper bound of the time search window.
//
// The returned ceiling must be a time at which the problem is feasible;
// the solver checks this and returns ErrCeilingTooLow otherwise.
//
// Strategy implementations should:
//   - Be deterministic (same input → same output)
//   - Be stateless (no side effects)
//   - Report ErrOverflow instead of returning a wrapped-around bound
//
// Callers validate the problem before calling Ceiling, so ranks is non-empty
// and every rank and the requirement are positive.
type CeilingStrategy interface {
	// Ceiling returns the inclusive upper bound for the search.
	//
	// Parameters:
	//   - ranks: Worker ranks (read-only)
	//   - requirement: Total units to complete
	//
	// Returns:
	//   - int64: Inclusive time ceiling
	//   - error: ErrOverflow if the bound cannot be represented
	Ceiling(ranks []int64, requirement int64) (int64, error)
}
