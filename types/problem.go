package types

import (
	"fmt"
	"slices"
)

// Problem describes a single completion-time query.
//
// A worker with rank r completes floor(sqrt(t / r)) units within time t.
// The solver looks for the smallest t at which all workers together complete
// at least Requirement units.
type Problem struct {
	// Ranks holds one throughput-degradation coefficient per worker.
	// Higher rank means slower capacity growth over time.
	Ranks []int64 `json:"ranks" yaml:"ranks"`

	// Requirement is the total number of units the workers must complete.
	Requirement int64 `json:"requirement" yaml:"requirement"`
}

// Validate checks the problem preconditions.
//
// Returns:
//   - error: nil if valid, otherwise an error matching ErrInvalidArgument
func (p Problem) Validate() error {
	if len(p.Ranks) == 0 {
		return ErrNoWorkers
	}
	for i, r := range p.Ranks {
		if r <= 0 {
			return fmt.Errorf("%w: ranks[%d] = %d", ErrNonPositiveRank, i, r)
		}
	}
	if p.Requirement <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveRequirement, p.Requirement)
	}

	return nil
}

// MinRank returns the smallest rank, or 0 for an empty problem.
func (p Problem) MinRank() int64 {
	if len(p.Ranks) == 0 {
		return 0
	}

	return slices.Min(p.Ranks)
}
