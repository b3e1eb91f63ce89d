package repairtime

import "github.com/arloliu/repairtime/types"

// Sentinel errors returned by the solver.
//
// Input errors all match ErrInvalidArgument via errors.Is; the refined
// errors identify the exact precondition that failed.
var (
	// ErrInvalidArgument is the category for all rejected inputs.
	ErrInvalidArgument = types.ErrInvalidArgument

	// ErrNoWorkers is returned when the rank list is empty.
	ErrNoWorkers = types.ErrNoWorkers

	// ErrNonPositiveRank is returned when a rank is zero or negative.
	ErrNonPositiveRank = types.ErrNonPositiveRank

	// ErrNonPositiveRequirement is returned when the requirement is zero or negative.
	ErrNonPositiveRequirement = types.ErrNonPositiveRequirement

	// ErrTooManyWorkers is returned when the worker count exceeds Limits.MaxWorkers.
	ErrTooManyWorkers = types.ErrTooManyWorkers

	// ErrOverflow is returned when a time bound does not fit in int64.
	ErrOverflow = types.ErrOverflow

	// ErrCeilingTooLow is returned when the requirement is not met even at the time ceiling.
	ErrCeilingTooLow = types.ErrCeilingTooLow

	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig
)
