package types

import "errors"

// Sentinel errors for the repairtime library.
//
// These errors provide type-safe error checking using errors.Is().
// Refined errors wrap their category so callers can match either level:
//
//	errors.Is(err, ErrNonPositiveRank)  // exact cause
//	errors.Is(err, ErrInvalidArgument)  // category
//
// Additional context is attached with fmt.Errorf("%w: ...", ErrX, ...).

// Input errors - returned before any search begins.
var (
	// ErrInvalidArgument is the category for all rejected inputs.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoWorkers is returned when the rank list is empty.
	ErrNoWorkers = categorize(ErrInvalidArgument, "no workers provided")

	// ErrNonPositiveRank is returned when a rank is zero or negative.
	ErrNonPositiveRank = categorize(ErrInvalidArgument, "rank must be positive")

	// ErrNonPositiveRequirement is returned when the requirement is zero or negative.
	ErrNonPositiveRequirement = categorize(ErrInvalidArgument, "requirement must be positive")

	// ErrTooManyWorkers is returned when the worker count exceeds the configured limit.
	ErrTooManyWorkers = categorize(ErrInvalidArgument, "too many workers")
)

// Search errors - returned when the search window cannot contain the answer.
var (
	// ErrOverflow is returned when a time bound does not fit in int64.
	ErrOverflow = errors.New("time bound overflows int64")

	// ErrCeilingTooLow is returned when the requirement cannot be met even at the time ceiling.
	ErrCeilingTooLow = errors.New("requirement not reachable within time ceiling")
)

// Configuration errors.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// categorizedError is a sentinel that also matches its parent category.
type categorizedError struct {
	parent error
	msg    string
}

func categorize(parent error, msg string) error {
	return &categorizedError{parent: parent, msg: msg}
}

func (e *categorizedError) Error() string {
	return e.parent.Error() + ": " + e.msg
}

func (e *categorizedError) Unwrap() error {
	return e.parent
}
