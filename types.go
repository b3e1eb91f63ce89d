package repairtime

import "github.com/arloliu/repairtime/types"

// Re-export types from the types package.
//
// Internal packages depend on types rather than on the root package, which
// avoids import cycles while still offering repairtime.Problem,
// repairtime.Logger, etc. to users.
type (
	Problem = types.Problem
)

// Re-export interfaces from the types package for convenience.
type (
	CeilingStrategy  = types.CeilingStrategy
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
)

// Re-export solve outcomes reported to MetricsCollector.
const (
	OutcomeSolved       = types.OutcomeSolved
	OutcomeInvalidInput = types.OutcomeInvalidInput
	OutcomeOverflow     = types.OutcomeOverflow
	OutcomeCeilingLow   = types.OutcomeCeilingLow
	OutcomeCeilingError = types.OutcomeCeilingError
)
