package types

// Solve outcomes reported to MetricsCollector.RecordSolve.
const (
	OutcomeSolved       = "solved"
	OutcomeInvalidInput = "invalid_input"
	OutcomeOverflow     = "overflow"
	OutcomeCeilingLow   = "ceiling_too_low"
	OutcomeCeilingError = "ceiling_error"
)

// MetricsCollector defines methods for recording solver metrics.
//
// Implementations should be non-blocking and must be safe for concurrent use,
// since a single Solver may be shared across goroutines.
type MetricsCollector interface {
	// RecordSolve records a completed solve attempt.
	//
	// Parameters:
	//   - outcome: One of the Outcome* constants
	//   - duration: Time taken in seconds
	RecordSolve(outcome string, duration float64)

	// RecordSearchIterations records how many predicate evaluations the search needed.
	RecordSearchIterations(iterations int)

	// RecordWorkerCount records the number of workers in a solved problem.
	RecordWorkerCount(count int)
}
