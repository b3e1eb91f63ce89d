package repairtime

// Solution is the result of Solver.Solve.
type Solution struct {
	// Time is the minimal completion time.
	Time int64 `json:"time" yaml:"time"`

	// Requirement is the number of units the problem asked for.
	Requirement int64 `json:"requirement" yaml:"requirement"`

	// Ceiling is the upper bound the search ran against.
	Ceiling int64 `json:"ceiling" yaml:"ceiling"`

	// Iterations is the number of predicate evaluations in the binary search.
	Iterations int `json:"iterations" yaml:"iterations"`

	// Capacities holds each worker's capacity at Time, in rank order.
	Capacities []int64 `json:"capacities" yaml:"capacities"`

	// Total is the sum of Capacities; it is >= Requirement.
	Total int64 `json:"total" yaml:"total"`

	// Fingerprint identifies the input (see Fingerprint).
	Fingerprint uint64 `json:"fingerprint" yaml:"fingerprint"`
}

// Surplus returns how many units the workers could complete beyond the requirement.
func (s *Solution) Surplus() int64 {
	return s.Total - s.Requirement
}

// Allocation distributes exactly Requirement units across the workers.
//
// Workers are filled in rank order up to their capacity at Time until the
// requirement is met; later workers receive zero.
//
// Returns:
//   - []int64: Units per worker, summing to Requirement
func (s *Solution) Allocation() []int64 {
	alloc := make([]int64, len(s.Capacities))
	remaining := s.Requirement

	for i, c := range s.Capacities {
		if remaining <= 0 {
			break
		}
		take := min(c, remaining)
		alloc[i] = take
		remaining -= take
	}

	return alloc
}
