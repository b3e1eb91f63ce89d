// Package testing provides test utilities for the repairtime library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest).
//
// Key utilities:
//   - LinearMinimalTime: Brute-force oracle scanning t = 0, 1, 2, ...
//   - RandomProblem: Deterministic random problem generator
//   - NewTestLogger: Logger writing key=value entries to testing.TB
//
// Example usage:
//
//	import (
//	    "math/rand"
//	    "testing"
//	    rttest "github.com/arloliu/repairtime/testing"
//	)
//
//	func TestAgainstOracle(t *testing.T) {
//	    rng := rand.New(rand.NewSource(1))
//	    p := rttest.RandomProblem(rng, rttest.ProblemLimits{MaxWorkers: 5, MaxRank: 20, MaxRequirement: 30})
//	    want, ok := rttest.LinearMinimalTime(p.Ranks, p.Requirement, 1_000_000)
//	    // compare with repairtime.MinimalTime(p.Ranks, p.Requirement)
//	}
package testing
