// Package strategy provides built-in time ceiling strategies.
//
// A ceiling strategy picks the inclusive upper bound of the binary search for
// the minimal completion time. The bound must be feasible: at the ceiling the
// workers' combined capacity has to meet the requirement. The package includes
// three built-in strategies:
//
//   - Derived: Analytic bound minRank * requirement² (recommended, the default)
//   - Fixed: A constant bound, 10^15 unless configured otherwise
//   - Doubling: Exponential probing from 1 until the predicate holds
//
// # Strategy Selection Guide
//
// Derived:
//   - The fastest worker alone completes the requirement by minRank * requirement²
//   - Correct for any input whose bound fits in int64
//   - Returns ErrOverflow when it does not
//
// Fixed:
//   - Matches a known input envelope (e.g. up to 10^5 workers, ranks up to 100)
//   - The solver reports ErrCeilingTooLow when the input falls outside it
//
// Doubling:
//   - Produces a bound within 2x of the answer
//   - Costs O(log answer) extra predicate evaluations
//
// Custom strategies can be implemented by satisfying the types.CeilingStrategy interface.
package strategy
