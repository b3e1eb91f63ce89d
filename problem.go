package repairtime

import (
	"fmt"

	"github.com/arloliu/repairtime/internal/hash"
)

// Fingerprint returns a stable 64-bit XXH3 fingerprint of a problem.
//
// Identical problems always share a fingerprint, so it can key caches of
// solutions. Rank order is part of the fingerprint.
//
// Parameters:
//   - p: Problem to fingerprint
//   - seed: Hash seed (0 for unseeded; Solver uses Config.FingerprintSeed)
func Fingerprint(p Problem, seed uint64) uint64 {
	return hash.Fingerprint(p.Ranks, p.Requirement, seed)
}

// ParseProblem decodes and validates a YAML problem document.
//
// Unknown fields are rejected, and ranks and requirement must be integer
// scalars: "1.5" or "2.0" is an error rather than a truncated value.
//
// Parameters:
//   - data: YAML document with "ranks" and "requirement" fields
//
// Returns:
//   - Problem: Decoded problem
//   - error: Decoding error or error matching ErrInvalidArgument
//
// Example:
//
//	p, err := repairtime.ParseProblem([]byte("ranks: [4, 2, 3, 1]\nrequirement: 10\n"))
func ParseProblem(data []byte) (Problem, error) {
	var p Problem

	if err := decodeStrict(data, &p, "ranks", "requirement"); err != nil {
		return Problem{}, fmt.Errorf("%w: decode problem: %w", ErrInvalidArgument, err)
	}

	if err := p.Validate(); err != nil {
		return Problem{}, err
	}

	return p, nil
}
