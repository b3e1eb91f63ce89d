// Package hash computes stable identifiers for solver inputs.
package hash

import (
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a 64-bit XXH3 hash of a problem's requirement and ranks.
//
// The encoding is the requirement followed by each rank, all as little-endian
// 8-byte words, so the result is stable across platforms and releases.
// Rank order is significant: permuted ranks give a different fingerprint even
// though they share the same minimal time.
//
// Parameters:
//   - ranks: Worker ranks
//   - requirement: Units to complete
//   - seed: Hash seed (0 for unseeded XXH3)
//
// Returns:
//   - uint64: Fingerprint of the input
func Fingerprint(ranks []int64, requirement int64, seed uint64) uint64 {
	buf := make([]byte, 8*(len(ranks)+1))
	binary.LittleEndian.PutUint64(buf, uint64(requirement)) //nolint:gosec
	for i, r := range ranks {
		binary.LittleEndian.PutUint64(buf[8*(i+1):], uint64(r)) //nolint:gosec
	}

	if seed != 0 {
		return xxh3.HashSeed(buf, seed)
	}

	return xxh3.Hash(buf)
}
