// Package capacity implements the per-worker throughput law and the
// feasibility predicate used by the completion-time search.
//
// A worker with rank r completes floor(sqrt(t / r)) units in time t, where
// t / r is truncating integer division taken before the square root.
// Capacity grows with the square root of time, so each extra unit costs a
// worker more time than the previous one.
//
// The predicate Feasible is monotonically non-decreasing in t for fixed ranks:
// a larger time never lowers any worker's capacity. The search driver in the
// root package relies on this to binary-search for the smallest feasible time.
//
// All functions are pure and never modify the ranks slice.
package capacity
