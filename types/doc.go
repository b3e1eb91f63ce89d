// Package types provides core type definitions and interfaces for the repairtime library.
//
// This package contains shared types that are used across multiple packages in the
// repairtime library. By keeping these types in a separate package, we avoid import cycles
// between the main repairtime package and its internal implementations.
//
// Key types:
//   - Problem: Worker ranks plus the number of units to complete
//   - CeilingStrategy: Upper bound selection for the time search
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
