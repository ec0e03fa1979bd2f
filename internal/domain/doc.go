// Package domain contains the core domain entities and value objects for statship.
//
// This package is the innermost layer. It has no dependencies on infrastructure
// concerns (sockets, file system, logging) and contains only pure logic.
//
// # Entities
//
//   - [Kind]: the StatsD metric type (counter, gauge, timer)
//   - [Record]: one formatted, newline-terminated protocol line
//
// Records are produced by [Format] and are never mutated afterwards.
package domain
