// Package domain defines the core business entities for ShelfAware.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - BookRecord: A normalised, cover-enriched recommended book
//   - ListName: One of the two persisted reading lists
//   - CoverQuery: A (title, author) pair for cover resolution
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
