// Package matrix: sentinel error set.
// All public constructors and indexers MUST return these sentinels and
// tests MUST check them via errors.Is. No method panics on user input;
// panics are reserved for programmer errors in private helpers (if any).
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. NewDense validates before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set/Row) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix
	// is required (e.g. similarity.Pairwise).
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
