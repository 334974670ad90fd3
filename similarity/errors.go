package similarity

import "errors"

// Sentinel errors for metric evaluation and matrix construction.
var (
	// ErrLengthMismatch is returned when the two vectors differ in length.
	ErrLengthMismatch = errors.New("similarity: vector lengths differ")

	// ErrUnknownMetric is returned when a Metric value has no registered
	// implementation.
	ErrUnknownMetric = errors.New("similarity: unknown metric")

	// ErrNilMatrix is returned by Pairwise when the row matrix is nil.
	ErrNilMatrix = errors.New("similarity: nil matrix")
)
