package recommend

import (
	"errors"

	"github.com/katalvlaran/kindred/interests"
)

// Sentinel errors for recommender construction and queries.
var (
	// ErrNilDataset is returned by New when the dataset is nil.
	ErrNilDataset = errors.New("recommend: dataset is nil")

	// ErrOptionViolation is returned when an invalid Option was supplied
	// (e.g. a negative result limit).
	ErrOptionViolation = errors.New("recommend: invalid option supplied")
)

// Index errors are shared with the interests package so that callers can
// match a single sentinel regardless of which layer rejected the index.

// ErrUserOutOfRange aliases interests.ErrUserOutOfRange.
var ErrUserOutOfRange = interests.ErrUserOutOfRange

// ErrInterestOutOfRange aliases interests.ErrInterestOutOfRange.
var ErrInterestOutOfRange = interests.ErrInterestOutOfRange
