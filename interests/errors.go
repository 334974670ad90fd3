package interests

import "errors"

// Sentinel errors for dataset access.
var (
	// ErrUserOutOfRange is returned when a user index is outside [0, Users).
	ErrUserOutOfRange = errors.New("interests: user index out of range")

	// ErrInterestOutOfRange is returned when an interest index is outside
	// [0, NumInterests).
	ErrInterestOutOfRange = errors.New("interests: interest index out of range")

	// ErrEmptyDataset is returned by matrix constructors when the dataset
	// has no users or no interests; scalar accessors stay error-free and
	// simply report empty results.
	ErrEmptyDataset = errors.New("interests: dataset is empty")
)
