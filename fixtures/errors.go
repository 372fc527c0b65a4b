package fixtures

import "errors"

var (
	// ErrBadDegree is returned when a requested arity is not positive.
	ErrBadDegree = errors.New("fixtures: degree must be positive")

	// ErrBadCount is returned when a requested generator count is not positive.
	ErrBadCount = errors.New("fixtures: count must be positive")

	// ErrBadRank is returned when a requested rank falls outside [1, degree].
	ErrBadRank = errors.New("fixtures: rank out of range")
)
