package accumulate

import "errors"

var (
	// ErrDimensionMismatch is returned when Accumulate receives a sample or
	// original matrix whose NEvents disagrees with the Accumulator's.
	ErrDimensionMismatch = errors.New("accumulate: dimension mismatch")

	// ErrNoSamples is returned by Report/RankPairs when nSamples <= 0.
	ErrNoSamples = errors.New("accumulate: nSamples must be > 0")
)
