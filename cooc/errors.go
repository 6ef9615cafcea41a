package cooc

import "errors"

var (
	// ErrUnorderedPair is returned when an (e1,e2) argument pair does not
	// satisfy e1 < e2.
	ErrUnorderedPair = errors.New("cooc: event pair must satisfy e1 < e2")

	// ErrIndexOutOfBounds is returned when an event index falls outside
	// the matrix's configured NEvents.
	ErrIndexOutOfBounds = errors.New("cooc: index out of bounds")

	// ErrDimensionMismatch is returned when merging HalfMatrix values of
	// differing NEvents.
	ErrDimensionMismatch = errors.New("cooc: dimension mismatch")

	// ErrCoocSumMismatch is the hard integrity error of §4.5: after
	// Compute, Σcooc must equal graph.ExpectedCoocSum().
	ErrCoocSumMismatch = errors.New("cooc: sum invariant violated")
)
