package swap

import "errors"

var (
	// ErrTooFewEdges is returned when a graph has fewer than two edges,
	// making single switch meaningless.
	ErrTooFewEdges = errors.New("swap: graph has fewer than two edges")

	// ErrTooFewActors is returned when a graph has fewer than two actors,
	// making Curveball meaningless.
	ErrTooFewActors = errors.New("swap: graph has fewer than two actors")
)

// Result reports the outcome of a single-switch attempt.
type Result struct {
	// Accepted is false when the candidate move would create a duplicate
	// edge; the graph is unchanged and the caller still counts the sample.
	Accepted bool
}
