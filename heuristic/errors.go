package heuristic

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned by CalibrateSwaps for a
	// (graph, algorithm) combination SwapEngine does not implement — a
	// Curveball calibration requested against a general (non-bipartite)
	// graph, per §4.4.4.
	ErrUnsupportedAlgorithm = errors.New("heuristic: algorithm not supported for this graph topology")

	// ErrNoRelevantPairs names a ranking with no candidate pairs to build
	// ground truth from. SampleStopper.Update does not return it: an empty
	// ranking gives a PPV of 0 and sampling continues.
	ErrNoRelevantPairs = errors.New("heuristic: no relevant pairs to rank")
)
