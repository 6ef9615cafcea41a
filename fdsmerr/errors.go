package fdsmerr

import "errors"

// Kind classifies a fatal error per §7.
type Kind int

const (
	// KindUnknown is the zero value; Classify returns it when no KindError
	// is found anywhere in the chain.
	KindUnknown Kind = iota
	// KindInvalidInput covers malformed text graphs, impossible CLI option
	// combinations, and duplicate edges.
	KindInvalidInput
	// KindIncompatibility covers binary graph file mismatches and
	// bipartite/general flag mismatches against a file marker.
	KindIncompatibility
	// KindResourceExhaustion covers allocation failures.
	KindResourceExhaustion
	// KindInvariantViolation covers a self-check failure (§3 invariants,
	// the cooc-sum check, broken edge links) — always a bug, never a
	// recoverable user error.
	KindInvariantViolation
	// KindConfigConflict covers a swap heuristic that cannot satisfy
	// degreesSwapHeuristic × eventsPerDegreeSwapHeuristic given the degree
	// spectrum.
	KindConfigConflict
	// KindIoError covers read/write failures on graph, ground truth, or
	// results files.
	KindIoError
)

// String renders the Kind the way §7's user-visible error line names it.
func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindIncompatibility:
		return "Incompatibility"
	case KindResourceExhaustion:
		return "ResourceExhaustion"
	case KindInvariantViolation:
		return "InvariantViolation"
	case KindConfigConflict:
		return "ConfigConflict"
	case KindIoError:
		return "IoError"
	default:
		return "Unknown"
	}
}

// KindError pairs a plain sentinel error with its §7 Kind and the
// component that raised it. Component names the originating unit (e.g.
// "gmodel", "cooc", "heuristic.SwapHeuristic") the way §7 asks for errors
// to be "followed by the originating component."
type KindError struct {
	kind      Kind
	component string
	err       error
}

// New constructs a KindError wrapping a plain sentinel.
func New(kind Kind, component string, err error) *KindError {
	return &KindError{kind: kind, component: component, err: err}
}

// Error implements the error interface.
func (e *KindError) Error() string {
	return e.kind.String() + " [" + e.component + "]: " + e.err.Error()
}

// Unwrap exposes the wrapped sentinel for errors.Is/errors.As.
func (e *KindError) Unwrap() error { return e.err }

// Kind returns the classified kind.
func (e *KindError) Kind() Kind { return e.kind }

// Component returns the originating component name.
func (e *KindError) Component() string { return e.component }

// Classify walks err's chain looking for a *KindError and returns its Kind,
// or KindUnknown if none is found.
func Classify(err error) Kind {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind()
	}
	return KindUnknown
}
