package gmodel

import "errors"

// Sentinel errors for gmodel operations. They are plain errors that carry no
// fdsmerr.Kind; fdsmerr.Classify reports KindUnknown for them.
var (
	// ErrDuplicateEdge is returned by Load* when the same (actor,event) pair
	// (or, for general graphs, the same unordered node pair) appears twice.
	ErrDuplicateEdge = errors.New("gmodel: duplicate edge")

	// ErrMissingNode is returned by the *WithNodes loaders when an edge line
	// references a name absent from the pre-declared node lists.
	ErrMissingNode = errors.New("gmodel: edge references an undeclared node")

	// ErrMalformedEdgeLine is returned when an edge line does not parse into
	// exactly two whitespace-separated tokens.
	ErrMalformedEdgeLine = errors.New("gmodel: malformed edge line")

	// ErrDimensionMismatch is returned by Copy when the receiver and argument
	// disagree on shape, and by ReplaceActorAdjacency when the new lists do
	// not fit the actor's existing slots.
	ErrDimensionMismatch = errors.New("gmodel: dimension mismatch")

	// ErrBrokenEdgeLink is returned by FindLinkedEdge when no matching
	// reverse edge exists in the event endpoint's adjacency list — an
	// invariant violation, never expected in correct operation.
	ErrBrokenEdgeLink = errors.New("gmodel: broken edge link")

	// ErrInvariantViolation is returned by the debug-mode canonical-form
	// checks run after canonize when any of the §4.2 invariants fail.
	ErrInvariantViolation = errors.New("gmodel: canonical form invariant violated")

	// ErrIndexOutOfBounds is returned when a node or edge index argument
	// falls outside the graph's bounds.
	ErrIndexOutOfBounds = errors.New("gmodel: index out of bounds")

	// ErrBipartiteOnly and ErrGeneralOnly guard operations meaningful for
	// only one of the two graph shapes (e.g. Link is general-only).
	ErrBipartiteOnly = errors.New("gmodel: operation valid only for bipartite graphs")
	ErrGeneralOnly    = errors.New("gmodel: operation valid only for general graphs")
)
