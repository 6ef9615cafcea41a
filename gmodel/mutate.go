package gmodel

import "fmt"

// This file exposes the low-level mutation primitives package swap drives
// to implement single-switch and Curveball. Every method here defers
// canonicalization: callers must invoke Canonize before relying on
// IsCanonical(), SubBlockBounds, the cached links read by Link, or
// FindLinkedEdge's binary search over sorted lists.

// MatrixHasEdge reports whether actor is adjacent to event via the matrix
// view.
func (g *Graph) MatrixHasEdge(event, actor int) bool {
	return g.matrix.Test(event, actor)
}

// MatrixSet sets the (event, actor) matrix bit.
func (g *Graph) MatrixSet(event, actor int) error {
	if err := g.matrix.Set(event, actor); err != nil {
		return fmt.Errorf("gmodel.MatrixSet: %w", err)
	}
	return nil
}

// MatrixClear clears the (event, actor) matrix bit.
func (g *Graph) MatrixClear(event, actor int) error {
	if err := g.matrix.Clear(event, actor); err != nil {
		return fmt.Errorf("gmodel.MatrixClear: %w", err)
	}
	return nil
}

// SetEdgeEvent rewrites the event id held at edge e, marking the graph
// non-canonical. It does not touch the matrix; callers are responsible for
// keeping matrix and list views synchronized within their own transaction
// (see package swap's single-switch implementations).
func (g *Graph) SetEdgeEvent(e, newEvent int) error {
	if e < 0 || e >= len(g.adjList) {
		return ErrIndexOutOfBounds
	}
	g.adjList[e] = newEvent
	g.canonical = false
	return nil
}

// SetLink rewrites links[e] directly (general graphs only), marking the
// graph non-canonical. Used to keep the link involution intact across a
// general-graph single switch without waiting for a full Canonize.
func (g *Graph) SetLink(e, val int) error {
	if g.info.Bipartite {
		return ErrGeneralOnly
	}
	if e < 0 || e >= len(g.links) {
		return ErrIndexOutOfBounds
	}
	g.links[e] = val
	g.canonical = false
	return nil
}

// ReplaceActorAdjacency overwrites actor a's adjacency-list slice in place.
// newEvents must have the same length as actor a's current degree (the
// Curveball trade preserves each actor's degree by construction). Marks the
// graph non-canonical; the caller must Canonize before the sub-block
// indexes or links are trusted again.
func (g *Graph) ReplaceActorAdjacency(a int, newEvents []int) error {
	if a < 0 || a >= g.info.NActors {
		return ErrIndexOutOfBounds
	}
	slice := g.actorSlice(a)
	if len(newEvents) != len(slice) {
		return ErrDimensionMismatch
	}
	copy(slice, newEvents)
	g.canonical = false
	return nil
}
