package gmodel

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fdsm/bitmatrix"
)

// Canonize sorts every actor's adjacency list ascending, rebuilds sub-block
// indexes, and — for general graphs — rebuilds edge links so that
// links[links[e]] == e again. Idempotent: canonizing an already-canonical
// graph is a no-op modulo re-deriving the same values.
//
// The adjacency matrix is untouched: sorting a list in place permutes which
// edge index holds which event id but never changes the edge set, so the
// matrix (keyed by (event,actor), not by edge index) stays valid.
//
// Complexity: O(nEdges log(maxDegree)) for the sort plus O(nEdges log maxDegree)
// for link rebuilding via binary search.
func (g *Graph) Canonize() error {
	for a := 0; a < g.info.NActors; a++ {
		sort.Ints(g.actorSlice(a))
	}

	if err := g.rebuildSubBlocks(); err != nil {
		return err
	}

	if !g.info.Bipartite {
		if err := g.rebuildLinks(); err != nil {
			return err
		}
	}

	g.canonical = true
	return nil
}

func (g *Graph) rebuildSubBlocks() error {
	nActors := g.info.NActors
	g.subBlockFirst = make([][]int, nActors)
	g.subBlockLast = make([][]int, nActors)
	for a := 0; a < nActors; a++ {
		slice := g.actorSlice(a)
		first := make([]int, subBlocks)
		last := make([]int, subBlocks)
		pos := 0
		for k := 0; k < subBlocks; k++ {
			first[k] = pos
			for pos < len(slice) && subBlockOf(slice[pos], g.info.NEvents) == k {
				pos++
			}
			last[k] = pos
		}
		g.subBlockFirst[a] = first
		g.subBlockLast[a] = last
	}
	return nil
}

// rebuildLinks recomputes links for general graphs by, for every edge e
// representing a->v, binary-searching v's sorted slice for the entry equal
// to a. Duplicate edges are rejected at load time, so the search is
// unambiguous.
func (g *Graph) rebuildLinks() error {
	if g.links == nil {
		g.links = make([]int, len(g.adjList))
	}
	for e := 0; e < len(g.adjList); e++ {
		a := g.edgeToActor[e]
		v := g.adjList[e]
		slice := g.actorSlice(v)
		idx := sort.SearchInts(slice, a)
		if idx >= len(slice) || slice[idx] != a {
			return fmt.Errorf("gmodel.rebuildLinks: edge %d (%d->%d): %w", e, a, v, ErrBrokenEdgeLink)
		}
		g.links[e] = g.accDeg[v] + idx
	}
	return nil
}

// RebuildMatrixFromLists clears and re-sets every matrix bit from the
// current adjacency lists. Used after list-level swaps (§4.4) to restore
// matrix/list agreement without a full Canonize when the caller only needs
// the matrix view current.
func (g *Graph) RebuildMatrixFromLists() error {
	fresh, err := bitmatrix.New(g.info.NEvents, g.info.NActors)
	if err != nil {
		return fmt.Errorf("gmodel.RebuildMatrixFromLists: %w", err)
	}
	for a := 0; a < g.info.NActors; a++ {
		for _, v := range g.actorSlice(a) {
			if err := fresh.Set(v, a); err != nil {
				return fmt.Errorf("gmodel.RebuildMatrixFromLists: %w", err)
			}
		}
	}
	if !g.info.Bipartite {
		for a := 0; a < g.info.NActors; a++ {
			if err := fresh.Set(a, a); err != nil {
				return fmt.Errorf("gmodel.RebuildMatrixFromLists: %w", err)
			}
		}
	}
	g.matrix = fresh
	return nil
}

// RebuildListsFromMatrix rebuilds adjList (and, for general graphs, links)
// from the current matrix contents, preserving each actor's degree and
// accDeg boundaries — the matrix must already encode a graph with the same
// degree sequence the Graph was constructed with, or this corrupts accDeg
// invariants. Used after binary I/O (§4.2) where only the matrix view was
// read back.
func (g *Graph) RebuildListsFromMatrix() error {
	nActors := g.info.NActors
	cursor := make([]int, nActors)
	copy(cursor, g.accDeg[:nActors])
	for v := 0; v < g.info.NEvents; v++ {
		for a := 0; a < nActors; a++ {
			if !g.info.Bipartite && v == a {
				continue // main-diagonal self-loop bit, not an adjacency-list entry
			}
			if !g.matrix.Test(v, a) {
				continue
			}
			if cursor[a] >= g.accDeg[a+1] {
				return fmt.Errorf("gmodel.RebuildListsFromMatrix: actor %d overflow: %w", a, ErrInvariantViolation)
			}
			slot := cursor[a]
			cursor[a]++
			g.adjList[slot] = v
			g.edgeToActor[slot] = a
		}
	}
	for a := 0; a < nActors; a++ {
		if cursor[a] != g.accDeg[a+1] {
			return fmt.Errorf("gmodel.RebuildListsFromMatrix: actor %d degree mismatch: %w", a, ErrInvariantViolation)
		}
	}
	return g.Canonize()
}

// FindLinkedEdge locates links[e] for a general graph by scanning (binary
// search) the adjacency list of e's event endpoint for e's owning actor,
// rather than trusting the cached links array. Returns ErrBrokenEdgeLink if
// no matching reverse edge is found — an invariant violation.
func (g *Graph) FindLinkedEdge(e int) (int, error) {
	if g.info.Bipartite {
		return 0, ErrGeneralOnly
	}
	if e < 0 || e >= len(g.adjList) {
		return 0, ErrIndexOutOfBounds
	}
	a := g.edgeToActor[e]
	v := g.adjList[e]
	slice := g.actorSlice(v)
	idx := sort.SearchInts(slice, a)
	if idx >= len(slice) || slice[idx] != a {
		return 0, fmt.Errorf("gmodel.FindLinkedEdge(%d): %w", e, ErrBrokenEdgeLink)
	}
	return g.accDeg[v] + idx, nil
}
