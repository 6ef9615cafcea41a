package gmodel

import "github.com/katalvlaran/fdsm/bitmatrix"

// subBlocks is S of §3/§4.5.1: the number of equal-width event sub-blocks
// each actor's adjacency list is partitioned into for lock-free parallel
// co-occurrence computation.
const subBlocks = 5

// GraphInfo carries the immutable shape constants of a Graph: dimensions,
// topology, and the general-graph direct-edge weight. It is passed by value
// into every component that needs to know the graph's shape without holding
// a reference to the Graph itself (§9 redesign: no process-wide mutable
// graphInfo).
type GraphInfo struct {
	NEvents          int
	NActors          int
	Bipartite        bool
	DirectEdgeWeight int
}

// SetDirectEdgeWeight sets W_direct (§4.5.2), the weight the general-graph
// direct-edge contribution adds to cooc(a,b) for each physical edge a-b.
// Valid only for general graphs; callers apply it once, right after
// LoadGeneral, before computing OriginalCooc.
func (g *Graph) SetDirectEdgeWeight(w int) error {
	if g.info.Bipartite {
		return ErrGeneralOnly
	}
	g.info.DirectEdgeWeight = w
	return nil
}

// NNodes returns the shared node count for a general graph, where
// NEvents == NActors. Calling it on a bipartite GraphInfo is a caller error;
// it returns NActors regardless since the two are unrelated namespaces.
func (gi GraphInfo) NNodes() int { return gi.NActors }

// Graph is the canonical bit-packed graph of §3: a dual adjacency-matrix and
// adjacency-list view kept consistent by every operation this package
// exposes, except the low-level mutation primitives in mutate.go which defer
// canonicalization until the next Canonize.
type Graph struct {
	info GraphInfo

	// matrix is NEvents rows x NActors cols: matrix.Test(event, actor)
	// reports whether actor is adjacent to event. For general graphs,
	// NEvents == NActors and the two axes are the same node space.
	matrix *bitmatrix.BitMatrix

	// adjList[e] is the event id held at edge index e. Actor a owns the
	// slice adjList[accDeg[a]:accDeg[a+1]].
	adjList []int

	// accDeg is the length-(NActors+1) prefix-sum array of actor degrees.
	// Fixed at load time: every swap operation rewrites edge endpoints in
	// place but never moves an edge index between actors, so accDeg never
	// changes after Load*.
	accDeg []int

	// edgeToActor[e] is the actor that owns edge e. Immutable after load,
	// for the same reason accDeg is.
	edgeToActor []int

	// links[e], general graphs only, is the edge index of e's reverse
	// direction. nil for bipartite graphs.
	links []int

	// subBlockFirst[a][k] and subBlockLast[a][k] are offsets relative to
	// the start of actor a's slice (0..degree(a)) bounding the contiguous
	// run of a's adjacency-list entries whose event id falls in sub-block
	// k. Valid only when canonical is true.
	subBlockFirst [][]int
	subBlockLast  [][]int

	canonical bool
}

// Info returns the graph's shape constants.
func (g *Graph) Info() GraphInfo { return g.info }

// NEdges returns the number of edge indices (len(adjList)).
func (g *Graph) NEdges() int { return len(g.adjList) }

// IsCanonical reports whether the graph is currently in canonical form
// (sorted lists, current sub-blocks, current links, matrix == lists).
func (g *Graph) IsCanonical() bool { return g.canonical }

// Matrix returns the live adjacency matrix. Callers outside this package
// must treat it as read-only; the contract mirrors the teacher's
// InternalVertices()-style "live map, read-only by convention" accessors.
func (g *Graph) Matrix() *bitmatrix.BitMatrix { return g.matrix }

// actorSlice returns actor a's region of adjList.
func (g *Graph) actorSlice(a int) []int {
	return g.adjList[g.accDeg[a]:g.accDeg[a+1]]
}

// ActorAdjacencySlice returns the live adjacency-list slice for actor a —
// no copy. Callers outside this package must treat it as read-only; this is
// the hot-path accessor package cooc uses once per actor per worker instead
// of the allocating ActorAdjacency.
func (g *Graph) ActorAdjacencySlice(a int) ([]int, error) {
	if a < 0 || a >= g.info.NActors {
		return nil, ErrIndexOutOfBounds
	}
	return g.actorSlice(a), nil
}

// ActorAdjacency returns a copy of actor a's adjacency-list slice (event
// ids), in whatever order the underlying list currently holds them — sorted
// ascending if the graph is canonical.
func (g *Graph) ActorAdjacency(a int) ([]int, error) {
	if a < 0 || a >= g.info.NActors {
		return nil, ErrIndexOutOfBounds
	}
	src := g.actorSlice(a)
	out := make([]int, len(src))
	copy(out, src)
	return out, nil
}

// SubBlockBounds returns the [lo, hi) offsets, relative to actor a's own
// slice, of the entries whose event id falls in sub-block k. Valid only
// when IsCanonical() is true.
func (g *Graph) SubBlockBounds(a, k int) (int, int, error) {
	if a < 0 || a >= g.info.NActors {
		return 0, 0, ErrIndexOutOfBounds
	}
	if k < 0 || k >= subBlocks {
		return 0, 0, ErrIndexOutOfBounds
	}
	return g.subBlockFirst[a][k], g.subBlockLast[a][k], nil
}

// SubBlockCount returns S, the number of sub-blocks (§4.5.1).
func SubBlockCount() int { return subBlocks }

// subBlockOf returns the sub-block index covering event id v, given nEvents.
func subBlockOf(v, nEvents int) int {
	k := v * subBlocks / nEvents
	if k >= subBlocks {
		k = subBlocks - 1
	}
	return k
}

// EdgeActor returns the actor owning edge e (the inverse of the slice
// structure).
func (g *Graph) EdgeActor(e int) (int, error) {
	if e < 0 || e >= len(g.adjList) {
		return 0, ErrIndexOutOfBounds
	}
	return g.edgeToActor[e], nil
}

// EdgeEvent returns the event id currently held at edge e.
func (g *Graph) EdgeEvent(e int) (int, error) {
	if e < 0 || e >= len(g.adjList) {
		return 0, ErrIndexOutOfBounds
	}
	return g.adjList[e], nil
}

// Link returns the reverse-direction edge index for e (general graphs only).
func (g *Graph) Link(e int) (int, error) {
	if g.info.Bipartite {
		return 0, ErrGeneralOnly
	}
	if e < 0 || e >= len(g.links) {
		return 0, ErrIndexOutOfBounds
	}
	return g.links[e], nil
}
