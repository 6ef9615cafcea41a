package gmodel

import (
	"fmt"

	"github.com/katalvlaran/fdsm/bitmatrix"
	"github.com/katalvlaran/fdsm/telemetry"
)

// Copy deep-copies g into dst, which must already have a matching GraphInfo.
// Produces a byte-identical canonical form when g is canonical.
func (g *Graph) Copy(dst *Graph) error {
	if dst == nil || dst.info != g.info {
		return ErrDimensionMismatch
	}
	if err := g.matrix.CopyInto(dst.matrix); err != nil {
		return fmt.Errorf("gmodel.Copy: %w", err)
	}
	copy(dst.adjList, g.adjList)
	copy(dst.accDeg, g.accDeg)
	copy(dst.edgeToActor, g.edgeToActor)
	if !g.info.Bipartite {
		if dst.links == nil {
			dst.links = make([]int, len(g.links))
		}
		copy(dst.links, g.links)
	}
	dst.subBlockFirst = cloneIntGrid(g.subBlockFirst)
	dst.subBlockLast = cloneIntGrid(g.subBlockLast)
	dst.canonical = g.canonical
	return nil
}

func cloneIntGrid(src [][]int) [][]int {
	if src == nil {
		return nil
	}
	out := make([][]int, len(src))
	for i, row := range src {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Clone allocates a new Graph with the same shape (including per-actor
// degrees) as g and copies g into it.
func (g *Graph) Clone() (*Graph, error) {
	m, err := bitmatrix.New(g.info.NEvents, g.info.NActors)
	if err != nil {
		return nil, fmt.Errorf("gmodel.Clone: %w", err)
	}
	dst := &Graph{
		info:        g.info,
		matrix:      m,
		adjList:     make([]int, len(g.adjList)),
		accDeg:      append([]int(nil), g.accDeg...),
		edgeToActor: make([]int, len(g.edgeToActor)),
	}
	if !g.info.Bipartite {
		dst.links = make([]int, len(g.links))
	}
	if err := g.Copy(dst); err != nil {
		return nil, err
	}
	return dst, nil
}

// Degree returns the degree of node n via the list view and via the matrix
// view; callers that only need one value still get both so call sites can
// assert agreement (§4.2, §8 property 3).
func (g *Graph) Degree(n int) (viaList, viaMatrix int, err error) {
	if n < 0 || n >= g.info.NActors {
		return 0, 0, ErrIndexOutOfBounds
	}
	viaList = g.accDeg[n+1] - g.accDeg[n]

	if g.info.Bipartite {
		// n is an actor; matrix columns are actors, so count the column.
		count := 0
		for v := 0; v < g.info.NEvents; v++ {
			if g.matrix.Test(v, n) {
				count++
			}
		}
		viaMatrix = count
	} else {
		viaMatrix, err = g.matrix.RowPopcount(n)
		if err != nil {
			return 0, 0, fmt.Errorf("gmodel.Degree(%d): %w", n, err)
		}
		viaMatrix-- // exclude the main-diagonal self-loop bit
	}
	return viaList, viaMatrix, nil
}

// Equals reports structural equality of all fields: shape, matrix, lists,
// edge ownership, and (for general graphs) links.
func (g *Graph) Equals(other *Graph) bool {
	if other == nil || g.info != other.info {
		return false
	}
	if !g.matrix.Equal(other.matrix) {
		return false
	}
	if len(g.adjList) != len(other.adjList) {
		return false
	}
	for i := range g.adjList {
		if g.adjList[i] != other.adjList[i] || g.edgeToActor[i] != other.edgeToActor[i] {
			return false
		}
	}
	for i := range g.accDeg {
		if g.accDeg[i] != other.accDeg[i] {
			return false
		}
	}
	if !g.info.Bipartite {
		for i := range g.links {
			if g.links[i] != other.links[i] {
				return false
			}
		}
	}
	return true
}

// ExpectedCoocSum returns the constant Σcooc[r][c] every CoocEngine.Compute
// must reproduce (§4.5, §8 property 2): Σ_a C(deg(a),2), plus
// (nEdges*DirectEdgeWeight)/2 for general graphs.
func (g *Graph) ExpectedCoocSum() int64 {
	var sum int64
	for a := 0; a < g.info.NActors; a++ {
		d := int64(g.accDeg[a+1] - g.accDeg[a])
		sum += d * (d - 1) / 2
	}
	if !g.info.Bipartite {
		sum += int64(len(g.adjList)) * int64(g.info.DirectEdgeWeight) / 2
	}
	return sum
}

// CheckInvariants runs the §4.2 debug-mode canonical-form checks: degree
// agreement between views, strictly-increasing adjacency lists, matrix/list
// agreement, and (general graphs) link involution. Canonize does not call
// it, Config.Debug does not enable it, and package dispatch never runs it;
// a caller runs it explicitly, typically after Canonize. Violations are reported
// through emitter before the error is returned so the offending component
// is visible in structured logs even if the caller only checks err != nil.
func (g *Graph) CheckInvariants(emitter telemetry.Emitter) error {
	if emitter == nil {
		emitter = telemetry.Nop
	}
	for a := 0; a < g.info.NActors; a++ {
		slice := g.actorSlice(a)
		for i := 1; i < len(slice); i++ {
			if slice[i-1] >= slice[i] {
				emitter.Error("gmodel.CheckInvariants", "adjacency list not strictly increasing", map[string]interface{}{
					"actor": a, "position": i,
				})
				return fmt.Errorf("gmodel.CheckInvariants: actor %d not sorted: %w", a, ErrInvariantViolation)
			}
		}
		for _, v := range slice {
			if !g.matrix.Test(v, a) {
				emitter.Error("gmodel.CheckInvariants", "list entry missing matrix bit", map[string]interface{}{
					"actor": a, "event": v,
				})
				return fmt.Errorf("gmodel.CheckInvariants: actor %d event %d: %w", a, v, ErrInvariantViolation)
			}
		}
		viaList, viaMatrix, err := g.Degree(a)
		if err != nil {
			return err
		}
		if viaList != viaMatrix {
			emitter.Error("gmodel.CheckInvariants", "degree views disagree", map[string]interface{}{
				"actor": a, "via_list": viaList, "via_matrix": viaMatrix,
			})
			return fmt.Errorf("gmodel.CheckInvariants: actor %d: %w", a, ErrInvariantViolation)
		}
	}
	if !g.info.Bipartite {
		for e := range g.links {
			if g.links[g.links[e]] != e {
				emitter.Error("gmodel.CheckInvariants", "links not an involution", map[string]interface{}{
					"edge": e,
				})
				return fmt.Errorf("gmodel.CheckInvariants: edge %d: %w", e, ErrInvariantViolation)
			}
		}
	}
	return nil
}
