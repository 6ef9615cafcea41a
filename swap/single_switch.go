package swap

import (
	"fmt"

	"github.com/katalvlaran/fdsm/gmodel"
	"github.com/katalvlaran/fdsm/randsrc"
)

// SingleSwitchBipartite performs one §4.4.1 single-edge switch attempt on a
// bipartite graph, drawing e1, e2 uniformly from [0, nEdges) via src.
func SingleSwitchBipartite(g *gmodel.Graph, src *randsrc.Source) (Result, error) {
	n := g.NEdges()
	if n < 2 {
		return Result{}, ErrTooFewEdges
	}
	e1 := src.UniformInt(n)
	e2 := src.UniformInt(n)

	a1, err := g.EdgeActor(e1)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	v1, err := g.EdgeEvent(e1)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	a2, err := g.EdgeActor(e2)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	v2, err := g.EdgeEvent(e2)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}

	if g.MatrixHasEdge(v2, a1) || g.MatrixHasEdge(v1, a2) {
		return Result{Accepted: false}, nil
	}

	if err := g.MatrixClear(v1, a1); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	if err := g.MatrixClear(v2, a2); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	if err := g.MatrixSet(v2, a1); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	if err := g.MatrixSet(v1, a2); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	if err := g.SetEdgeEvent(e1, v2); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	if err := g.SetEdgeEvent(e2, v1); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchBipartite: %w", err)
	}
	return Result{Accepted: true}, nil
}

// SingleSwitchGeneral performs one §4.4.2 single-edge switch attempt on a
// general graph. Each undirected edge is stored twice, so the move touches
// four edge indices: e1 (a1->v1), its mirror m1 (v1->a1), e2 (a2->v2), and
// its mirror m2 (v2->a2). If the four indices are not pairwise distinct —
// which happens only when e2 equals e1 or is e1's own mirror — the move is
// rejected outright rather than risk corrupting the link
// involution.
func SingleSwitchGeneral(g *gmodel.Graph, src *randsrc.Source) (Result, error) {
	n := g.NEdges()
	if n < 2 {
		return Result{}, ErrTooFewEdges
	}
	e1 := src.UniformInt(n)
	e2 := src.UniformInt(n)

	a1, err := g.EdgeActor(e1)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	v1, err := g.EdgeEvent(e1)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	a2, err := g.EdgeActor(e2)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	v2, err := g.EdgeEvent(e2)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	m1, err := g.Link(e1)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	m2, err := g.Link(e2)
	if err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}

	if !fourDistinct(e1, e2, m1, m2) {
		return Result{Accepted: false}, nil
	}
	if g.MatrixHasEdge(v2, a1) || g.MatrixHasEdge(v1, a2) {
		return Result{Accepted: false}, nil
	}

	moves := []struct{ clearRow, clearCol, setRow, setCol int }{
		{v1, a1, v2, a1}, // e1: a1->v1 becomes a1->v2
		{v2, a2, v1, a2}, // e2: a2->v2 becomes a2->v1
		{a1, v1, a2, v1}, // m1: v1->a1 becomes v1->a2
		{a2, v2, a1, v2}, // m2: v2->a2 becomes v2->a1
	}
	for _, mv := range moves {
		if err := g.MatrixClear(mv.clearRow, mv.clearCol); err != nil {
			return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
		}
		if err := g.MatrixSet(mv.setRow, mv.setCol); err != nil {
			return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
		}
	}

	if err := g.SetEdgeEvent(e1, v2); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	if err := g.SetEdgeEvent(e2, v1); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	if err := g.SetEdgeEvent(m1, a2); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	if err := g.SetEdgeEvent(m2, a1); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}

	if err := g.SetLink(e1, m2); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	if err := g.SetLink(m2, e1); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	if err := g.SetLink(e2, m1); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}
	if err := g.SetLink(m1, e2); err != nil {
		return Result{}, fmt.Errorf("swap.SingleSwitchGeneral: %w", err)
	}

	return Result{Accepted: true}, nil
}

func fourDistinct(a, b, c, d int) bool {
	vals := [4]int{a, b, c, d}
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if vals[i] == vals[j] {
				return false
			}
		}
	}
	return true
}
