package cooc

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fdsm/gmodel"
)

// PairKind identifies one of the S*(S+1)/2 unordered sub-block-pair kinds
// of §4.5.1: I <= J, both in [0, subBlocks). Kind (I,J) owns every event
// pair (e1,e2) with subBlockOf(e1)==I and subBlockOf(e2)==J, which is
// exactly the set of (row,col) half-matrix cells no other kind ever
// touches (subblock index is monotonic non-decreasing in event id, so
// e1<e2 implies subBlockOf(e1)<=subBlockOf(e2): each cell belongs to
// exactly one kind).
type PairKind struct {
	I, J int
}

// PartitionKinds returns the S*(S+1)/2 PairKinds in threadId order:
// (0,0),(0,1),...,(0,S-1),(1,1),...,(S-1,S-1).
func PartitionKinds(s int) []PairKind {
	kinds := make([]PairKind, 0, s*(s+1)/2)
	for i := 0; i < s; i++ {
		for j := i; j < s; j++ {
			kinds = append(kinds, PairKind{I: i, J: j})
		}
	}
	return kinds
}

// ComputeBlock adds kind's contribution to out: for every actor, the
// within-sub-block pairs (I==J) or cross-sub-block product (I<J) of edges
// whose event ids fall in sub-blocks I and J.
//
// Complexity: O(sum over actors of degree(a)_I * degree(a)_J), the cost the
// sub-block partition is designed to keep small relative to degree(a)^2.
func ComputeBlock(g *gmodel.Graph, kind PairKind, out *HalfMatrix) error {
	info := g.Info()
	for a := 0; a < info.NActors; a++ {
		slice, err := g.ActorAdjacencySlice(a)
		if err != nil {
			return fmt.Errorf("cooc.ComputeBlock: %w", err)
		}
		loI, hiI, err := g.SubBlockBounds(a, kind.I)
		if err != nil {
			return fmt.Errorf("cooc.ComputeBlock: %w", err)
		}
		if kind.I == kind.J {
			block := slice[loI:hiI]
			for i := 0; i < len(block); i++ {
				for j := i + 1; j < len(block); j++ {
					if err := out.Add(block[i], block[j], 1); err != nil {
						return fmt.Errorf("cooc.ComputeBlock: %w", err)
					}
				}
			}
			continue
		}
		loJ, hiJ, err := g.SubBlockBounds(a, kind.J)
		if err != nil {
			return fmt.Errorf("cooc.ComputeBlock: %w", err)
		}
		blockI := slice[loI:hiI]
		blockJ := slice[loJ:hiJ]
		for _, x := range blockI {
			for _, y := range blockJ {
				if err := out.Add(x, y, 1); err != nil {
					return fmt.Errorf("cooc.ComputeBlock: %w", err)
				}
			}
		}
	}
	return nil
}

// directEdgeContribution adds the §4.5.2 general-graph direct-edge weight
// to cooc(a,b) for each physical edge a-b, processing each edge exactly
// once via e <= links[e] (robust to self-loops, which link to a distinct
// edge index despite sharing actor==event).
func directEdgeContribution(g *gmodel.Graph, out *HalfMatrix) error {
	info := g.Info()
	if info.Bipartite || info.DirectEdgeWeight == 0 {
		return nil
	}
	w := int64(info.DirectEdgeWeight)
	for e := 0; e < g.NEdges(); e++ {
		link, err := g.Link(e)
		if err != nil {
			return fmt.Errorf("cooc.directEdgeContribution: %w", err)
		}
		if e > link {
			continue
		}
		a, err := g.EdgeActor(e)
		if err != nil {
			return fmt.Errorf("cooc.directEdgeContribution: %w", err)
		}
		v, err := g.EdgeEvent(e)
		if err != nil {
			return fmt.Errorf("cooc.directEdgeContribution: %w", err)
		}
		if a == v {
			continue // self-loop: no off-diagonal cell to add to
		}
		e1, e2 := a, v
		if e1 > e2 {
			e1, e2 = e2, e1
		}
		if err := out.Add(e1, e2, w); err != nil {
			return fmt.Errorf("cooc.directEdgeContribution: %w", err)
		}
	}
	return nil
}

// Compute fills out with the full co-occurrence matrix of g: the
// direct-edge prepass (general graphs only), then the S*(S+1)/2 sub-block
// kinds, run concurrently via errgroup since each kind owns a disjoint set
// of (row,col) cells in out (see PairKind) and needs no lock. out must
// already be sized for g.Info().NEvents and is not reset first.
//
// After completion, out.Sum() is checked against g.ExpectedCoocSum(); a
// mismatch returns ErrCoocSumMismatch, the hard integrity error of §4.5.
func Compute(ctx context.Context, g *gmodel.Graph, out *HalfMatrix) error {
	if err := directEdgeContribution(g, out); err != nil {
		return err
	}

	grp, _ := errgroup.WithContext(ctx)
	for _, kind := range PartitionKinds(gmodel.SubBlockCount()) {
		kind := kind
		grp.Go(func() error {
			return ComputeBlock(g, kind, out)
		})
	}
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("cooc.Compute: %w", err)
	}

	if out.Sum() != g.ExpectedCoocSum() {
		return fmt.Errorf("cooc.Compute: got %d want %d: %w", out.Sum(), g.ExpectedCoocSum(), ErrCoocSumMismatch)
	}
	return nil
}

// PairCooc returns the co-occurrence count of a single event pair (e1,e2),
// e1 != e2, by popcounting the AND of their adjacency-matrix rows and
// adding the general-graph direct-edge weight if a direct edge exists (for
// a directly linked general pair the two diagonal bits, which the AND also
// counts, are taken off first). For callers that need a one-off count
// without running the full sub-block partition; the swap heuristic does
// not call it.
func PairCooc(g *gmodel.Graph, e1, e2 int) (int64, error) {
	if e1 == e2 {
		return 0, fmt.Errorf("cooc.PairCooc(%d,%d): %w", e1, e2, ErrUnorderedPair)
	}
	lo, hi := e1, e2
	if lo > hi {
		lo, hi = hi, lo
	}
	and, err := g.Matrix().RowANDPopcount(lo, hi)
	if err != nil {
		return 0, fmt.Errorf("cooc.PairCooc(%d,%d): %w", e1, e2, err)
	}
	total := int64(and)
	info := g.Info()
	if !info.Bipartite && g.MatrixHasEdge(hi, lo) {
		// Each endpoint's diagonal bit meets the other's edge bit in the AND.
		total += int64(info.DirectEdgeWeight) - 2
	}
	return total, nil
}
