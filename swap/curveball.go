package swap

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/fdsm/gmodel"
	"github.com/katalvlaran/fdsm/randsrc"
)

// CurveballBipartite performs one §4.4.3 Curveball trade: draws two
// distinct actors, builds the pool of their symmetric-difference events via
// a linear merge of the two sorted adjacency lists (requires the graph to
// be canonical), partially shuffles it, and redistributes it between the
// two actors' lists. Shared events are untouched.
//
// Writes both actors' lists back sorted but leaves the sub-block indexes
// and the matrix stale; see the package doc comment.
func CurveballBipartite(g *gmodel.Graph, src *randsrc.Source) error {
	a1, a2, err := drawTwoActors(g, src)
	if err != nil {
		return err
	}
	A1, err := g.ActorAdjacency(a1)
	if err != nil {
		return fmt.Errorf("swap.CurveballBipartite: %w", err)
	}
	A2, err := g.ActorAdjacency(a2)
	if err != nil {
		return fmt.Errorf("swap.CurveballBipartite: %w", err)
	}
	shared, pool, k := mergePool(A1, A2)
	return redistributePool(g, a1, a2, shared, pool, k, src)
}

// CurveballBipartiteHashPool is the hash-set pool-construction path of
// §4.4.3, used when the actors' adjacency lists are not known to be sorted
// (e.g. mid-calibration in SwapHeuristic, where canonicalization is
// deferred). Functionally identical to CurveballBipartite; only the pool
// construction's algorithm differs.
func CurveballBipartiteHashPool(g *gmodel.Graph, src *randsrc.Source) error {
	a1, a2, err := drawTwoActors(g, src)
	if err != nil {
		return err
	}
	A1, err := g.ActorAdjacency(a1)
	if err != nil {
		return fmt.Errorf("swap.CurveballBipartiteHashPool: %w", err)
	}
	A2, err := g.ActorAdjacency(a2)
	if err != nil {
		return fmt.Errorf("swap.CurveballBipartiteHashPool: %w", err)
	}
	shared, pool, k := hashPool(A1, A2)
	return redistributePool(g, a1, a2, shared, pool, k, src)
}

func drawTwoActors(g *gmodel.Graph, src *randsrc.Source) (int, int, error) {
	n := g.Info().NActors
	if n < 2 {
		return 0, 0, ErrTooFewActors
	}
	a1 := src.UniformInt(n)
	a2 := src.UniformInt(n - 1)
	if a2 >= a1 {
		a2++
	}
	return a1, a2, nil
}

// mergePool builds the pool and shared set via a linear merge of two sorted
// lists, preferred when both are already sorted. k is the count of pool
// elements that originated in a1 — only the count is needed, not which
// elements, since the algorithm reassigns by count, not identity.
func mergePool(a1, a2 []int) (shared, pool []int, k int) {
	i, j := 0, 0
	for i < len(a1) && j < len(a2) {
		switch {
		case a1[i] < a2[j]:
			pool = append(pool, a1[i])
			k++
			i++
		case a1[i] > a2[j]:
			pool = append(pool, a2[j])
			j++
		default:
			shared = append(shared, a1[i])
			i++
			j++
		}
	}
	for ; i < len(a1); i++ {
		pool = append(pool, a1[i])
		k++
	}
	for ; j < len(a2); j++ {
		pool = append(pool, a2[j])
	}
	return shared, pool, k
}

// hashPool builds the pool and shared set via hash-set membership rather
// than a merge, for callers whose lists are not known to be sorted. Results
// are sorted before return so that both construction paths are
// interchangeable and reproducibility (identical seed -> identical output)
// does not depend on Go's randomized map iteration order.
func hashPool(a1, a2 []int) (shared, pool []int, k int) {
	set1 := make(map[int]struct{}, len(a1))
	for _, v := range a1 {
		set1[v] = struct{}{}
	}
	set2 := make(map[int]struct{}, len(a2))
	for _, v := range a2 {
		set2[v] = struct{}{}
	}
	for v := range set1 {
		if _, ok := set2[v]; ok {
			shared = append(shared, v)
		} else {
			pool = append(pool, v)
			k++
		}
	}
	for v := range set2 {
		if _, ok := set1[v]; !ok {
			pool = append(pool, v)
		}
	}
	sort.Ints(shared)
	sort.Ints(pool)
	// Re-derive k in merge order: hashPool's k counts a1-origin elements
	// regardless of the final pool order, so no adjustment is needed — k
	// was computed from set membership, not position.
	return shared, pool, k
}

// redistributePool partially shuffles pool (Fisher-Yates restricted to the
// first min(k, len(pool)-k) positions) and splits it into the new A1 and
// A2 contributions, then writes the reassembled, sorted lists back.
func redistributePool(g *gmodel.Graph, a1, a2 int, shared, pool []int, k int, src *randsrc.Source) error {
	m := len(pool) - k
	if k < m {
		m = k
	}
	for i := 0; i < m; i++ {
		j := i + src.UniformInt(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	var a1Pool, a2Pool []int
	if k <= len(pool)-k {
		a1Pool = pool[:k]
		a2Pool = pool[k:]
	} else {
		a2Pool = pool[:len(pool)-k]
		a1Pool = pool[len(pool)-k:]
	}

	newA1 := make([]int, 0, len(shared)+len(a1Pool))
	newA1 = append(newA1, shared...)
	newA1 = append(newA1, a1Pool...)
	sort.Ints(newA1)

	newA2 := make([]int, 0, len(shared)+len(a2Pool))
	newA2 = append(newA2, shared...)
	newA2 = append(newA2, a2Pool...)
	sort.Ints(newA2)

	if err := g.ReplaceActorAdjacency(a1, newA1); err != nil {
		return fmt.Errorf("swap.redistributePool: %w", err)
	}
	if err := g.ReplaceActorAdjacency(a2, newA2); err != nil {
		return fmt.Errorf("swap.redistributePool: %w", err)
	}
	return nil
}
