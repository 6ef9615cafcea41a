package accumulate

import (
	"sort"

	"github.com/katalvlaran/fdsm/cooc"
	"github.com/katalvlaran/fdsm/randsrc"
)

// PairRank is one ranked event pair, per §4.7.
type PairRank struct {
	E1, E2      int
	PValueCount int64
	Z           float64
	coin        bool // fixed per-pair tie-break draw, §4.7 level 3
}

// less implements the §4.7 three-way ordering: p-value ascending (rarer
// cooccurrence first), then z descending, then the fixed per-pair coin.
func less(a, b PairRank) bool {
	if a.PValueCount != b.PValueCount {
		return a.PValueCount < b.PValueCount
	}
	if a.Z != b.Z {
		return a.Z > b.Z
	}
	return !a.coin && b.coin
}

// RankPairs ranks every event pair whose OriginalCooc is >= minCooc,
// returning the top k by the §4.7 ordering. It quickselects to position k
// and sorts only that prefix, rather than fully sorting every relevant
// pair, per the "preferred for performance" note.
func RankPairs(acc *Accumulator, original *cooc.HalfMatrix, nSamples, minCooc, k int, central *randsrc.Source) ([]PairRank, error) {
	return RankPairsFiltered(acc, original, nSamples, minCooc, k, central, nil)
}

// RankPairsFiltered is RankPairs restricted to pairs for which include
// returns true (a nil include ranks every pair whose OriginalCooc is >=
// minCooc, identical to RankPairs). Used by SampleHeuristic's rolling
// ground truth (§4.9), which ranks only among pairs touching a GT event.
func RankPairsFiltered(acc *Accumulator, original *cooc.HalfMatrix, nSamples, minCooc, k int, central *randsrc.Source, include func(e1, e2 int) bool) ([]PairRank, error) {
	if nSamples <= 0 {
		return nil, ErrNoSamples
	}
	nEvents := original.NEvents()

	candidates := make([]PairRank, 0, nEvents)
	for r := 0; r < nEvents; r++ {
		for c := r + 1; c < nEvents; c++ {
			orig, err := original.At(r, c)
			if err != nil {
				return nil, err
			}
			if int(orig) < minCooc {
				continue
			}
			if include != nil && !include(r, c) {
				continue
			}
			report, err := acc.Report(r, c, nSamples, original)
			if err != nil {
				return nil, err
			}
			pv, err := acc.PValue.At(r, c)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, PairRank{
				E1:          r,
				E2:          c,
				PValueCount: pv,
				Z:           report.Z,
				coin:        central.CoinFlip(),
			})
		}
	}

	if k > len(candidates) {
		k = len(candidates)
	}
	if k > 0 {
		quickselect(candidates, 0, len(candidates)-1, k-1)
		top := candidates[:k]
		sort.Slice(top, func(i, j int) bool { return less(top[i], top[j]) })
		return top, nil
	}
	return candidates[:0], nil
}

// quickselect partitions candidates[lo..hi] in place so that position target
// holds the element that a full sort by less would place there, with every
// element before it sorting no later and every element after it sorting no
// earlier.
func quickselect(a []PairRank, lo, hi, target int) {
	for lo < hi {
		p := partition(a, lo, hi)
		switch {
		case p == target:
			return
		case target < p:
			hi = p - 1
		default:
			lo = p + 1
		}
	}
}

// partition performs a Lomuto partition around a[hi] as pivot, using less
// for ordering, and returns the pivot's final index.
func partition(a []PairRank, lo, hi int) int {
	pivot := a[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if less(a[j], pivot) {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}
