package heuristic

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fdsm/gmodel"
	"github.com/katalvlaran/fdsm/randsrc"
	"github.com/katalvlaran/fdsm/swap"
)

// Algorithm selects which SwapEngine move CalibrateSwaps exercises.
type Algorithm int

const (
	AlgorithmSingleSwitch Algorithm = iota
	AlgorithmCurveball
)

// relevantGrowth is the 1.01x threshold of §4.8: a perturbation reading
// must exceed the best seen so far by at least this factor to count as
// relevant growth and reset stepsToBest.
const relevantGrowth = 1.01

// smallGraphEdgeThreshold is the nEdges cutoff below which CalibrateSwaps
// skips the calibration loop and uses the fixed fallback formulas.
const smallGraphEdgeThreshold = 100

// CalibrateSwaps runs the §4.8 SwapHeuristic: repeated fixed-size steps of
// Δ swap operations against a scratch copy of g, tracking the perturbation
// measure against the unmodified original, until no relevant growth has
// been seen in the most recent stepsToBest steps. Returns
// swapsPerSample = stepsToBest * Δ.
//
// For nEdges < 100, the calibration loop is skipped in favor of the fixed
// small-graph fallback.
func CalibrateSwaps(g *gmodel.Graph, algo Algorithm, rng *randsrc.Source) (int, error) {
	info := g.Info()
	nEdges := g.NEdges()

	if algo == AlgorithmCurveball && !info.Bipartite {
		return 0, ErrUnsupportedAlgorithm
	}

	if nEdges < smallGraphEdgeThreshold {
		return smallGraphFallback(info.NActors, nEdges, algo), nil
	}

	delta := calibrationDelta(info.NActors, nEdges, algo)

	original, err := g.Clone()
	if err != nil {
		return 0, fmt.Errorf("heuristic.CalibrateSwaps: %w", err)
	}
	candidate, err := g.Clone()
	if err != nil {
		return 0, fmt.Errorf("heuristic.CalibrateSwaps: %w", err)
	}

	bestPerturbation := -1
	stepsToBest := 0
	step := 0
	for {
		step++
		for i := 0; i < delta; i++ {
			if err := ApplySwap(candidate, algo, rng); err != nil {
				return 0, fmt.Errorf("heuristic.CalibrateSwaps: %w", err)
			}
		}

		perturbation, err := measurePerturbation(original, candidate, algo)
		if err != nil {
			return 0, fmt.Errorf("heuristic.CalibrateSwaps: %w", err)
		}

		if float64(perturbation) > relevantGrowth*float64(bestPerturbation) {
			bestPerturbation = perturbation
			stepsToBest = step
		}

		if step-stepsToBest >= stepsToBest {
			break
		}
	}

	return stepsToBest * delta, nil
}

// calibrationDelta returns Δ: nActors for Curveball, nEdges/5 (at least 1)
// for single switch.
func calibrationDelta(nActors, nEdges int, algo Algorithm) int {
	if algo == AlgorithmCurveball {
		return nActors
	}
	delta := nEdges / 5
	if delta < 1 {
		delta = 1
	}
	return delta
}

// smallGraphFallback returns the §4.8 fixed formula used when nEdges < 100:
// 100*nActors for Curveball, ceil(nEdges*ln(nEdges)) for single switch.
func smallGraphFallback(nActors, nEdges int, algo Algorithm) int {
	if algo == AlgorithmCurveball {
		return 100 * nActors
	}
	if nEdges <= 1 {
		return 1
	}
	return int(math.Ceil(float64(nEdges) * math.Log(float64(nEdges))))
}

// ApplySwap performs one swap move of the requested algorithm against g,
// ignoring whether the move was accepted or rejected — a rejection is
// itself a valid Markov-chain step, both for calibration and for the
// Dispatcher's sampling loop. Curveball always uses the hash-set pool
// path, which does not depend on the order of the adjacency lists.
func ApplySwap(g *gmodel.Graph, algo Algorithm, rng *randsrc.Source) error {
	if algo == AlgorithmCurveball {
		return swap.CurveballBipartiteHashPool(g, rng)
	}
	if g.Info().Bipartite {
		_, err := swap.SingleSwitchBipartite(g, rng)
		return err
	}
	_, err := swap.SingleSwitchGeneral(g, rng)
	return err
}

// measurePerturbation computes the §4.8 perturbation measure of candidate
// against original: for Curveball, the summed symmetric difference of
// sorted actor adjacency lists; for single switch, the XOR popcount of the
// adjacency matrices.
func measurePerturbation(original, candidate *gmodel.Graph, algo Algorithm) (int, error) {
	if algo == AlgorithmCurveball {
		return actorListSymmetricDifference(original, candidate)
	}
	return original.Matrix().XORPopcount(candidate.Matrix())
}

// actorListSymmetricDifference sums, over every actor, the count of events
// in (A ∪ A*) \ (A ∩ A*) between original's and candidate's adjacency
// lists for that actor. Both lists stay sorted after every Curveball move
// (redistributePool re-sorts before writing back), so a linear merge
// suffices.
func actorListSymmetricDifference(original, candidate *gmodel.Graph) (int, error) {
	nActors := original.Info().NActors
	total := 0
	for a := 0; a < nActors; a++ {
		origList, err := original.ActorAdjacency(a)
		if err != nil {
			return 0, err
		}
		candList, err := candidate.ActorAdjacency(a)
		if err != nil {
			return 0, err
		}
		total += symmetricDifferenceCount(origList, candList)
	}
	return total, nil
}

// symmetricDifferenceCount counts entries present in exactly one of two
// sorted int slices, via a linear merge.
func symmetricDifferenceCount(a, b []int) int {
	count := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			count++
			i++
		case a[i] > b[j]:
			count++
			j++
		default:
			i++
			j++
		}
	}
	count += len(a) - i
	count += len(b) - j
	return count
}
