package accumulate

import (
	"fmt"

	"github.com/katalvlaran/fdsm/cooc"
)

// Accumulator holds the three running tallies of §3/§4.6 over the course
// of a run: CoocSum, CoocSquareSum, and PValue, one cooc.HalfMatrix each.
type Accumulator struct {
	CoocSum       *cooc.HalfMatrix
	CoocSquareSum *cooc.HalfMatrix
	PValue        *cooc.HalfMatrix

	nEvents int
}

// NewAccumulator allocates a zeroed Accumulator for nEvents events.
func NewAccumulator(nEvents int) *Accumulator {
	return &Accumulator{
		CoocSum:       cooc.NewHalfMatrix(nEvents),
		CoocSquareSum: cooc.NewHalfMatrix(nEvents),
		PValue:        cooc.NewHalfMatrix(nEvents),
		nEvents:       nEvents,
	}
}

// Accumulate folds one sample's cooc matrix into the running tallies
// against original, per §4.6:
//
//	coocSum[r][c]       += sample[r][c]
//	coocSquareSum[r][c] += sample[r][c]^2
//	pValue[r][c]        += 1                  if sample[r][c] >  original[r][c]
//	pValue[r][c]        += sampleIndex mod 2  if sample[r][c] == original[r][c]
func (a *Accumulator) Accumulate(sampleIndex int, sample, original *cooc.HalfMatrix) error {
	if sample == nil || sample.NEvents() != a.nEvents || original == nil || original.NEvents() != a.nEvents {
		return ErrDimensionMismatch
	}
	tieBonus := int64(sampleIndex % 2)

	for r := 0; r < a.nEvents; r++ {
		sampleRow := sample.Row(r)
		originalRow := original.Row(r)
		sumRow := a.CoocSum.Row(r)
		sqRow := a.CoocSquareSum.Row(r)
		pRow := a.PValue.Row(r)
		for c, v := range sampleRow {
			sumRow[c] += v
			sqRow[c] += v * v
			switch {
			case v > originalRow[c]:
				pRow[c]++
			case v == originalRow[c]:
				pRow[c] += tieBonus
			}
		}
	}
	return nil
}

// AddFrom folds another Accumulator's tallies into a, cell-wise. Used to
// merge per-worker scratch accumulators or cross-process partials (§4.10
// step 4) without re-running Accumulate per sample.
func (a *Accumulator) AddFrom(other *Accumulator) error {
	if other == nil || other.nEvents != a.nEvents {
		return ErrDimensionMismatch
	}
	if err := a.CoocSum.AddFrom(other.CoocSum); err != nil {
		return fmt.Errorf("accumulate.AddFrom: %w", err)
	}
	if err := a.CoocSquareSum.AddFrom(other.CoocSquareSum); err != nil {
		return fmt.Errorf("accumulate.AddFrom: %w", err)
	}
	if err := a.PValue.AddFrom(other.PValue); err != nil {
		return fmt.Errorf("accumulate.AddFrom: %w", err)
	}
	return nil
}
