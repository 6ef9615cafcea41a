package accumulate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fdsm/cooc"
)

// PairReport is the derived per-pair summary of §4.6: p-hat, mean,
// variance, and the NaN/Inf-guarded z-score.
type PairReport struct {
	PHat     float64
	Mean     float64
	Variance float64
	Z        float64
}

// guardZ applies the §4.6 guard: NaN maps to 0, +Inf to math.MaxFloat64,
// -Inf to -math.MaxFloat64.
func guardZ(z float64) float64 {
	switch {
	case math.IsNaN(z):
		return 0
	case math.IsInf(z, 1):
		return math.MaxFloat64
	case math.IsInf(z, -1):
		return -math.MaxFloat64
	default:
		return z
	}
}

// Report derives the PairReport for event pair (r,c), r<c, against
// original and the accumulated nSamples.
func (a *Accumulator) Report(r, c, nSamples int, original *cooc.HalfMatrix) (PairReport, error) {
	if nSamples <= 0 {
		return PairReport{}, ErrNoSamples
	}
	pv, err := a.PValue.At(r, c)
	if err != nil {
		return PairReport{}, fmt.Errorf("accumulate.Report(%d,%d): %w", r, c, err)
	}
	sum, err := a.CoocSum.At(r, c)
	if err != nil {
		return PairReport{}, fmt.Errorf("accumulate.Report(%d,%d): %w", r, c, err)
	}
	sq, err := a.CoocSquareSum.At(r, c)
	if err != nil {
		return PairReport{}, fmt.Errorf("accumulate.Report(%d,%d): %w", r, c, err)
	}
	orig, err := original.At(r, c)
	if err != nil {
		return PairReport{}, fmt.Errorf("accumulate.Report(%d,%d): %w", r, c, err)
	}

	n := float64(nSamples)
	pHat := float64(pv) / n
	mean := float64(sum) / n
	variance := (float64(sq) - float64(sum)*float64(sum)/n) / (n - 1)
	z := guardZ((float64(orig) - mean) / math.Sqrt(variance))

	return PairReport{PHat: pHat, Mean: mean, Variance: variance, Z: z}, nil
}
