package accumulate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdsm/cooc"
	"github.com/katalvlaran/fdsm/randsrc"
)

func TestAccumulator_AccumulateTalliesSumAndSquareSum(t *testing.T) {
	original := cooc.NewHalfMatrix(3)
	require.NoError(t, original.Add(0, 1, 2))

	acc := NewAccumulator(3)

	sample1 := cooc.NewHalfMatrix(3)
	require.NoError(t, sample1.Add(0, 1, 3))
	require.NoError(t, acc.Accumulate(0, sample1, original))

	sample2 := cooc.NewHalfMatrix(3)
	require.NoError(t, sample2.Add(0, 1, 1))
	require.NoError(t, acc.Accumulate(1, sample2, original))

	sum, err := acc.CoocSum.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), sum)

	sq, err := acc.CoocSquareSum.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9+1), sq)

	pv, err := acc.PValue.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pv) // sample1 (3>2) counts, sample2 (1<2) doesn't
}

func TestAccumulator_AccumulateTieSplitsByParity(t *testing.T) {
	original := cooc.NewHalfMatrix(2)
	require.NoError(t, original.Add(0, 1, 5))
	acc := NewAccumulator(2)

	tie := cooc.NewHalfMatrix(2)
	require.NoError(t, tie.Add(0, 1, 5))

	require.NoError(t, acc.Accumulate(0, tie, original)) // sampleIndex even -> tieBonus 0
	require.NoError(t, acc.Accumulate(1, tie, original)) // sampleIndex odd -> tieBonus 1

	pv, err := acc.PValue.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), pv)
}

func TestAccumulator_AccumulateRejectsDimensionMismatch(t *testing.T) {
	acc := NewAccumulator(3)
	mismatched := cooc.NewHalfMatrix(4)
	err := acc.Accumulate(0, mismatched, cooc.NewHalfMatrix(3))
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestAccumulator_AddFromMergesTallies(t *testing.T) {
	a := NewAccumulator(2)
	b := NewAccumulator(2)
	require.NoError(t, a.CoocSum.Add(0, 1, 3))
	require.NoError(t, b.CoocSum.Add(0, 1, 4))

	require.NoError(t, a.AddFrom(b))

	sum, err := a.CoocSum.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), sum)
}

func TestAccumulator_ReportComputesMeanVarianceZ(t *testing.T) {
	original := cooc.NewHalfMatrix(2)
	require.NoError(t, original.Add(0, 1, 10))
	acc := NewAccumulator(2)

	for i, v := range []int64{8, 9, 10, 11, 12} {
		s := cooc.NewHalfMatrix(2)
		require.NoError(t, s.Add(0, 1, v))
		require.NoError(t, acc.Accumulate(i, s, original))
	}

	report, err := acc.Report(0, 1, 5, original)
	require.NoError(t, err)
	assert.InDelta(t, 10.0, report.Mean, 1e-9)
	assert.InDelta(t, 2.5, report.Variance, 1e-9)
	assert.InDelta(t, 0, report.Z, 1e-9)
}

func TestAccumulator_ReportGuardsNaNAndInf(t *testing.T) {
	original := cooc.NewHalfMatrix(2)
	require.NoError(t, original.Add(0, 1, 10))
	acc := NewAccumulator(2)

	single := cooc.NewHalfMatrix(2)
	require.NoError(t, single.Add(0, 1, 10))
	require.NoError(t, acc.Accumulate(0, single, original))

	// nSamples=1 -> variance divides by zero; sample==original so z's
	// numerator is also zero, giving 0/0 = NaN, guarded to 0.
	report, err := acc.Report(0, 1, 1, original)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.Z)

	// A nonzero numerator with zero variance guards to +/- MaxFloat64: two
	// identical samples of 20 give variance (800-1600/2)/1 = 0 and a z
	// numerator of 10-20.
	acc2 := NewAccumulator(2)
	s2 := cooc.NewHalfMatrix(2)
	require.NoError(t, s2.Add(0, 1, 20))
	require.NoError(t, acc2.Accumulate(0, s2, original))
	require.NoError(t, acc2.Accumulate(1, s2, original))
	report2, err := acc2.Report(0, 1, 2, original)
	require.NoError(t, err)
	assert.True(t, report2.Z == math.MaxFloat64 || report2.Z == -math.MaxFloat64)
}

func TestAccumulator_ReportRejectsZeroSamples(t *testing.T) {
	acc := NewAccumulator(2)
	_, err := acc.Report(0, 1, 0, cooc.NewHalfMatrix(2))
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestRankPairs_OrdersByPValueThenZ(t *testing.T) {
	nEvents := 4
	original := cooc.NewHalfMatrix(nEvents)
	for _, p := range [][3]int64{{0, 1, 10}, {0, 2, 10}, {1, 2, 10}, {2, 3, 1}} {
		require.NoError(t, original.Add(int(p[0]), int(p[1]), p[2]))
	}
	acc := NewAccumulator(nEvents)

	// (0,1): never exceeded -> pValue 0 (most significant)
	// (0,2): exceeded once out of two samples -> pValue 1
	// (1,2): exceeded twice -> pValue 2
	samples := []map[[2]int]int64{
		{{0, 1}: 5, {0, 2}: 12, {1, 2}: 15},
		{{0, 1}: 4, {0, 2}: 3, {1, 2}: 11},
	}
	for i, vals := range samples {
		s := cooc.NewHalfMatrix(nEvents)
		for pair, v := range vals {
			require.NoError(t, s.Add(pair[0], pair[1], v))
		}
		require.NoError(t, acc.Accumulate(i, s, original))
	}

	central := randsrc.NewCentralSource(42)
	ranked, err := RankPairs(acc, original, 2, 5, 2, central)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 0, ranked[0].E1)
	assert.Equal(t, 1, ranked[0].E2)
}

func TestRankPairs_FiltersBelowMinCooc(t *testing.T) {
	nEvents := 3
	original := cooc.NewHalfMatrix(nEvents)
	require.NoError(t, original.Add(0, 1, 1))
	require.NoError(t, original.Add(0, 2, 10))
	acc := NewAccumulator(nEvents)
	s := cooc.NewHalfMatrix(nEvents)
	require.NoError(t, s.Add(0, 1, 1))
	require.NoError(t, s.Add(0, 2, 10))
	require.NoError(t, acc.Accumulate(0, s, original))

	central := randsrc.NewCentralSource(7)
	ranked, err := RankPairs(acc, original, 1, 5, 10, central)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0, ranked[0].E1)
	assert.Equal(t, 2, ranked[0].E2)
}

func TestRankPairs_KClampedToCandidateCount(t *testing.T) {
	nEvents := 3
	original := cooc.NewHalfMatrix(nEvents)
	require.NoError(t, original.Add(0, 1, 5))
	acc := NewAccumulator(nEvents)
	s := cooc.NewHalfMatrix(nEvents)
	require.NoError(t, s.Add(0, 1, 5))
	require.NoError(t, acc.Accumulate(0, s, original))

	// minCooc=0 admits all C(3,2)=3 pairs, so k=50 clamps to 3.
	central := randsrc.NewCentralSource(1)
	ranked, err := RankPairs(acc, original, 1, 0, 50, central)
	require.NoError(t, err)
	assert.Len(t, ranked, 3)
}
