package heuristic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdsm/accumulate"
	"github.com/katalvlaran/fdsm/cooc"
	"github.com/katalvlaran/fdsm/randsrc"
)

func buildAccumulator(t *testing.T, nEvents int, original *cooc.HalfMatrix, samples []map[[2]int]int64) *accumulate.Accumulator {
	t.Helper()
	acc := accumulate.NewAccumulator(nEvents)
	for i, vals := range samples {
		s := cooc.NewHalfMatrix(nEvents)
		for pair, v := range vals {
			require.NoError(t, s.Add(pair[0], pair[1], v))
		}
		require.NoError(t, acc.Accumulate(i, s, original))
	}
	return acc
}

func TestSampleStopper_FirstBatchNeverStops(t *testing.T) {
	nEvents := 4
	original := cooc.NewHalfMatrix(nEvents)
	require.NoError(t, original.Add(0, 1, 10))
	require.NoError(t, original.Add(2, 3, 10))

	acc := buildAccumulator(t, nEvents, original, []map[[2]int]int64{
		{{0, 1}: 5, {2, 3}: 5},
	})

	stopper := NewSampleStopper(0.5, 0.8, 100, 1)
	stop, err := stopper.Update(acc, original, 1, 2, randsrc.NewCentralSource(1))
	require.NoError(t, err)
	assert.False(t, stop)
}

func TestSampleStopper_StopsWhenGroundTruthStable(t *testing.T) {
	nEvents := 4
	original := cooc.NewHalfMatrix(nEvents)
	require.NoError(t, original.Add(0, 1, 10))
	require.NoError(t, original.Add(2, 3, 10))

	central := randsrc.NewCentralSource(1)
	stopper := NewSampleStopper(0.5, 0.9, 100, 1)

	// Every batch has the identical sample, so the ranking never changes.
	acc := buildAccumulator(t, nEvents, original, []map[[2]int]int64{{{0, 1}: 5, {2, 3}: 5}})
	_, err := stopper.Update(acc, original, 1, 2, central)
	require.NoError(t, err)

	acc2 := buildAccumulator(t, nEvents, original, []map[[2]int]int64{{{0, 1}: 5, {2, 3}: 5}, {{0, 1}: 5, {2, 3}: 5}})
	stop, err := stopper.Update(acc2, original, 2, 2, central)
	require.NoError(t, err)
	assert.True(t, stop)
}

func TestSampleStopper_ExternalGroundTruthUsesFixedPairs(t *testing.T) {
	nEvents := 4
	original := cooc.NewHalfMatrix(nEvents)
	require.NoError(t, original.Add(0, 1, 10))
	require.NoError(t, original.Add(2, 3, 10))

	acc := buildAccumulator(t, nEvents, original, []map[[2]int]int64{{{0, 1}: 5, {2, 3}: 20}})

	stopper := NewExternalGroundTruth([][2]int{{0, 1}}, 0.99, 100, 1)
	stop, err := stopper.Update(acc, original, 1, 1, randsrc.NewCentralSource(3))
	require.NoError(t, err)
	assert.True(t, stop) // the only relevant pair touching a GT event is the GT pair
}

func TestSampleStopper_MaxSamples(t *testing.T) {
	s := NewSampleStopper(0.5, 0.9, 42, 1)
	assert.Equal(t, 42, s.MaxSamples())
}
