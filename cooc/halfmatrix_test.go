package cooc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfMatrix_AddAndAt(t *testing.T) {
	h := NewHalfMatrix(4)
	require.NoError(t, h.Add(0, 3, 2))
	require.NoError(t, h.Add(0, 3, 3))
	v, err := h.At(0, 3)
	require.NoError(t, err)
	assert.EqualValues(t, 5, v)
}

func TestHalfMatrix_UnorderedPairRejected(t *testing.T) {
	h := NewHalfMatrix(4)
	_, err := h.At(3, 0)
	assert.ErrorIs(t, err, ErrUnorderedPair)
	assert.ErrorIs(t, h.Add(2, 2, 1), ErrUnorderedPair)
}

func TestHalfMatrix_LastRowIsEmpty(t *testing.T) {
	h := NewHalfMatrix(5)
	assert.Equal(t, 0, h.RowLen(4))
}

func TestHalfMatrix_AddFromAndSum(t *testing.T) {
	a := NewHalfMatrix(3)
	b := NewHalfMatrix(3)
	require.NoError(t, a.Add(0, 1, 1))
	require.NoError(t, b.Add(0, 1, 4))
	require.NoError(t, b.Add(1, 2, 2))
	require.NoError(t, a.AddFrom(b))
	assert.EqualValues(t, 7, a.Sum())
}

func TestHalfMatrix_AddFromDimensionMismatch(t *testing.T) {
	a := NewHalfMatrix(3)
	b := NewHalfMatrix(4)
	assert.ErrorIs(t, a.AddFrom(b), ErrDimensionMismatch)
}

func TestHalfMatrix_Reset(t *testing.T) {
	h := NewHalfMatrix(3)
	require.NoError(t, h.Add(0, 1, 9))
	h.Reset()
	assert.EqualValues(t, 0, h.Sum())
}
