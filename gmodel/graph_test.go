package gmodel

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fourCycle is scenario 1 of §8: two actors each adjacent to two events.
func fourCycle(t *testing.T) *Graph {
	t.Helper()
	g, err := LoadBipartite(strings.NewReader("a1 e1\na1 e2\na2 e1\na2 e2\n"))
	require.NoError(t, err)
	return g
}

func TestLoadBipartite_FourCycle(t *testing.T) {
	g := fourCycle(t)
	assert.Equal(t, 2, g.Info().NActors)
	assert.Equal(t, 2, g.Info().NEvents)
	assert.Equal(t, 4, g.NEdges())
	assert.True(t, g.IsCanonical())

	for a := 0; a < 2; a++ {
		viaList, viaMatrix, err := g.Degree(a)
		require.NoError(t, err)
		assert.Equal(t, 2, viaList)
		assert.Equal(t, viaList, viaMatrix)
	}
}

func TestLoadBipartite_DuplicateEdge(t *testing.T) {
	_, err := LoadBipartite(strings.NewReader("a1 e1\na1 e1\n"))
	assert.ErrorIs(t, err, ErrDuplicateEdge)
}

func TestLoadBipartite_MalformedLine(t *testing.T) {
	_, err := LoadBipartite(strings.NewReader("a1 e1 extra\n"))
	assert.ErrorIs(t, err, ErrMalformedEdgeLine)
}

func TestLoadBipartiteWithNodes_MissingNode(t *testing.T) {
	_, err := LoadBipartiteWithNodes([]string{"a1"}, []string{"e1"}, strings.NewReader("a1 e2\n"))
	assert.ErrorIs(t, err, ErrMissingNode)
}

func TestLoadGeneral_Triangle(t *testing.T) {
	g, err := LoadGeneral(strings.NewReader("a b\nb c\na c\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Info().NActors)
	assert.Equal(t, 6, g.NEdges())
	require.NoError(t, g.SetDirectEdgeWeight(1))

	for n := 0; n < 3; n++ {
		viaList, viaMatrix, err := g.Degree(n)
		require.NoError(t, err)
		assert.Equal(t, 2, viaList)
		assert.Equal(t, viaList, viaMatrix)
	}

	for e := 0; e < g.NEdges(); e++ {
		linked, err := g.FindLinkedEdge(e)
		require.NoError(t, err)
		back, err := g.FindLinkedEdge(linked)
		require.NoError(t, err)
		assert.Equal(t, e, back)
	}
}

func TestGraph_CopyProducesEqualGraph(t *testing.T) {
	g := fourCycle(t)
	dst, err := g.Clone()
	require.NoError(t, err)
	assert.True(t, g.Equals(dst))
}

func TestGraph_EqualsDetectsDifference(t *testing.T) {
	g := fourCycle(t)
	dst, err := g.Clone()
	require.NoError(t, err)
	require.NoError(t, dst.SetEdgeEvent(0, dst.adjList[0]))
	assert.True(t, g.Equals(dst))

	require.NoError(t, dst.MatrixClear(dst.adjList[0], dst.edgeToActor[0]))
	assert.False(t, g.Equals(dst))
}

func TestGraph_CheckInvariantsPassesOnFreshLoad(t *testing.T) {
	g := fourCycle(t)
	assert.NoError(t, g.CheckInvariants(nil))
}

func TestGraph_CheckInvariantsCatchesBrokenSort(t *testing.T) {
	g := fourCycle(t)
	slice := g.actorSlice(0)
	if len(slice) >= 2 {
		slice[0], slice[1] = slice[1], slice[0]
		// Force out of sorted order even if the swap above was a no-op.
		slice[0] = slice[1] + 1
	}
	err := g.CheckInvariants(nil)
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestGraph_ExpectedCoocSum_Bipartite(t *testing.T) {
	g := fourCycle(t)
	// Two actors of degree 2: C(2,2)=1 each => 2.
	assert.EqualValues(t, 2, g.ExpectedCoocSum())
}

func TestGraph_ExpectedCoocSum_General(t *testing.T) {
	g, err := LoadGeneral(strings.NewReader("a b\nb c\na c\n"))
	require.NoError(t, err)
	require.NoError(t, g.SetDirectEdgeWeight(1))
	// Three nodes of degree 2: C(2,2)=1 each => 3, plus nEdges*W/2 = 6*1/2=3.
	assert.EqualValues(t, 6, g.ExpectedCoocSum())
}

func TestGraph_SetEdgeEventMarksNonCanonical(t *testing.T) {
	g := fourCycle(t)
	require.True(t, g.IsCanonical())
	e := 0
	other := g.adjList[1]
	require.NoError(t, g.SetEdgeEvent(e, other))
	assert.False(t, g.IsCanonical())
	require.NoError(t, g.Canonize())
	assert.True(t, g.IsCanonical())
}

func TestGraph_SubBlockBoundsCoverWholeSlice(t *testing.T) {
	g := fourCycle(t)
	for a := 0; a < g.Info().NActors; a++ {
		total := 0
		for k := 0; k < SubBlockCount(); k++ {
			lo, hi, err := g.SubBlockBounds(a, k)
			require.NoError(t, err)
			total += hi - lo
		}
		viaList, _, _ := g.Degree(a)
		assert.Equal(t, viaList, total)
	}
}

// TestLoadGeneral_DiagonalSetForSelfCollisionGuard verifies §3's "for
// general graphs the main diagonal is set, marking self-edges" convention:
// every actor's own matrix cell is a hit, so a single-switch candidate
// endpoint equal to the move's own actor reads as a collision instead of a
// false miss (which would otherwise let the move create a self-loop).
func TestLoadGeneral_DiagonalSetForSelfCollisionGuard(t *testing.T) {
	g, err := LoadGeneral(strings.NewReader("a b\nb c\nc d\nd a\n"))
	require.NoError(t, err)
	for a := 0; a < g.Info().NActors; a++ {
		assert.True(t, g.MatrixHasEdge(a, a), "actor %d: diagonal bit must be set", a)
	}
}

// TestLoadBipartite_DiagonalNotSet verifies the diagonal convention does not
// leak into bipartite graphs, whose matrix rows (events) and columns
// (actors) are disjoint index spaces.
func TestLoadBipartite_DiagonalNotSet(t *testing.T) {
	g := fourCycle(t)
	for n := 0; n < g.Info().NActors; n++ {
		assert.False(t, g.MatrixHasEdge(n, n))
	}
}

// TestRebuildMatrixFromLists_PreservesDiagonal verifies the general-graph
// diagonal survives a list-driven matrix rebuild (§4.4's post-swap sync
// path), not just the initial load.
func TestRebuildMatrixFromLists_PreservesDiagonal(t *testing.T) {
	g, err := LoadGeneral(strings.NewReader("a b\nb c\nc d\nd a\n"))
	require.NoError(t, err)
	require.NoError(t, g.RebuildMatrixFromLists())
	for a := 0; a < g.Info().NActors; a++ {
		assert.True(t, g.MatrixHasEdge(a, a))
	}
}

// TestDegree_GeneralExcludesDiagonalBit verifies Degree's matrix-view
// popcount discounts the self-loop bit for general graphs, matching the
// list view (which never stores self-edges).
func TestDegree_GeneralExcludesDiagonalBit(t *testing.T) {
	g, err := LoadGeneral(strings.NewReader("a b\nb c\nc d\nd a\n"))
	require.NoError(t, err)
	for a := 0; a < g.Info().NActors; a++ {
		viaList, viaMatrix, err := g.Degree(a)
		require.NoError(t, err)
		assert.Equal(t, 2, viaList)
		assert.Equal(t, viaList, viaMatrix)
	}
}

func TestGraph_LinkOnlyForGeneral(t *testing.T) {
	g := fourCycle(t)
	_, err := g.Link(0)
	assert.ErrorIs(t, err, ErrGeneralOnly)
}

func TestGraph_ActorAdjacencyOutOfBounds(t *testing.T) {
	g := fourCycle(t)
	_, err := g.ActorAdjacency(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
	_, err = g.ActorAdjacency(g.Info().NActors)
	assert.ErrorIs(t, err, ErrIndexOutOfBounds)
}
