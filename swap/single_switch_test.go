package swap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fdsm/gmodel"
	"github.com/katalvlaran/fdsm/randsrc"
)

func degreeSequence(t *testing.T, g *gmodel.Graph) []int {
	t.Helper()
	out := make([]int, g.Info().NActors)
	for a := range out {
		d, _, err := g.Degree(a)
		require.NoError(t, err)
		out[a] = d
	}
	return out
}

// TestSingleSwitchBipartite_UniqueRealizationAlwaysRejects is scenario 1 of §8: the (2,2)x(2,2) degree
// sequence has a unique bipartite realization, so every single-switch
// attempt on it must reject.
func TestSingleSwitchBipartite_UniqueRealizationAlwaysRejects(t *testing.T) {
	g, err := gmodel.LoadBipartite(strings.NewReader("a1 e1\na1 e2\na2 e1\na2 e2\n"))
	require.NoError(t, err)
	before := degreeSequence(t, g)

	src := randsrc.NewWorkerSource(1, 0)
	for i := 0; i < 200; i++ {
		res, err := SingleSwitchBipartite(g, src)
		require.NoError(t, err)
		assert.False(t, res.Accepted)
	}
	assert.Equal(t, before, degreeSequence(t, g))
	assert.Equal(t, 4, g.NEdges())
}

func TestSingleSwitchBipartite_PreservesDegreesWhenAccepted(t *testing.T) {
	g, err := gmodel.LoadBipartite(strings.NewReader(
		"hub e1\nhub e2\nhub e3\nleaf1 e1\nleaf2 e2\nleaf3 e3\n"))
	require.NoError(t, err)
	before := degreeSequence(t, g)

	src := randsrc.NewWorkerSource(7, 0)
	acceptedAny := false
	for i := 0; i < 500; i++ {
		res, err := SingleSwitchBipartite(g, src)
		require.NoError(t, err)
		if res.Accepted {
			acceptedAny = true
		}
		assert.Equal(t, before, degreeSequence(t, g))
	}
	assert.True(t, acceptedAny, "expected at least one accepted move over 500 attempts on the star graph")
}

func TestSingleSwitchBipartite_TooFewEdges(t *testing.T) {
	g, err := gmodel.LoadBipartite(strings.NewReader("a1 e1\n"))
	require.NoError(t, err)
	_, err = SingleSwitchBipartite(g, randsrc.NewWorkerSource(1, 0))
	assert.ErrorIs(t, err, ErrTooFewEdges)
}

func TestSingleSwitchGeneral_PreservesDegreesAndLinks(t *testing.T) {
	g, err := gmodel.LoadGeneral(strings.NewReader("a b\nb c\nc d\nd a\n"))
	require.NoError(t, err)
	before := degreeSequence(t, g)

	src := randsrc.NewWorkerSource(3, 0)
	for i := 0; i < 500; i++ {
		_, err := SingleSwitchGeneral(g, src)
		require.NoError(t, err)
		assert.Equal(t, before, degreeSequence(t, g))
		for e := 0; e < g.NEdges(); e++ {
			link, err := g.Link(e)
			require.NoError(t, err)
			back, err := g.Link(link)
			require.NoError(t, err)
			assert.Equal(t, e, back)
		}
	}
}

// A general graph always stores an even number of edges (each physical
// edge twice), so a single-edge input already clears the two-edge floor.
func TestSingleSwitchGeneral_SingleUndirectedEdgeHasTwoStoredEdges(t *testing.T) {
	g, err := gmodel.LoadGeneral(strings.NewReader("a b\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, g.NEdges())
	_, err = SingleSwitchGeneral(g, randsrc.NewWorkerSource(1, 0))
	assert.NoError(t, err)
}

// TestSingleSwitchGeneral_NeverCreatesSelfLoop regression-tests the
// collision guard against a candidate endpoint equal to the move's own
// actor (e.g. on a 4-cycle a-b-c-d-a, drawing e1=a->b and e2=d->a yields
// v2==a1): MatrixHasEdge must read the diagonal bit as a hit so the move
// rejects instead of silently turning an actor into a self-adjacent node.
func TestSingleSwitchGeneral_NeverCreatesSelfLoop(t *testing.T) {
	g, err := gmodel.LoadGeneral(strings.NewReader("a b\nb c\nc d\nd a\n"))
	require.NoError(t, err)

	src := randsrc.NewWorkerSource(42, 0)
	for i := 0; i < 2000; i++ {
		_, err := SingleSwitchGeneral(g, src)
		require.NoError(t, err)
		for a := 0; a < g.Info().NActors; a++ {
			adj, err := g.ActorAdjacency(a)
			require.NoError(t, err)
			for _, v := range adj {
				assert.NotEqual(t, a, v, "actor %d must not be adjacent to itself", a)
			}
		}
	}
}

func TestFourDistinct(t *testing.T) {
	assert.True(t, fourDistinct(1, 2, 3, 4))
	assert.False(t, fourDistinct(1, 2, 3, 1))
	assert.False(t, fourDistinct(5, 5, 6, 7))
}
