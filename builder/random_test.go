package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlpath/builder"
	"github.com/katalvlaran/lvlpath/core"
)

func TestRandomDigraph_Validation(t *testing.T) {
	_, err := builder.RandomDigraph(0, 0)
	require.ErrorIs(t, err, builder.ErrTooFewVertices)

	// A 3-vertex simple digraph holds at most 6 edges.
	_, err = builder.RandomDigraph(3, 7)
	require.ErrorIs(t, err, builder.ErrTooManyEdges)

	_, err = builder.RandomDigraph(3, 2, builder.WithMaxWeight(0.5))
	require.ErrorIs(t, err, builder.ErrBadWeightRange)
}

func TestRandomDigraph_ExactEdgeCount(t *testing.T) {
	g, err := builder.RandomDigraph(50, 400, builder.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 50, g.VertexCount())
	require.Equal(t, 400, g.EdgeCount())
}

func TestRandomDigraph_SimpleAndWeighted(t *testing.T) {
	g, err := builder.RandomDigraph(20, 100, builder.WithSeed(3), builder.WithMaxWeight(10))
	require.NoError(t, err)

	seen := make(map[[2]int]bool)
	for u := 0; u < g.VertexCount(); u++ {
		for _, a := range g.OutArcs(u) {
			require.NotEqual(t, u, a.To, "self-loop %d→%d", u, a.To)
			require.False(t, seen[[2]int{u, a.To}], "duplicate edge %d→%d", u, a.To)
			seen[[2]int{u, a.To}] = true
			require.GreaterOrEqual(t, a.Weight, 1.0)
			require.LessOrEqual(t, a.Weight, 10.0)
		}
	}
}

func TestRandomDigraph_Deterministic(t *testing.T) {
	// Same seed ⇒ identical edge lists, in identical insertion order.
	a, err := builder.RandomDigraph(30, 150, builder.WithSeed(42))
	require.NoError(t, err)
	b, err := builder.RandomDigraph(30, 150, builder.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, edgeList(a), edgeList(b))

	// A different seed should disagree somewhere.
	c, err := builder.RandomDigraph(30, 150, builder.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, edgeList(a), edgeList(c))
}

func TestRandomDigraph_SeedZeroIsStable(t *testing.T) {
	a, err := builder.RandomDigraph(10, 20)
	require.NoError(t, err)
	b, err := builder.RandomDigraph(10, 20)
	require.NoError(t, err)
	require.Equal(t, edgeList(a), edgeList(b))
}

// edgeList flattens a digraph into (u, v, w) triples in insertion order.
func edgeList(g *core.Digraph) [][3]float64 {
	var out [][3]float64
	for u := 0; u < g.VertexCount(); u++ {
		for _, a := range g.OutArcs(u) {
			out = append(out, [3]float64{float64(u), float64(a.To), a.Weight})
		}
	}

	return out
}
