package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voltano/evrange/builder"
	"github.com/voltano/evrange/dijkstra"
)

func TestRandom_Validation(t *testing.T) {
	_, err := builder.Random(0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.Random(10)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestRandom_ShapeAndInvariants(t *testing.T) {
	const n = 40

	g, err := builder.Random(n, builder.WithSeed(42))
	require.NoError(t, err)

	assert.Equal(t, n, g.NodeCount())
	assert.Equal(t, "Random_Graph_40", g.Name())

	for _, node := range g.Nodes() {
		// IDs are 1..n and positions stay on the canvas.
		assert.GreaterOrEqual(t, node.ID, int64(1))
		assert.LessOrEqual(t, node.ID, int64(n))
		assert.GreaterOrEqual(t, node.X, 50.0)
		assert.LessOrEqual(t, node.X, 750.0)
		assert.GreaterOrEqual(t, node.Y, 50.0)
		assert.LessOrEqual(t, node.Y, 750.0)

		// No isolated nodes except possibly the last ID, whose fallback
		// has no higher-numbered candidates left.
		nbrs, err := g.Neighbors(node.ID)
		require.NoError(t, err)
		if node.ID != int64(n) {
			assert.NotEmpty(t, nbrs, "node %d is isolated", node.ID)
		}

		// Weights in range, adjacency mirrored.
		for _, nb := range nbrs {
			assert.GreaterOrEqual(t, nb.Weight, int64(10))
			assert.LessOrEqual(t, nb.Weight, int64(200))
			w, err := g.EdgeWeight(nb.ID, node.ID)
			require.NoError(t, err)
			assert.Equal(t, nb.Weight, w)
		}
	}
}

func TestRandom_DeterministicUnderSeed(t *testing.T) {
	a, err := builder.Random(30, builder.WithSeed(7))
	require.NoError(t, err)
	b, err := builder.Random(30, builder.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.Nodes(), b.Nodes())
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, node := range a.Nodes() {
		na, err := a.Neighbors(node.ID)
		require.NoError(t, err)
		nb, err := b.Neighbors(node.ID)
		require.NoError(t, err)
		assert.Equal(t, na, nb, "adjacency of node %d differs", node.ID)
	}
}

func TestRandom_DistinctSeedsDiffer(t *testing.T) {
	a, err := builder.Random(30, builder.WithSeed(1))
	require.NoError(t, err)
	b, err := builder.Random(30, builder.WithSeed(2))
	require.NoError(t, err)

	// Same node count by construction, but layouts must diverge.
	assert.Equal(t, a.NodeCount(), b.NodeCount())
	assert.NotEqual(t, a.Nodes(), b.Nodes())
}

func TestSlidingWindow_Validation(t *testing.T) {
	_, err := builder.SlidingWindow(1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	_, err = builder.SlidingWindow(10)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestSlidingWindow_Shape(t *testing.T) {
	const n = 25

	g, err := builder.SlidingWindow(n, builder.WithSeed(5))
	require.NoError(t, err)

	assert.Equal(t, n, g.NodeCount())
	assert.Equal(t, "Sliding_Window_Graph_25", g.Name())

	nodes := g.Nodes()
	// Linear layout: x strictly increasing with ID.
	for i := 1; i < len(nodes); i++ {
		assert.Greater(t, nodes[i].X, nodes[i-1].X)
	}
}

func TestByMethod(t *testing.T) {
	g, err := builder.ByMethod(builder.MethodRandom, 10, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())

	g, err = builder.ByMethod(builder.MethodSlidingWindow, 10, builder.WithSeed(3))
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())

	_, err = builder.ByMethod("spiral", 10, builder.WithSeed(3))
	assert.ErrorIs(t, err, builder.ErrUnknownMethod)
}

func TestWithRand_SharedStream(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	a, err := builder.Random(10, builder.WithRand(r))
	require.NoError(t, err)
	b, err := builder.Random(10, builder.WithRand(r))
	require.NoError(t, err)

	// Consuming one stream across two builds must not panic or repeat.
	assert.NotEqual(t, a.Nodes(), b.Nodes())

	assert.Panics(t, func() { builder.WithRand(nil) })
}

func TestWithName_Override(t *testing.T) {
	g, err := builder.Random(5, builder.WithSeed(1), builder.WithName("fixture"))
	require.NoError(t, err)
	assert.Equal(t, "fixture", g.Name())
}

// TestGeneratedInstanceIsRoutable wires a generated instance straight into
// the solver: with a generous budget, some pair of distinct nodes in the
// same component must yield a feasible route.
func TestGeneratedInstanceIsRoutable(t *testing.T) {
	g, err := builder.Random(30, builder.WithSeed(11))
	require.NoError(t, err)

	// Pick the first neighbor of node 1 as a guaranteed-reachable target.
	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.NotEmpty(t, nbrs)

	res, err := dijkstra.FindPath(g,
		dijkstra.Source(1),
		dijkstra.Target(nbrs[0].ID),
		dijkstra.WithBattery(1_000_000),
		dijkstra.WithMileage(10),
	)
	require.NoError(t, err)
	assert.True(t, res.Feasible)
	assert.Equal(t, int64(1), res.Path[0])
	assert.NotZero(t, res.TotalDistance)
}
