package optimiser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/optimiser"
	"github.com/katalvlaran/leidenkit/partition"
)

// twoCliqueBridge builds the spec's karate-like/two-clique fixture: two
// triangles {0,1,2} and {3,4,5} joined by a single bridge edge.
func twoCliqueBridge(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(6, []graph.EdgeSpec{
		graph.E(0, 1, 1),
		graph.E(0, 2, 1),
		graph.E(1, 2, 1),
		graph.E(3, 4, 1),
		graph.E(3, 5, 1),
		graph.E(4, 5, 1),
		graph.E(2, 3, 1),
	})
	require.NoError(t, err)
	return g
}

func TestOptimisePartition_TwoCliqueBridgeCPM(t *testing.T) {
	g := twoCliqueBridge(t)
	p, err := partition.NewCPM(g, 0.5)
	require.NoError(t, err)

	delta, err := optimiser.New().OptimisePartition(p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, delta, 0.0)

	m := p.Membership()
	assert.Equal(t, m[0], m[1])
	assert.Equal(t, m[1], m[2])
	assert.Equal(t, m[3], m[4])
	assert.Equal(t, m[4], m[5])
	assert.NotEqual(t, m[0], m[3])

	assert.InDelta(t, 3.0, p.Quality(), 1e-6)
}

func TestOptimisePartition_TwoCliqueBridgeModularity(t *testing.T) {
	g := twoCliqueBridge(t)
	p, err := partition.NewModularity(g)
	require.NoError(t, err)

	_, err = optimiser.New().OptimisePartition(p)
	require.NoError(t, err)

	q := p.Quality()
	assert.GreaterOrEqual(t, q, 0.35)
	assert.LessOrEqual(t, q, 0.42)

	m := p.Membership()
	assert.Equal(t, m[0], m[1])
	assert.Equal(t, m[1], m[2])
	assert.Equal(t, m[3], m[4])
	assert.Equal(t, m[4], m[5])
	assert.NotEqual(t, m[0], m[3])
}

func TestOptimisePartition_TrivialSingletonGraph(t *testing.T) {
	g, err := graph.NewGraph(1, nil)
	require.NoError(t, err)

	p, err := partition.NewModularity(g)
	require.NoError(t, err)
	assert.Equal(t, float64(0), p.Quality())

	delta, err := optimiser.New().OptimisePartition(p)
	require.NoError(t, err)
	assert.Equal(t, float64(0), delta)
	assert.Equal(t, float64(0), p.Quality())
}

func TestOptimisePartition_DirectedRingRBConfigurationIsAlreadyOptimal(t *testing.T) {
	g, err := graph.NewGraph(5, []graph.EdgeSpec{
		graph.E(0, 1, 1),
		graph.E(1, 2, 1),
		graph.E(2, 3, 1),
		graph.E(3, 4, 1),
		graph.E(4, 0, 1),
	}, graph.WithDirected(true))
	require.NoError(t, err)

	p, err := partition.NewRBConfiguration(g, 1.0)
	require.NoError(t, err)

	delta, err := optimiser.New().OptimisePartition(p)
	require.NoError(t, err)
	assert.Equal(t, float64(0), delta)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, p.Membership())
}

func TestOptimisePartition_EmptyEdgeSetSurprise(t *testing.T) {
	g, err := graph.NewGraph(4, nil)
	require.NoError(t, err)

	p, err := partition.NewSurprise(g)
	require.NoError(t, err)
	assert.Equal(t, float64(0), p.Quality())

	delta, err := optimiser.New().OptimisePartition(p)
	require.NoError(t, err)
	assert.Equal(t, float64(0), delta)
	assert.Equal(t, float64(0), p.Quality())
}

func TestOptimisePartitionMultiplex_OppositeWeightsNoMoves(t *testing.T) {
	g := twoCliqueBridge(t)

	layer1, err := partition.NewModularity(g)
	require.NoError(t, err)
	layer2, err := partition.NewModularity(g)
	require.NoError(t, err)

	mp, err := optimiser.NewMultiplexPartition(
		[]partition.Partition{layer1, layer2},
		[]float64{1.0, -1.0},
	)
	require.NoError(t, err)

	before := append([]int(nil), mp.Membership()...)
	delta, err := optimiser.New().OptimisePartitionMultiplex(mp)
	require.NoError(t, err)

	assert.Equal(t, float64(0), delta)
	assert.Equal(t, before, mp.Membership())
}

func TestNewMultiplexPartition_RejectsNaNWeight(t *testing.T) {
	g := twoCliqueBridge(t)
	layer, err := partition.NewModularity(g)
	require.NoError(t, err)

	nan := 0.0
	nan = nan / nan
	_, err = optimiser.NewMultiplexPartition([]partition.Partition{layer}, []float64{nan})
	require.Error(t, err)
}

func TestOptimiser_SeedIsReproducible(t *testing.T) {
	g := twoCliqueBridge(t)

	run := func(seed int64) []int {
		p, err := partition.NewCPM(g, 0.5)
		require.NoError(t, err)
		_, err = optimiser.New(optimiser.WithSeed(seed)).OptimisePartition(p)
		require.NoError(t, err)
		return p.Membership()
	}

	assert.Equal(t, run(42), run(42))
}
