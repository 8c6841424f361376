package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leidenkit/graph"
)

func TestNewGraph_RejectsOutOfRangeEndpoint(t *testing.T) {
	_, err := graph.NewGraph(2, []graph.EdgeSpec{graph.E(0, 2, 1.0)})
	require.Error(t, err)
}

func TestNewGraph_RejectsNegativeWeight(t *testing.T) {
	_, err := graph.NewGraph(2, []graph.EdgeSpec{graph.E(0, 1, -1.0)})
	require.Error(t, err)
}

func TestNewGraph_RejectsNaNWeight(t *testing.T) {
	nan := 0.0
	nan = nan / nan
	_, err := graph.NewGraph(2, []graph.EdgeSpec{graph.E(0, 1, nan)})
	require.Error(t, err)
}

func TestNewGraph_UndirectedTriangle(t *testing.T) {
	g, err := graph.NewGraph(3, []graph.EdgeSpec{
		graph.E(0, 1, 1),
		graph.E(1, 2, 2),
		graph.E(2, 0, 3),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.VCount())
	assert.Equal(t, 3, g.ECount())
	assert.False(t, g.IsDirected())
	assert.Equal(t, float64(6), g.TotalWeight())
	assert.Equal(t, 3, g.TotalSize())

	for v := 0; v < 3; v++ {
		assert.Equal(t, 2, g.Degree(v, graph.ModeOut))
		assert.Equal(t, 2, g.Degree(v, graph.ModeIn))
		assert.Equal(t, 2, g.Degree(v, graph.ModeAll))
	}
	assert.Equal(t, float64(4), g.Strength(0, graph.ModeAll)) // edges to 1 (1) and 2 (3)
}

func TestNewGraph_UndirectedSelfLoopCountsTwiceInAdjacency(t *testing.T) {
	g, err := graph.NewGraph(1, []graph.EdgeSpec{graph.E(0, 0, 5)})
	require.NoError(t, err)

	assert.Equal(t, 2, g.Degree(0, graph.ModeAll))
	assert.Equal(t, float64(10), g.Strength(0, graph.ModeAll))
	assert.Equal(t, float64(5), g.NodeSelfWeight(0))
	assert.Equal(t, float64(5), g.TotalWeight())
}

func TestNewGraph_DirectedDegreesSplit(t *testing.T) {
	g, err := graph.NewGraph(2, []graph.EdgeSpec{graph.E(0, 1, 1)}, graph.WithDirected(true))
	require.NoError(t, err)

	assert.Equal(t, 1, g.Degree(0, graph.ModeOut))
	assert.Equal(t, 0, g.Degree(0, graph.ModeIn))
	assert.Equal(t, 1, g.Degree(0, graph.ModeAll))
	assert.Equal(t, 0, g.Degree(1, graph.ModeOut))
	assert.Equal(t, 1, g.Degree(1, graph.ModeIn))
}

func TestGraph_PossibleEdges(t *testing.T) {
	undirected, err := graph.NewGraph(0, nil)
	require.NoError(t, err)
	assert.Equal(t, float64(6), undirected.PossibleEdges(4)) // 4*3/2

	withLoops, err := graph.NewGraph(0, nil, graph.WithCorrectSelfLoops(true))
	require.NoError(t, err)
	assert.Equal(t, float64(10), withLoops.PossibleEdges(4)) // 4*3/2 + 4

	directed, err := graph.NewGraph(0, nil, graph.WithDirected(true))
	require.NoError(t, err)
	assert.Equal(t, float64(12), directed.PossibleEdges(4)) // 4*3
}

func TestGraph_Density(t *testing.T) {
	g, err := graph.NewGraph(4, []graph.EdgeSpec{
		graph.E(0, 1, 1),
		graph.E(1, 2, 1),
		graph.E(2, 3, 1),
	})
	require.NoError(t, err)
	// density = 2W / (N(N-1)) = 6 / 12 = 0.5
	assert.InDelta(t, 0.5, g.Density(), 1e-9)
}

func TestGraph_RandomNeighborErrorsOnIsolatedVertex(t *testing.T) {
	g, err := graph.NewGraph(2, nil)
	require.NoError(t, err)

	_, _, err = g.RandomNeighbor(0, graph.ModeAll, stubSource{0})
	require.Error(t, err)
}

type stubSource struct{ v int }

func (s stubSource) Intn(n int) int { return s.v % n }

// collapser is a minimal graph.Collapser fixture for Collapse tests.
type collapser struct {
	membership []int
	csize      []int
}

func (c collapser) NCommunities() int    { return len(c.csize) }
func (c collapser) Membership() []int    { return c.membership }
func (c collapser) CSize(comm int) int   { return c.csize[comm] }

func TestGraph_CollapseMergesInterAndIntraCommunityWeight(t *testing.T) {
	// 0-1 intra community 0, 1-2 inter between communities 0 and 1, 2-3
	// intra community 1.
	g, err := graph.NewGraph(4, []graph.EdgeSpec{
		graph.E(0, 1, 2), // intra comm 0
		graph.E(1, 2, 3), // inter comm 0->1
		graph.E(2, 3, 4), // intra comm 1
	})
	require.NoError(t, err)

	c := collapser{membership: []int{0, 0, 1, 1}, csize: []int{2, 2}}
	cg, err := g.Collapse(c)
	require.NoError(t, err)

	assert.Equal(t, 2, cg.VCount())
	assert.Equal(t, 2, cg.NodeSize(0))
	assert.Equal(t, 2, cg.NodeSize(1))
	assert.Equal(t, float64(2), cg.NodeSelfWeight(0))
	assert.Equal(t, float64(4), cg.NodeSelfWeight(1))
	assert.Equal(t, float64(3), cg.TotalWeight()-cg.NodeSelfWeight(0)-cg.NodeSelfWeight(1))
}

func TestGraph_CollapseRejectsBadMembershipLength(t *testing.T) {
	g, err := graph.NewGraph(3, nil)
	require.NoError(t, err)

	_, err = g.Collapse(collapser{membership: []int{0, 0}, csize: []int{3}})
	require.Error(t, err)
}
