package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/partition"
)

// triangleGraph is a small undirected weighted triangle shared by every
// quality-function test in this file.
func triangleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.NewGraph(3, []graph.EdgeSpec{
		graph.E(0, 1, 1),
		graph.E(1, 2, 1),
		graph.E(2, 0, 1),
	})
	require.NoError(t, err)
	return g
}

// variant bundles a quality function's constructor under a common name so
// the invariant and diff_move/quality consistency checks below can run once
// against all six.
type variant struct {
	name string
	new  func(g graph.Provider) (partition.Partition, error)
}

func variants() []variant {
	return []variant{
		{"Modularity", func(g graph.Provider) (partition.Partition, error) { return partition.NewModularity(g) }},
		{"CPM", func(g graph.Provider) (partition.Partition, error) { return partition.NewCPM(g, 1.0) }},
		{"RBER", func(g graph.Provider) (partition.Partition, error) { return partition.NewRBER(g, 1.0) }},
		{"RBConfiguration", func(g graph.Provider) (partition.Partition, error) { return partition.NewRBConfiguration(g, 1.0) }},
		{"Significance", func(g graph.Provider) (partition.Partition, error) { return partition.NewSignificance(g) }},
		{"Surprise", func(g graph.Provider) (partition.Partition, error) { return partition.NewSurprise(g) }},
	}
}

func TestVariants_SingletonInvariants(t *testing.T) {
	g := triangleGraph(t)
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			p, err := v.new(g)
			require.NoError(t, err)

			assert.Equal(t, 3, p.NCommunities())

			var sumCSize, sumCNodes int
			for c := 0; c < p.NCommunities(); c++ {
				assert.Equal(t, 1, p.CNodes(c))
				sumCSize += p.CSize(c)
				sumCNodes += p.CNodes(c)
			}
			assert.Equal(t, g.TotalSize(), sumCSize)
			assert.Equal(t, g.VCount(), sumCNodes)
		})
	}
}

func TestVariants_MoveNodeMatchesDiffMove(t *testing.T) {
	g := triangleGraph(t)
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			p, err := v.new(g)
			require.NoError(t, err)

			before := p.Quality()
			diff := p.DiffMove(0, 1)

			require.NoError(t, p.MoveNode(0, 1))
			after := p.Quality()

			assert.InDelta(t, diff, after-before, 1e-9)
		})
	}
}

func TestVariants_MoveNodeToOwnCommunityIsNoop(t *testing.T) {
	g := triangleGraph(t)
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			p, err := v.new(g)
			require.NoError(t, err)

			assert.Equal(t, float64(0), p.DiffMove(0, p.MembershipOf(0)))

			before := p.Membership()
			require.NoError(t, p.MoveNode(0, p.MembershipOf(0)))
			assert.Equal(t, before, p.Membership())
		})
	}
}

func TestModularity_SingletonQualityIsNegative(t *testing.T) {
	g := triangleGraph(t)
	p, err := partition.NewModularity(g)
	require.NoError(t, err)
	assert.Less(t, p.Quality(), 0.0)
}

func TestModularity_AllInOneCommunityBeatsSingleton(t *testing.T) {
	g := triangleGraph(t)
	singleton, err := partition.NewModularity(g)
	require.NoError(t, err)
	whole, err := partition.NewModularityWithMembership(g, []int{0, 0, 0})
	require.NoError(t, err)

	assert.Greater(t, whole.Quality(), singleton.Quality())
}

func TestCPM_HighResolutionFavoursSingletons(t *testing.T) {
	g := triangleGraph(t)
	singleton, err := partition.NewCPM(g, 10.0)
	require.NoError(t, err)
	whole, err := partition.NewCPMWithMembership(g, []int{0, 0, 0}, 10.0)
	require.NoError(t, err)

	assert.Greater(t, singleton.Quality(), whole.Quality())
}

func TestBase_RenumberCommunitiesOrdersByDescendingSize(t *testing.T) {
	g := triangleGraph(t)
	p, err := partition.NewModularityWithMembership(g, []int{2, 0, 0})
	require.NoError(t, err)

	p.RenumberCommunities()

	assert.Equal(t, 2, p.NCommunities())
	assert.Equal(t, p.MembershipOf(1), p.MembershipOf(2))
	assert.Equal(t, 0, p.MembershipOf(1))
	assert.Equal(t, 1, p.MembershipOf(0))
}

func TestBase_FromCoarsePartitionExpandsMembership(t *testing.T) {
	fine, err := graph.NewGraph(4, []graph.EdgeSpec{
		graph.E(0, 1, 1),
		graph.E(2, 3, 1),
	})
	require.NoError(t, err)

	p, err := partition.NewModularity(fine)
	require.NoError(t, err)

	require.NoError(t, p.FromCoarsePartition([]int{5, 7}, []int{0, 0, 1, 1}))
	assert.Equal(t, []int{5, 5, 7, 7}, p.Membership())
}

func TestBase_EmptyCommunityDoesNotAllocate(t *testing.T) {
	g := triangleGraph(t)
	p, err := partition.NewModularityWithMembership(g, []int{0, 0, 0})
	require.NoError(t, err)

	before := p.NCommunities()
	empty := p.EmptyCommunity()
	assert.GreaterOrEqual(t, empty, before)
	assert.Equal(t, before, p.NCommunities())
}
