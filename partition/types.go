package partition

import "github.com/katalvlaran/leidenkit/graph"

// Partition is the capability the optimiser depends on: membership
// administration plus a quality function consistent with it.
type Partition interface {
	Graph() graph.Provider

	Membership() []int
	MembershipOf(v int) int
	NCommunities() int
	CSize(c int) int
	CNodes(c int) int
	GetCommunity(c int) []int
	GetCommunities() [][]int

	TotalWeightInComm(c int) float64
	TotalWeightFromComm(c int) float64
	TotalWeightToComm(c int) float64
	TotalWeightInAllComms() float64
	TotalPossibleEdgesInAllComms() float64

	WeightToComm(v, c int) float64
	WeightFromComm(v, c int) float64

	MoveNode(v, newComm int) error
	DiffMove(v, newComm int) float64
	Quality() float64

	SetMembership(membership []int) error
	RenumberCommunities()
	FromCoarsePartition(coarseMembership []int, coarseNode []int) error
	FromPartition(other Partition) error

	CloneOnGraph(g graph.Provider) (Partition, error)
	CloneOnGraphWithMembership(g graph.Provider, membership []int) (Partition, error)

	// EmptyCommunity returns an unused community id, without committing to
	// it: allocation only happens once MoveNode actually moves a vertex
	// there. Used by the optimiser's consider_empty_community candidates.
	EmptyCommunity() int
}
