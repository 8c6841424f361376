package optimiser

import (
	"math"
	"sort"

	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/leidenerr"
	"github.com/katalvlaran/leidenkit/partition"
)

// MultiplexPartition couples several Partitions, one per layer, that share a
// single membership vector: every MoveNode/SetMembership is applied to all
// layers, and DiffMove/Quality are the layer_weights-weighted sum across
// layers, grounded on spec §4.3's multi-layer optimise_partition.
//
// Methods that query a single-layer aggregate (TotalWeightInComm,
// WeightToComm, EmptyCommunity, and friends) follow layer 0's convention.
// Of these, the optimiser's control loop calls only EmptyCommunity; the other
// Partition-interface methods it uses are Graph, Membership, MembershipOf,
// NCommunities, CSize, GetCommunity, DiffMove, Quality, MoveNode,
// SetMembership and RenumberCommunities.
type MultiplexPartition struct {
	layers  []partition.Partition
	weights []float64
}

// NewMultiplexPartition couples layers under weights. All layers must share
// the same vertex count; weights must be finite (NaN rejected per spec §4.3).
func NewMultiplexPartition(layers []partition.Partition, weights []float64) (*MultiplexPartition, error) {
	if len(layers) == 0 {
		return nil, leidenerr.New("NewMultiplexPartition: at least one layer required")
	}
	if len(layers) != len(weights) {
		return nil, leidenerr.New("NewMultiplexPartition: %d layers but %d weights", len(layers), len(weights))
	}
	n := layers[0].Graph().VCount()
	for l, p := range layers {
		if p.Graph().VCount() != n {
			return nil, leidenerr.New("NewMultiplexPartition: layer %d has %d vertices, layer 0 has %d", l, p.Graph().VCount(), n)
		}
	}
	for l, w := range weights {
		if math.IsNaN(w) {
			return nil, leidenerr.New("NewMultiplexPartition: layer %d weight is NaN", l)
		}
	}
	return &MultiplexPartition{layers: layers, weights: weights}, nil
}

func (mp *MultiplexPartition) Graph() graph.Provider { return mp.layers[0].Graph() }

func (mp *MultiplexPartition) Membership() []int        { return mp.layers[0].Membership() }
func (mp *MultiplexPartition) MembershipOf(v int) int   { return mp.layers[0].MembershipOf(v) }
func (mp *MultiplexPartition) NCommunities() int        { return mp.layers[0].NCommunities() }
func (mp *MultiplexPartition) CSize(c int) int          { return mp.layers[0].CSize(c) }
func (mp *MultiplexPartition) CNodes(c int) int         { return mp.layers[0].CNodes(c) }
func (mp *MultiplexPartition) GetCommunity(c int) []int { return mp.layers[0].GetCommunity(c) }
func (mp *MultiplexPartition) GetCommunities() [][]int  { return mp.layers[0].GetCommunities() }

func (mp *MultiplexPartition) TotalWeightInComm(c int) float64       { return mp.layers[0].TotalWeightInComm(c) }
func (mp *MultiplexPartition) TotalWeightFromComm(c int) float64     { return mp.layers[0].TotalWeightFromComm(c) }
func (mp *MultiplexPartition) TotalWeightToComm(c int) float64       { return mp.layers[0].TotalWeightToComm(c) }
func (mp *MultiplexPartition) TotalWeightInAllComms() float64        { return mp.layers[0].TotalWeightInAllComms() }
func (mp *MultiplexPartition) TotalPossibleEdgesInAllComms() float64 { return mp.layers[0].TotalPossibleEdgesInAllComms() }

func (mp *MultiplexPartition) WeightToComm(v, c int) float64   { return mp.layers[0].WeightToComm(v, c) }
func (mp *MultiplexPartition) WeightFromComm(v, c int) float64 { return mp.layers[0].WeightFromComm(v, c) }

func (mp *MultiplexPartition) EmptyCommunity() int { return mp.layers[0].EmptyCommunity() }

// MoveNode applies the same move to every layer.
func (mp *MultiplexPartition) MoveNode(v, newComm int) error {
	for l, p := range mp.layers {
		if err := p.MoveNode(v, newComm); err != nil {
			return leidenerr.New("MultiplexPartition.MoveNode: layer %d: %v", l, err)
		}
	}
	return nil
}

// DiffMove is the layer_weights-weighted sum of each layer's diff_move.
func (mp *MultiplexPartition) DiffMove(v, newComm int) float64 {
	var total float64
	for l, p := range mp.layers {
		total += mp.weights[l] * p.DiffMove(v, newComm)
	}
	return total
}

// Quality is the layer_weights-weighted sum of each layer's quality.
func (mp *MultiplexPartition) Quality() float64 {
	var total float64
	for l, p := range mp.layers {
		total += mp.weights[l] * p.Quality()
	}
	return total
}

// SetMembership applies membership to every layer.
func (mp *MultiplexPartition) SetMembership(membership []int) error {
	for l, p := range mp.layers {
		if err := p.SetMembership(membership); err != nil {
			return leidenerr.New("MultiplexPartition.SetMembership: layer %d: %v", l, err)
		}
	}
	return nil
}

// RenumberCommunities relabels communities by descending summed csize
// across layers, ties broken by summed cnodes then original ID, grounded
// on spec §4.1's multiplex renumber_communities form.
func (mp *MultiplexPartition) RenumberCommunities() {
	k := mp.layers[0].NCommunities()
	type row struct{ id, csize, cnodes int }
	rows := make([]row, k)
	for c := 0; c < k; c++ {
		var sc, sn int
		for _, p := range mp.layers {
			sc += p.CSize(c)
			sn += p.CNodes(c)
		}
		rows[c] = row{id: c, csize: sc, cnodes: sn}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.csize != b.csize {
			return a.csize > b.csize
		}
		if a.cnodes != b.cnodes {
			return a.cnodes > b.cnodes
		}
		return a.id < b.id
	})

	newID := make([]int, k)
	for i, r := range rows {
		newID[r.id] = i
	}
	old := mp.layers[0].Membership()
	remapped := make([]int, len(old))
	for v, c := range old {
		remapped[v] = newID[c]
	}
	_ = mp.SetMembership(remapped)
}

// FromCoarsePartition applies the coarse-to-fine expansion to every layer.
func (mp *MultiplexPartition) FromCoarsePartition(coarseMembership []int, coarseNode []int) error {
	for l, p := range mp.layers {
		if err := p.FromCoarsePartition(coarseMembership, coarseNode); err != nil {
			return leidenerr.New("MultiplexPartition.FromCoarsePartition: layer %d: %v", l, err)
		}
	}
	return nil
}

// FromPartition copies other's membership onto every layer.
func (mp *MultiplexPartition) FromPartition(other partition.Partition) error {
	return mp.SetMembership(other.Membership())
}

// CloneOnGraph is not meaningful for a multiplex partition (there is no
// single graph to clone onto): use CloneOnLayerGraphs.
func (mp *MultiplexPartition) CloneOnGraph(g graph.Provider) (partition.Partition, error) {
	return nil, leidenerr.New("MultiplexPartition.CloneOnGraph: not supported, use CloneOnLayerGraphs")
}

// CloneOnGraphWithMembership is not meaningful for a multiplex partition:
// use CloneOnLayerGraphs.
func (mp *MultiplexPartition) CloneOnGraphWithMembership(g graph.Provider, membership []int) (partition.Partition, error) {
	return nil, leidenerr.New("MultiplexPartition.CloneOnGraphWithMembership: not supported, use CloneOnLayerGraphs")
}

// CloneOnLayerGraphs clones each layer onto its corresponding graph in
// graphs (graphs[l] replacing layers[l].Graph()) with the shared membership,
// used when collapsing a multiplex partition: each layer's own graph is
// collapsed independently by the same refined sub-partition.
func (mp *MultiplexPartition) CloneOnLayerGraphs(graphs []graph.Provider, membership []int) (*MultiplexPartition, error) {
	if len(graphs) != len(mp.layers) {
		return nil, leidenerr.New("CloneOnLayerGraphs: %d graphs but %d layers", len(graphs), len(mp.layers))
	}
	cloned := make([]partition.Partition, len(mp.layers))
	for l, p := range mp.layers {
		c, err := p.CloneOnGraphWithMembership(graphs[l], membership)
		if err != nil {
			return nil, leidenerr.New("CloneOnLayerGraphs: layer %d: %v", l, err)
		}
		cloned[l] = c
	}
	return &MultiplexPartition{layers: cloned, weights: mp.weights}, nil
}

// cloneSingleton builds a MultiplexPartition over the same layer graphs
// with the singleton membership, used to construct the refinement
// sub-partition.
func (mp *MultiplexPartition) cloneSingleton() (*MultiplexPartition, error) {
	n := mp.Graph().VCount()
	graphs := make([]graph.Provider, len(mp.layers))
	for l, p := range mp.layers {
		graphs[l] = p.Graph()
	}
	return mp.CloneOnLayerGraphs(graphs, identitySlice(n))
}
