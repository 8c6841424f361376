package optimiser

import (
	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/partition"
)

// identitySlice returns [0,1,...,n-1].
func identitySlice(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// OptimisePartition runs the Leiden control loop of spec §4.3 on p until a
// level yields no improving move or no further coarsening, mutating p
// in-place to reflect the final membership at p's original (finest) graph
// and returning the total change in quality.
func (o *Optimiser) OptimisePartition(p partition.Partition) (float64, error) {
	qBefore := p.Quality()
	n0 := p.Graph().VCount()
	fineToCurrent := identitySlice(n0)

	current := p
	for {
		var moveDelta float64
		if o.optimiseRoutine == MoveNodes {
			moveDelta = o.MoveNodes(current)
		} else {
			moveDelta = o.MergeNodes(current)
		}
		if moveDelta <= epsilon {
			break
		}

		sub := current
		if o.refinePartition {
			s, err := current.CloneOnGraphWithMembership(current.Graph(), identitySlice(current.Graph().VCount()))
			if err != nil {
				return 0, err
			}
			if o.refineRoutine == MoveNodes {
				o.MoveNodesConstrained(s, current)
			} else {
				o.MergeNodesConstrained(s, current)
			}
			sub = s
		}
		sub.RenumberCommunities()

		collapsed, err := current.Graph().Collapse(sub)
		if err != nil {
			return 0, err
		}
		if collapsed.VCount() == current.Graph().VCount() {
			break
		}

		coarseMembership := make([]int, sub.NCommunities())
		for c := 0; c < sub.NCommunities(); c++ {
			members := sub.GetCommunity(c)
			coarseMembership[c] = current.MembershipOf(members[0])
		}

		lifted, err := current.CloneOnGraphWithMembership(collapsed, coarseMembership)
		if err != nil {
			return 0, err
		}

		subMembership := sub.Membership()
		for v := 0; v < n0; v++ {
			fineToCurrent[v] = subMembership[fineToCurrent[v]]
		}
		current = lifted
	}

	finalMembership := make([]int, n0)
	for v := 0; v < n0; v++ {
		finalMembership[v] = current.MembershipOf(fineToCurrent[v])
	}
	if err := p.SetMembership(finalMembership); err != nil {
		return 0, err
	}
	return p.Quality() - qBefore, nil
}

// OptimisePartitionMultiplex runs the multi-layer control loop: every move
// is applied to all layers, diff_move/quality are the layer_weights-weighted
// sum, and each layer's own graph is collapsed independently by the shared
// refined sub-partition at aggregation time.
func (o *Optimiser) OptimisePartitionMultiplex(mp *MultiplexPartition) (float64, error) {
	qBefore := mp.Quality()
	n0 := mp.Graph().VCount()
	fineToCurrent := identitySlice(n0)

	current := mp
	for {
		var moveDelta float64
		if o.optimiseRoutine == MoveNodes {
			moveDelta = o.MoveNodes(current)
		} else {
			moveDelta = o.MergeNodes(current)
		}
		if moveDelta <= epsilon {
			break
		}

		sub := current
		if o.refinePartition {
			s, err := current.cloneSingleton()
			if err != nil {
				return 0, err
			}
			if o.refineRoutine == MoveNodes {
				o.MoveNodesConstrained(s, current)
			} else {
				o.MergeNodesConstrained(s, current)
			}
			sub = s
		}
		sub.RenumberCommunities()

		collapsedGraphs := make([]graph.Provider, len(sub.layers))
		for l, layerPartition := range sub.layers {
			cg, err := current.layers[l].Graph().Collapse(layerPartition)
			if err != nil {
				return 0, err
			}
			collapsedGraphs[l] = cg
		}
		if collapsedGraphs[0].VCount() == current.Graph().VCount() {
			break
		}

		coarseMembership := make([]int, sub.NCommunities())
		for c := 0; c < sub.NCommunities(); c++ {
			members := sub.GetCommunity(c)
			coarseMembership[c] = current.MembershipOf(members[0])
		}

		lifted, err := current.CloneOnLayerGraphs(collapsedGraphs, coarseMembership)
		if err != nil {
			return 0, err
		}

		subMembership := sub.Membership()
		for v := 0; v < n0; v++ {
			fineToCurrent[v] = subMembership[fineToCurrent[v]]
		}
		current = lifted
	}

	finalMembership := make([]int, n0)
	for v := 0; v < n0; v++ {
		finalMembership[v] = current.MembershipOf(fineToCurrent[v])
	}
	if err := mp.SetMembership(finalMembership); err != nil {
		return 0, err
	}
	return mp.Quality() - qBefore, nil
}
