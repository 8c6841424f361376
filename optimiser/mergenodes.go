package optimiser

import "github.com/katalvlaran/leidenkit/partition"

// MergeNodes runs a single shuffled pass over every vertex, moving each to
// the best strictly-improving candidate community at most once, grounded
// on spec §4.3's merge_nodes (used during refinement to coalesce refined
// singletons without destabilizing already-merged groups).
func (o *Optimiser) MergeNodes(p partition.Partition) float64 {
	return o.mergeNodes(p, o.considerComms, nil)
}

// MergeNodesConstrained is MergeNodes restricted to outer's communities, as
// MoveNodesConstrained is to MoveNodes.
func (o *Optimiser) MergeNodesConstrained(p, outer partition.Partition) float64 {
	return o.mergeNodes(p, o.refineConsiderComms, outer)
}

func (o *Optimiser) mergeNodes(p partition.Partition, policy ConsiderPolicy, outer partition.Partition) float64 {
	n := p.Graph().VCount()
	order := o.rnd.PermRange(n)

	var total float64
	for _, v := range order {
		c, diff, ok := o.bestCandidate(p, outer, v, policy, false)
		if !ok {
			continue
		}
		if err := p.MoveNode(v, c); err != nil {
			continue
		}
		total += diff
	}
	return total
}
