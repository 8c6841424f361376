package optimiser

import (
	"sort"

	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/partition"
)

// candidates returns the set of community IDs considered for v under
// policy p, always including v's current community. RandNeighComm and
// RandComm return {own, c} unsorted; bestCandidate sorts every set ascending
// so argmax's tie-break to the lowest ID is just "first max found".
func candidates(p partition.Partition, v int, policy ConsiderPolicy, rnd rngDraw) []int {
	own := p.MembershipOf(v)
	switch policy {
	case AllNeighComms:
		return neighborComms(p, v, own)
	case RandNeighComm:
		u, _, err := p.Graph().RandomNeighbor(v, graph.ModeAll, rnd)
		if err != nil {
			return []int{own}
		}
		c := p.MembershipOf(u)
		if c == own {
			return []int{own}
		}
		return []int{own, c}
	case AllComms:
		out := make([]int, p.NCommunities())
		for c := range out {
			out[c] = c
		}
		return out
	case RandComm:
		c := rnd.Intn(p.NCommunities())
		if c == own {
			return []int{own}
		}
		return []int{own, c}
	default:
		return []int{own}
	}
}

// neighborComms returns the distinct community IDs among v's ALL-mode
// neighbors plus own, ascending, deduplicated.
func neighborComms(p partition.Partition, v, own int) []int {
	neigh := p.Graph().Neighbors(v, graph.ModeAll)
	seen := make(map[int]struct{}, len(neigh)+1)
	seen[own] = struct{}{}
	out := make([]int, 0, len(neigh)+1)
	out = append(out, own)
	for _, u := range neigh {
		c := p.MembershipOf(u)
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	sort.Ints(out)
	return out
}

// rngDraw is the minimal capability candidates() needs from *rng.Rand,
// named locally so this file only depends on graph.Source's shape.
type rngDraw interface {
	Intn(n int) int
}
