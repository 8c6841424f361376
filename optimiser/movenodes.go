package optimiser

import (
	"sort"

	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/partition"
)

// MoveNodes runs the FIFO-with-requeue local-moving pass of spec §4.3 over
// p using the optimiser's considerComms policy, returning the cumulative
// sum of accepted diff_move values.
func (o *Optimiser) MoveNodes(p partition.Partition) float64 {
	return o.moveNodes(p, o.considerComms, nil)
}

// MoveNodesConstrained is MoveNodes restricted so v may only move to a
// community c whose every current member shares outer's community with v.
// Used to refine inside each community of an outer partition.
func (o *Optimiser) MoveNodesConstrained(p, outer partition.Partition) float64 {
	return o.moveNodes(p, o.refineConsiderComms, outer)
}

func (o *Optimiser) moveNodes(p partition.Partition, policy ConsiderPolicy, outer partition.Partition) float64 {
	n := p.Graph().VCount()
	queue := o.rnd.PermRange(n)
	inQueue := make([]bool, n)
	for _, v := range queue {
		inQueue[v] = true
	}

	var total float64
	head := 0
	for head < len(queue) {
		v := queue[head]
		head++
		inQueue[v] = false

		c, diff, ok := o.bestCandidate(p, outer, v, policy, true)
		if !ok {
			continue
		}
		if err := p.MoveNode(v, c); err != nil {
			continue
		}
		total += diff

		for _, u := range p.Graph().Neighbors(v, graph.ModeAll) {
			if inQueue[u] || p.MembershipOf(u) == c {
				continue
			}
			inQueue[u] = true
			queue = append(queue, u)
		}
	}
	return total
}

// bestCandidate picks c* = argmax diff_move(v, c) over policy's candidate
// set (plus the best empty community when allowEmpty and the optimiser was
// configured with WithConsiderEmptyCommunity, and constrained to outer when
// non-nil), ties broken to the lowest community ID. Reports ok=false when
// no candidate beats epsilon.
func (o *Optimiser) bestCandidate(p, outer partition.Partition, v int, policy ConsiderPolicy, allowEmpty bool) (int, float64, bool) {
	own := p.MembershipOf(v)
	cs := candidates(p, v, policy, o.rnd)
	if allowEmpty && o.considerEmptyCommunity {
		cs = append(cs, p.EmptyCommunity())
	}
	cs = dedupSort(cs)

	nodeSize := p.Graph().NodeSize(v)
	best := own
	bestDiff := 0.0
	for _, c := range cs {
		if c == own {
			continue
		}
		if !communityAllowed(p, outer, v, c) {
			continue
		}
		if o.maxCommSize > 0 && p.CSize(c)+nodeSize > o.maxCommSize {
			continue
		}
		diff := p.DiffMove(v, c)
		if diff > bestDiff {
			bestDiff = diff
			best = c
		}
	}
	if best == own || bestDiff <= epsilon {
		return 0, 0, false
	}
	return best, bestDiff, true
}

// communityAllowed reports whether v may move to community c given the
// refinement constraint outer (nil means unconstrained): every current
// member of c must share outer's community with v.
func communityAllowed(p, outer partition.Partition, v, c int) bool {
	if outer == nil {
		return true
	}
	outerV := outer.MembershipOf(v)
	for _, u := range p.GetCommunity(c) {
		if outer.MembershipOf(u) != outerV {
			return false
		}
	}
	return true
}

// dedupSort sorts and deduplicates a small candidate slice in place.
func dedupSort(cs []int) []int {
	sort.Ints(cs)
	out := cs[:0]
	var last int
	for i, c := range cs {
		if i == 0 || c != last {
			out = append(out, c)
			last = c
		}
	}
	return out
}
