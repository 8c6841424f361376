package partition

import (
	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/leidenerr"
)

// growOneCommunity appends one new, empty community id and returns it,
// grounded on add_empty_community.
func (b *Base) growOneCommunity() int {
	newComm := b.k
	b.k++
	b.csize = append(b.csize, 0)
	b.cnodes = append(b.cnodes, 0)
	b.wIn = append(b.wIn, 0)
	b.wFrom = append(b.wFrom, 0)
	b.wTo = append(b.wTo, 0)
	b.cacheToWeights = append(b.cacheToWeights, 0)
	b.cacheFromWeights = append(b.cacheFromWeights, 0)
	b.emptyComms = append(b.emptyComms, newComm)
	return newComm
}

// removeFromEmpty deletes the first occurrence of c found scanning from the
// back of b.emptyComms (new empties land at the back, so this is cheap in
// the common case).
func removeFromEmpty(s []int, c int) []int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == c {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}

// MoveNode reassigns v to newComm and updates every aggregate in place,
// grounded on MutableVertexPartition::move_node.
func (b *Base) MoveNode(v, newComm int) error {
	if v < 0 || v >= b.n {
		return leidenerr.New("MoveNode: vertex %d out of range [0,%d)", v, b.n)
	}
	if newComm < 0 {
		return leidenerr.New("MoveNode: negative community %d", newComm)
	}
	oldComm := b.sigma[v]
	if newComm == oldComm {
		return nil
	}
	for newComm >= b.k {
		if b.k >= b.n {
			return leidenerr.New("MoveNode: cannot add communities beyond vertex count %d", b.n)
		}
		b.growOneCommunity()
	}

	nodeSize := b.g.NodeSize(v)
	denom := 2.0
	if b.g.IsDirected() {
		denom = 1.0
	}
	delta := 2.0 * float64(nodeSize) * (float64(b.csize[newComm]-b.csize[oldComm]) + float64(nodeSize)) / denom
	b.ePossibleTotal += delta

	b.cnodes[oldComm]--
	b.csize[oldComm] -= nodeSize
	if b.cnodes[oldComm] == 0 {
		b.emptyComms = append(b.emptyComms, oldComm)
	}
	if b.cnodes[newComm] == 0 {
		b.emptyComms = removeFromEmpty(b.emptyComms, newComm)
	}
	b.cnodes[newComm]++
	b.csize[newComm] += nodeSize

	directed := b.g.IsDirected()
	modes := [2]graph.Mode{graph.ModeOut, graph.ModeIn}
	for _, mode := range modes {
		neigh := b.g.Neighbors(v, mode)
		edges := b.g.IncidentEdges(v, mode)
		for i, u := range neigh {
			uComm := b.sigma[u]
			w := b.g.EdgeWeight(edges[i])

			if mode == graph.ModeOut {
				b.wFrom[oldComm] -= w
				b.wFrom[newComm] += w
			} else {
				b.wTo[oldComm] -= w
				b.wTo[newComm] += w
			}

			intW := w
			if !directed {
				intW /= 2.0
			}
			if u == v {
				intW /= 2.0
			}
			if oldComm == uComm {
				b.wIn[oldComm] -= intW
				b.wInTotal -= intW
			}
			if newComm == uComm || u == v {
				b.wIn[newComm] += intW
				b.wInTotal += intW
			}
		}
	}

	b.sigma[v] = newComm
	b.invalidateCache(v)
	return nil
}

// SetMembership replaces σ wholesale and recomputes every aggregate from
// scratch, grounded on MutableVertexPartition::set_membership.
func (b *Base) SetMembership(membership []int) error {
	if len(membership) != b.n {
		return leidenerr.New("SetMembership: membership length %d != vertex count %d", len(membership), b.n)
	}
	for v, c := range membership {
		if c < 0 {
			return leidenerr.New("SetMembership: vertex %d has negative community %d", v, c)
		}
	}
	copy(b.sigma, membership)
	b.initAdmin()
	return nil
}

// RenumberCommunities relabels communities 0..K'-1, largest csize first,
// ties broken by more cnodes then lower original id, grounded on
// orderCSize/renumber_communities. Empty communities naturally disappear:
// they sort last and no vertex maps to their new id.
func (b *Base) RenumberCommunities() {
	type row = struct{ id, csize, cnodes int }
	rows := make([]row, b.k)
	for c := 0; c < b.k; c++ {
		rows[c] = row{id: c, csize: b.csize[c], cnodes: b.cnodes[c]}
	}
	sortRowsByCSize(rows)

	newID := make([]int, b.k)
	for i, r := range rows {
		newID[r.id] = i
	}

	remapped := make([]int, b.n)
	for v, c := range b.sigma {
		remapped[v] = newID[c]
	}
	copy(b.sigma, remapped)
	b.initAdmin()
}

// sortRowsByCSize implements orderCSize: descending csize, then descending
// cnodes, then ascending original id.
func sortRowsByCSize(rows []struct{ id, csize, cnodes int }) {
	// insertion sort is fine: K is bounded by n and this runs once per level.
	for i := 1; i < len(rows); i++ {
		j := i
		for j > 0 && rowLess(rows[j], rows[j-1]) {
			rows[j], rows[j-1] = rows[j-1], rows[j]
			j--
		}
	}
}

func rowLess(a, b struct{ id, csize, cnodes int }) bool {
	if a.csize != b.csize {
		return a.csize > b.csize
	}
	if a.cnodes != b.cnodes {
		return a.cnodes > b.cnodes
	}
	return a.id < b.id
}

// FromCoarsePartition sets σ(v) = coarseMembership[coarseNode[v]] for every
// fine vertex v, grounded on from_coarse_partition. A nil coarseNode is
// treated as the identity.
func (b *Base) FromCoarsePartition(coarseMembership []int, coarseNode []int) error {
	if coarseNode == nil {
		coarseNode = make([]int, b.n)
		for v := range coarseNode {
			coarseNode[v] = v
		}
	}
	if len(coarseNode) != b.n {
		return leidenerr.New("FromCoarsePartition: coarseNode length %d != vertex count %d", len(coarseNode), b.n)
	}
	membership := make([]int, b.n)
	for v := 0; v < b.n; v++ {
		cn := coarseNode[v]
		if cn < 0 || cn >= len(coarseMembership) {
			return leidenerr.New("FromCoarsePartition: vertex %d maps to out-of-range coarse node %d", v, cn)
		}
		membership[v] = coarseMembership[cn]
	}
	return b.SetMembership(membership)
}

// FromPartition copies another Partition's membership onto b's graph,
// which must share the same vertex count.
func (b *Base) FromPartition(other Partition) error {
	m := other.Membership()
	if len(m) != b.n {
		return leidenerr.New("FromPartition: membership length %d != vertex count %d", len(m), b.n)
	}
	return b.SetMembership(m)
}
