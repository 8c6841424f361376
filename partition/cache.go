package partition

import "github.com/katalvlaran/leidenkit/graph"

// WeightToComm returns the total edge weight v sends to community c,
// grounded on weight_to_comm (which, despite its name, scans v's OUT
// incident edges).
func (b *Base) WeightToComm(v, c int) float64 {
	if b.cacheToVertex != v {
		b.rebuildCache(v, graph.ModeOut, b.cacheToWeights, &b.cacheToTouched)
		b.cacheToVertex = v
	}
	if c < len(b.cacheToWeights) {
		return b.cacheToWeights[c]
	}
	return 0
}

// WeightFromComm returns the total edge weight community c sends to v,
// grounded on weight_from_comm (scans v's IN incident edges).
func (b *Base) WeightFromComm(v, c int) float64 {
	if b.cacheFromVertex != v {
		b.rebuildCache(v, graph.ModeIn, b.cacheFromWeights, &b.cacheFromTouched)
		b.cacheFromVertex = v
	}
	if c < len(b.cacheFromWeights) {
		return b.cacheFromWeights[c]
	}
	return 0
}

// rebuildCache scans v's incident edges under mode, accumulating weight
// into weights[community], grounded on cache_neigh_communities. A self-loop
// on an undirected graph is halved, since it appears twice in v's adjacency.
func (b *Base) rebuildCache(v int, mode graph.Mode, weights []float64, touched *[]int) {
	for _, c := range *touched {
		if c < len(weights) {
			weights[c] = 0
		}
	}
	*touched = (*touched)[:0]

	neigh := b.g.Neighbors(v, mode)
	edges := b.g.IncidentEdges(v, mode)
	for i, u := range neigh {
		c := b.sigma[u]
		w := b.g.EdgeWeight(edges[i])
		if u == v && !b.g.IsDirected() {
			w /= 2.0
		}
		weights[c] += w
		if weights[c] != 0 {
			*touched = append(*touched, c)
		}
	}
}

// invalidateCache forces the next WeightToComm/WeightFromComm call for v to
// rebuild, even if v was the last-cached vertex: needed because move_node
// can change v's own community, which is exactly the bucket a self-loop on
// v lands in.
func (b *Base) invalidateCache(v int) {
	if b.cacheToVertex == v {
		b.cacheToVertex = -1
	}
	if b.cacheFromVertex == v {
		b.cacheFromVertex = -1
	}
}
