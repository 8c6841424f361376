package graph

import (
	"sort"

	"github.com/katalvlaran/leidenkit/leidenerr"
)

// pairKey identifies an accumulation bucket between two collapsed vertices.
type pairKey struct{ a, b int }

// Collapse folds g down to one vertex per community of c: inter-community
// edge weight is summed onto a single collapsed edge per ordered (directed)
// or unordered (undirected) community pair, and intra-community edge weight
// becomes the collapsed vertex's self-weight. Node sizes become community
// sizes. Grounded on GraphHelper::collapse_graph's weight accumulation.
func (g *Graph) Collapse(c Collapser) (*Graph, error) {
	k := c.NCommunities()
	if k <= 0 {
		return nil, leidenerr.New("Collapse: NCommunities must be positive, got %d", k)
	}
	membership := c.Membership()
	if len(membership) != g.n {
		return nil, leidenerr.New("Collapse: membership length %d != vertex count %d", len(membership), g.n)
	}
	for v, m := range membership {
		if m < 0 || m >= k {
			return nil, leidenerr.New("Collapse: vertex %d has out-of-range community %d", v, m)
		}
	}

	buckets := make(map[pairKey]float64, g.m)
	for e := 0; e < g.m; e++ {
		s, d := g.edgeSrc[e], g.edgeDst[e]
		cs, cd := membership[s], membership[d]
		key := pairKey{cs, cd}
		if !g.directed && cs > cd {
			key = pairKey{cd, cs}
		}
		buckets[key] += g.edgeWeight[e]
	}

	keys := make([]pairKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})

	newSrc := make([]int, 0, len(keys))
	newDst := make([]int, 0, len(keys))
	newWeight := make([]float64, 0, len(keys))
	for _, key := range keys {
		newSrc = append(newSrc, key.a)
		newDst = append(newDst, key.b)
		newWeight = append(newWeight, buckets[key])
	}

	nodeSize := make([]int, k)
	for comm := 0; comm < k; comm++ {
		nodeSize[comm] = c.CSize(comm)
	}

	return build(k, newSrc, newDst, newWeight, g.directed, nodeSize, nil, g.correctSelfLoops)
}
