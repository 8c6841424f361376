package graph

import "github.com/katalvlaran/leidenkit/leidenerr"

// NewGraph builds an immutable Graph over n vertices from edges. edges may
// repeat endpoints (it is a multigraph); self-loops (Src==Dst) are allowed
// and feed NodeSelfWeight.
//
// Returns an *leidenerr.Error if n is negative, an endpoint is out of range,
// or an edge weight is negative, NaN or infinite.
func NewGraph(n int, edges []EdgeSpec, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, leidenerr.New("NewGraph: negative vertex count %d", n)
	}
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	edgeSrc := make([]int, len(edges))
	edgeDst := make([]int, len(edges))
	edgeWeight := make([]float64, len(edges))
	for i, e := range edges {
		if e.Src < 0 || e.Src >= n || e.Dst < 0 || e.Dst >= n {
			return nil, leidenerr.New("NewGraph: edge %d endpoint out of range [0,%d)", i, n)
		}
		if err := validateWeight(e.Weight, "NewGraph"); err != nil {
			return nil, err
		}
		edgeSrc[i] = e.Src
		edgeDst[i] = e.Dst
		edgeWeight[i] = e.Weight
	}

	nodeSize := make([]int, n)
	for v := range nodeSize {
		nodeSize[v] = 1
	}
	if cfg.nodeSize != nil {
		if len(cfg.nodeSize) != n {
			return nil, leidenerr.New("NewGraph: node size slice length %d != vertex count %d", len(cfg.nodeSize), n)
		}
		copy(nodeSize, cfg.nodeSize)
	}

	return build(n, edgeSrc, edgeDst, edgeWeight, cfg.directed, nodeSize, cfg.nodeSelfWeight, cfg.correctSelfLoops)
}

// build is the shared constructor body for NewGraph and Collapse: it derives
// every cached quantity from the raw edge list once.
func build(n int, edgeSrc, edgeDst []int, edgeWeight []float64, directed bool, nodeSize []int, nodeSelfWeightOverride []float64, correctSelfLoops bool) (*Graph, error) {
	m := len(edgeSrc)

	g := &Graph{
		directed:         directed,
		correctSelfLoops: correctSelfLoops,
		n:                n,
		m:                m,
		edgeSrc:          edgeSrc,
		edgeDst:          edgeDst,
		edgeWeight:       edgeWeight,
		nodeSize:         nodeSize,
		nodeSelfWeight:   make([]float64, n),
	}

	// Self-weight: the raw weight of each vertex's self-loop edge (summed,
	// in case of a self-loop multi-edge), unless explicitly overridden.
	for e := 0; e < m; e++ {
		if edgeSrc[e] == edgeDst[e] {
			g.nodeSelfWeight[edgeSrc[e]] += edgeWeight[e]
		}
	}
	if nodeSelfWeightOverride != nil {
		if len(nodeSelfWeightOverride) != n {
			return nil, leidenerr.New("build: self-weight slice length %d != vertex count %d", len(nodeSelfWeightOverride), n)
		}
		copy(g.nodeSelfWeight, nodeSelfWeightOverride)
	}

	if directed {
		buildDirectedAdjacency(g)
	} else {
		buildUndirectedAdjacency(g)
	}

	for e := 0; e < m; e++ {
		g.totalWeight += edgeWeight[e]
	}
	for v := 0; v < n; v++ {
		g.totalSize += nodeSize[v]
	}

	return g, nil
}

// buildDirectedAdjacency fills neighOut/edgeOut from Src and neighIn/edgeIn
// from Dst, then ModeAll as their concatenation (a self-loop therefore
// appears once per direction, twice under ModeAll).
func buildDirectedAdjacency(g *Graph) {
	g.neighOut = make([][]int, g.n)
	g.neighIn = make([][]int, g.n)
	g.edgeOut = make([][]int, g.n)
	g.edgeIn = make([][]int, g.n)

	for e := 0; e < g.m; e++ {
		s, d := g.edgeSrc[e], g.edgeDst[e]
		g.neighOut[s] = append(g.neighOut[s], d)
		g.edgeOut[s] = append(g.edgeOut[s], e)
		g.neighIn[d] = append(g.neighIn[d], s)
		g.edgeIn[d] = append(g.edgeIn[d], e)
	}

	g.neighAll = make([][]int, g.n)
	g.edgeAll = make([][]int, g.n)
	for v := 0; v < g.n; v++ {
		g.neighAll[v] = append(append([]int{}, g.neighOut[v]...), g.neighIn[v]...)
		g.edgeAll[v] = append(append([]int{}, g.edgeOut[v]...), g.edgeIn[v]...)
	}

	g.degOut = make([]int, g.n)
	g.degIn = make([]int, g.n)
	g.degAll = make([]int, g.n)
	g.strOut = make([]float64, g.n)
	g.strIn = make([]float64, g.n)
	g.strAll = make([]float64, g.n)
	for v := 0; v < g.n; v++ {
		g.degOut[v] = len(g.neighOut[v])
		g.degIn[v] = len(g.neighIn[v])
		g.degAll[v] = g.degOut[v] + g.degIn[v]
		for _, e := range g.edgeOut[v] {
			g.strOut[v] += g.edgeWeight[e]
		}
		for _, e := range g.edgeIn[v] {
			g.strIn[v] += g.edgeWeight[e]
		}
		g.strAll[v] = g.strOut[v] + g.strIn[v]
	}
}

// buildUndirectedAdjacency builds a single adjacency shared by all three
// modes. A non-loop edge contributes one entry to each endpoint; a self-loop
// contributes two entries to its vertex, mirroring the convention that a
// self-loop counts twice toward an undirected vertex's degree.
func buildUndirectedAdjacency(g *Graph) {
	neigh := make([][]int, g.n)
	inc := make([][]int, g.n)

	for e := 0; e < g.m; e++ {
		s, d := g.edgeSrc[e], g.edgeDst[e]
		if s == d {
			neigh[s] = append(neigh[s], s, s)
			inc[s] = append(inc[s], e, e)
			continue
		}
		neigh[s] = append(neigh[s], d)
		inc[s] = append(inc[s], e)
		neigh[d] = append(neigh[d], s)
		inc[d] = append(inc[d], e)
	}

	g.neighOut, g.neighIn, g.neighAll = neigh, neigh, neigh
	g.edgeOut, g.edgeIn, g.edgeAll = inc, inc, inc

	deg := make([]int, g.n)
	str := make([]float64, g.n)
	for v := 0; v < g.n; v++ {
		deg[v] = len(neigh[v])
		for _, e := range inc[v] {
			str[v] += g.edgeWeight[e]
		}
	}
	g.degOut, g.degIn, g.degAll = deg, deg, deg
	g.strOut, g.strIn, g.strAll = str, str, str
}
