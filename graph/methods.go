package graph

import "github.com/katalvlaran/leidenkit/leidenerr"

func (g *Graph) VCount() int           { return g.n }
func (g *Graph) ECount() int           { return g.m }
func (g *Graph) IsDirected() bool      { return g.directed }
func (g *Graph) CorrectSelfLoops() bool { return g.correctSelfLoops }

func (g *Graph) Edge(e int) (int, int) { return g.edgeSrc[e], g.edgeDst[e] }
func (g *Graph) EdgeWeight(e int) float64 { return g.edgeWeight[e] }

func (g *Graph) NodeSize(v int) int            { return g.nodeSize[v] }
func (g *Graph) NodeSelfWeight(v int) float64  { return g.nodeSelfWeight[v] }

func (g *Graph) Degree(v int, mode Mode) int {
	switch mode {
	case ModeOut:
		return g.degOut[v]
	case ModeIn:
		return g.degIn[v]
	default:
		return g.degAll[v]
	}
}

func (g *Graph) Strength(v int, mode Mode) float64 {
	switch mode {
	case ModeOut:
		return g.strOut[v]
	case ModeIn:
		return g.strIn[v]
	default:
		return g.strAll[v]
	}
}

func (g *Graph) Neighbors(v int, mode Mode) []int {
	switch mode {
	case ModeOut:
		return g.neighOut[v]
	case ModeIn:
		return g.neighIn[v]
	default:
		return g.neighAll[v]
	}
}

func (g *Graph) IncidentEdges(v int, mode Mode) []int {
	switch mode {
	case ModeOut:
		return g.edgeOut[v]
	case ModeIn:
		return g.edgeIn[v]
	default:
		return g.edgeAll[v]
	}
}

// RandomNeighbor draws a uniform-random entry from Neighbors(v, mode),
// returning the neighbor vertex and the edge id reaching it.
func (g *Graph) RandomNeighbor(v int, mode Mode, rnd Source) (int, int, error) {
	neigh := g.Neighbors(v, mode)
	if len(neigh) == 0 {
		return 0, 0, leidenerr.New("RandomNeighbor: vertex %d has no neighbors under mode %d", v, mode)
	}
	i := rnd.Intn(len(neigh))
	return neigh[i], g.IncidentEdges(v, mode)[i], nil
}

// PossibleEdges returns the number of possible edges among k vertices:
// k(k-1) directed or k(k-1)/2 undirected, plus k more if self-loops are
// corrected for.
func (g *Graph) PossibleEdges(k int) float64 {
	kf := float64(k)
	var possible float64
	if g.directed {
		possible = kf * (kf - 1)
	} else {
		possible = kf * (kf - 1) / 2
	}
	if g.correctSelfLoops {
		possible += kf
	}
	return possible
}

func (g *Graph) TotalWeight() float64 { return g.totalWeight }
func (g *Graph) TotalSize() int       { return g.totalSize }

// Density returns TotalWeight normalised by the graph's own possible edges,
// using 2W for undirected graphs (each undirected edge is incident twice).
func (g *Graph) Density() float64 {
	n := float64(g.totalSize)
	if n == 0 {
		return 0
	}
	w := g.totalWeight
	if g.directed {
		if g.correctSelfLoops {
			return w / (n * n)
		}
		return w / (n * (n - 1))
	}
	if g.correctSelfLoops {
		return 2 * w / (n * n)
	}
	return 2 * w / (n * (n - 1))
}
