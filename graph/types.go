package graph

import "github.com/katalvlaran/leidenkit/leidenerr"

// Mode selects which incident edges a per-vertex query considers.
type Mode int

const (
	// ModeOut considers edges for which the vertex is the source.
	ModeOut Mode = iota
	// ModeIn considers edges for which the vertex is the destination.
	ModeIn
	// ModeAll considers both directions. On an undirected Graph, ModeOut,
	// ModeIn and ModeAll are all equivalent to the full adjacency.
	ModeAll
)

// Collapser is the view THE CORE's partition administration exposes to
// Collapse: enough to fold a graph down to one vertex per community.
type Collapser interface {
	// NCommunities returns the number of communities, densely numbered
	// [0, NCommunities()).
	NCommunities() int
	// Membership returns, for each vertex of the graph being collapsed, the
	// community it currently belongs to.
	Membership() []int
	// CSize returns the total node size of community c.
	CSize(c int) int
}

// Provider is the read-only capability THE CORE's partition and optimiser
// packages depend on. *Graph is the only implementation in this module, but
// callers outside it may supply their own.
type Provider interface {
	VCount() int
	ECount() int
	IsDirected() bool
	CorrectSelfLoops() bool

	// Edge returns the endpoints of edge e.
	Edge(e int) (src, dst int)
	// EdgeWeight returns the weight of edge e.
	EdgeWeight(e int) float64

	// NodeSize returns the size (node count it aggregates, 1 for an
	// ungrouped vertex) of vertex v.
	NodeSize(v int) int
	// NodeSelfWeight returns the weight of v's self-loop, or 0 if v has none.
	NodeSelfWeight(v int) float64

	// Degree returns the number of incident edge endpoints of v under mode.
	Degree(v int, mode Mode) int
	// Strength returns the sum of incident edge weights of v under mode.
	Strength(v int, mode Mode) float64

	// Neighbors returns the list of vertices reachable from v's incident
	// edges under mode, parallel to IncidentEdges(v, mode).
	Neighbors(v int, mode Mode) []int
	// IncidentEdges returns the edge ids incident to v under mode, parallel
	// to Neighbors(v, mode).
	IncidentEdges(v int, mode Mode) []int
	// RandomNeighbor draws a uniform-random neighbor of v under mode using
	// rnd, returning the neighbor vertex and the edge id reaching it.
	// Returns an error if v has no neighbors under mode.
	RandomNeighbor(v int, mode Mode, rnd Source) (int, int, error)

	// PossibleEdges returns the number of possible edges among k vertices,
	// consistent with IsDirected and CorrectSelfLoops.
	PossibleEdges(k int) float64

	// TotalWeight returns the sum of all edge weights (self-loops counted
	// once).
	TotalWeight() float64
	// TotalSize returns the sum of all node sizes.
	TotalSize() int
	// Density returns TotalWeight normalised by the graph's possible edges.
	Density() float64

	// Collapse folds the graph down to one vertex per community of c,
	// summing inter- and intra-community edge weight into the collapsed
	// graph's edges and self-weights respectively.
	Collapse(c Collapser) (*Graph, error)
}

// Source is the random-draw capability RandomNeighbor needs; rng.Rand
// satisfies it without this package importing rng (which would be a
// needless dependency for callers that never call RandomNeighbor).
type Source interface {
	Intn(n int) int
}

// Graph is an immutable directed-or-undirected multigraph. Every derived
// quantity (degree, strength, neighbor lists) is computed once at
// construction; nothing here is mutated afterward, so a *Graph may be read
// concurrently by any number of goroutines without synchronization.
type Graph struct {
	directed         bool
	correctSelfLoops bool

	n int // vertex count
	m int // edge count

	edgeSrc    []int
	edgeDst    []int
	edgeWeight []float64

	nodeSize       []int
	nodeSelfWeight []float64

	// adjacency, indexed [vertex][mode]; for undirected graphs every mode
	// slot aliases the same underlying slices.
	neighOut, neighIn, neighAll [][]int
	edgeOut, edgeIn, edgeAll    [][]int

	degOut, degIn, degAll []int
	strOut, strIn, strAll []float64

	totalWeight float64
	totalSize   int
}

// GraphOption configures NewGraph.
type GraphOption func(*buildConfig)

type buildConfig struct {
	directed         bool
	correctSelfLoops bool
	nodeSize         []int
	nodeSelfWeight   []float64
}

// WithDirected marks the graph as directed. The zero value is undirected.
func WithDirected(directed bool) GraphOption {
	return func(c *buildConfig) { c.directed = directed }
}

// WithCorrectSelfLoops enables the self-loop correction term used by
// PossibleEdges and Density (and by CPM/RBER's diff_move).
func WithCorrectSelfLoops(correct bool) GraphOption {
	return func(c *buildConfig) { c.correctSelfLoops = correct }
}

// WithNodeSizes supplies an explicit size for every vertex; NewGraph returns
// an error if len(sizes) differs from the vertex count. Without this option
// every vertex has size 1. Panics if sizes contains a negative value.
func WithNodeSizes(sizes []int) GraphOption {
	for _, s := range sizes {
		if s < 0 {
			panic("graph: WithNodeSizes: negative node size")
		}
	}
	return func(c *buildConfig) { c.nodeSize = sizes }
}

// WithNodeSelfWeights overrides the self-weight derived from self-loop edge
// weight. Rarely needed outside of Collapse's internal use.
func WithNodeSelfWeights(weights []float64) GraphOption {
	return func(c *buildConfig) { c.nodeSelfWeight = weights }
}

// EdgeSpec is one (src,dst,weight) triple passed to NewGraph.
type EdgeSpec struct {
	Src, Dst int
	Weight   float64
}

// E constructs an EdgeSpec; convenience for call sites building edge slices
// inline.
func E(src, dst int, weight float64) EdgeSpec {
	return EdgeSpec{Src: src, Dst: dst, Weight: weight}
}

func validateWeight(w float64, where string) error {
	if w != w { // NaN
		return leidenerr.New("%s: NaN edge weight", where)
	}
	if w < 0 {
		return leidenerr.New("%s: negative edge weight %v", where, w)
	}
	if w > 0 && (w*2 == w) { // +Inf survives doubling unchanged; w>0 excludes 0*2==0 false positive
		return leidenerr.New("%s: infinite edge weight", where)
	}
	return nil
}
