package partition

import (
	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/leidenerr"
)

// Base holds a membership vector over a graph.Provider and the aggregates
// move_node keeps in sync with it: csize, cnodes, w_in, w_from, w_to and
// their partition-wide totals, plus the per-vertex neighbor-community cache
// that makes repeated WeightToComm/WeightFromComm queries for the same vertex
// O(1) instead of O(degree) per call.
//
// Base is never used directly; every quality variant embeds it and supplies
// DiffMove/Quality.
type Base struct {
	g graph.Provider
	n int

	sigma []int
	k     int // 1 + max(sigma); communities are consecutively numbered [0,k)

	csize  []int
	cnodes []int

	wIn, wFrom, wTo []float64
	wInTotal        float64
	ePossibleTotal  float64

	emptyComms []int

	// weightToComm(v,c) is grounded on cache_neigh_communities(v, OUT):
	// despite the name, the original implementation scans v's outgoing
	// edges to answer "how much weight does v send to community c".
	cacheToVertex  int
	cacheToWeights []float64
	cacheToTouched []int

	// weightFromComm(v,c) scans v's incoming edges: "how much weight does
	// community c send to v".
	cacheFromVertex  int
	cacheFromWeights []float64
	cacheFromTouched []int
}

// NewBase builds a Base over g with the singleton partition σ(v)=v.
func NewBase(g graph.Provider) (*Base, error) {
	n := g.VCount()
	sigma := make([]int, n)
	for v := range sigma {
		sigma[v] = v
	}
	return newBaseWithMembership(g, sigma)
}

// NewBaseWithMembership builds a Base over g with an explicit membership.
func NewBaseWithMembership(g graph.Provider, membership []int) (*Base, error) {
	if len(membership) != g.VCount() {
		return nil, leidenerr.New("NewBaseWithMembership: membership length %d != vertex count %d", len(membership), g.VCount())
	}
	cp := make([]int, len(membership))
	copy(cp, membership)
	return newBaseWithMembership(g, cp)
}

func newBaseWithMembership(g graph.Provider, sigma []int) (*Base, error) {
	for v, c := range sigma {
		if c < 0 {
			return nil, leidenerr.New("newBaseWithMembership: vertex %d has negative community %d", v, c)
		}
	}
	b := &Base{g: g, n: g.VCount(), sigma: sigma}
	b.initAdmin()
	return b, nil
}

// initAdmin recomputes every aggregate from scratch given g and sigma,
// grounded on MutableVertexPartition::init_admin.
func (b *Base) initAdmin() {
	b.k = 0
	for _, c := range b.sigma {
		if c+1 > b.k {
			b.k = c + 1
		}
	}

	b.csize = make([]int, b.k)
	b.cnodes = make([]int, b.k)
	b.wIn = make([]float64, b.k)
	b.wFrom = make([]float64, b.k)
	b.wTo = make([]float64, b.k)
	b.wInTotal = 0

	for v := 0; v < b.n; v++ {
		c := b.sigma[v]
		b.csize[c] += b.g.NodeSize(v)
		b.cnodes[c]++
	}

	for e := 0; e < b.g.ECount(); e++ {
		v, u := b.g.Edge(e)
		vComm, uComm := b.sigma[v], b.sigma[u]
		w := b.g.EdgeWeight(e)

		b.wFrom[vComm] += w
		b.wTo[uComm] += w
		if !b.g.IsDirected() {
			b.wFrom[uComm] += w
			b.wTo[vComm] += w
		}
		if vComm == uComm {
			b.wIn[vComm] += w
			b.wInTotal += w
		}
	}

	b.ePossibleTotal = 0
	b.emptyComms = b.emptyComms[:0]
	for c := 0; c < b.k; c++ {
		b.ePossibleTotal += b.g.PossibleEdges(b.csize[c])
		if b.cnodes[c] == 0 {
			b.emptyComms = append(b.emptyComms, c)
		}
	}

	b.cacheToVertex = -1
	b.cacheFromVertex = -1
	b.cacheToWeights = make([]float64, b.k)
	b.cacheFromWeights = make([]float64, b.k)
	b.cacheToTouched = b.cacheToTouched[:0]
	b.cacheFromTouched = b.cacheFromTouched[:0]
}

func (b *Base) Graph() graph.Provider { return b.g }

func (b *Base) Membership() []int {
	cp := make([]int, b.n)
	copy(cp, b.sigma)
	return cp
}

func (b *Base) MembershipOf(v int) int { return b.sigma[v] }

func (b *Base) NCommunities() int { return b.k }

func (b *Base) CSize(c int) int  { return b.csize[c] }
func (b *Base) CNodes(c int) int { return b.cnodes[c] }

func (b *Base) GetCommunity(c int) []int {
	var out []int
	for v := 0; v < b.n; v++ {
		if b.sigma[v] == c {
			out = append(out, v)
		}
	}
	return out
}

func (b *Base) GetCommunities() [][]int {
	out := make([][]int, b.k)
	for v := 0; v < b.n; v++ {
		c := b.sigma[v]
		out[c] = append(out[c], v)
	}
	return out
}

func (b *Base) TotalWeightInComm(c int) float64       { return b.wIn[c] }
func (b *Base) TotalWeightFromComm(c int) float64     { return b.wFrom[c] }
func (b *Base) TotalWeightToComm(c int) float64       { return b.wTo[c] }
func (b *Base) TotalWeightInAllComms() float64        { return b.wInTotal }
func (b *Base) TotalPossibleEdgesInAllComms() float64 { return b.ePossibleTotal }

// EmptyCommunity returns an id usable as a MoveNode target for an empty
// community, without allocating it: MoveNode grows administration lazily
// the first time the id is actually used.
func (b *Base) EmptyCommunity() int {
	if len(b.emptyComms) > 0 {
		return b.emptyComms[len(b.emptyComms)-1]
	}
	return b.k
}
