package partition

import "github.com/katalvlaran/leidenkit/graph"

// CPM is the Constant Potts Model quality function, grounded on
// CPMVertexPartition.
type CPM struct {
	*Base
	resolutionParams
}

// NewCPM builds a CPM partition over g with resolution gamma and the
// singleton membership.
func NewCPM(g graph.Provider, gamma float64) (*CPM, error) {
	b, err := NewBase(g)
	if err != nil {
		return nil, err
	}
	return &CPM{Base: b, resolutionParams: resolutionParams{gamma: gamma}}, nil
}

// NewCPMWithMembership builds a CPM partition over g with an explicit
// membership.
func NewCPMWithMembership(g graph.Provider, membership []int, gamma float64) (*CPM, error) {
	b, err := NewBaseWithMembership(g, membership)
	if err != nil {
		return nil, err
	}
	return &CPM{Base: b, resolutionParams: resolutionParams{gamma: gamma}}, nil
}

func (p *CPM) CloneOnGraph(g graph.Provider) (Partition, error) {
	return NewCPM(g, p.gamma)
}

func (p *CPM) CloneOnGraphWithMembership(g graph.Provider, membership []int) (Partition, error) {
	return NewCPMWithMembership(g, membership, p.gamma)
}

// DiffMove implements CPMVertexPartition::diff_move.
func (p *CPM) DiffMove(v, newComm int) float64 {
	oldComm := p.MembershipOf(v)
	if newComm == oldComm {
		return 0
	}
	return cpmLikeDiffMove(p.Base, v, oldComm, newComm, p.gamma)
}

// Quality implements CPMVertexPartition::quality.
func (p *CPM) Quality() float64 {
	return cpmLikeQuality(p.Base, p.gamma)
}

// cpmLikeDiffMove is the CPM/RBER diff_move body: identical except for the
// resolution value passed in (RBER multiplies gamma by graph density).
func cpmLikeDiffMove(b *Base, v, oldComm, newComm int, resolution float64) float64 {
	wToOld := b.WeightToComm(v, oldComm)
	wToNew := b.WeightToComm(v, newComm)
	wFromOld := b.WeightFromComm(v, oldComm)
	wFromNew := b.WeightFromComm(v, newComm)

	nsize := float64(b.Graph().NodeSize(v))
	csizeOld := float64(b.CSize(oldComm))
	csizeNew := float64(b.CSize(newComm))
	selfWeight := b.Graph().NodeSelfWeight(v)

	var possOld, possNew float64
	if b.Graph().CorrectSelfLoops() {
		possOld = nsize * (2.0*csizeOld - nsize)
		possNew = nsize * (2.0*csizeNew + nsize)
	} else {
		possOld = nsize * (2.0*csizeOld - nsize - 1.0)
		possNew = nsize * (2.0*csizeNew + nsize - 1.0)
	}

	diffOld := wToOld + wFromOld - selfWeight - resolution*possOld
	diffNew := wToNew + wFromNew + selfWeight - resolution*possNew

	return diffNew - diffOld
}

// cpmLikeQuality is the CPM/RBER quality body.
func cpmLikeQuality(b *Base, resolution float64) float64 {
	var mod float64
	for c := 0; c < b.NCommunities(); c++ {
		w := b.TotalWeightInComm(c)
		poss := b.Graph().PossibleEdges(b.CSize(c))
		mod += w - resolution*poss
	}
	factor := 2.0
	if b.Graph().IsDirected() {
		factor = 1.0
	}
	return factor * mod
}
