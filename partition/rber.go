package partition

import "github.com/katalvlaran/leidenkit/graph"

// RBER is the Erdos-Renyi Reichardt-Bornholdt null model, grounded on
// RBERVertexPartition: identical to CPM with gamma scaled by graph density.
type RBER struct {
	*Base
	resolutionParams
}

func NewRBER(g graph.Provider, gamma float64) (*RBER, error) {
	b, err := NewBase(g)
	if err != nil {
		return nil, err
	}
	return &RBER{Base: b, resolutionParams: resolutionParams{gamma: gamma}}, nil
}

func NewRBERWithMembership(g graph.Provider, membership []int, gamma float64) (*RBER, error) {
	b, err := NewBaseWithMembership(g, membership)
	if err != nil {
		return nil, err
	}
	return &RBER{Base: b, resolutionParams: resolutionParams{gamma: gamma}}, nil
}

func (p *RBER) CloneOnGraph(g graph.Provider) (Partition, error) {
	return NewRBER(g, p.gamma)
}

func (p *RBER) CloneOnGraphWithMembership(g graph.Provider, membership []int) (Partition, error) {
	return NewRBERWithMembership(g, membership, p.gamma)
}

func (p *RBER) DiffMove(v, newComm int) float64 {
	oldComm := p.MembershipOf(v)
	if newComm == oldComm {
		return 0
	}
	return cpmLikeDiffMove(p.Base, v, oldComm, newComm, p.gamma*p.Graph().Density())
}

func (p *RBER) Quality() float64 {
	return cpmLikeQuality(p.Base, p.gamma*p.Graph().Density())
}
