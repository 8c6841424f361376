package partition

import "github.com/katalvlaran/leidenkit/graph"

// Modularity is the classic quality function with an implicit resolution of
// 1, grounded on ModularityVertexPartition.
type Modularity struct {
	*Base
}

// NewModularity builds a Modularity partition over g with the singleton
// membership σ(v)=v.
func NewModularity(g graph.Provider) (*Modularity, error) {
	b, err := NewBase(g)
	if err != nil {
		return nil, err
	}
	return &Modularity{Base: b}, nil
}

// NewModularityWithMembership builds a Modularity partition over g with an
// explicit membership.
func NewModularityWithMembership(g graph.Provider, membership []int) (*Modularity, error) {
	b, err := NewBaseWithMembership(g, membership)
	if err != nil {
		return nil, err
	}
	return &Modularity{Base: b}, nil
}

func (m *Modularity) CloneOnGraph(g graph.Provider) (Partition, error) {
	return NewModularity(g)
}

func (m *Modularity) CloneOnGraphWithMembership(g graph.Provider, membership []int) (Partition, error) {
	return NewModularityWithMembership(g, membership)
}

// totalWeight returns the normaliser m used throughout: W for directed, 2W
// for undirected.
func (m *Modularity) totalWeight() float64 {
	w := m.Graph().TotalWeight()
	if m.Graph().IsDirected() {
		return w
	}
	return 2 * w
}

// DiffMove implements ModularityVertexPartition::diff_move.
func (m *Modularity) DiffMove(v, newComm int) float64 {
	oldComm := m.MembershipOf(v)
	normaliser := m.totalWeight()
	if normaliser == 0 {
		return 0
	}
	if newComm == oldComm {
		return 0
	}

	wToOld := m.WeightToComm(v, oldComm)
	wFromOld := m.WeightFromComm(v, oldComm)
	wToNew := m.WeightToComm(v, newComm)
	wFromNew := m.WeightFromComm(v, newComm)

	kOut := m.Graph().Strength(v, graph.ModeOut)
	kIn := m.Graph().Strength(v, graph.ModeIn)
	selfWeight := m.Graph().NodeSelfWeight(v)

	kOutOld := m.TotalWeightFromComm(oldComm)
	kInOld := m.TotalWeightToComm(oldComm)
	kOutNew := m.TotalWeightFromComm(newComm) + kOut
	kInNew := m.TotalWeightToComm(newComm) + kIn

	diffOld := (wToOld - kOut*kInOld/normaliser) + (wFromOld - kIn*kOutOld/normaliser)
	diffNew := (wToNew + selfWeight - kOut*kInNew/normaliser) + (wFromNew + selfWeight - kIn*kOutNew/normaliser)

	return (diffNew - diffOld) / normaliser
}

// Quality implements ModularityVertexPartition::quality.
func (m *Modularity) Quality() float64 {
	normaliser := m.Graph().TotalWeight()
	if !m.Graph().IsDirected() {
		normaliser *= 2
	}
	if normaliser == 0 {
		return 0
	}

	denom := 4.0
	if m.Graph().IsDirected() {
		denom = 1.0
	}
	w := m.Graph().TotalWeight()

	var mod float64
	for c := 0; c < m.NCommunities(); c++ {
		wIn := m.TotalWeightInComm(c)
		wOut := m.TotalWeightFromComm(c)
		wTo := m.TotalWeightToComm(c)
		mod += wIn - wOut*wTo/(denom*w)
	}

	factor := 2.0
	if m.Graph().IsDirected() {
		factor = 1.0
	}
	return factor * mod / normaliser
}
