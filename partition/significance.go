package partition

import "github.com/katalvlaran/leidenkit/graph"

// Significance scores a partition by how surprising its internal densities
// are relative to the graph's overall density, grounded on
// SignificanceVertexPartition. It has no resolution parameter.
type Significance struct {
	*Base
}

func NewSignificance(g graph.Provider) (*Significance, error) {
	b, err := NewBase(g)
	if err != nil {
		return nil, err
	}
	return &Significance{Base: b}, nil
}

func NewSignificanceWithMembership(g graph.Provider, membership []int) (*Significance, error) {
	b, err := NewBaseWithMembership(g, membership)
	if err != nil {
		return nil, err
	}
	return &Significance{Base: b}, nil
}

func (s *Significance) CloneOnGraph(g graph.Provider) (Partition, error) {
	return NewSignificance(g)
}

func (s *Significance) CloneOnGraphWithMembership(g graph.Provider, membership []int) (Partition, error) {
	return NewSignificanceWithMembership(g, membership)
}

// DiffMove implements SignificanceVertexPartition::diff_move.
func (s *Significance) DiffMove(v, newComm int) float64 {
	oldComm := s.MembershipOf(v)
	if newComm == oldComm {
		return 0
	}
	nsize := s.Graph().NodeSize(v)
	normalise := 2.0
	if s.Graph().IsDirected() {
		normalise = 1.0
	}
	p := s.Graph().Density()

	nOld := s.CSize(oldComm)
	NOld := s.Graph().PossibleEdges(nOld)
	mOld := s.TotalWeightInComm(oldComm)
	qOld := 0.0
	if NOld > 0 {
		qOld = mOld / NOld
	}

	nOldx := nOld - nsize
	NOldx := s.Graph().PossibleEdges(nOldx)
	sw := s.Graph().NodeSelfWeight(v)
	wtc := s.WeightToComm(v, oldComm) - sw
	wfc := s.WeightFromComm(v, oldComm) - sw
	mOldx := mOld - wtc/normalise - wfc/normalise - sw
	qOldx := 0.0
	if NOldx > 0 {
		qOldx = mOldx / NOldx
	}

	nNew := s.CSize(newComm)
	NNew := s.Graph().PossibleEdges(nNew)
	mNew := s.TotalWeightInComm(newComm)
	qNew := 0.0
	if NNew > 0 {
		qNew = mNew / NNew
	}

	nNewx := nNew + nsize
	NNewx := s.Graph().PossibleEdges(nNewx)
	wtc = s.WeightToComm(v, newComm)
	wfc = s.WeightFromComm(v, newComm)
	sw = s.Graph().NodeSelfWeight(v)
	mNewx := mNew + wtc/normalise + wfc/normalise + sw
	qNewx := 0.0
	if NNewx > 0 {
		qNewx = mNewx / NNewx
	}

	return NOldx*klDirected(qOldx, p) + NNewx*klDirected(qNewx, p) -
		NOld*klDirected(qOld, p) - NNew*klDirected(qNew, p)
}

// Quality implements SignificanceVertexPartition::quality.
func (s *Significance) Quality() float64 {
	p := s.Graph().Density()
	var S float64
	for c := 0; c < s.NCommunities(); c++ {
		nc := s.CSize(c)
		mc := s.TotalWeightInComm(c)
		Nc := s.Graph().PossibleEdges(nc)
		pc := 0.0
		if Nc > 0 {
			pc = mc / Nc
		}
		S += Nc * klDirected(pc, p)
	}
	return S
}
