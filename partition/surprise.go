package partition

import "github.com/katalvlaran/leidenkit/graph"

// Surprise scores a partition by how improbable its internal edge count is
// under a hypergeometric null, grounded on SurpriseVertexPartition. It has
// no resolution parameter.
type Surprise struct {
	*Base
}

func NewSurprise(g graph.Provider) (*Surprise, error) {
	b, err := NewBase(g)
	if err != nil {
		return nil, err
	}
	return &Surprise{Base: b}, nil
}

func NewSurpriseWithMembership(g graph.Provider, membership []int) (*Surprise, error) {
	b, err := NewBaseWithMembership(g, membership)
	if err != nil {
		return nil, err
	}
	return &Surprise{Base: b}, nil
}

func (s *Surprise) CloneOnGraph(g graph.Provider) (Partition, error) {
	return NewSurprise(g)
}

func (s *Surprise) CloneOnGraphWithMembership(g graph.Provider, membership []int) (Partition, error) {
	return NewSurpriseWithMembership(g, membership)
}

// DiffMove implements SurpriseVertexPartition::diff_move.
func (s *Surprise) DiffMove(v, newComm int) float64 {
	oldComm := s.MembershipOf(v)
	if newComm == oldComm {
		return 0
	}
	m := s.Graph().TotalWeight()
	if m == 0 {
		return 0
	}
	normalise := 2.0
	if s.Graph().IsDirected() {
		normalise = 1.0
	}
	n := s.Graph().TotalSize()
	n2 := s.Graph().PossibleEdges(n)

	mc := s.TotalWeightInAllComms()
	nc2 := s.TotalPossibleEdgesInAllComms()

	nsize := s.Graph().NodeSize(v)
	sw := s.Graph().NodeSelfWeight(v)

	wtcOld := s.WeightToComm(v, oldComm) - sw
	wfcOld := s.WeightFromComm(v, oldComm) - sw
	mOld := wtcOld/normalise + wfcOld/normalise + sw

	wtcNew := s.WeightToComm(v, newComm)
	wfcNew := s.WeightFromComm(v, newComm)
	mNew := wtcNew/normalise + wfcNew/normalise + sw

	nOld := s.CSize(oldComm)
	nNew := s.CSize(newComm)

	q := mc / m
	sVal := nc2 / n2

	qNew := (mc - mOld + mNew) / m

	deltaNc2 := 2.0 * float64(nsize) * (float64(nNew) - float64(nOld) + float64(nsize)) / normalise
	sNew := (nc2 + deltaNc2) / n2

	return m * (klDirected(qNew, sNew) - klDirected(q, sVal))
}

// Quality implements SurpriseVertexPartition::quality.
func (s *Surprise) Quality() float64 {
	m := s.Graph().TotalWeight()
	if m == 0 {
		return 0
	}
	n := s.Graph().TotalSize()
	n2 := s.Graph().PossibleEdges(n)

	mc := s.TotalWeightInAllComms()
	nc2 := s.TotalPossibleEdgesInAllComms()

	q := mc / m
	sVal := nc2 / n2

	return m * klDirected(q, sVal)
}
