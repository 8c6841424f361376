package optimiser

import (
	"github.com/katalvlaran/leidenkit/rng"
)

// ConsiderPolicy is the candidate-community enumeration strategy consulted
// by move_nodes/merge_nodes when picking c* for a vertex.
type ConsiderPolicy int

const (
	// AllNeighComms considers the distinct community IDs among v's ALL-mode
	// neighbors, plus v's current community.
	AllNeighComms ConsiderPolicy = iota
	// RandNeighComm considers a single uniformly selected neighbor-community.
	RandNeighComm
	// AllComms considers every one of the K communities.
	AllComms
	// RandComm considers a single uniformly selected community in [0,K).
	RandComm
)

// Routine selects the strategy used for the initial local-moving phase and
// for refinement.
type Routine int

const (
	// MoveNodes runs the FIFO-with-requeue local-moving pass.
	MoveNodes Routine = iota
	// MergeNodes runs the single-pass merge (used almost exclusively for
	// refinement, where re-destabilizing already-merged groups is undesirable).
	MergeNodes
)

// epsilon is the minimum strictly-positive diff_move/quality improvement
// treated as a real gain; anything smaller is numerical noise.
const epsilon = 1e-9

// Optimiser holds the persistent Leiden configuration of spec §4.3. It is
// built once via New and reused across OptimisePartition calls; it carries
// no state tied to any particular Graph or Partition.
type Optimiser struct {
	considerComms       ConsiderPolicy
	refineConsiderComms ConsiderPolicy
	optimiseRoutine     Routine
	refineRoutine       Routine

	considerEmptyCommunity bool
	refinePartition        bool
	maxCommSize            int

	rnd *rng.Rand
}

// Option configures an Optimiser, in the teacher's functional-options style.
type Option func(*Optimiser)

// WithConsiderComms sets the candidate policy for the initial local-moving
// phase. Default AllNeighComms.
func WithConsiderComms(p ConsiderPolicy) Option {
	return func(o *Optimiser) { o.considerComms = p }
}

// WithRefineConsiderComms sets the candidate policy used during refinement.
// Default AllNeighComms.
func WithRefineConsiderComms(p ConsiderPolicy) Option {
	return func(o *Optimiser) { o.refineConsiderComms = p }
}

// WithOptimiseRoutine sets the strategy for the initial phase. Default
// MoveNodes.
func WithOptimiseRoutine(r Routine) Option {
	return func(o *Optimiser) { o.optimiseRoutine = r }
}

// WithRefineRoutine sets the strategy used for refinement. Default
// MergeNodes, matching the original's preference for non-destabilizing
// refinement passes.
func WithRefineRoutine(r Routine) Option {
	return func(o *Optimiser) { o.refineRoutine = r }
}

// WithConsiderEmptyCommunity makes the best empty community always a
// candidate during MoveNodes. Default false.
func WithConsiderEmptyCommunity(b bool) Option {
	return func(o *Optimiser) { o.considerEmptyCommunity = b }
}

// WithRefinePartition enables the Leiden refinement step before aggregation.
// When false, the optimiser behaves as Louvain. Default true.
func WithRefinePartition(b bool) Option {
	return func(o *Optimiser) { o.refinePartition = b }
}

// WithMaxCommSize caps csize(c_new) for any accepted move; 0 means
// unbounded. Default 0.
func WithMaxCommSize(n int) Option {
	return func(o *Optimiser) { o.maxCommSize = n }
}

// WithSeed sets the RNG seed driving every shuffle and random-candidate
// draw. Default 0 (mapped by rng.New to a fixed, documented default seed).
func WithSeed(seed int64) Option {
	return func(o *Optimiser) { o.rnd = rng.New(seed) }
}

// New builds an Optimiser from opts, applied over these defaults:
// AllNeighComms/AllNeighComms, MoveNodes/MergeNodes, considerEmptyCommunity
// false, refinePartition true, maxCommSize unbounded, seed 0.
func New(opts ...Option) *Optimiser {
	o := &Optimiser{
		considerComms:       AllNeighComms,
		refineConsiderComms: AllNeighComms,
		optimiseRoutine:     MoveNodes,
		refineRoutine:       MergeNodes,
		refinePartition:     true,
		rnd:                 rng.New(0),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
