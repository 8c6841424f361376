// Package graph is the read-only graph provider THE CORE optimises over: a
// directed-or-undirected multigraph with weighted edges, integer vertex
// sizes, and per-vertex self-weights.
//
// A *Graph is immutable once NewGraph or (*Graph).Collapse returns: degree,
// strength, and per-vertex neighbor/incident-edge lists are all computed
// eagerly at construction. That immutability is what lets a single Graph be
// observed by any number of partition.Base instances without locking — see
// DESIGN.md for why this departs from the teacher's sync.RWMutex convention.
//
// Vertices are dense integers in [0,n); edges are dense integers in [0,m).
// Collapsing a graph under a partition (see Collapse) produces a fresh,
// equally immutable Graph whose vertices are the partition's communities.
package graph
