// Package optimiser implements the Leiden control loop over a
// partition.Partition: local moving, singleton refinement, aggregation
// into a coarser graph, and the multi-layer (multiplex) wrapper that drives
// several layers through a shared membership vector.
//
// An Optimiser carries no state about any particular Graph or Partition; it
// is configured once via functional options and reused across calls to
// OptimisePartition/OptimisePartitionMultiplex, in the same way the
// teacher's Graph is configured once via GraphOption and reused across
// queries.
package optimiser
