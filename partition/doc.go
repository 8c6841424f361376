// Package partition holds the community-membership administration the
// optimiser drives and the six quality functions it can maximise.
//
// Base carries a membership vector σ and the aggregates derived from it
// (csize, cnodes, w_in, w_from, w_to and their totals) incrementally in sync
// through MoveNode, so that DiffMove never has to rescan the graph. Each
// quality variant (Modularity, CPM, RBER, RBConfiguration, Significance,
// Surprise) embeds *Base and supplies only DiffMove and Quality, grounded on
// the corresponding *VertexPartition reference implementation.
package partition
