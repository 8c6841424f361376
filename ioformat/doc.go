// Package ioformat implements the file loaders and membership writer that
// sit outside THE CORE: NSE (undirected), NSA (directed), and NCOL edge-list
// readers, plus the membership writer that is the only thing the core
// persists.
//
// Every loader builds an ascending-order bijection between a file's
// (possibly sparse) external node IDs and the dense [0,n) space graph.Graph
// requires, grounded on the teacher's builder package's deterministic
// index<->ID convention (builder/id_fn.go), adapted here for the reverse
// direction: external ID in, dense index out.
package ioformat
