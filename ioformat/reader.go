package ioformat

import (
	"bufio"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/leidenkit/graph"
	"github.com/katalvlaran/leidenkit/leidenerr"
)

// headerPattern matches the optional "# Nodes: n Edges|Arcs: m [Weighted: 0|1]"
// header line, tolerating an optional comma after each count.
var headerPattern = regexp.MustCompile(
	`^#\s*Nodes:\s*(\d+),?\s*(Edges|Arcs):\s*(\d+),?\s*(?:Weighted:\s*([01]))?`,
)

// rawEdge is one parsed edge record before external IDs are remapped to
// the dense [0,n) space.
type rawEdge struct {
	u, v int
	w    float64
}

// parsedHeader holds the optional declared node/edge counts from an NSE/NSA
// header line.
type parsedHeader struct {
	present  bool
	nodes    int
	edges    int
	keyword  string // "Edges" or "Arcs"
	weighted bool
}

// scanEdges reads every non-blank, non-comment line as a "u v [w]" record,
// returning the declared header (if any, only meaningful for NSE/NSA) and
// the raw edge list.
func scanEdges(r io.Reader) (parsedHeader, []rawEdge, error) {
	var header parsedHeader
	var edges []rawEdge

	sc := bufio.NewScanner(r)
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			if first {
				if m := headerPattern.FindStringSubmatch(line); m != nil {
					n, err := strconv.Atoi(m[1])
					if err != nil {
						return header, nil, leidenerr.New("scanEdges: malformed header node count: %v", err)
					}
					e, err := strconv.Atoi(m[3])
					if err != nil {
						return header, nil, leidenerr.New("scanEdges: malformed header edge count: %v", err)
					}
					header = parsedHeader{
						present:  true,
						nodes:    n,
						edges:    e,
						keyword:  m[2],
						weighted: m[4] == "1",
					}
				}
			}
			first = false
			continue
		}
		first = false

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return header, nil, leidenerr.New("scanEdges: edge record %q has fewer than 2 fields", line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil || u < 0 {
			return header, nil, leidenerr.New("scanEdges: invalid source node id %q", fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil || v < 0 {
			return header, nil, leidenerr.New("scanEdges: invalid destination node id %q", fields[1])
		}
		w := 1.0
		if len(fields) >= 3 {
			w, err = strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return header, nil, leidenerr.New("scanEdges: invalid edge weight %q", fields[2])
			}
		}
		edges = append(edges, rawEdge{u: u, v: v, w: w})
	}
	if err := sc.Err(); err != nil {
		return header, nil, leidenerr.New("scanEdges: %v", err)
	}
	return header, edges, nil
}

// remapAscending builds the ascending-order bijection between external node
// IDs referenced by edges and the dense [0,n) space, then rewrites edges in
// place into that space.
func remapAscending(edges []rawEdge) (int, []graph.EdgeSpec) {
	seen := make(map[int]struct{})
	for _, e := range edges {
		seen[e.u] = struct{}{}
		seen[e.v] = struct{}{}
	}
	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	idx := make(map[int]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}

	specs := make([]graph.EdgeSpec, len(edges))
	for i, e := range edges {
		specs[i] = graph.E(idx[e.u], idx[e.v], e.w)
	}
	return len(ids), specs
}

// buildGraph remaps edges and validates any declared header counts before
// constructing the Graph.
func buildGraph(header parsedHeader, edges []rawEdge, directed bool) (*graph.Graph, error) {
	n, specs := remapAscending(edges)
	if header.present {
		if header.nodes != n {
			return nil, leidenerr.New("buildGraph: header declares %d nodes, found %d distinct node ids", header.nodes, n)
		}
		if header.edges != len(specs) {
			return nil, leidenerr.New("buildGraph: header declares %d edges, found %d edge records", header.edges, len(specs))
		}
	}
	return graph.NewGraph(n, specs, graph.WithDirected(directed))
}

// ReadNSE parses an NSE (undirected) edge list with an optional
// "# Nodes: n Edges: m [Weighted: 0|1]" header.
func ReadNSE(r io.Reader) (*graph.Graph, error) {
	header, edges, err := scanEdges(r)
	if err != nil {
		return nil, err
	}
	return buildGraph(header, edges, false)
}

// ReadNSA parses an NSA (directed) edge list with an optional
// "# Nodes: n Arcs: m [Weighted: 0|1]" header.
func ReadNSA(r io.Reader) (*graph.Graph, error) {
	header, edges, err := scanEdges(r)
	if err != nil {
		return nil, err
	}
	return buildGraph(header, edges, true)
}

// ReadNCOL parses a plain "u v [w]" edge list with no header, producing an
// undirected Graph.
func ReadNCOL(r io.Reader) (*graph.Graph, error) {
	_, edges, err := scanEdges(r)
	if err != nil {
		return nil, err
	}
	return buildGraph(parsedHeader{}, edges, false)
}
