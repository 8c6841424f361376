package ioformat_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/leidenkit/ioformat"
)

func TestReadNSE_HeaderAndSparseIDsRemapAscending(t *testing.T) {
	src := "# Nodes: 3 Edges: 2 Weighted: 1\n10 20 2.5\n20 30 1.0\n"
	g, err := ioformat.ReadNSE(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, 3, g.VCount())
	assert.Equal(t, 2, g.ECount())
	assert.False(t, g.IsDirected())
	assert.Equal(t, float64(3.5), g.TotalWeight())

	src2, dst2 := g.Edge(1) // external 20 -> 30
	assert.Equal(t, 1, src2)
	assert.Equal(t, 2, dst2)
}

func TestReadNSE_RejectsHeaderNodeCountMismatch(t *testing.T) {
	src := "# Nodes: 5 Edges: 1\n0 1\n"
	_, err := ioformat.ReadNSE(strings.NewReader(src))
	require.Error(t, err)
}

func TestReadNSA_BuildsDirectedGraph(t *testing.T) {
	src := "0 1\n1 2\n2 0\n"
	g, err := ioformat.ReadNSA(strings.NewReader(src))
	require.NoError(t, err)

	assert.True(t, g.IsDirected())
	assert.Equal(t, 3, g.VCount())
	assert.Equal(t, 3, g.ECount())
}

func TestReadNCOL_IgnoresCommentsAndBlankLines(t *testing.T) {
	src := "# a comment\n\n0 1 2.0\n1 2\n"
	g, err := ioformat.ReadNCOL(strings.NewReader(src))
	require.NoError(t, err)

	assert.False(t, g.IsDirected())
	assert.Equal(t, 3, g.VCount())
	assert.Equal(t, float64(3), g.TotalWeight())
}

func TestReadNSE_RoundTripIsIdentityUpToVertexRemap(t *testing.T) {
	src := "0 1 1\n1 2 1\n2 0 1\n"
	g1, err := ioformat.ReadNSE(strings.NewReader(src))
	require.NoError(t, err)
	g2, err := ioformat.ReadNSE(strings.NewReader(src))
	require.NoError(t, err)

	assert.Equal(t, g1.VCount(), g2.VCount())
	assert.Equal(t, g1.ECount(), g2.ECount())
	assert.Equal(t, g1.TotalWeight(), g2.TotalWeight())
}

func TestWriteMembership_OneCommunityPerLine(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ioformat.WriteMembership(&buf, []int{0, 0, 1}))
	assert.Equal(t, "0\n0\n1\n", buf.String())
}

func TestInferFormat(t *testing.T) {
	assert.Equal(t, ioformat.FormatNSE, ioformat.InferFormat("graph.nse"))
	assert.Equal(t, ioformat.FormatNSA, ioformat.InferFormat("graph.NSA"))
	assert.Equal(t, ioformat.FormatNCOL, ioformat.InferFormat("graph.col"))
}
