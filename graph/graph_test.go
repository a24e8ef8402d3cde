package graph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvldraw/graph"
)

// TestGraph_AddNodesAndEdges verifies index allocation and counters.
func TestGraph_AddNodesAndEdges(t *testing.T) {
	g := graph.New()
	ids := g.AddNodes(3)
	assert.Equal(t, []int{0, 1, 2}, ids, "nodes must be numbered in order")
	assert.Equal(t, 3, g.NodeCount())

	e, err := g.AddEdge(0, 1, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 0, e, "first edge takes index 0")
	assert.Equal(t, 1, g.EdgeCount())

	w, ok := g.EdgeWeight(e)
	assert.True(t, ok)
	assert.Equal(t, 2.5, w)
}

// TestGraph_AddEdgeValidation covers unknown endpoints and bad weights.
func TestGraph_AddEdgeValidation(t *testing.T) {
	g := graph.New()
	g.AddNodes(2)

	_, err := g.AddEdge(0, 5, 1)
	assert.ErrorIs(t, err, graph.ErrNodeNotFound, "unknown endpoint must error")

	_, err = g.AddEdge(0, 1, 0)
	assert.ErrorIs(t, err, graph.ErrBadWeight, "zero weight must error")

	_, err = g.AddEdge(0, 1, math.Inf(1))
	assert.ErrorIs(t, err, graph.ErrBadWeight, "infinite weight must error")

	_, err = g.AddEdge(0, 1, math.NaN())
	assert.ErrorIs(t, err, graph.ErrBadWeight, "NaN weight must error")
}

// TestGraph_AbsentLookups verifies ok=false on out-of-range queries
// instead of panics.
func TestGraph_AbsentLookups(t *testing.T) {
	g := graph.New()
	g.AddNodes(1)

	_, _, ok := g.EdgeEndpoints(7)
	assert.False(t, ok, "unknown edge endpoints must report absence")

	_, ok = g.EdgeWeight(-1)
	assert.False(t, ok, "unknown edge weight must report absence")

	assert.False(t, g.HasNode(-1))
	assert.False(t, g.HasNode(1))
	assert.Empty(t, g.Neighbors(42), "unknown node has no neighbors")
}

// TestGraph_UndirectedNeighbors verifies that an undirected edge is
// visible from both endpoints.
func TestGraph_UndirectedNeighbors(t *testing.T) {
	g := graph.New()
	g.AddNodes(3)
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1}, g.Neighbors(0))
	assert.Equal(t, []int{0, 2}, g.Neighbors(1), "middle node sees both sides")
	assert.Equal(t, []int{1}, g.Neighbors(2))
}

// TestGraph_DirectedNeighbors verifies that direction is honored when
// the graph is built with WithDirected.
func TestGraph_DirectedNeighbors(t *testing.T) {
	g := graph.New(graph.WithDirected())
	g.AddNodes(2)
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	assert.True(t, g.Directed())
	assert.Equal(t, []int{1}, g.Neighbors(0), "forward direction visible")
	assert.Empty(t, g.Neighbors(1), "reverse direction absent")
}

// TestGraph_ParallelEdges verifies multigraph support: repeated pairs
// keep distinct edge indices.
func TestGraph_ParallelEdges(t *testing.T) {
	g := graph.New()
	g.AddNodes(2)
	e1, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)
	e2, err := g.AddEdge(0, 1, 3)
	require.NoError(t, err)

	assert.NotEqual(t, e1, e2)
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []int{1}, g.Neighbors(0), "neighbor list stays deduplicated")
}
