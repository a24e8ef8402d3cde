package shortestpath

import (
	"math"

	"github.com/katalvlaran/lvldraw/graph"
)

// BFSFrom computes single-source distances from s with every edge
// counted as unitLength, returning one row of length NodeCount.
// Unreachable nodes are +Inf.
// Returns ErrNilGraph or ErrSourceNotFound for invalid input.
// Complexity: O(V+E) time, O(V) memory.
func BFSFrom(g *graph.Graph, unitLength float64, s int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(s) {
		return nil, ErrSourceNotFound
	}

	return bfsRow(g, unitLength, s), nil
}

// AllSourcesBFS runs one BFS per node and fills a full Matrix. Every edge
// counts as unitLength; use this for unweighted graphs where Dijkstra's
// heap is wasted work.
// Returns ErrNilGraph when g is nil.
// Complexity: O(V·(V+E)) time, O(V²) memory.
func AllSourcesBFS(g *graph.Graph, unitLength float64) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	m := NewMatrix(n)
	for s := 0; s < n; s++ {
		m.setRow(s, bfsRow(g, unitLength, s))
	}

	return m, nil
}

// bfsRow is the shared breadth-first scan; s is a valid node index.
func bfsRow(g *graph.Graph, unitLength float64, s int) []float64 {
	n := g.NodeCount()
	row := make([]float64, n)
	inf := math.Inf(1)
	for i := range row {
		row[i] = inf
	}
	row[s] = 0

	queue := make([]int, 0, n)
	queue = append(queue, s)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.Neighbors(u) {
			if math.IsInf(row[v], 1) {
				row[v] = row[u] + unitLength
				queue = append(queue, v)
			}
		}
	}

	return row
}
