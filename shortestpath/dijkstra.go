package shortestpath

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvldraw/graph"
)

// DijkstraFrom computes single-source weighted distances from s,
// returning one row of length NodeCount. Edge lengths come from length;
// unreachable nodes are +Inf.
// Returns ErrNilGraph or ErrSourceNotFound for invalid input.
// Complexity: O((V+E)·log V) time, O(V+E) memory.
func DijkstraFrom(g *graph.Graph, length EdgeLengthFunc, s int) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasNode(s) {
		return nil, ErrSourceNotFound
	}

	return dijkstraRow(g, length, s), nil
}

// AllSourcesDijkstra runs one Dijkstra per node and fills a full Matrix.
// Returns ErrNilGraph when g is nil.
// Complexity: O(V·(V+E)·log V) time, O(V²) memory.
func AllSourcesDijkstra(g *graph.Graph, length EdgeLengthFunc) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	m := NewMatrix(n)
	for s := 0; s < n; s++ {
		m.setRow(s, dijkstraRow(g, length, s))
	}

	return m, nil
}

// MultiSourceDijkstra computes distances from each source into a
// SubMatrix row, in the given source order. This is the landmark input
// of pivot-based sparse SGD.
// Returns ErrNilGraph or ErrSourceNotFound for invalid input.
// Complexity: O(k·(V+E)·log V) time, O(k·V) memory.
func MultiSourceDijkstra(g *graph.Graph, length EdgeLengthFunc, sources []int) (*SubMatrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m := NewSubMatrix(g.NodeCount())
	for _, s := range sources {
		if !g.HasNode(s) {
			return nil, ErrSourceNotFound
		}
		k := m.Push(s)
		m.setRow(k, dijkstraRow(g, length, s))
	}

	return m, nil
}

// distHeap is a lazy-deletion min-heap of (node, distance) pairs.
type distHeap struct {
	nodes []int
	dists []float64
}

func (h *distHeap) Len() int           { return len(h.nodes) }
func (h *distHeap) Less(i, j int) bool { return h.dists[i] < h.dists[j] }

func (h *distHeap) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.dists[i], h.dists[j] = h.dists[j], h.dists[i]
}

func (h *distHeap) Push(x interface{}) {
	p := x.([2]float64)
	h.nodes = append(h.nodes, int(p[0]))
	h.dists = append(h.dists, p[1])
}

func (h *distHeap) Pop() interface{} {
	n := len(h.nodes) - 1
	u, d := h.nodes[n], h.dists[n]
	h.nodes, h.dists = h.nodes[:n], h.dists[:n]

	return [2]float64{float64(u), d}
}

// dijkstraRow is the shared relaxation loop; s is a valid node index.
// Lazy decrease-key: stale heap entries are skipped on pop.
func dijkstraRow(g *graph.Graph, length EdgeLengthFunc, s int) []float64 {
	n := g.NodeCount()
	row := make([]float64, n)
	inf := math.Inf(1)
	for i := range row {
		row[i] = inf
	}
	row[s] = 0

	h := &distHeap{}
	heap.Push(h, [2]float64{float64(s), 0})
	for h.Len() > 0 {
		p := heap.Pop(h).([2]float64)
		u, du := int(p[0]), p[1]
		if du > row[u] {
			continue // stale entry
		}
		for _, e := range g.OutEdges(u) {
			from, to, _ := g.EdgeEndpoints(e)
			// pick the endpoint opposite to u (loops stay at u)
			v := to
			if v == u {
				v = from
			}
			d := du + length(e)
			if d < row[v] {
				row[v] = d
				heap.Push(h, [2]float64{float64(v), d})
			}
		}
	}

	return row
}
