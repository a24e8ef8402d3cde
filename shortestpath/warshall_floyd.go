package shortestpath

import "github.com/katalvlaran/lvldraw/graph"

// WarshallFloyd fills a full Matrix with all-pairs distances via the
// Floyd–Warshall dynamic program. For small dense graphs its tight O(V³)
// triple loop beats V heap-driven Dijkstra runs.
// Returns ErrNilGraph when g is nil.
// Complexity: O(V³) time, O(V²) memory.
func WarshallFloyd(g *graph.Graph, length EdgeLengthFunc) (*Matrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	m := NewMatrix(n)

	// Seed with direct edge lengths, keeping the minimum over parallels.
	for _, e := range g.Edges() {
		l := length(e.ID)
		if l < m.at(e.From, e.To) {
			m.Set(e.From, e.To, l)
		}
		if !g.Directed() && l < m.at(e.To, e.From) {
			m.Set(e.To, e.From, l)
		}
	}

	// Relax through every intermediate node k.
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			dik := m.at(i, k)
			for j := 0; j < n; j++ {
				if d := dik + m.at(k, j); d < m.at(i, j) {
					m.Set(i, j, d)
				}
			}
		}
	}

	return m, nil
}
