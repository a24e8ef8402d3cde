package sgd

import (
	"math"

	"github.com/katalvlaran/lvldraw/graph"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// FullSgd optimizes one term per unordered node pair with a finite
// graph-theoretic distance. It reproduces the stress-majorization
// objective most faithfully but costs O(n²) memory and per-epoch time,
// which caps it at graphs of a few thousand nodes; use SparseSgd above
// that.
type FullSgd struct {
	baseSgd
}

// NewFullSgd builds the optimizer from the all-pairs Dijkstra distances
// of g under the given edge lengths. Returns ErrNilGraph when g is nil.
// Complexity: O(V·(V+E)·log V + V²).
func NewFullSgd(g *graph.Graph, length shortestpath.EdgeLengthFunc) (*FullSgd, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m, err := shortestpath.AllSourcesDijkstra(g, length)
	if err != nil {
		return nil, err
	}

	return NewFullSgdWithDistanceMatrix(m)
}

// NewFullSgdWithDistanceMatrix builds the optimizer from a precomputed
// distance matrix, one term per pair i<j whose entry (i,j) is finite.
// Infinite entries — disconnected pairs — contribute no term, so each
// component is laid out against its own distances only. Returns
// ErrNilDistanceMatrix when m is nil. Complexity: O(n²).
func NewFullSgdWithDistanceMatrix(m *shortestpath.Matrix) (*FullSgd, error) {
	if m == nil {
		return nil, ErrNilDistanceMatrix
	}
	n, _ := m.Shape()
	s := &FullSgd{}
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			dij, _ := m.Get(i, j)
			if math.IsInf(dij, 1) || dij <= 0 {
				continue
			}
			s.terms = append(s.terms, Term{I: i, J: j, D: dij, W: 1 / (dij * dij)})
		}
	}

	return s, nil
}
