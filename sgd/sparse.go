package sgd

import (
	"math"

	"github.com/katalvlaran/lvldraw/graph"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// SparseSgd approximates FullSgd at O(n·h) memory and per-epoch time by
// constraining every node against h pivot (landmark) nodes instead of
// against all n−1 others. The term list is the union of
//
//   - every direct edge at its own length, weight 1/d², and
//   - for each pivot p and node j (not p itself, not an edge partner of
//     p), the pivot distance d(p, j) with weight s·(1/d²), where s
//     counts the nodes in p's region whose pivot distance is at most
//     d(p, j)/2 — each pivot stands in for the region it represents.
//
// Regions partition the nodes by nearest pivot. Pivots are chosen by
// max-min random sampling so they spread over the graph; with h ≥ n the
// approximation collapses into the exact full term set.
type SparseSgd struct {
	baseSgd
}

// NewSparseSgd builds the optimizer with h pivots sampled through r.
// h is capped at the node count. Returns ErrNilGraph, ErrBadPivotCount
// or ErrNoPivotCandidate for invalid input.
// Complexity: O(h·(V+E)·log V + h·V).
func NewSparseSgd(g *graph.Graph, length shortestpath.EdgeLengthFunc, h int, r *Rng) (*SparseSgd, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if h > g.NodeCount() {
		h = g.NodeCount()
	}
	pivot, m, err := ChoosePivot(g, length, h, r)
	if err != nil {
		return nil, err
	}

	return NewSparseSgdWithPivotAndDistanceMatrix(g, length, pivot, m)
}

// NewSparseSgdWithPivot builds the optimizer from a caller-chosen pivot
// set, computing the pivot distance rows internally.
func NewSparseSgdWithPivot(g *graph.Graph, length shortestpath.EdgeLengthFunc, pivot []int) (*SparseSgd, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m, err := shortestpath.MultiSourceDijkstra(g, length, pivot)
	if err != nil {
		return nil, err
	}

	return NewSparseSgdWithPivotAndDistanceMatrix(g, length, pivot, m)
}

// NewSparseSgdWithPivotAndDistanceMatrix builds the optimizer from an
// explicit pivot set and its precomputed distance rows. Pivot terms with
// a non-finite distance (nodes unreachable from the pivot) are dropped,
// so disconnected graphs stay usable. Returns ErrNilGraph or
// ErrNilDistanceMatrix for invalid input. Complexity: O(h·V + E).
func NewSparseSgdWithPivotAndDistanceMatrix(
	g *graph.Graph,
	length shortestpath.EdgeLengthFunc,
	pivot []int,
	m *shortestpath.SubMatrix,
) (*SparseSgd, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if m == nil {
		return nil, ErrNilDistanceMatrix
	}
	n := g.NodeCount()
	h := len(pivot)
	s := &SparseSgd{}

	// Direct edges keep their exact length; remember the pairs so pivot
	// terms never duplicate them.
	onEdge := make(map[[2]int]struct{}, 2*g.EdgeCount())
	for _, e := range g.Edges() {
		dij := length(e.ID)
		wij := 1 / (dij * dij)
		s.terms = append(s.terms, Term{I: e.From, J: e.To, D: dij, W: wij})
		onEdge[[2]int{e.From, e.To}] = struct{}{}
		onEdge[[2]int{e.To, e.From}] = struct{}{}
	}

	// Assign every node to its nearest pivot's region.
	region := make([]int, n)
	for j := 0; j < n; j++ {
		best := math.Inf(1)
		for k := 0; k < h; k++ {
			if d, ok := m.Get(k, j); ok && d < best {
				best = d
				region[j] = k
			}
		}
	}
	regionNodes := make([][]int, h)
	for j := 0; j < n; j++ {
		regionNodes[region[j]] = append(regionNodes[region[j]], j)
	}

	for k := 0; k < h; k++ {
		i := pivot[k]
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if _, skip := onEdge[[2]int{i, j}]; skip {
				continue
			}
			dij, _ := m.Get(k, j)
			if math.IsInf(dij, 1) || dij <= 0 {
				continue
			}
			wij := 1 / (dij * dij)
			sij := 0.0
			for _, l := range regionNodes[k] {
				if dkl, _ := m.Get(k, l); 2*dkl <= dij {
					sij++
				}
			}
			s.terms = append(s.terms, Term{I: i, J: j, D: dij, W: sij * wij})
		}
	}

	return s, nil
}

// ChoosePivot samples h pivot nodes by max-min random sampling and
// returns them with their distance rows. The first pivot is uniform;
// each later pivot is drawn with probability proportional to the node's
// distance to the nearest already-chosen pivot, which pushes pivots
// apart while keeping the choice randomized. Returns ErrBadPivotCount
// for h < 1 and ErrNoPivotCandidate when every remaining node already
// coincides with a pivot.
// Complexity: O(h·(V+E)·log V).
func ChoosePivot(g *graph.Graph, length shortestpath.EdgeLengthFunc, h int, r *Rng) ([]int, *shortestpath.SubMatrix, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if h < 1 {
		return nil, nil, ErrBadPivotCount
	}
	n := g.NodeCount()
	if n == 0 {
		return nil, nil, ErrNoPivotCandidate
	}
	if h > n {
		h = n
	}

	pivot := make([]int, 0, h)
	m := shortestpath.NewSubMatrix(n)
	pivot = append(pivot, r.IntN(n))
	if err := pushPivotRow(g, length, m, pivot[0]); err != nil {
		return nil, nil, err
	}

	minD := make([]float64, n)
	for j := range minD {
		minD[j] = math.Inf(1)
	}
	for k := 1; k < h; k++ {
		for j := 0; j < n; j++ {
			if d, ok := m.Get(k-1, j); ok && d < minD[j] {
				minD[j] = d
			}
		}
		next, err := proportionalSample(minD, r)
		if err != nil {
			return nil, nil, err
		}
		pivot = append(pivot, next)
		if err := pushPivotRow(g, length, m, next); err != nil {
			return nil, nil, err
		}
	}

	return pivot, m, nil
}

// pushPivotRow appends the Dijkstra row of u to m.
func pushPivotRow(g *graph.Graph, length shortestpath.EdgeLengthFunc, m *shortestpath.SubMatrix, u int) error {
	row, err := shortestpath.DijkstraFrom(g, length, u)
	if err != nil {
		return err
	}
	k := m.Push(u)
	for j, d := range row {
		m.Set(k, j, d)
	}

	return nil
}

// proportionalSample draws an index with probability proportional to
// values[i]. Nodes unreachable from every pivot carry +Inf: the first
// such node wins outright, spreading pivots across components.
func proportionalSample(values []float64, r *Rng) (int, error) {
	sum := 0.0
	for i, v := range values {
		if math.IsInf(v, 1) {
			return i, nil
		}
		sum += v
	}
	if sum == 0 {
		return 0, ErrNoPivotCandidate
	}
	x := r.Float64() * sum
	acc := 0.0
	for i, v := range values {
		acc += v
		if x < acc {
			return i, nil
		}
	}

	// x landed on the top boundary through rounding; take the last
	// positive entry.
	for i := len(values) - 1; i >= 0; i-- {
		if values[i] > 0 {
			return i, nil
		}
	}

	return 0, ErrNoPivotCandidate
}
