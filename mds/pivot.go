package mds

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graph"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// PivotMds holds the double-centered node×pivot distance rectangle C;
// Run projects nodes through C's leading singular triplets. With h
// pivots the kernel is n×h instead of n×n, which is what makes the
// method affordable on large graphs.
type PivotMds struct {
	n, h int
	c    *mat.Dense
}

// NewPivotMds builds the rectangle from Dijkstra rows of the given pivot
// nodes. Returns ErrNilGraph or a shortestpath error for invalid input.
func NewPivotMds(g *graph.Graph, length shortestpath.EdgeLengthFunc, pivot []int) (*PivotMds, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m, err := shortestpath.MultiSourceDijkstra(g, length, pivot)
	if err != nil {
		return nil, err
	}

	return NewPivotMdsWithDistanceMatrix(m)
}

// NewPivotMdsWithDistanceMatrix builds the rectangle from precomputed
// pivot rows. Returns ErrNilDistanceMatrix when m is nil.
// Complexity: O(n·h).
func NewPivotMdsWithDistanceMatrix(m *shortestpath.SubMatrix) (*PivotMds, error) {
	if m == nil {
		return nil, ErrNilDistanceMatrix
	}
	h, n := m.Shape()
	delta := make([]float64, n*h)
	for k := 0; k < h; k++ {
		for j := 0; j < n; j++ {
			d, _ := m.Get(k, j)
			delta[j*h+k] = d * d
		}
	}
	c := mat.NewDense(n, h, nil)
	center(delta, n, h, c.Set)

	return &PivotMds{n: n, h: h, c: c}, nil
}

// Run solves for a dim-dimensional embedding from the thin SVD
// C = U·Σ·Vᵀ: node i takes coordinate U[i,k]·σ_k² on axis k, the
// projection of C onto its k-th right-singular direction scaled by σ_k.
// Returns ErrBadDimension or ErrFactorization.
// Complexity: O(n·h²).
func (p *PivotMds) Run(dim int) (*drawing.Euclidean, error) {
	if dim < 1 || dim > p.h || dim > p.n {
		return nil, ErrBadDimension
	}
	u, sigma, err := p.solve()
	if err != nil {
		return nil, err
	}
	d := drawing.NewEuclidean(p.n, dim)
	for k := 0; k < dim; k++ {
		scale := sigma[k] * sigma[k]
		for i := 0; i < p.n; i++ {
			d.Set(i, k, u.At(i, k)*scale)
		}
	}

	return d, nil
}

// Run2d is Run(2) into the renderer-friendly 2-D drawing type.
func (p *PivotMds) Run2d() (*drawing.Euclidean2d, error) {
	if p.h < 2 || p.n < 2 {
		return nil, ErrBadDimension
	}
	u, sigma, err := p.solve()
	if err != nil {
		return nil, err
	}
	d := drawing.NewEuclidean2d(p.n)
	sx, sy := sigma[0]*sigma[0], sigma[1]*sigma[1]
	for i := 0; i < p.n; i++ {
		d.SetX(i, u.At(i, 0)*sx)
		d.SetY(i, u.At(i, 1)*sy)
	}

	return d, nil
}

func (p *PivotMds) solve() (*mat.Dense, []float64, error) {
	var svd mat.SVD
	if !svd.Factorize(p.c, mat.SVDThin) {
		return nil, nil, ErrFactorization
	}
	var u mat.Dense
	svd.UTo(&u)

	// singular values arrive in descending order
	return &u, svd.Values(nil), nil
}
