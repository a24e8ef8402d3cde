package mds

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graph"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// Sentinel errors for MDS construction and solving.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("mds: graph is nil")

	// ErrNilDistanceMatrix indicates that a nil distance matrix was
	// supplied.
	ErrNilDistanceMatrix = errors.New("mds: distance matrix is nil")

	// ErrBadDimension indicates a target dimension outside the solvable
	// range.
	ErrBadDimension = errors.New("mds: dimension out of range")

	// ErrFactorization indicates that the eigendecomposition or SVD did
	// not converge.
	ErrFactorization = errors.New("mds: factorization failed")
)

// ClassicalMds holds the double-centered kernel B = −½·J·D²·J of a full
// distance matrix; Run extracts coordinates from its leading eigenpairs.
type ClassicalMds struct {
	n int
	b *mat.SymDense
}

// NewClassicalMds builds the kernel from the all-pairs Dijkstra
// distances of g. Returns ErrNilGraph when g is nil.
func NewClassicalMds(g *graph.Graph, length shortestpath.EdgeLengthFunc) (*ClassicalMds, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	m, err := shortestpath.AllSourcesDijkstra(g, length)
	if err != nil {
		return nil, err
	}

	return NewClassicalMdsWithDistanceMatrix(m)
}

// NewClassicalMdsWithDistanceMatrix builds the kernel from a precomputed
// matrix. Infinite entries square into the kernel and degenerate the
// result; callers own connectivity. Returns ErrNilDistanceMatrix when m
// is nil. Complexity: O(n²).
func NewClassicalMdsWithDistanceMatrix(m *shortestpath.Matrix) (*ClassicalMds, error) {
	if m == nil {
		return nil, ErrNilDistanceMatrix
	}
	n, _ := m.Shape()
	delta := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			d, _ := m.Get(i, j)
			delta[i*n+j] = d * d
		}
	}
	b := mat.NewSymDense(n, nil)
	center(delta, n, n, func(i, j int, v float64) {
		if i <= j {
			b.SetSym(i, j, v)
		}
	})

	return &ClassicalMds{n: n, b: b}, nil
}

// Run solves for a dim-dimensional embedding: the top dim eigenpairs of
// the kernel, each axis scaled by the square root of its eigenvalue
// (negative eigenvalues clamp to zero). Returns ErrBadDimension or
// ErrFactorization. Complexity: O(n³).
func (c *ClassicalMds) Run(dim int) (*drawing.Euclidean, error) {
	if dim < 1 || dim > c.n {
		return nil, ErrBadDimension
	}
	vals, vecs, err := c.solve()
	if err != nil {
		return nil, err
	}
	d := drawing.NewEuclidean(c.n, dim)
	for k := 0; k < dim; k++ {
		col := c.n - 1 - k // eigenvalues ascend; walk from the top
		scale := math.Sqrt(math.Max(vals[col], 0))
		for i := 0; i < c.n; i++ {
			d.Set(i, k, vecs.At(i, col)*scale)
		}
	}

	return d, nil
}

// Run2d is Run(2) into the renderer-friendly 2-D drawing type.
func (c *ClassicalMds) Run2d() (*drawing.Euclidean2d, error) {
	if c.n < 2 {
		return nil, ErrBadDimension
	}
	vals, vecs, err := c.solve()
	if err != nil {
		return nil, err
	}
	d := drawing.NewEuclidean2d(c.n)
	sx := math.Sqrt(math.Max(vals[c.n-1], 0))
	sy := math.Sqrt(math.Max(vals[c.n-2], 0))
	for i := 0; i < c.n; i++ {
		d.SetX(i, vecs.At(i, c.n-1)*sx)
		d.SetY(i, vecs.At(i, c.n-2)*sy)
	}

	return d, nil
}

func (c *ClassicalMds) solve() ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(c.b, true) {
		return nil, nil, ErrFactorization
	}
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	return vals, &vecs, nil
}

// center applies double centering to the rows×cols squared-distance
// table and emits each centered cell through set:
// c_ij = (rowMean_i + colMean_j − delta_ij − allMean) / 2.
func center(delta []float64, rows, cols int, set func(i, j int, v float64)) {
	rowMean := make([]float64, rows)
	colMean := make([]float64, cols)
	allMean := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := delta[i*cols+j]
			rowMean[i] += v
			colMean[j] += v
			allMean += v
		}
	}
	for i := range rowMean {
		rowMean[i] /= float64(cols)
	}
	for j := range colMean {
		colMean[j] /= float64(rows)
	}
	allMean /= float64(rows * cols)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			set(i, j, (rowMean[i]+colMean[j]-delta[i*cols+j]-allMean)/2)
		}
	}
}
