package drawing

import "math"

// Euclidean is a drawing in flat n-dimensional space. Any finite real
// vector is a valid position; updates are plain vector arithmetic.
type Euclidean struct {
	n      int
	dim    int
	coords []float64 // row-major, n rows of dim
}

// NewEuclidean creates a drawing of n nodes in dim-dimensional space,
// all placed at the origin. Complexity: O(n·dim).
func NewEuclidean(n, dim int) *Euclidean {
	return &Euclidean{n: n, dim: dim, coords: make([]float64, n*dim)}
}

// Len returns the number of embedded nodes.
func (d *Euclidean) Len() int { return d.n }

// Dimension returns the space dimensionality.
func (d *Euclidean) Dimension() int { return d.dim }

// Get returns the k-th coordinate of node u, or ok=false when u or k is
// out of range.
func (d *Euclidean) Get(u, k int) (v float64, ok bool) {
	if u < 0 || u >= d.n || k < 0 || k >= d.dim {
		return 0, false
	}

	return d.coords[u*d.dim+k], true
}

// Set overwrites the k-th coordinate of node u and reports whether the
// write happened; out-of-range indices are a silent no-op.
func (d *Euclidean) Set(u, k int, v float64) bool {
	if u < 0 || u >= d.n || k < 0 || k >= d.dim {
		return false
	}
	d.coords[u*d.dim+k] = v

	return true
}

// SetPositions bulk-loads one row per node. Returns ErrPositionShape
// when the row count or any row width does not match the drawing.
func (d *Euclidean) SetPositions(rows [][]float64) error {
	if len(rows) != d.n {
		return ErrPositionShape
	}
	for _, row := range rows {
		if len(row) != d.dim {
			return ErrPositionShape
		}
	}
	for i, row := range rows {
		copy(d.coords[i*d.dim:(i+1)*d.dim], row)
	}

	return nil
}

// Delta writes the coordinate-wise difference p_i − p_j into dst and
// returns the Euclidean norm, the straight-line distance.
func (d *Euclidean) Delta(i, j int, dst []float64) float64 {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return math.NaN()
	}
	var s float64
	for k := 0; k < d.dim; k++ {
		dst[k] = d.coords[i*d.dim+k] - d.coords[j*d.dim+k]
		s += dst[k] * dst[k]
	}

	return math.Sqrt(s)
}

// Shift moves node i linearly by s·delta.
func (d *Euclidean) Shift(i int, delta []float64, s float64) {
	if i < 0 || i >= d.n {
		return
	}
	for k := 0; k < d.dim; k++ {
		d.coords[i*d.dim+k] += s * delta[k]
	}
}
