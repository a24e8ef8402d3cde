package shortestpath

import "math"

// Matrix is a dense n×n table of target distances between all ordered
// node pairs. Entry (i,i) is 0 by construction and every other entry
// starts at +Inf, the encoding for "unreachable".
//
// The table is not guaranteed symmetric: directed-graph distances are
// stored independently per ordered pair. Ownership is exclusive — the
// optimizer or initializer holding a Matrix mutates it freely; nothing
// here is safe for concurrent writers.
type Matrix struct {
	n    int
	data []float64 // row-major, length n*n
}

// NewMatrix creates an n×n Matrix with zero diagonal and +Inf elsewhere.
// Complexity: O(n²).
func NewMatrix(n int) *Matrix {
	m := &Matrix{n: n, data: make([]float64, n*n)}
	inf := math.Inf(1)
	for i := range m.data {
		m.data[i] = inf
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 0
	}

	return m
}

// Shape returns the table dimensions (rows, cols); both equal n.
func (m *Matrix) Shape() (rows, cols int) { return m.n, m.n }

// Get returns the target distance from i to j, or ok=false when either
// index is out of range. Never panics. Complexity: O(1).
func (m *Matrix) Get(i, j int) (d float64, ok bool) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, false
	}

	return m.data[i*m.n+j], true
}

// Set overwrites the distance from i to j and reports whether the write
// happened. Out-of-range indices are a silent no-op (returns false).
// Complexity: O(1).
func (m *Matrix) Set(i, j int, v float64) bool {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return false
	}
	m.data[i*m.n+j] = v

	return true
}

// at reads without bounds checks; callers guarantee valid indices.
func (m *Matrix) at(i, j int) float64 { return m.data[i*m.n+j] }

// setRow copies row into the i-th row; callers guarantee len(row) == n.
func (m *Matrix) setRow(i int, row []float64) { copy(m.data[i*m.n:(i+1)*m.n], row) }

// SubMatrix is a k×n table holding distances from k landmark ("pivot")
// nodes to every node. Rows are appended with Push in pivot-selection
// order; RowOf recovers the row index of a pivot node.
//
// It shares the Matrix accessor contract: absent values via ok=false,
// silent no-op writes, no panics.
type SubMatrix struct {
	n       int
	sources []int
	rowOf   map[int]int
	data    []float64 // row-major, k rows of n
}

// NewSubMatrix creates an empty SubMatrix over n nodes; rows are added
// with Push. Complexity: O(1).
func NewSubMatrix(n int) *SubMatrix {
	return &SubMatrix{n: n, rowOf: make(map[int]int)}
}

// Push appends a row for pivot node u, initialized to +Inf except for a
// zero at column u, and returns the new row index. Complexity: O(n).
func (m *SubMatrix) Push(u int) int {
	k := len(m.sources)
	m.sources = append(m.sources, u)
	m.rowOf[u] = k
	row := make([]float64, m.n)
	inf := math.Inf(1)
	for j := range row {
		row[j] = inf
	}
	if u >= 0 && u < m.n {
		row[u] = 0
	}
	m.data = append(m.data, row...)

	return k
}

// Shape returns (number of pivot rows, number of nodes).
func (m *SubMatrix) Shape() (rows, cols int) { return len(m.sources), m.n }

// Sources returns the pivot nodes in row order.
func (m *SubMatrix) Sources() []int {
	s := make([]int, len(m.sources))
	copy(s, m.sources)

	return s
}

// RowOf returns the row index holding distances from pivot node u, or
// ok=false when u is not a pivot.
func (m *SubMatrix) RowOf(u int) (row int, ok bool) {
	row, ok = m.rowOf[u]

	return row, ok
}

// Get returns the distance from the k-th pivot to node j, or ok=false
// when either index is out of range. Complexity: O(1).
func (m *SubMatrix) Get(k, j int) (d float64, ok bool) {
	if k < 0 || k >= len(m.sources) || j < 0 || j >= m.n {
		return 0, false
	}

	return m.data[k*m.n+j], true
}

// Set overwrites the distance from the k-th pivot to node j and reports
// whether the write happened; out-of-range indices are a silent no-op.
// Complexity: O(1).
func (m *SubMatrix) Set(k, j int, v float64) bool {
	if k < 0 || k >= len(m.sources) || j < 0 || j >= m.n {
		return false
	}
	m.data[k*m.n+j] = v

	return true
}

// at reads without bounds checks; callers guarantee valid indices.
func (m *SubMatrix) at(k, j int) float64 { return m.data[k*m.n+j] }

// setRow copies row into the k-th row; callers guarantee len(row) == n.
func (m *SubMatrix) setRow(k int, row []float64) { copy(m.data[k*m.n:(k+1)*m.n], row) }
