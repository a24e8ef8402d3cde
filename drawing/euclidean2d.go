package drawing

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvldraw/graph"
)

// Euclidean2d is a drawing in flat 2-D space, the default geometry for
// graph layout. Beyond the shared contract it offers recentering,
// region clamping and edge segment reporting for renderers.
type Euclidean2d struct {
	n      int
	coords []float64 // pairs (x, y), length 2n
}

// NewEuclidean2d creates a drawing of n nodes, all at the origin.
// Complexity: O(n).
func NewEuclidean2d(n int) *Euclidean2d {
	return &Euclidean2d{n: n, coords: make([]float64, 2*n)}
}

// InitialPlacement2d places n nodes on a concentric sqrt-spiral:
// node i sits at radius 10·√i and angle π(3−√5)·i (the golden angle),
// which spreads points evenly without collisions. This is the standard
// seed layout before SGD refinement. Complexity: O(n).
func InitialPlacement2d(n int) *Euclidean2d {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	return InitialPlacement2dWithOrder(order)
}

// InitialPlacement2dWithOrder is InitialPlacement2d with an explicit
// node order: order[k] receives the k-th spiral position. Nodes absent
// from order stay at the origin. Complexity: O(len(order)).
func InitialPlacement2dWithOrder(order []int) *Euclidean2d {
	d := NewEuclidean2d(len(order))
	goldenAngle := math.Pi * (3 - math.Sqrt(5))
	for k, u := range order {
		r := 10 * math.Sqrt(float64(k))
		theta := goldenAngle * float64(k)
		d.SetX(u, r*math.Cos(theta))
		d.SetY(u, r*math.Sin(theta))
	}

	return d
}

// InitialPlacement2dWithBFSOrder seeds the spiral in breadth-first
// order from s, so graph-near nodes start geometrically near. Nodes
// unreachable from s fill the tail in ascending index order.
// Complexity: O(V+E + V·log V).
func InitialPlacement2dWithBFSOrder(g *graph.Graph, s int) *Euclidean2d {
	n := g.NodeCount()
	rank := make([]int, n)
	for i := range rank {
		rank[i] = n // unreached sort key
	}
	if g.HasNode(s) {
		rank[s] = 0
		queue := []int{s}
		next := 1
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range g.Neighbors(u) {
				if rank[v] == n {
					rank[v] = next
					next++
					queue = append(queue, v)
				}
			}
		}
	}

	// Stable order: BFS rank first, node index as tiebreak for the
	// unreached tail.
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return rank[order[a]] < rank[order[b]] })

	return InitialPlacement2dWithOrder(order)
}

// Len returns the number of embedded nodes.
func (d *Euclidean2d) Len() int { return d.n }

// Dimension returns 2.
func (d *Euclidean2d) Dimension() int { return 2 }

// X returns the x-coordinate of node u, or ok=false when u is unknown.
func (d *Euclidean2d) X(u int) (float64, bool) {
	if u < 0 || u >= d.n {
		return 0, false
	}

	return d.coords[2*u], true
}

// Y returns the y-coordinate of node u, or ok=false when u is unknown.
func (d *Euclidean2d) Y(u int) (float64, bool) {
	if u < 0 || u >= d.n {
		return 0, false
	}

	return d.coords[2*u+1], true
}

// SetX overwrites the x-coordinate of node u; silent no-op out of range.
func (d *Euclidean2d) SetX(u int, v float64) bool {
	if u < 0 || u >= d.n {
		return false
	}
	d.coords[2*u] = v

	return true
}

// SetY overwrites the y-coordinate of node u; silent no-op out of range.
func (d *Euclidean2d) SetY(u int, v float64) bool {
	if u < 0 || u >= d.n {
		return false
	}
	d.coords[2*u+1] = v

	return true
}

// SetPositions bulk-loads (x, y) rows, one per node. Returns
// ErrPositionShape on a row count or width mismatch.
func (d *Euclidean2d) SetPositions(rows [][]float64) error {
	if len(rows) != d.n {
		return ErrPositionShape
	}
	for _, row := range rows {
		if len(row) != 2 {
			return ErrPositionShape
		}
	}
	for i, row := range rows {
		d.coords[2*i], d.coords[2*i+1] = row[0], row[1]
	}

	return nil
}

// Centralize translates all nodes so the bounding-box center lands on
// the origin, preserving every pairwise relative position.
// Complexity: O(n).
func (d *Euclidean2d) Centralize() {
	if d.n == 0 {
		return
	}
	l, r := math.Inf(1), math.Inf(-1)
	t, b := math.Inf(1), math.Inf(-1)
	for i := 0; i < d.n; i++ {
		l = math.Min(l, d.coords[2*i])
		r = math.Max(r, d.coords[2*i])
		t = math.Min(t, d.coords[2*i+1])
		b = math.Max(b, d.coords[2*i+1])
	}
	cx, cy := l+(r-l)/2, t+(b-t)/2
	for i := 0; i < d.n; i++ {
		d.coords[2*i] -= cx
		d.coords[2*i+1] -= cy
	}
}

// ClampRegion hard-clips every coordinate into [x0,x1]×[y0,y1].
// Complexity: O(n).
func (d *Euclidean2d) ClampRegion(x0, y0, x1, y1 float64) {
	for i := 0; i < d.n; i++ {
		d.coords[2*i] = clamp(d.coords[2*i], x0, x1)
		d.coords[2*i+1] = clamp(d.coords[2*i+1], y0, y1)
	}
}

// EdgeSegments returns the single straight segment from u to v, or
// ok=false when either node is unknown.
func (d *Euclidean2d) EdgeSegments(u, v int) ([]Segment, bool) {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return nil, false
	}

	return []Segment{{
		P: Point{X: d.coords[2*u], Y: d.coords[2*u+1]},
		Q: Point{X: d.coords[2*v], Y: d.coords[2*v+1]},
	}}, true
}

// Delta writes p_i − p_j into dst and returns the straight-line norm.
func (d *Euclidean2d) Delta(i, j int, dst []float64) float64 {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return math.NaN()
	}
	dst[0] = d.coords[2*i] - d.coords[2*j]
	dst[1] = d.coords[2*i+1] - d.coords[2*j+1]

	return math.Hypot(dst[0], dst[1])
}

// Shift moves node i linearly by s·delta.
func (d *Euclidean2d) Shift(i int, delta []float64, s float64) {
	if i < 0 || i >= d.n {
		return
	}
	d.coords[2*i] += s * delta[0]
	d.coords[2*i+1] += s * delta[1]
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
