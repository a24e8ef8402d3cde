package drawing

import "math"

// Torus2d is a drawing on the flat unit torus: both axes are periodic
// with period 1, so opposite edges of the unit square are glued.
// Every coordinate write is wrapped into [0,1) by floor-mod, which
// makes repeated wraps idempotent and normalizes negative and large
// inputs (e.g. -0.25 → 0.75, 1.25 → 0.25).
type Torus2d struct {
	n      int
	coords []float64 // pairs (x, y), length 2n, always in [0,1)
}

// NewTorus2d creates a drawing of n nodes, all at (0, 0).
// Complexity: O(n).
func NewTorus2d(n int) *Torus2d {
	return &Torus2d{n: n, coords: make([]float64, 2*n)}
}

// InitialPlacementTorus2d places n nodes on the circle of radius 0.4
// around the square center (0.5, 0.5), comfortably away from the
// periodic seams. Complexity: O(n).
func InitialPlacementTorus2d(n int) *Torus2d {
	d := NewTorus2d(n)
	dt := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		t := dt * float64(i)
		d.coords[2*i] = wrapUnit(0.4*math.Cos(t) + 0.5)
		d.coords[2*i+1] = wrapUnit(0.4*math.Sin(t) + 0.5)
	}

	return d
}

// Len returns the number of embedded nodes.
func (d *Torus2d) Len() int { return d.n }

// Dimension returns 2.
func (d *Torus2d) Dimension() int { return 2 }

// X returns the x-coordinate of node u in [0,1), or ok=false when u is
// unknown.
func (d *Torus2d) X(u int) (float64, bool) {
	if u < 0 || u >= d.n {
		return 0, false
	}

	return d.coords[2*u], true
}

// Y returns the y-coordinate of node u in [0,1), or ok=false when u is
// unknown.
func (d *Torus2d) Y(u int) (float64, bool) {
	if u < 0 || u >= d.n {
		return 0, false
	}

	return d.coords[2*u+1], true
}

// SetX writes the x-coordinate of node u, wrapped into [0,1); silent
// no-op out of range.
func (d *Torus2d) SetX(u int, v float64) bool {
	if u < 0 || u >= d.n {
		return false
	}
	d.coords[2*u] = wrapUnit(v)

	return true
}

// SetY writes the y-coordinate of node u, wrapped into [0,1); silent
// no-op out of range.
func (d *Torus2d) SetY(u int, v float64) bool {
	if u < 0 || u >= d.n {
		return false
	}
	d.coords[2*u+1] = wrapUnit(v)

	return true
}

// SetPositions bulk-loads (x, y) rows, one per node, wrapping each
// value into [0,1). Returns ErrPositionShape on a shape mismatch.
func (d *Torus2d) SetPositions(rows [][]float64) error {
	if len(rows) != d.n {
		return ErrPositionShape
	}
	for _, row := range rows {
		if len(row) != 2 {
			return ErrPositionShape
		}
	}
	for i, row := range rows {
		d.coords[2*i], d.coords[2*i+1] = wrapUnit(row[0]), wrapUnit(row[1])
	}

	return nil
}

// Delta writes the minimum-image difference p_i − p_j into dst: p_i is
// shifted by the integer offsets in {-1,0,1}² that bring it nearest to
// p_j, so the norm is the true toroidal distance.
func (d *Torus2d) Delta(i, j int, dst []float64) float64 {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return math.NaN()
	}
	dx, dy := nearestShift(
		d.coords[2*i], d.coords[2*i+1],
		d.coords[2*j], d.coords[2*j+1],
	)
	dst[0] = d.coords[2*i] + dx - d.coords[2*j]
	dst[1] = d.coords[2*i+1] + dy - d.coords[2*j+1]

	return math.Hypot(dst[0], dst[1])
}

// Shift moves node i linearly by s·delta, wrapping both axes.
func (d *Torus2d) Shift(i int, delta []float64, s float64) {
	if i < 0 || i >= d.n {
		return
	}
	d.coords[2*i] = wrapUnit(d.coords[2*i] + s*delta[0])
	d.coords[2*i+1] = wrapUnit(d.coords[2*i+1] + s*delta[1])
}

// EdgeSegments returns the drawable pieces of the edge between u and v:
// one segment when the minimum image stays inside the unit square, two
// when it wraps a single axis, three when it wraps both. Returns
// ok=false when either node is unknown.
func (d *Torus2d) EdgeSegments(u, v int) ([]Segment, bool) {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return nil, false
	}
	px, py := d.coords[2*u], d.coords[2*u+1]
	qx, qy := d.coords[2*v], d.coords[2*v+1]
	dx, dy := nearestShift(px, py, qx, qy)

	lo, hi := 0.0, math.Nextafter(1, 0)
	switch {
	case dx == 0 && dy == 0:
		return []Segment{{P: Point{X: px, Y: py}, Q: Point{X: qx, Y: qy}}}, true

	case dx == 0:
		// wrap across the y seam; start from the lower point
		x0, y0, x1, y1 := px, py, qx, qy
		if y1 < y0 {
			x0, y0, x1, y1 = qx, qy, px, py
		}
		x2 := (y0*x1 - y1*x0 + x0) / (y0 - y1 + 1)

		return []Segment{
			{P: Point{X: x0, Y: y0}, Q: Point{X: x2, Y: lo}},
			{P: Point{X: x2, Y: hi}, Q: Point{X: x1, Y: y1}},
		}, true

	case dy == 0:
		// wrap across the x seam; start from the leftmost point
		x0, y0, x1, y1 := px, py, qx, qy
		if x1 < x0 {
			x0, y0, x1, y1 = qx, qy, px, py
		}
		y2 := (x0*y1 - x1*y0 + y0) / (x0 - x1 + 1)

		return []Segment{
			{P: Point{X: x0, Y: y0}, Q: Point{X: lo, Y: y2}},
			{P: Point{X: hi, Y: y2}, Q: Point{X: x1, Y: y1}},
		}, true
	}

	// Diagonal wrap: three segments crossing both seams. Intersection
	// parameters follow the line through the minimum image.
	x0, y0, x1, y1 := px, py, qx, qy
	if x1 < x0 {
		x0, y0, x1, y1 = qx, qy, px, py
	}
	cx := x0 - x1 + 1
	cy := y0 - y1 + 1
	if dx*dy < 0 {
		cy = y0 - y1 - 1
	}
	var x2 float64
	if dx*dy < 0 {
		x2 = (cy*x0 - cx*y0 + cx) / cy
	} else {
		x2 = (cy*x0 - cx*y0) / cy
	}
	y2 := (cx*y0 - cy*x0) / cx

	switch {
	case dx*dy < 0 && x2 < 0:
		return []Segment{
			{P: Point{X: x0, Y: y0}, Q: Point{X: lo, Y: y2}},
			{P: Point{X: hi, Y: y2}, Q: Point{X: x2 + 1, Y: hi}},
			{P: Point{X: x2 + 1, Y: lo}, Q: Point{X: x1, Y: y1}},
		}, true
	case dx*dy < 0:
		return []Segment{
			{P: Point{X: x0, Y: y0}, Q: Point{X: x2, Y: hi}},
			{P: Point{X: x2, Y: lo}, Q: Point{X: lo, Y: y2 + 1}},
			{P: Point{X: hi, Y: y2 + 1}, Q: Point{X: x1, Y: y1}},
		}, true
	case y2 < 0:
		return []Segment{
			{P: Point{X: x0, Y: y0}, Q: Point{X: x2, Y: lo}},
			{P: Point{X: x2, Y: hi}, Q: Point{X: lo, Y: y2 + 1}},
			{P: Point{X: hi, Y: y2 + 1}, Q: Point{X: x1, Y: y1}},
		}, true
	default:
		return []Segment{
			{P: Point{X: x0, Y: y0}, Q: Point{X: lo, Y: y2}},
			{P: Point{X: hi, Y: y2}, Q: Point{X: x2 + 1, Y: lo}},
			{P: Point{X: x2 + 1, Y: hi}, Q: Point{X: x1, Y: y1}},
		}, true
	}
}

// wrapUnit maps v into [0,1) by floor-mod; repeated wraps are
// idempotent.
func wrapUnit(v float64) float64 {
	w := v - math.Floor(v)
	if w >= 1 { // guard against -1e-18 rounding up
		return 0
	}

	return w
}

// nearestShift returns the integer offsets (dx, dy) ∈ {-1,0,1}² that
// bring (px, py) nearest to (qx, qy) on the torus.
func nearestShift(px, py, qx, qy float64) (float64, float64) {
	best := math.Inf(1)
	var bx, by float64
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			d := math.Hypot(px+float64(dx)-qx, py+float64(dy)-qy)
			if d < best {
				best = d
				bx, by = float64(dx), float64(dy)
			}
		}
	}

	return bx, by
}
