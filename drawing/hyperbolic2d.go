package drawing

import "math"

// hypEps is the tangent-vector norm below which two hyperbolic points
// are treated as coincident.
const hypEps = 1e-4

// hypPullback keeps geodesic updates strictly inside the unit disk:
// any update landing at radius ≥ hypPullback is scaled back onto it.
// Direct coordinate writes bypass this — only Shift is protected.
const hypPullback = 0.99

// Hyperbolic2d is a drawing in the Poincaré disk model of 2-D
// hyperbolic space. Valid points satisfy x²+y² < 1; coordinate writes
// are not clamped, and distances against a point on or outside the disk
// boundary degenerate to +Inf or NaN by design.
type Hyperbolic2d struct {
	n      int
	coords []float64 // pairs (x, y), length 2n
}

// NewHyperbolic2d creates a drawing of n nodes, all at the disk center.
// Complexity: O(n).
func NewHyperbolic2d(n int) *Hyperbolic2d {
	return &Hyperbolic2d{n: n, coords: make([]float64, 2*n)}
}

// InitialPlacementHyperbolic2d places n nodes evenly on the circle of
// radius 0.5, well inside the unit disk. Complexity: O(n).
func InitialPlacementHyperbolic2d(n int) *Hyperbolic2d {
	d := NewHyperbolic2d(n)
	dt := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		d.coords[2*i] = 0.5 * math.Cos(float64(i)*dt)
		d.coords[2*i+1] = 0.5 * math.Sin(float64(i)*dt)
	}

	return d
}

// Len returns the number of embedded nodes.
func (d *Hyperbolic2d) Len() int { return d.n }

// Dimension returns 2.
func (d *Hyperbolic2d) Dimension() int { return 2 }

// X returns the x-coordinate of node u, or ok=false when u is unknown.
func (d *Hyperbolic2d) X(u int) (float64, bool) {
	if u < 0 || u >= d.n {
		return 0, false
	}

	return d.coords[2*u], true
}

// Y returns the y-coordinate of node u, or ok=false when u is unknown.
func (d *Hyperbolic2d) Y(u int) (float64, bool) {
	if u < 0 || u >= d.n {
		return 0, false
	}

	return d.coords[2*u+1], true
}

// SetX overwrites the x-coordinate of node u; silent no-op out of
// range. The disk invariant is NOT enforced here: callers may place a
// point outside the disk, after which distances against it are
// undefined (infinite).
func (d *Hyperbolic2d) SetX(u int, v float64) bool {
	if u < 0 || u >= d.n {
		return false
	}
	d.coords[2*u] = v

	return true
}

// SetY overwrites the y-coordinate of node u; silent no-op out of
// range. Same non-clamping contract as SetX.
func (d *Hyperbolic2d) SetY(u int, v float64) bool {
	if u < 0 || u >= d.n {
		return false
	}
	d.coords[2*u+1] = v

	return true
}

// SetPositions bulk-loads (x, y) rows, one per node. Returns
// ErrPositionShape on a row count or width mismatch.
func (d *Hyperbolic2d) SetPositions(rows [][]float64) error {
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

// Recenter Möbius-translates the whole drawing so node u lands on the
// disk center, preserving all hyperbolic distances. No-op for an
// unknown node. Complexity: O(n).
func (d *Hyperbolic2d) Recenter(u int) {
	if u < 0 || u >= d.n {
		return
	}
	cx, cy := d.coords[2*u], d.coords[2*u+1]
	zx, zy := hypToTangent(0, 0, cx, cy)
	for i := 0; i < d.n; i++ {
		// position += delta, i.e. fromTangent(p, -delta)
		x, y := hypFromTangent(d.coords[2*i], d.coords[2*i+1], -zx, -zy)
		d.coords[2*i], d.coords[2*i+1] = x, y
	}
}

// EdgeSegments returns the single straight chord from u to v in disk
// coordinates, or ok=false when either node is unknown.
func (d *Hyperbolic2d) EdgeSegments(u, v int) ([]Segment, bool) {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return nil, false
	}

	return []Segment{{
		P: Point{X: d.coords[2*u], Y: d.coords[2*u+1]},
		Q: Point{X: d.coords[2*v], Y: d.coords[2*v+1]},
	}}, true
}

// Delta writes the tangent vector at p_i toward p_j into dst; its norm
// is the Poincaré distance 2·atanh of the Möbius-translated radius.
// When either point sits on or outside the disk boundary the metric
// denominator degenerates and the result carries ±Inf or NaN —
// deliberately not repaired.
func (d *Hyperbolic2d) Delta(i, j int, dst []float64) float64 {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return math.NaN()
	}
	dst[0], dst[1] = hypToTangent(
		d.coords[2*i], d.coords[2*i+1],
		d.coords[2*j], d.coords[2*j+1],
	)

	return math.Hypot(dst[0], dst[1])
}

// Shift moves node i along the hyperbolic geodesic by s·delta, pulling
// the result back inside radius hypPullback so optimizer steps cannot
// escape the disk.
func (d *Hyperbolic2d) Shift(i int, delta []float64, s float64) {
	if i < 0 || i >= d.n {
		return
	}
	x, y := hypFromTangent(d.coords[2*i], d.coords[2*i+1], -s*delta[0], -s*delta[1])
	d.coords[2*i], d.coords[2*i+1] = x, y
}

// hypToTangent maps y into the tangent space at x: a Möbius translation
// carrying x to the origin, followed by scaling the direction to the
// hyperbolic length ln((1+r)/(1-r)) = 2·atanh(r). Coincident points map
// to the zero vector; boundary radii degenerate to ±Inf/NaN components.
func hypToTangent(x0, x1, y0, y1 float64) (float64, float64) {
	dx := y0 - x0
	dy := y1 - x1
	dr := 1 - x0*y0 - x1*y1
	di := x1*y0 - x0*y1
	den := dr*dr + di*di
	zx := (dr*dx + di*dy) / den
	zy := (dr*dy - di*dx) / den
	zn := math.Hypot(zx, zy)
	if zn < hypEps {
		return 0, 0
	}
	e := math.Log((1 + zn) / (1 - zn))

	return zx / zn * e, zy / zn * e
}

// hypFromTangent maps the tangent vector z at x back onto the disk: the
// inverse scaling of hypToTangent followed by the Möbius translation
// carrying the origin back to x, with a final pullback to radius
// hypPullback.
func hypFromTangent(x0, x1, z0, z1 float64) (float64, float64) {
	zn := math.Hypot(z0, z1)
	var yx, yy float64
	switch {
	case zn < hypEps:
		yx, yy = 0, 0
	case math.IsInf(math.Exp(zn), 1):
		yx, yy = z0/zn, z1/zn
	default:
		e := math.Abs((1 - math.Exp(zn)) / (1 + math.Exp(zn)))
		yx, yy = z0/zn*e, z1/zn*e
	}
	dx := -yx - x0
	dy := -yy - x1
	dr := -1 - x0*yx - x1*yy
	di := x1*yx - x0*yy
	den := dr*dr + di*di
	rx := (dr*dx + di*dy) / den
	ry := (dr*dy - di*dx) / den
	if math.Hypot(rx, ry) < hypPullback {
		return rx, ry
	}

	return rx * hypPullback, ry * hypPullback
}
