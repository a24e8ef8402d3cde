package drawing

import "math"

// Spherical2d is a drawing on the unit sphere. Points are stored as
// (longitude, latitude) in radians, with longitude periodic on [-π,π]
// produced by atan2 and latitude measured from the pole (so acos keeps
// it in [0,π] after updates). Distances are great-circle angles and
// updates rotate positions along great circles, never leaving the
// sphere.
type Spherical2d struct {
	n      int
	coords []float64 // pairs (longitude, latitude), length 2n
}

// NewSpherical2d creates a drawing of n nodes, all at (0, 0).
// Complexity: O(n).
func NewSpherical2d(n int) *Spherical2d {
	return &Spherical2d{n: n, coords: make([]float64, 2*n)}
}

// InitialPlacementSpherical2d spaces n nodes evenly in longitude along
// the latitude-π/4 parallel. Complexity: O(n).
func InitialPlacementSpherical2d(n int) *Spherical2d {
	d := NewSpherical2d(n)
	dt := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		d.coords[2*i] = dt * float64(i)
		d.coords[2*i+1] = math.Pi / 4
	}

	return d
}

// Len returns the number of embedded nodes.
func (d *Spherical2d) Len() int { return d.n }

// Dimension returns 2.
func (d *Spherical2d) Dimension() int { return 2 }

// Lon returns the longitude of node u, or ok=false when u is unknown.
func (d *Spherical2d) Lon(u int) (float64, bool) {
	if u < 0 || u >= d.n {
		return 0, false
	}

	return d.coords[2*u], true
}

// Lat returns the latitude of node u, or ok=false when u is unknown.
func (d *Spherical2d) Lat(u int) (float64, bool) {
	if u < 0 || u >= d.n {
		return 0, false
	}

	return d.coords[2*u+1], true
}

// SetLon overwrites the longitude of node u; silent no-op out of range.
func (d *Spherical2d) SetLon(u int, v float64) bool {
	if u < 0 || u >= d.n {
		return false
	}
	d.coords[2*u] = v

	return true
}

// SetLat overwrites the latitude of node u; silent no-op out of range.
func (d *Spherical2d) SetLat(u int, v float64) bool {
	if u < 0 || u >= d.n {
		return false
	}
	d.coords[2*u+1] = v

	return true
}

// SetPositions bulk-loads (longitude, latitude) rows, one per node.
// Returns ErrPositionShape on a row count or width mismatch.
func (d *Spherical2d) SetPositions(rows [][]float64) error {
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

// EdgeSegments returns the single segment from u to v in (longitude,
// latitude) coordinates, or ok=false when either node is unknown.
func (d *Spherical2d) EdgeSegments(u, v int) ([]Segment, bool) {
	if u < 0 || u >= d.n || v < 0 || v >= d.n {
		return nil, false
	}

	return []Segment{{
		P: Point{X: d.coords[2*u], Y: d.coords[2*u+1]},
		Q: Point{X: d.coords[2*v], Y: d.coords[2*v+1]},
	}}, true
}

// Delta writes the tangent vector at p_i toward p_j into dst; its norm
// is the great-circle angle acos of the clamped dot product of the two
// unit-sphere Cartesian forms.
func (d *Spherical2d) Delta(i, j int, dst []float64) float64 {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return math.NaN()
	}
	dst[0], dst[1] = sphToTangent(
		d.coords[2*i], d.coords[2*i+1],
		d.coords[2*j], d.coords[2*j+1],
	)

	return math.Hypot(dst[0], dst[1])
}

// Shift rotates node i along the great circle indicated by s·delta.
// The rotation axis lies in the tangent plane, so the point stays on
// the unit sphere by construction.
func (d *Spherical2d) Shift(i int, delta []float64, s float64) {
	if i < 0 || i >= d.n {
		return
	}
	lon, lat := sphFromTangent(d.coords[2*i], d.coords[2*i+1], -s*delta[0], -s*delta[1])
	d.coords[2*i], d.coords[2*i+1] = lon, lat
}

// sphToTangent projects the great-circle arc from x=(x0,x1) to
// y=(y0,y1) onto the longitude/latitude tangent directions at x, scaled
// to the arc length.
func sphToTangent(x0, x1, y0, y1 float64) (float64, float64) {
	ux := [3]float64{-math.Sin(x0) * math.Sin(x1), 0, math.Cos(x0) * math.Sin(x1)}
	vx := [3]float64{math.Cos(x0) * math.Cos(x1), -math.Sin(x1), math.Sin(x0) * math.Cos(x1)}
	ey := [3]float64{math.Cos(y0) * math.Sin(y1), math.Cos(y1), math.Sin(y0) * math.Sin(y1)}
	dot := math.Sin(x1)*math.Sin(y1)*math.Cos(y0-x0) + math.Cos(x1)*math.Cos(y1)
	d := math.Acos(clamp(dot, -1, 1))

	return d * (ux[0]*ey[0] + ux[1]*ey[1] + ux[2]*ey[2]),
		d * (vx[0]*ey[0] + vx[1]*ey[1] + vx[2]*ey[2])
}

// sphFromTangent rotates the Cartesian form of x around the in-plane
// axis perpendicular to z (Rodrigues rotation) by the arc length of z,
// then converts back to (longitude, latitude). A zero tangent vector
// leaves x unchanged.
func sphFromTangent(x0, x1, z0, z1 float64) (float64, float64) {
	t := -math.Hypot(z0, z1)
	if t == 0 {
		return x0, x1
	}
	ux := [3]float64{-math.Sin(x0) * math.Sin(x1), 0, math.Cos(x0) * math.Sin(x1)}
	vx := [3]float64{math.Cos(x0) * math.Cos(x1), -math.Sin(x1), math.Sin(x0) * math.Cos(x1)}
	p0, p1 := z1, -z0
	n := [3]float64{
		p0*ux[0] + p1*vx[0],
		p0*ux[1] + p1*vx[1],
		p0*ux[2] + p1*vx[2],
	}
	nn := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	n[0], n[1], n[2] = n[0]/nn, n[1]/nn, n[2]/nn

	ex := [3]float64{math.Cos(x0) * math.Sin(x1), math.Cos(x1), math.Sin(x0) * math.Sin(x1)}
	c, s := math.Cos(t), math.Sin(t)
	ey := [3]float64{
		(n[0]*n[0]*(1-c)+c)*ex[0] + (n[0]*n[1]*(1-c)-n[2]*s)*ex[1] + (n[2]*n[0]*(1-c)+n[1]*s)*ex[2],
		(n[0]*n[1]*(1-c)+n[2]*s)*ex[0] + (n[1]*n[1]*(1-c)+c)*ex[1] + (n[1]*n[2]*(1-c)-n[0]*s)*ex[2],
		(n[2]*n[0]*(1-c)-n[1]*s)*ex[0] + (n[1]*n[2]*(1-c)+n[0]*s)*ex[1] + (n[2]*n[2]*(1-c)+c)*ex[2],
	}

	return math.Atan2(ey[2], ey[0]), math.Acos(clamp(ey[1], -1, 1))
}
