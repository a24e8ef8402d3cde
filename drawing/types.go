package drawing

import "errors"

// ErrPositionShape indicates a bulk position load whose row count does
// not match the node count, or whose row width does not match the
// drawing dimension.
var ErrPositionShape = errors.New("drawing: position matrix shape mismatch")

// Drawing is the capability contract shared by all five coordinate
// spaces. The SGD optimizers speak only this interface.
//
// Node identifiers are dense indices 0..Len()-1, matching the graph
// container. Delta and Shift are the two halves of one geodesic step:
// Delta measures, Shift moves.
type Drawing interface {
	// Len returns the number of embedded nodes.
	Len() int

	// Dimension returns the coordinate dimensionality (2 for all 2-D
	// variants).
	Dimension() int

	// Delta writes the tangent-space difference between the embedded
	// positions of i and j into dst (which must have length
	// Dimension()) and returns its norm — the geodesic distance
	// between the two points. An out-of-range index yields NaN and
	// leaves dst untouched.
	Delta(i, j int, dst []float64) float64

	// Shift moves node i along the geometry's geodesic by s·delta,
	// where delta is a tangent-space vector as produced by Delta.
	// This is the geometry's "position += s·delta". Out-of-range
	// indices are a silent no-op.
	Shift(i int, delta []float64, s float64)
}

// Point is a 2-D coordinate pair used by edge segment reporting.
type Point struct {
	X, Y float64
}

// Segment is one drawable straight piece of an edge.
type Segment struct {
	P, Q Point
}
