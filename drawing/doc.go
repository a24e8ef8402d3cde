// Package drawing maps node indices to points in one of five metric
// spaces and implements the geometry-specific distance and geodesic
// update math that the SGD optimizers drive.
//
// Variants:
//
//   - Euclidean    — flat n-dimensional space; linear updates.
//   - Euclidean2d  — flat 2-D; adds Centralize, ClampRegion, EdgeSegments
//     and the concentric initial placement used as the default layout seed.
//   - Hyperbolic2d — Poincaré disk model; points must satisfy x²+y² < 1.
//     Updates travel along hyperbolic geodesics via Möbius translation
//     to and from the tangent space at a point.
//   - Spherical2d  — (longitude, latitude) in radians on the unit sphere;
//     distances are great-circle angles, updates rotate along great
//     circles (Rodrigues rotation) and never leave the sphere.
//   - Torus2d      — flat unit torus; every coordinate write is wrapped
//     into [0,1) by floor-mod, distances use the minimum image over the
//     3×3 shift neighborhood, and EdgeSegments splits a wrapping edge
//     into up to three drawable pieces.
//
// Shared capability contract (the Drawing interface):
//
//	Len() / Dimension()
//	Delta(i, j, dst) — tangent-space difference of the two embedded
//	                   points; the returned norm is the geodesic distance.
//	Shift(i, delta, s) — geodesic move of node i by s·delta, the "+="
//	                   of the geometry.
//
// Accessor semantics, uniform across variants: reading a non-existent
// node or axis returns ok=false, writing one is a silent no-op — never a
// panic or error. The node set is fixed at construction; growing the
// source graph does not retroactively extend a Drawing.
//
// Degenerate numeric states are deliberate "garbage in, garbage out":
// a hyperbolic point written outside the unit disk is allowed (writes are
// not clamped) and subsequent distances against it come back +Inf or NaN
// rather than being silently repaired.
//
// Errors:
//
//	ErrPositionShape – bulk position load with a row count or row width
//	                   that does not match the drawing (construction-time
//	                   violation, reported immediately).
package drawing
