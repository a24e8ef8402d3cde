// Package sgd implements stochastic gradient descent graph layout: the
// optimizer iteratively moves pairs of nodes in a drawing so their
// geometric distance approaches the graph-theoretic target distance,
// under a decaying step-size schedule.
//
// The family:
//
//   - FullSgd   — one term per finite-distance unordered node pair.
//     Exact but O(n²) memory and per-epoch time; fine up to a few
//     thousand nodes.
//   - SparseSgd — terms pair every node with a small set of pivot
//     (landmark) nodes chosen by max-min random sampling, plus all
//     direct edges. O(n·h) memory/time; trades exactness for scale.
//   - DistanceAdjustedSgd — wraps either of the above and re-blends
//     target distances toward the current geometric distances after
//     every epoch, for non-stationary objectives such as overlap
//     counteraction.
//
// One epoch (Apply) walks the term list once; for each term (i, j, d, w)
// it computes the current geodesic distance between i and j in the
// drawing, bounds the step as mu = min(1, eta·w), and moves both nodes
// symmetrically along the geodesic so their distance closes a mu
// fraction of the gap toward d. Per-pair update order matters, so
// Shuffle reorders the term list between epochs to average out
// sequencing bias.
//
// Weights default to w = 1/d², which ties the scheduler's derived step
// bounds to the data: etaMax = 1/wMin and etaMin = eps/wMax =
// eps·min(d)². Schedulers decay eta from etaMax to etaMin over tMax
// iterations with constant, linear, quadratic, exponential or
// reciprocal shape, and Run drives a caller-supplied step callback
// synchronously.
//
// Everything is deterministic: an Rng is explicit in every call that
// needs randomness, and two runs with identically seeded Rngs and the
// same call sequence produce bit-identical trajectories. Nothing in
// this package is safe for concurrent use of one optimizer or drawing;
// run independent optimizer+drawing+Rng triples per goroutine.
//
// Errors:
//
//	ErrNilGraph          – a nil *graph.Graph was supplied.
//	ErrNilDistanceMatrix – a nil distance matrix was supplied.
//	ErrNoPivotCandidate  – pivot sampling ran out of positive-distance
//	                       candidates (graph smaller than requested
//	                       pivot count and fully covered).
//	ErrBadPivotCount     – requested pivot count is not positive.
package sgd
