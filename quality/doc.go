// Package quality scores finished layouts. Each metric reads a Drawing
// (and, where relevant, the target distances it was optimized against)
// without mutating anything, so metrics can run at any point of an
// optimization to track convergence.
//
// All metrics are "lower is better" penalty sums:
//
//   - Stress — squared relative error between realized and target
//     distance over every finite node pair; the objective SGD minimizes.
//   - IdealEdgeLengths — the same error restricted to direct edges.
//   - NodeResolution — penalty for node pairs packed closer than the
//     1/√n fraction of the layout diameter.
//
// Complexity is O(n²·dim) for the pairwise metrics and O(E·dim) for
// IdealEdgeLengths.
package quality
