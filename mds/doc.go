// Package mds seeds layouts by multidimensional scaling: it turns
// graph-theoretic distances into Euclidean coordinates analytically, so
// SGD refinement starts from a globally sensible shape instead of a
// spiral.
//
//   - ClassicalMds double-centers the full squared-distance matrix and
//     reads coordinates off its top eigenpairs. Exact, O(n²) memory and
//     an O(n³) eigendecomposition — small and medium graphs.
//   - PivotMds double-centers only the node×pivot distance rectangle
//     and projects through its singular value decomposition, scaling to
//     graphs where a full matrix is unaffordable.
//
// Both load their result into the drawing package's Euclidean types.
// Distances must be finite: a disconnected pair carries an infinite
// entry whose square poisons the centered kernel, and the resulting
// coordinates degenerate to NaN rather than being silently repaired.
// Run layouts per connected component, or use pivots within one
// component.
package mds
