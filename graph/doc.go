// Package graph provides the minimal, index-based graph container consumed
// by the layout pipeline: shortest-path producers read it to fill a
// DistanceMatrix, drawings size themselves from its node count, and the SGD
// optimizers read its edges during construction.
//
// Design:
//
//   - Nodes are dense integer indices 0..n-1, assigned by AddNode in order.
//     This keeps every downstream structure (distance matrices, coordinate
//     tables, term lists) a flat slice indexed by node.
//   - Edges carry a positive float64 length. Unit-length graphs simply pass
//     weight 1.
//   - Directed vs. undirected is a construction-time flag (WithDirected).
//     Undirected edges are traversed in both directions; directed edges
//     only from From to To.
//   - Iteration is deterministic: Nodes ascending, Edges in insertion
//     order, Neighbors sorted ascending. Determinism here is what makes
//     seeded layout runs reproducible end to end.
//
// The container is mutable while a pipeline is being assembled and is read
// only during optimization. It is not safe for concurrent mutation; run
// independent graph+drawing+optimizer triples per goroutine instead.
//
// Core methods:
//
//	AddNode() int                              // O(1)
//	AddNodes(k int) []int                      // O(k)
//	AddEdge(u, v int, w float64) (int, error)  // O(1)
//	NodeCount() int / EdgeCount() int          // O(1)
//	Nodes() []int                              // O(V)
//	Edges() []Edge                             // O(E)
//	EdgeEndpoints(e int) (int, int, bool)      // O(1)
//	Neighbors(u int) []int                     // O(d·log d)
//
// Errors:
//
//	ErrNodeNotFound – an endpoint index is outside 0..n-1.
//	ErrBadWeight    – edge weight is not a positive finite number.
package graph
