// Package gen builds the small deterministic graphs used throughout
// tests, benchmarks and examples: cycles, paths, cliques, grids and
// stars. Every generator returns a fresh undirected unit-weight
// *graph.Graph with nodes indexed 0..n−1 in construction order, so two
// calls with the same arguments are interchangeable.
package gen
