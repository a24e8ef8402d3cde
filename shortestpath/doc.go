// Package shortestpath computes the all-pairs graph-theoretic distances
// that layout optimizers use as target distances, and defines the dense
// Matrix (and landmark SubMatrix) tables that hold them.
//
// Producers:
//
//   - AllSourcesBFS      — unit edge lengths, one BFS per node.
//     Time O(V·(V+E)), the right tool for unweighted graphs.
//   - AllSourcesDijkstra — weighted lengths, one Dijkstra per node.
//     Time O(V·(V+E)·log V).
//   - WarshallFloyd      — dense dynamic program, Time O(V³), Memory O(V²);
//     competitive for small dense graphs.
//   - DijkstraFrom / BFSFrom — a single source row, for landmark schemes.
//   - MultiSourceDijkstra — rows for a set of sources into a SubMatrix,
//     the input of pivot-based (sparse) SGD.
//
// Directed graphs yield asymmetric tables: Get(i,j) may be finite while
// Get(j,i) is +Inf when j cannot reach i. Unreachable ordered pairs are
// always +Inf, never an error.
//
// Matrix contract (shared with SubMatrix):
//
//	Get(i, j) → (distance, true) or (0, false) for out-of-range indices
//	Set(i, j, v) → true, or false (silent no-op) for out-of-range indices
//
// Out-of-range access never panics; absent values are reported through the
// boolean, matching the accessor contract of package drawing.
//
// Errors (construction-time only):
//
//	ErrNilGraph       – a nil *graph.Graph was supplied.
//	ErrSourceNotFound – a source node index is out of range.
package shortestpath
