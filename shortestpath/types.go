package shortestpath

import "errors"

// Sentinel errors for shortest-path producers.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("shortestpath: graph is nil")

	// ErrSourceNotFound indicates a source node index outside 0..n-1.
	ErrSourceNotFound = errors.New("shortestpath: source node not found")
)

// EdgeLengthFunc maps an edge index to its target length. Producers call
// it once per relaxed edge; it must return a positive finite value.
type EdgeLengthFunc func(e int) float64

// UnitLength treats every edge as length 1, the conventional choice for
// unweighted graphs.
func UnitLength(int) float64 { return 1 }
