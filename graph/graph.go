package graph

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node index
	// outside the range 0..NodeCount()-1.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrBadWeight indicates an edge weight that is zero, negative,
	// NaN or infinite. Layout algorithms derive 1/w² weights, so edge
	// lengths must be positive and finite.
	ErrBadWeight = errors.New("graph: edge weight must be positive and finite")
)

// Edge is a connection between two node indices with a positive length.
type Edge struct {
	// ID is the dense edge index, assigned by AddEdge in order.
	ID int

	// From is the source node index.
	From int

	// To is the destination node index.
	To int

	// Weight is the edge length used as the target distance between
	// the endpoints.
	Weight float64
}

// Option configures a Graph before first use.
type Option func(*Graph)

// WithDirected makes every edge one-way (From→To). The default is
// undirected: edges are traversed in both directions and shortest-path
// producers emit symmetric distances.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is a mutable, index-based graph.
//
// Nodes are implicit: AddNode grows the node count and returns the new
// index. Edges are stored in insertion order; per-node adjacency keeps
// edge indices so traversal can recover both neighbor and length.
type Graph struct {
	directed bool

	nodeCount int
	edges     []Edge

	// out[u] holds indices into edges for edges leaving u
	// (plus, when undirected, edges entering u).
	out [][]int
}

// New creates an empty Graph. The default is undirected.
// Complexity: O(1).
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether the graph was built with WithDirected.
func (g *Graph) Directed() bool { return g.directed }

// AddNode appends one node and returns its index.
// Complexity: amortized O(1).
func (g *Graph) AddNode() int {
	id := g.nodeCount
	g.nodeCount++
	g.out = append(g.out, nil)

	return id
}

// AddNodes appends k nodes and returns their indices in order.
// Complexity: O(k).
func (g *Graph) AddNodes(k int) []int {
	ids := make([]int, k)
	for i := range ids {
		ids[i] = g.AddNode()
	}

	return ids
}

// AddEdge connects u and v with length w and returns the new edge index.
// Self-loops are permitted but contribute nothing to a layout (the target
// distance of a node to itself is always zero).
// Returns ErrNodeNotFound for an out-of-range endpoint and ErrBadWeight
// for a non-positive or non-finite length.
// Complexity: amortized O(1).
func (g *Graph) AddEdge(u, v int, w float64) (int, error) {
	if !g.HasNode(u) || !g.HasNode(v) {
		return 0, ErrNodeNotFound
	}
	if w <= 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		return 0, ErrBadWeight
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge{ID: id, From: u, To: v, Weight: w})
	g.out[u] = append(g.out[u], id)
	if !g.directed && u != v {
		g.out[v] = append(g.out[v], id)
	}

	return id, nil
}

// HasNode reports whether u is a valid node index.
func (g *Graph) HasNode(u int) bool { return u >= 0 && u < g.nodeCount }

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all node indices in ascending order. Complexity: O(V).
func (g *Graph) Nodes() []int {
	nodes := make([]int, g.nodeCount)
	for i := range nodes {
		nodes[i] = i
	}

	return nodes
}

// Edges returns a copy of all edges in insertion order. Complexity: O(E).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return edges
}

// EdgeEndpoints returns the endpoints of edge e, or ok=false when e is
// not a valid edge index. Complexity: O(1).
func (g *Graph) EdgeEndpoints(e int) (from, to int, ok bool) {
	if e < 0 || e >= len(g.edges) {
		return 0, 0, false
	}

	return g.edges[e].From, g.edges[e].To, true
}

// EdgeWeight returns the length of edge e, or ok=false when e is not a
// valid edge index. Complexity: O(1).
func (g *Graph) EdgeWeight(e int) (w float64, ok bool) {
	if e < 0 || e >= len(g.edges) {
		return 0, false
	}

	return g.edges[e].Weight, true
}

// OutEdges returns the indices of edges traversable from u, sorted
// ascending, or nil when u is out of range. For undirected graphs this
// includes edges added in either direction.
// Complexity: O(d·log d).
func (g *Graph) OutEdges(u int) []int {
	if !g.HasNode(u) {
		return nil
	}
	ids := make([]int, len(g.out[u]))
	copy(ids, g.out[u])
	sort.Ints(ids)

	return ids
}

// Neighbors returns the node indices reachable from u in one hop, unique
// and sorted ascending, or nil when u is out of range.
// Complexity: O(d·log d).
func (g *Graph) Neighbors(u int) []int {
	if !g.HasNode(u) {
		return nil
	}
	seen := make(map[int]struct{}, len(g.out[u]))
	nbrs := make([]int, 0, len(g.out[u]))
	for _, e := range g.out[u] {
		// pick the endpoint opposite to u (loops stay at u)
		v := g.edges[e].To
		if v == u {
			v = g.edges[e].From
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		nbrs = append(nbrs, v)
	}
	sort.Ints(nbrs)

	return nbrs
}
