package gen

import "github.com/katalvlaran/lvldraw/graph"

// Cycle returns the n-node ring 0−1−…−(n−1)−0. A single node yields no
// edges.
func Cycle(n int) *graph.Graph {
	g := graph.New()
	g.AddNodes(n)
	if n < 3 {
		if n == 2 {
			edge(g, 0, 1)
		}

		return g
	}
	for i := 0; i < n; i++ {
		edge(g, i, (i+1)%n)
	}

	return g
}

// Path returns the n-node chain 0−1−…−(n−1).
func Path(n int) *graph.Graph {
	g := graph.New()
	g.AddNodes(n)
	for i := 0; i+1 < n; i++ {
		edge(g, i, i+1)
	}

	return g
}

// Complete returns the clique on n nodes.
func Complete(n int) *graph.Graph {
	g := graph.New()
	g.AddNodes(n)
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			edge(g, i, j)
		}
	}

	return g
}

// Grid returns the rows×cols lattice with 4-neighborhood edges; node
// (r, c) has index r·cols+c.
func Grid(rows, cols int) *graph.Graph {
	g := graph.New()
	g.AddNodes(rows * cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			u := r*cols + c
			if c+1 < cols {
				edge(g, u, u+1)
			}
			if r+1 < rows {
				edge(g, u, u+cols)
			}
		}
	}

	return g
}

// Star returns the n-node star with node 0 as the hub.
func Star(n int) *graph.Graph {
	g := graph.New()
	g.AddNodes(n)
	for i := 1; i < n; i++ {
		edge(g, 0, i)
	}

	return g
}

// edge adds a unit-weight edge; generators only emit valid endpoints,
// so the error is impossible here.
func edge(g *graph.Graph, u, v int) {
	_, _ = g.AddEdge(u, v, 1)
}
