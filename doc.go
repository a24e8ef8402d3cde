// Package lvldraw computes spatial embeddings ("drawings") of graphs that
// minimize the discrepancy between graph-theoretic and geometric distances.
//
// 🚀 What is lvldraw?
//
//	A pure-Go graph drawing toolkit built around stochastic gradient descent:
//		• graph/        — minimal index-based graph container for layout input
//		• shortestpath/ — BFS / Dijkstra / Warshall–Floyd distance producers
//		                  and the dense DistanceMatrix they fill
//		• drawing/      — five interchangeable coordinate spaces:
//		                  Euclidean n-D & 2-D, hyperbolic (Poincaré disk),
//		                  spherical, toroidal
//		• sgd/          — Full, Sparse (pivot-sampled) and Distance-Adjusted
//		                  SGD optimizers plus decaying step-size schedulers
//		• mds/          — classical & pivot multidimensional scaling initializers
//		• quality/      — stress and related layout quality metrics
//		• gen/          — deterministic graph generators for tests & examples
//
// ✨ Why choose lvldraw?
//
//   - Deterministic – identical seeds reproduce identical layouts, bit for bit
//   - Scalable – pivot-based sparsification turns O(n²) epochs into O(n·k)
//   - Geometry-polymorphic – one optimizer, five metric spaces
//   - Pure Go – no cgo, no services, no I/O; everything is in-process
//
// Typical pipeline:
//
//	g     — build a graph (gen.Cycle, or your own via graph.New)
//	d     — shortestpath.AllSourcesDijkstra(g, length)
//	draw  — drawing.InitialPlacement2d(g)
//	opt   — sgd.NewFullSgdWithDistanceMatrix(d)
//	sched — opt.Scheduler(sgd.DecayExponential, 100, 0.1)
//	sched.Run(func(eta float64) {
//	    opt.Shuffle(rng)
//	    opt.Apply(draw, eta)
//	})
//
// Dive into each package's doc.go for the math, invariants and complexity.
//
//	go get github.com/katalvlaran/lvldraw
package lvldraw
