package sgd_test

import (
	"fmt"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/gen"
	"github.com/katalvlaran/lvldraw/quality"
	"github.com/katalvlaran/lvldraw/sgd"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// ExampleFullSgd lays out a ring graph: seed a spiral placement, derive
// a weight-driven exponential schedule, and alternate shuffle/apply for
// every scheduled learning rate. The stress of the result is a fraction
// of the seed's.
func ExampleFullSgd() {
	g := gen.Cycle(12)
	m, _ := shortestpath.AllSourcesDijkstra(g, shortestpath.UnitLength)
	opt, _ := sgd.NewFullSgdWithDistanceMatrix(m)

	d := drawing.InitialPlacement2d(g.NodeCount())
	before := quality.Stress(d, m)

	r := sgd.NewRng(42)
	sched := opt.Scheduler(sgd.DecayExponential, 100, 0.1)
	sched.Run(func(eta float64) {
		opt.Shuffle(r)
		opt.Apply(d, eta)
	})

	after := quality.Stress(d, m)
	fmt.Println("terms:", len(opt.Terms()))
	fmt.Println("improved:", after < 0.1*before)
	// Output:
	// terms: 66
	// improved: true
}

// ExampleSparseSgd scales the same pipeline down to pivot terms: five
// landmarks stand in for the full distance matrix.
func ExampleSparseSgd() {
	g := gen.Grid(6, 6)
	r := sgd.NewRng(7)
	opt, _ := sgd.NewSparseSgd(g, shortestpath.UnitLength, 5, r)

	d := drawing.InitialPlacement2d(g.NodeCount())
	sched := opt.Scheduler(sgd.DecayExponential, 60, 0.1)
	sched.Run(func(eta float64) {
		opt.Shuffle(r)
		opt.Apply(d, eta)
	})

	m, _ := shortestpath.AllSourcesDijkstra(g, shortestpath.UnitLength)
	seed := quality.Stress(drawing.InitialPlacement2d(g.NodeCount()), m)
	fmt.Println("improved:", quality.Stress(d, m) < seed)
	// Output:
	// improved: true
}

// ExampleScheduler shows the five decay shapes sharing one contract.
func ExampleScheduler() {
	for _, shape := range []sgd.Decay{
		sgd.DecayConstant,
		sgd.DecayLinear,
		sgd.DecayQuadratic,
		sgd.DecayExponential,
		sgd.DecayReciprocal,
	} {
		s := sgd.NewScheduler(shape, 3, 0.5, 2.0)
		steps := 0
		s.Run(func(float64) { steps++ })
		fmt.Printf("%s: %d steps\n", shape, steps)
	}
	// Output:
	// constant: 3 steps
	// linear: 3 steps
	// quadratic: 3 steps
	// exponential: 3 steps
	// reciprocal: 3 steps
}
