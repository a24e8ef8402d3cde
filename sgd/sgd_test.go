package sgd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/gen"
	"github.com/katalvlaran/lvldraw/quality"
	"github.com/katalvlaran/lvldraw/sgd"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// TestRng_Determinism verifies that equal seeds reproduce the exact
// draw sequence and different seeds diverge.
func TestRng_Determinism(t *testing.T) {
	a, b := sgd.NewRng(42), sgd.NewRng(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000), "same seed, same stream")
	}

	c := sgd.NewRng(7)
	same := true
	for i := 0; i < 20; i++ {
		if a.IntN(1000) != c.IntN(1000) {
			same = false
		}
	}
	assert.False(t, same, "different seeds should diverge")
}

// TestFullSgd_TermConstruction verifies one term per reachable pair
// with w = 1/d².
func TestFullSgd_TermConstruction(t *testing.T) {
	g := gen.Path(3) // distances 1, 1, 2
	opt, err := sgd.NewFullSgd(g, shortestpath.UnitLength)
	require.NoError(t, err)

	terms := opt.Terms()
	require.Len(t, terms, 3, "three unordered pairs")
	for _, term := range terms {
		assert.Less(t, term.I, term.J, "pairs stored with i < j")
		assert.InDelta(t, 1/(term.D*term.D), term.W, 1e-12, "default weighting 1/d²")
	}
}

// TestFullSgd_SkipsDisconnectedPairs verifies that unreachable pairs
// contribute no term.
func TestFullSgd_SkipsDisconnectedPairs(t *testing.T) {
	g := gen.Path(2)
	g.AddNodes(2) // two isolated nodes
	opt, err := sgd.NewFullSgd(g, shortestpath.UnitLength)
	require.NoError(t, err)
	assert.Len(t, opt.Terms(), 1, "only the connected pair remains")
}

// TestFullSgd_ReducesStressOnCycle verifies the optimizer's core
// promise: stress decreases from the spiral seed on a ring graph.
func TestFullSgd_ReducesStressOnCycle(t *testing.T) {
	g := gen.Cycle(10)
	m, err := shortestpath.AllSourcesDijkstra(g, shortestpath.UnitLength)
	require.NoError(t, err)
	opt, err := sgd.NewFullSgdWithDistanceMatrix(m)
	require.NoError(t, err)

	d := drawing.InitialPlacement2d(10)
	before := quality.Stress(d, m)

	r := sgd.NewRng(1)
	sched := opt.Scheduler(sgd.DecayExponential, 100, 0.1)
	sched.Run(func(eta float64) {
		opt.Shuffle(r)
		opt.Apply(d, eta)
	})

	after := quality.Stress(d, m)
	assert.Less(t, after, before, "optimization must reduce stress")
	assert.Less(t, after, 0.3*before, "a ring converges far below the seed")

	// A uniform cycle should settle into a near-circular shape: node
	// radii around the centroid vary by well under 20%.
	var cx, cy float64
	for i := 0; i < 10; i++ {
		x, _ := d.X(i)
		y, _ := d.Y(i)
		cx += x / 10
		cy += y / 10
	}
	radii := make([]float64, 10)
	for i := 0; i < 10; i++ {
		x, _ := d.X(i)
		y, _ := d.Y(i)
		radii[i] = math.Hypot(x-cx, y-cy)
	}
	spread := stat.StdDev(radii, nil) / stat.Mean(radii, nil)
	assert.Less(t, spread, 0.2, "radii spread stays within 20% of the mean")
}

// TestSgd_DeterministicTrajectories verifies bit-identical layouts for
// identical seeds and inputs.
func TestSgd_DeterministicTrajectories(t *testing.T) {
	run := func(seed int64) []float64 {
		g := gen.Grid(3, 4)
		opt, err := sgd.NewFullSgd(g, shortestpath.UnitLength)
		require.NoError(t, err)
		d := drawing.InitialPlacement2d(g.NodeCount())
		r := sgd.NewRng(seed)
		sched := opt.Scheduler(sgd.DecayExponential, 30, 0.1)
		sched.Run(func(eta float64) {
			opt.Shuffle(r)
			opt.Apply(d, eta)
		})
		out := make([]float64, 0, 2*g.NodeCount())
		for i := 0; i < g.NodeCount(); i++ {
			x, _ := d.X(i)
			y, _ := d.Y(i)
			out = append(out, x, y)
		}

		return out
	}

	assert.Equal(t, run(99), run(99), "equal seeds, equal layouts")
}

// TestSparseSgd_PivotCountAndTerms verifies pivot capping and that
// direct edges always survive as terms.
func TestSparseSgd_PivotCountAndTerms(t *testing.T) {
	g := gen.Cycle(8)
	r := sgd.NewRng(3)
	opt, err := sgd.NewSparseSgd(g, shortestpath.UnitLength, 100, r)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(opt.Terms()), g.EdgeCount(), "edge terms always present")

	_, err = sgd.NewSparseSgd(nil, shortestpath.UnitLength, 3, r)
	assert.ErrorIs(t, err, sgd.ErrNilGraph)
}

// TestSparseSgd_ReducesStress verifies the approximation still lays out
// a ring, with pivots covering a strict subset of the nodes.
func TestSparseSgd_ReducesStress(t *testing.T) {
	g := gen.Cycle(20)
	m, err := shortestpath.AllSourcesDijkstra(g, shortestpath.UnitLength)
	require.NoError(t, err)

	r := sgd.NewRng(5)
	opt, err := sgd.NewSparseSgd(g, shortestpath.UnitLength, 5, r)
	require.NoError(t, err)

	d := drawing.InitialPlacement2d(20)
	before := quality.Stress(d, m)
	sched := opt.Scheduler(sgd.DecayExponential, 60, 0.1)
	sched.Run(func(eta float64) {
		opt.Shuffle(r)
		opt.Apply(d, eta)
	})
	assert.Less(t, quality.Stress(d, m), before, "sparse terms still reduce full stress")
}

// TestSparseSgd_MatchesFullWithAllPivots verifies that with every node
// serving as a pivot the sparse approximation converges to essentially
// the same stress as the full model on a small ring.
func TestSparseSgd_MatchesFullWithAllPivots(t *testing.T) {
	g := gen.Cycle(12)
	m, err := shortestpath.AllSourcesDijkstra(g, shortestpath.UnitLength)
	require.NoError(t, err)

	optimize := func(opt sgd.Sgd) float64 {
		d := drawing.InitialPlacement2d(12)
		r := sgd.NewRng(7)
		sched := opt.Scheduler(sgd.DecayExponential, 100, 0.1)
		sched.Run(func(eta float64) {
			opt.Shuffle(r)
			opt.Apply(d, eta)
		})

		return quality.Stress(d, m)
	}

	full, err := sgd.NewFullSgdWithDistanceMatrix(m)
	require.NoError(t, err)
	sparse, err := sgd.NewSparseSgd(g, shortestpath.UnitLength, 12, sgd.NewRng(7))
	require.NoError(t, err)

	fullStress := optimize(full)
	sparseStress := optimize(sparse)
	assert.InDelta(t, 1.0, sparseStress/fullStress, 0.25,
		"all-pivot sparse matches the full-model stress")
}

// TestChoosePivot_Determinism verifies that pivot sampling is driven
// entirely by the supplied Rng.
func TestChoosePivot_Determinism(t *testing.T) {
	g := gen.Grid(4, 4)
	p1, _, err := sgd.ChoosePivot(g, shortestpath.UnitLength, 4, sgd.NewRng(11))
	require.NoError(t, err)
	p2, _, err := sgd.ChoosePivot(g, shortestpath.UnitLength, 4, sgd.NewRng(11))
	require.NoError(t, err)
	assert.Equal(t, p1, p2, "same seed, same pivots")

	seen := map[int]bool{}
	for _, u := range p1 {
		assert.False(t, seen[u], "pivots are distinct")
		seen[u] = true
	}
}

// TestChoosePivot_Validation covers the pivot-count sentinel.
func TestChoosePivot_Validation(t *testing.T) {
	g := gen.Path(3)
	_, _, err := sgd.ChoosePivot(g, shortestpath.UnitLength, 0, sgd.NewRng(1))
	assert.ErrorIs(t, err, sgd.ErrBadPivotCount)

	_, _, err = sgd.ChoosePivot(nil, shortestpath.UnitLength, 1, sgd.NewRng(1))
	assert.ErrorIs(t, err, sgd.ErrNilGraph)
}

// TestUpdateDistanceAndWeight verifies the term rewrite hooks.
func TestUpdateDistanceAndWeight(t *testing.T) {
	g := gen.Path(2)
	opt, err := sgd.NewFullSgd(g, shortestpath.UnitLength)
	require.NoError(t, err)

	opt.UpdateDistance(func(_, _ int, d, _ float64) float64 { return 2 * d })
	assert.Equal(t, 2.0, opt.Terms()[0].D)

	opt.UpdateWeight(func(_, _ int, d, _ float64) float64 { return 1 / (d * d) })
	assert.Equal(t, 0.25, opt.Terms()[0].W)
}

// TestApply_SkipsCoincidentPairs verifies that a fully collapsed
// drawing survives an epoch without NaN poisoning.
func TestApply_SkipsCoincidentPairs(t *testing.T) {
	g := gen.Path(3)
	opt, err := sgd.NewFullSgd(g, shortestpath.UnitLength)
	require.NoError(t, err)

	d := drawing.NewEuclidean2d(3) // all nodes at the origin
	opt.Apply(d, 1)
	for i := 0; i < 3; i++ {
		x, _ := d.X(i)
		y, _ := d.Y(i)
		assert.False(t, math.IsNaN(x) || math.IsNaN(y), "coincident pairs are skipped")
	}
}

// TestDistanceAdjustedSgd_BlendsAndClamps verifies the adjustment never
// stretches targets past the graph distance and refreshes weights.
func TestDistanceAdjustedSgd_BlendsAndClamps(t *testing.T) {
	g := gen.Path(3)
	inner, err := sgd.NewFullSgd(g, shortestpath.UnitLength)
	require.NoError(t, err)
	original := make(map[[2]int]float64)
	for _, term := range inner.Terms() {
		original[[2]int{term.I, term.J}] = term.D
	}

	opt := sgd.NewDistanceAdjustedSgd(inner)
	assert.Equal(t, 0.5, opt.Alpha, "default alpha")
	assert.Equal(t, 0.0, opt.MinimumDistance, "default floor")

	d := drawing.InitialPlacement2d(3)
	opt.ApplyWithDistanceAdjustment(d, 0.1)

	for _, term := range opt.Terms() {
		d2 := original[[2]int{term.I, term.J}]
		assert.LessOrEqual(t, term.D, d2, "adjusted target never exceeds the original")
		assert.GreaterOrEqual(t, term.D, 0.0)
		assert.InDelta(t, 1/(term.D*term.D), term.W, 1e-9, "weights refreshed to 1/d²")
	}
}
