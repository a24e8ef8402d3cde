package sgd_test

import (
	"testing"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/gen"
	"github.com/katalvlaran/lvldraw/sgd"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// benchmarkApply measures one full-term epoch on an n-node ring.
func benchmarkApply(b *testing.B, n int) {
	g := gen.Cycle(n)
	opt, err := sgd.NewFullSgd(g, shortestpath.UnitLength)
	if err != nil {
		b.Fatalf("NewFullSgd failed: %v", err)
	}
	d := drawing.InitialPlacement2d(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opt.Apply(d, 0.1)
	}
}

func BenchmarkFullSgdApply_100(b *testing.B)  { benchmarkApply(b, 100) }
func BenchmarkFullSgdApply_1000(b *testing.B) { benchmarkApply(b, 1000) }

// BenchmarkSparseSgdConstruct measures term construction with pivots on
// a grid, the dominant setup cost on large graphs.
func BenchmarkSparseSgdConstruct(b *testing.B) {
	g := gen.Grid(40, 40)
	for i := 0; i < b.N; i++ {
		r := sgd.NewRng(int64(i))
		if _, err := sgd.NewSparseSgd(g, shortestpath.UnitLength, 30, r); err != nil {
			b.Fatalf("NewSparseSgd failed: %v", err)
		}
	}
}

// BenchmarkShuffle measures term-list reordering, paid once per epoch.
func BenchmarkShuffle(b *testing.B) {
	g := gen.Cycle(500)
	opt, err := sgd.NewFullSgd(g, shortestpath.UnitLength)
	if err != nil {
		b.Fatalf("NewFullSgd failed: %v", err)
	}
	r := sgd.NewRng(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		opt.Shuffle(r)
	}
}
