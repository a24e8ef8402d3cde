package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvldraw/drawing"
	"github.com/katalvlaran/lvldraw/graph"
	"github.com/katalvlaran/lvldraw/shortestpath"
)

// Stress sums w_ij·(Δ_ij − d_ij)² with w = 1/d² over every unordered
// pair whose target distance is finite and positive — equivalently, the
// squared relative distance error. Unreachable pairs contribute nothing,
// so disconnected graphs score only their intra-component structure.
func Stress(d drawing.Drawing, m *shortestpath.Matrix) float64 {
	n := d.Len()
	delta := make([]float64, d.Dimension())
	s := 0.0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			dij, ok := m.Get(i, j)
			if !ok || dij <= 0 || math.IsInf(dij, 1) {
				continue
			}
			e := (d.Delta(i, j, delta) - dij) / dij
			s += e * e
		}
	}

	return s
}

// IdealEdgeLengths sums the squared relative error between each edge's
// drawn length and its target distance from m. Edges whose target is
// non-positive or infinite are skipped.
func IdealEdgeLengths(g *graph.Graph, d drawing.Drawing, m *shortestpath.Matrix) float64 {
	delta := make([]float64, d.Dimension())
	s := 0.0
	for _, e := range g.Edges() {
		l, ok := m.Get(e.From, e.To)
		if !ok || l <= 0 || math.IsInf(l, 1) {
			continue
		}
		r := (d.Delta(e.From, e.To, delta) - l) / l
		s += r * r
	}

	return s
}

// NodeResolution penalizes node pairs drawn closer than r·dMax, where
// dMax is the layout diameter and r = 1/√n is the resolution target:
// each pair contributes (1 − Δ_ij/(r·dMax))². Zero for n < 2 or a fully
// collapsed drawing.
func NodeResolution(d drawing.Drawing) float64 {
	n := d.Len()
	if n < 2 {
		return 0
	}
	delta := make([]float64, d.Dimension())
	dists := make([]float64, 0, n*(n-1)/2)
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			dists = append(dists, d.Delta(i, j, delta))
		}
	}
	dMax := floats.Max(dists)
	if dMax == 0 {
		return 0
	}

	r := 1 / math.Sqrt(float64(n))
	s := 0.0
	for _, dij := range dists {
		e := 1 - dij/(r*dMax)
		s += e * e
	}

	return s
}
