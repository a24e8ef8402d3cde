package sgd

import "github.com/katalvlaran/lvldraw/drawing"

// DistanceAdjustedSgd wraps another optimizer and, after each epoch,
// blends every term's target distance toward the distance currently
// realized in the drawing. The blend relieves constraints the geometry
// cannot satisfy (overconstrained dense graphs, incompatible geometries)
// instead of letting them fight forever, at the cost of drifting from
// the exact stress objective.
//
// For a term with weight w, realized distance d1 and original target d2,
// the new target is the weighted harmonic-style mean
//
//	(alpha·w·d1 + 2(1−alpha)·d2) / (alpha·w + 2(1−alpha))
//
// clamped into [MinimumDistance, d2] — adjustment only ever shortens a
// target, never stretches it past the graph distance. Weights are then
// recomputed as 1/d² from the new targets.
//
// Plain Apply runs the inner optimizer without adjustment, so the
// wrapper can be driven in either mode from the same Scheduler.
type DistanceAdjustedSgd struct {
	// Alpha balances realized distance (1) against the original target
	// (0). Default 0.5.
	Alpha float64

	// MinimumDistance floors every adjusted target. Default 0.
	MinimumDistance float64

	inner    Sgd
	original map[[2]int]float64
}

// NewDistanceAdjustedSgd wraps inner, snapshotting its current target
// distances as the adjustment ceiling.
func NewDistanceAdjustedSgd(inner Sgd) *DistanceAdjustedSgd {
	original := make(map[[2]int]float64)
	for _, t := range inner.Terms() {
		original[[2]int{t.I, t.J}] = t.D
	}

	return &DistanceAdjustedSgd{
		Alpha:    0.5,
		inner:    inner,
		original: original,
	}
}

// ApplyWithDistanceAdjustment runs one epoch and then re-blends targets
// and weights against the post-epoch drawing.
func (s *DistanceAdjustedSgd) ApplyWithDistanceAdjustment(d drawing.Drawing, eta float64) {
	s.inner.Apply(d, eta)
	delta := make([]float64, d.Dimension())
	s.inner.UpdateDistance(func(i, j int, _, w float64) float64 {
		d1 := d.Delta(i, j, delta)
		d2 := s.original[[2]int{i, j}]
		newD := (s.Alpha*w*d1 + 2*(1-s.Alpha)*d2) / (s.Alpha*w + 2*(1-s.Alpha))
		if newD < s.MinimumDistance {
			newD = s.MinimumDistance
		}
		if newD > d2 {
			newD = d2
		}

		return newD
	})
	s.inner.UpdateWeight(func(_, _ int, d, _ float64) float64 {
		return 1 / (d * d)
	})
}

// Terms returns the inner optimizer's live term list.
func (s *DistanceAdjustedSgd) Terms() []Term { return s.inner.Terms() }

// Shuffle reorders the inner term list.
func (s *DistanceAdjustedSgd) Shuffle(r *Rng) { s.inner.Shuffle(r) }

// Apply runs one unadjusted epoch on the inner optimizer.
func (s *DistanceAdjustedSgd) Apply(d drawing.Drawing, eta float64) { s.inner.Apply(d, eta) }

// UpdateDistance rewrites the inner targets through f.
func (s *DistanceAdjustedSgd) UpdateDistance(f UpdateFunc) { s.inner.UpdateDistance(f) }

// UpdateWeight rewrites the inner weights through f.
func (s *DistanceAdjustedSgd) UpdateWeight(f UpdateFunc) { s.inner.UpdateWeight(f) }

// Scheduler derives a scheduler from the inner term weights.
func (s *DistanceAdjustedSgd) Scheduler(shape Decay, tMax int, eps float64) *Scheduler {
	return s.inner.Scheduler(shape, tMax, eps)
}
