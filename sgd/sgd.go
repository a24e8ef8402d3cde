package sgd

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvldraw/drawing"
)

// Sentinel errors for optimizer construction.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("sgd: graph is nil")

	// ErrNilDistanceMatrix indicates that a nil distance matrix was
	// supplied to a with-distance-matrix constructor.
	ErrNilDistanceMatrix = errors.New("sgd: distance matrix is nil")

	// ErrBadPivotCount indicates a non-positive pivot count.
	ErrBadPivotCount = errors.New("sgd: pivot count must be positive")

	// ErrNoPivotCandidate indicates that pivot sampling found no node
	// with a positive minimum distance to the already-chosen pivots.
	ErrNoPivotCandidate = errors.New("sgd: no pivot candidate left")
)

// Term is one optimization constraint: nodes I and J should sit at
// geodesic distance D, enforced with weight W. The default weighting is
// W = 1/D², so close pairs dominate the layout.
type Term struct {
	I, J int
	D, W float64
}

// UpdateFunc rewrites one term field from its pair and current values:
// it receives (i, j, d, w) and returns the new distance (UpdateDistance)
// or the new weight (UpdateWeight).
type UpdateFunc func(i, j int, d, w float64) float64

// Sgd is the optimizer contract shared by FullSgd, SparseSgd and
// DistanceAdjustedSgd. A typical loop alternates Shuffle and Apply under
// a decaying eta produced by a Scheduler:
//
//	sched := opt.Scheduler(DecayExponential, 100, 0.1)
//	sched.Run(func(eta float64) {
//		opt.Shuffle(rng)
//		opt.Apply(d, eta)
//	})
type Sgd interface {
	// Terms returns the live term list. Callers may inspect it; length
	// and pair identity are fixed after construction, while D and W
	// change under UpdateDistance/UpdateWeight.
	Terms() []Term

	// Shuffle reorders the term list in place, deterministically from r.
	// Call between epochs: per-pair update order biases the result, and
	// reshuffling averages the bias out.
	Shuffle(r *Rng)

	// Apply runs one epoch over the term list at learning rate eta.
	Apply(d drawing.Drawing, eta float64)

	// UpdateDistance rewrites every term's target distance through f.
	UpdateDistance(f UpdateFunc)

	// UpdateWeight rewrites every term's weight through f.
	UpdateWeight(f UpdateFunc)

	// Scheduler derives a tMax-step scheduler of the given decay shape
	// whose step-size bounds come from the term weights: etaMax = 1/wMin
	// and etaMin = eps/wMax, both over non-zero weights.
	Scheduler(shape Decay, tMax int, eps float64) *Scheduler
}

// baseSgd carries the term list and the epoch mechanics shared by the
// concrete optimizers.
type baseSgd struct {
	terms []Term
}

func (s *baseSgd) Terms() []Term { return s.terms }

func (s *baseSgd) Shuffle(r *Rng) {
	r.Shuffle(len(s.terms), func(a, b int) {
		s.terms[a], s.terms[b] = s.terms[b], s.terms[a]
	})
}

// Apply walks the term list once. For each term it caps the step at
// mu = min(1, eta·W), measures the current geodesic offset, and moves
// both endpoints toward each other (or apart) by half the weighted gap
// each, keeping the pair's midpoint fixed. Pairs at zero or undefined
// distance are skipped; non-finite coordinates propagate untouched.
func (s *baseSgd) Apply(d drawing.Drawing, eta float64) {
	delta := make([]float64, d.Dimension())
	for _, t := range s.terms {
		mu := eta * t.W
		if mu > 1 {
			mu = 1
		}
		norm := d.Delta(t.I, t.J, delta)
		if !(norm > 0) {
			continue // coincident pair or unknown node
		}
		r := 0.5 * (norm - t.D) / norm
		d.Shift(t.I, delta, -r*mu)
		d.Shift(t.J, delta, r*mu)
	}
}

func (s *baseSgd) UpdateDistance(f UpdateFunc) {
	for i := range s.terms {
		t := &s.terms[i]
		t.D = f(t.I, t.J, t.D, t.W)
	}
}

func (s *baseSgd) UpdateWeight(f UpdateFunc) {
	for i := range s.terms {
		t := &s.terms[i]
		t.W = f(t.I, t.J, t.D, t.W)
	}
}

// Scheduler ties the eta range to the weight distribution: the largest
// step still saturates the lightest constraint (etaMax = 1/wMin) and
// the final step moves the heaviest constraint by only eps
// (etaMin = eps/wMax). With w = 1/d² this is etaMin = eps·min(d)².
func (s *baseSgd) Scheduler(shape Decay, tMax int, eps float64) *Scheduler {
	wMin, wMax := math.Inf(1), 0.0
	for _, t := range s.terms {
		if t.W == 0 {
			continue
		}
		if t.W < wMin {
			wMin = t.W
		}
		if t.W > wMax {
			wMax = t.W
		}
	}
	if wMax == 0 {
		// no usable weights; fall back to a unit range
		return NewScheduler(shape, tMax, eps, 1)
	}

	return NewScheduler(shape, tMax, eps/wMax, 1/wMin)
}
