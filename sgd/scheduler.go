package sgd

import "math"

// Decay selects the shape of the learning-rate curve. The set is closed:
// every scheduler is one of these five, and an unknown value behaves as
// DecayConstant.
type Decay int

const (
	// DecayConstant holds eta at etaMax for the whole run.
	DecayConstant Decay = iota

	// DecayLinear interpolates eta from etaMax down to etaMin in equal
	// steps.
	DecayLinear

	// DecayQuadratic follows a squared-factor schedule a·(1−b·t)² whose
	// endpoints are exactly etaMax and etaMin.
	DecayQuadratic

	// DecayExponential decays eta geometrically, a·e^(−b·t). The usual
	// default for stress-minimizing layout.
	DecayExponential

	// DecayReciprocal decays eta as a/(1+b·t), slower in the tail than
	// exponential.
	DecayReciprocal
)

// String returns the lowercase shape name.
func (d Decay) String() string {
	switch d {
	case DecayLinear:
		return "linear"
	case DecayQuadratic:
		return "quadratic"
	case DecayExponential:
		return "exponential"
	case DecayReciprocal:
		return "reciprocal"
	default:
		return "constant"
	}
}

// Scheduler produces the decaying learning-rate sequence that drives an
// optimization run: tMax values from etaMax at t=0 down to etaMin at
// t=tMax−1, exactly at both endpoints for every decaying shape. It is a
// plain counter, trivially cheap next to an epoch, and single-use —
// create a fresh one per run.
type Scheduler struct {
	shape   Decay
	t, tMax int
	a, b    float64
}

// NewScheduler creates a tMax-step scheduler decaying from etaMax to
// etaMin with the given shape. tMax below 1 is treated as 1, and a
// single-step scheduler emits etaMax once regardless of shape.
func NewScheduler(shape Decay, tMax int, etaMin, etaMax float64) *Scheduler {
	if tMax < 1 {
		tMax = 1
	}
	var b float64
	if tMax > 1 {
		span := float64(tMax - 1)
		switch shape {
		case DecayLinear:
			b = (etaMax - etaMin) / span
		case DecayQuadratic:
			// (1 − b·span)² = etaMin/etaMax with the negative root, so
			// the last factor is −√(etaMin/etaMax) and squaring lands
			// exactly on etaMin.
			b = (1 + math.Sqrt(etaMin/etaMax)) / span
		case DecayExponential:
			b = math.Log(etaMax/etaMin) / span
		case DecayReciprocal:
			b = (etaMax/etaMin - 1) / span
		}
	}

	return &Scheduler{shape: shape, tMax: tMax, a: etaMax, b: b}
}

// Eta returns the learning rate of step t without advancing the
// scheduler.
func (s *Scheduler) Eta(t int) float64 {
	x := float64(t)
	switch s.shape {
	case DecayLinear:
		return s.a - s.b*x
	case DecayQuadratic:
		f := 1 - s.b*x
		return s.a * f * f
	case DecayExponential:
		return s.a * math.Exp(-s.b*x)
	case DecayReciprocal:
		return s.a / (1 + s.b*x)
	default:
		return s.a
	}
}

// Step emits the current learning rate to fn and advances by one.
// Stepping past tMax keeps calling fn with out-of-range rates; use
// IsFinished or Run to stop on time.
func (s *Scheduler) Step(fn func(eta float64)) {
	fn(s.Eta(s.t))
	s.t++
}

// IsFinished reports whether all tMax steps have been emitted.
func (s *Scheduler) IsFinished() bool { return s.t >= s.tMax }

// Run emits the remaining steps to fn, synchronously, and returns once
// the schedule is exhausted.
func (s *Scheduler) Run(fn func(eta float64)) {
	for !s.IsFinished() {
		s.Step(fn)
	}
}
