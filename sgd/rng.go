package sgd

import "math/rand"

// Rng is the seedable source of randomness used by pivot sampling and
// term shuffling. Construction from an explicit seed makes every layout
// reproducible: two Rngs with the same seed yield identical draw
// sequences across runs and platforms, and every randomized operation
// in this package takes its Rng as an argument instead of reaching for
// global state.
//
// An Rng is not safe for concurrent use; give each goroutine its own.
type Rng struct {
	r *rand.Rand
}

// NewRng creates a generator seeded with seed.
func NewRng(seed int64) *Rng {
	return &Rng{r: rand.New(rand.NewSource(seed))}
}

// IntN returns a uniform integer in [0, n). Panics when n <= 0, same as
// math/rand.
func (r *Rng) IntN(n int) int { return r.r.Intn(n) }

// Float64 returns a uniform value in [0, 1).
func (r *Rng) Float64() float64 { return r.r.Float64() }

// Shuffle randomizes the order of n elements through swap, using the
// Fisher–Yates walk of math/rand.
func (r *Rng) Shuffle(n int, swap func(i, j int)) { r.r.Shuffle(n, swap) }
