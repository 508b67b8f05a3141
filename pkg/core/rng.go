package core

import "math/rand/v2"

// Source is the randomness a simulation consumes. Implementations return an
// integer in [0, n).
type Source interface {
	IntN(n int) int
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Reseed restarts the generator from the provided seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}

// IntN returns a random int in [0, n). It returns 0 when n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Fixed is a Source that always yields the same value, clamped into [0, n).
// Tests use it to force deterministic pin decisions.
type Fixed int

// IntN returns the fixed value clamped into [0, n).
func (f Fixed) IntN(n int) int {
	if n <= 0 || f < 0 {
		return 0
	}
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}
