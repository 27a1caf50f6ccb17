package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillDensity fills the buffer with independent Bernoulli(density) draws.
// A density of 0 leaves every cell false; a density of 1 sets every cell.
func FillDensity(r *rand.Rand, buf []bool, density float64) {
	for i := range buf {
		buf[i] = r.Float64() < density
	}
}
