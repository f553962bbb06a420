package core

import "math/rand"

// Random is the source of every random draw in the simulation. Tests inject
// scripted implementations to make runs reproducible.
type Random interface {
	// Uniform returns a float in [lo, hi).
	Uniform(lo, hi float64) float64
	// IntRange returns an integer in [lo, hi], both ends inclusive.
	IntRange(lo, hi int) int
}

// SeededRandom is the default Random backed by math/rand.
type SeededRandom struct {
	rng *rand.Rand
}

// NewRandom creates a Random seeded with the given value.
func NewRandom(seed int64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a float in [lo, hi).
func (r *SeededRandom) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.rng.Float64()
}

// IntRange returns an integer in [lo, hi]. If hi < lo it returns lo.
func (r *SeededRandom) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}
