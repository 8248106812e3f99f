package vmath

// FastRand is a xorshift64 generator, deterministic for a given seed
// Not safe for concurrent use, each owner keeps its own instance
type FastRand struct {
	state uint64
}

// NewFastRand creates a generator, zero seed is remapped since xorshift never leaves the zero state
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Next returns the next raw 64-bit value
func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns a value in [0, n), 0 for non-positive n
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}
