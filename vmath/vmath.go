package vmath

import "math"

// Clamp bounds v to [lo, hi]
// NaN input returns lo so downstream integration stays finite
func Clamp(v, lo, hi float64) float64 {
	if v != v {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}

// --- Randomness ---

// FastRand is a seedable xorshift64 generator
// Not safe for concurrent use; each simulation owns its own instance
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return r.Float64()*(hi-lo) + lo
}
