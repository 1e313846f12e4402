package vmath

import "math"

// --- Scalars ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator
// Not safe for concurrent use, each simulation owns one
type FastRand struct {
	state uint64
}

// NewFastRand seeds a generator, zero seed is remapped since xorshift sticks at zero
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

// Float64 returns a uniform value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Uniform returns a uniform value in [lo, hi)
func (r *FastRand) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// UniformVec3 returns a vector with each component drawn independently from [lo, hi)
func (r *FastRand) UniformVec3(lo, hi float64) Vec3F {
	return Vec3F{
		X: r.Uniform(lo, hi),
		Y: r.Uniform(lo, hi),
		Z: r.Uniform(lo, hi),
	}
}

// NearlyEqual compares with absolute tolerance
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
