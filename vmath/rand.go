package vmath

import "time"

// --- Randomness ---

// FastRand is a xorshift64 (13, 17, 5) generator
// Not safe for concurrent use; each owner keeps its own instance
type FastRand struct {
	state uint64
}

// NewFastRand returns a generator for seed, zero is remapped since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewClockRand seeds from the wall clock
// Golden ratio multiplier spreads close timestamps across the state
func NewClockRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()) * 0x9E3779B97F4A7C15)
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Intn returns [0,n), n <= 0 returns 0 and leaves the state untouched
func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns [0,1) from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
