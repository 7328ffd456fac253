package rain

import (
	"github.com/lixenwraith/tomatrix/vmath"
)

// Rand is the entropy source consulted by every policy helper
type Rand interface {
	// Intn returns a uniform int in [0,n); n <= 0 returns 0 without consuming entropy
	Intn(n int) int
	// Float64 returns a uniform float in [0,1)
	Float64() float64
}

var _ Rand = (*vmath.FastRand)(nil)
