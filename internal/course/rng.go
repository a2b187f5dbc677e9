package course

import (
	"math/rand"
	"time"
)

// Rand is the random source the generator draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

// NewRand returns a seeded source. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// between returns a uniform value in [lo, hi].
func between(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// jitter returns a uniform value in [0, amount].
func jitter(rng Rand, amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	return rng.Float64() * amount
}
