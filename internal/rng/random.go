// README: Injectable uniform random source plus a seedable, goroutine-safe implementation.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
	"time"
)

// Source yields uniform draws in [0.0, 1.0). Every stochastic component of the
// fare engine consumes randomness only through this interface.
type Source interface {
	Float64() float64
}

// Random is a seeded PCG generator guarded by a mutex so one instance can be
// shared by concurrent requests.
type Random struct {
	rng  *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRandom creates a Random for the given seed. A zero seed is replaced by a
// cryptographically random one.
func NewRandom(seed int64) *Random {
	var actual uint64
	if seed == 0 {
		actual = randomSeed()
	} else {
		actual = uint64(seed)
	}
	return &Random{
		rng:  rand.New(rand.NewPCG(actual, actual^0xDEADBEEF)),
		seed: actual,
	}
}

func randomSeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}

// Seed returns the seed this generator was built with.
func (r *Random) Seed() uint64 {
	return r.seed
}

// Float64 returns a draw in [0.0, 1.0).
func (r *Random) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.Float64()
}

// Fork derives an independent generator. Demand noise runs on a fork so its
// draws do not shift the condition samples of the parent stream.
func (r *Random) Fork() *Random {
	r.mu.Lock()
	next := r.rng.Uint64()
	r.mu.Unlock()
	return &Random{
		rng:  rand.New(rand.NewPCG(next, next^0xCAFEBABE)),
		seed: next,
	}
}
