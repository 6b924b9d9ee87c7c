package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Locked wraps a PCG source so that one generator can be shared by concurrent handlers.
type Locked struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func New() *Locked {
	seed := uint64(time.Now().UnixNano())
	return NewSeeded(seed, seed>>1)
}

func NewSeeded(seed1, seed2 uint64) *Locked {
	return &Locked{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (l *Locked) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *Locked) Int64N(n int64) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Int64N(n)
}

// Fixed always returns the configured values. Int64N clamps to n-1.
type Fixed struct {
	Float float64
	Int   int64
}

func (f Fixed) Float64() float64 { return f.Float }

func (f Fixed) Int64N(n int64) int64 {
	if f.Int >= n {
		return n - 1
	}
	return f.Int
}
