// Package random isolates every randomized gameplay parameter behind one
// pluggable source so rounds can be replayed from a seed and tests can pin
// exact values.
package random

import (
	"math"
	"math/rand"
	"time"
)

// Source yields uniformly distributed values in [0, 1).
type Source interface {
	Float64() float64
}

// PRNG wraps a seeded math/rand generator.
type PRNG struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNG creates a generator with the given seed.
// A zero seed uses the current time.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the generator was created with.
func (p *PRNG) Seed() int64 {
	return p.seed
}

// Float64 returns a value in [0.0, 1.0).
func (p *PRNG) Float64() float64 {
	return p.rng.Float64()
}

// Fixed always returns the same value.
type Fixed float64

func (f Fixed) Float64() float64 {
	return float64(f)
}

// Sequence replays values in order, wrapping around at the end.
// An empty sequence behaves like Fixed(0).
type Sequence struct {
	Values []float64
	next   int
}

func (s *Sequence) Float64() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return v
}

// Range returns a value in [min, max).
func Range(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// IntRange returns an integer in [min, max).
func IntRange(src Source, min, max int) int {
	return min + int(src.Float64()*float64(max-min))
}

// Angle returns a direction in [0, 2π).
func Angle(src Source) float64 {
	return src.Float64() * math.Pi * 2
}

// Jitter returns an offset in [-spread/2, spread/2).
func Jitter(src Source, spread float64) float64 {
	return (src.Float64() - 0.5) * spread
}
