// Package random provides the uniform random sources consumed by the
// selection engine. Every algorithm takes a Source explicitly; there is no
// process-wide generator.
package random

import (
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Source yields floats uniformly distributed in [0, 1).
type Source interface {
	Float64() float64
}

// Func adapts a plain function to Source.
type Func func() float64

func (f Func) Float64() float64 { return f() }

var _ Source = (*Rand)(nil)

// Rand is a seeded PCG generator that counts the draws it served.
type Rand struct {
	seed  uint64
	r     *rand.Rand
	draws uint64
}

// New returns a deterministic generator for seed.
func New(seed uint64) *Rand {
	return &Rand{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewNamed derives the seed from name, so "wave-3" always replays the same run.
func NewNamed(name string) *Rand {
	return New(SeedOf(name))
}

// SeedOf hashes a seed name to a numeric seed.
func SeedOf(name string) uint64 {
	return xxhash.Sum64String(name)
}

func (r *Rand) Float64() float64 {
	r.draws++
	return r.r.Float64()
}

// Seed returns the seed the generator was created with.
func (r *Rand) Seed() uint64 { return r.seed }

// Draws returns how many values were drawn so far.
func (r *Rand) Draws() uint64 { return r.draws }

// Fixed replays values in order and wraps around when they run out.
// With no values it always returns 0. Values are not range checked.
func Fixed(values ...float64) Source {
	pos := 0
	return Func(func() float64 {
		if len(values) == 0 {
			return 0
		}
		v := values[pos%len(values)]
		pos++
		return v
	})
}
