// Package randn provides a deterministic stream of standard-normal samples
// for property tests. A fixed seed makes every failure reproducible.
package randn

import "math/rand/v2"

// Source yields standard normally distributed float64 samples from a
// deterministically seeded generator. Equal seeds yield equal streams.
type Source struct {
	rng *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Sample returns the next standard-normal sample.
func (s *Source) Sample() float64 {
	return s.rng.NormFloat64()
}
