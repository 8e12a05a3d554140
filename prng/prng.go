package prng

import "math/rand/v2"

// seedMix is folded into the second PCG word so that seeds 0 and 1 do not
// produce correlated low-entropy states.
const seedMix = 0x9e3779b97f4a7c15

// Source is a deterministic pseudo-random stream keyed on one int64 seed.
// The zero value is not usable; construct with New.
type Source struct {
	r *rand.Rand
}

// New returns a Source whose entire output stream is a pure function of seed.
func New(seed int64) *Source {
	s := uint64(seed)

	return &Source{r: rand.New(rand.NewPCG(s, s^seedMix))}
}

// Float64 returns the next value in [0,1).
func (s *Source) Float64() float64 { return s.r.Float64() }

// Uniform returns the next value in [lo,hi).
func (s *Source) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.r.Float64()
}

// IntN returns the next integer in [0,n). Panics if n <= 0, matching
// math/rand/v2 semantics.
func (s *Source) IntN(n int) int { return s.r.IntN(n) }

// Normal returns the next standard-normal deviate (mean 0, stddev 1).
func (s *Source) Normal() float64 { return s.r.NormFloat64() }

// Pick returns one element of items chosen by the next draw of s.
// Panics if items is empty.
func Pick[T any](s *Source, items []T) T {
	return items[s.r.IntN(len(items))]
}
