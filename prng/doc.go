// Package prng provides the single seeded pseudo-random source used by
// the artfield core.
//
// Every stochastic decision in the repository — parameter sampling,
// latent-space noise, random fields — flows through a Source constructed
// from an explicit int64 seed. Two Sources built from the same seed emit
// identical streams on every platform, which is what makes artworks,
// latent vectors, and whole batches bit-for-bit reproducible.
//
// The implementation wraps math/rand/v2's PCG generator; PCG's output is
// specified by the Go standard library and stable across architectures.
//
// A Source is not safe for concurrent use. Workers that run in parallel
// each construct their own Source from their own seed.
package prng
