package latent

import "errors"

// Dim is the fixed dimensionality of the latent space.
const Dim = 16

// Sentinel errors for the latent codec.
var (
	// ErrUnsupportedPattern indicates a kind with no registered decode mapping.
	ErrUnsupportedPattern = errors.New("latent: no decode mapping for pattern kind")
	// ErrDimensionMismatch indicates a vector length disagreeing with Dim.
	ErrDimensionMismatch = errors.New("latent: vector length must equal Dim")
)

// Vector is one point in the latent space. Valid vectors have length Dim.
type Vector []float64

// Distribution is a diagonal-Gaussian description of a latent region:
// per-dimension mean and log-variance. It is deterministically derived
// from a parameter set and never persisted; a concrete Vector exists
// only after seeded sampling.
type Distribution struct {
	Mean   Vector
	LogVar Vector
}
