package latent

import (
	"fmt"
	"math"

	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/prng"
)

// priorScale damps prior draws in Generate before the tanh squash.
const priorScale = 0.5

// Sample draws one Vector from dist using the reparameterization form
// z = mean + exp(0.5·logvar)·ε, where each ε is an independent
// standard-normal deviate from a stream keyed only on seed.
// Returns ErrDimensionMismatch when either component of dist has the
// wrong length.
func Sample(dist Distribution, seed int64) (Vector, error) {
	if len(dist.Mean) != Dim || len(dist.LogVar) != Dim {
		return nil, fmt.Errorf("%w: mean %d, logvar %d, want %d",
			ErrDimensionMismatch, len(dist.Mean), len(dist.LogVar), Dim)
	}
	src := prng.New(seed)
	z := make(Vector, Dim)
	for j := 0; j < Dim; j++ {
		z[j] = dist.Mean[j] + math.Exp(0.5*dist.LogVar[j])*src.Normal()
	}

	return z, nil
}

// Generate draws a Vector from the zero-mean/unit-variance prior using
// seed (damped and squashed to [−1,1]) and decodes it into a w×h field
// of the given kind.
func Generate(kind pattern.Kind, w, h int, seed int64) (pattern.Field, error) {
	src := prng.New(seed)
	z := make(Vector, Dim)
	for j := 0; j < Dim; j++ {
		z[j] = math.Tanh(src.Normal() * priorScale)
	}

	return Decode(z, kind, w, h)
}

// Interpolate returns the point (1−t)·a + t·b on the segment between two
// latent vectors. t is not clamped, so t outside [0,1] extrapolates.
// Returns ErrDimensionMismatch when either vector has the wrong length.
func Interpolate(a, b Vector, t float64) (Vector, error) {
	if len(a) != Dim || len(b) != Dim {
		return nil, fmt.Errorf("%w: a %d, b %d, want %d",
			ErrDimensionMismatch, len(a), len(b), Dim)
	}
	z := make(Vector, Dim)
	for j := 0; j < Dim; j++ {
		z[j] = (1-t)*a[j] + t*b[j]
	}

	return z, nil
}

// Reconstruct runs the full round trip: Encode params, Sample with seed,
// Decode into a w×h field of the given kind. Deterministic in
// (params, kind, w, h, seed).
func Reconstruct(params map[string]float64, kind pattern.Kind, w, h int, seed int64) (pattern.Field, error) {
	z, err := Sample(Encode(params), seed)
	if err != nil {
		return nil, err
	}

	return Decode(z, kind, w, h)
}
