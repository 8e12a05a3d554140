package latent

import (
	"fmt"
	"math"

	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/prng"
)

// featureNames fixes the order in which parameters enter the encoder.
// Absent parameters contribute 0. The order is part of the codec contract.
var featureNames = [...]string{
	"frequency", "phase", "turns", "tightness", "freq1",
	"freq2", "center_x", "center_y", "octaves", "scale",
}

const numFeatures = len(featureNames)

// Fixed seeds pinning the projection matrices. Changing any of them
// changes the codec contract.
const (
	meanMatrixSeed   = 42
	logVarMatrixSeed = 43
	decodeMatrixSeed = 44
)

// logVarMin/Max bound the encoded log-variance.
const (
	logVarMin = -5
	logVarMax = 5
)

// Projection matrices and biases, generated once at init.
var (
	meanW, meanB     = projection(meanMatrixSeed, numFeatures, Dim)
	logVarW, logVarB = projection(logVarMatrixSeed, numFeatures, Dim)
	decW, decB       = projection(decodeMatrixSeed, Dim, numFeatures)
)

// projection draws a rows×cols weight matrix (scaled by 0.1) and a cols
// bias vector (scaled by 0.05) from a dedicated seeded stream.
func projection(seed int64, rows, cols int) ([][]float64, []float64) {
	src := prng.New(seed)
	w := make([][]float64, rows)
	for i := range w {
		w[i] = make([]float64, cols)
		for j := range w[i] {
			w[i][j] = src.Normal() * 0.1
		}
	}
	b := make([]float64, cols)
	for j := range b {
		b[j] = src.Normal() * 0.05
	}

	return w, b
}

// Encode deterministically folds params into a latent Distribution.
// Same params always yield the identical Distribution, independent of
// call order or prior calls.
//
// The fold: each known parameter is squashed by tanh, projected through
// the fixed matrices, squashed again; log-variance is clipped to
// [logVarMin, logVarMax].
func Encode(params map[string]float64) Distribution {
	feat := make([]float64, numFeatures)
	for i, name := range featureNames {
		feat[i] = math.Tanh(params[name])
	}

	return Distribution{
		Mean:   project(feat, meanW, meanB, func(v float64) float64 { return math.Tanh(v) }),
		LogVar: project(feat, logVarW, logVarB, func(v float64) float64 { return clip(math.Tanh(v), logVarMin, logVarMax) }),
	}
}

// project computes activate(featᵀ·W + b) per output dimension.
func project(feat []float64, w [][]float64, b []float64, activate func(float64) float64) Vector {
	out := make(Vector, len(b))
	for j := range out {
		sum := b[j]
		for i := range feat {
			sum += feat[i] * w[i][j]
		}
		out[j] = activate(sum)
	}

	return out
}

// DecodeParams affinely rescales vec into the full parameter space.
// The assignment of latent-projection slot to parameter range is fixed:
//
//	frequency  = p0·5  + 5      → [0, 10]
//	phase      = p1·π           → [−π, π]
//	turns      = p2·5  + 5      → [0, 10]
//	tightness  = p3·2  + 1      → [−1, 3]
//	freq1      = p4·4  + 4      → [0, 8]
//	freq2      = p5·4  + 6      → [2, 10]
//	center_x   = p6·0.5         → [−0.5, 0.5]
//	center_y   = p7·0.5         → [−0.5, 0.5]
//	octaves    = clip(p8·3+4, 3, 6), rounded
//	scale      = p9·0.15 + 0.1  → [−0.05, 0.25]
//	seed       = round((p0+1)·5000) → [0, 10000]
//
// where p = tanh(vecᵀ·Wdec + bdec) ∈ [−1, 1] per slot.
// Returns ErrDimensionMismatch when len(vec) != Dim.
func DecodeParams(vec Vector) (map[string]float64, error) {
	if len(vec) != Dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vec), Dim)
	}
	p := project(vec, decW, decB, math.Tanh)

	return map[string]float64{
		"frequency": p[0]*5 + 5,
		"phase":     p[1] * math.Pi,
		"turns":     p[2]*5 + 5,
		"tightness": p[3]*2 + 1,
		"freq1":     p[4]*4 + 4,
		"freq2":     p[5]*4 + 6,
		"center_x":  p[6] * 0.5,
		"center_y":  p[7] * 0.5,
		"octaves":   math.Round(clip(p[8]*3+4, 3, 6)),
		"scale":     p[9]*0.15 + 0.1,
		"seed":      math.Round((p[0] + 1) * 5000),
	}, nil
}

// Decode rescales vec into parameters for kind and synthesizes a w×h
// field. Returns ErrUnsupportedPattern for kinds outside the closed enum
// and ErrDimensionMismatch for bad vector lengths.
func Decode(vec Vector, kind pattern.Kind, w, h int) (pattern.Field, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPattern, kind)
	}
	all, err := DecodeParams(vec)
	if err != nil {
		return nil, err
	}

	// Keep only the parameters the kind requires.
	params := make(map[string]float64)
	for _, pr := range pattern.Parameters(kind) {
		params[pr.Name] = all[pr.Name]
	}

	return pattern.Synthesize(pattern.Spec{Kind: kind, Params: params, Width: w, Height: h})
}

// clip bounds v to [lo,hi].
func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
