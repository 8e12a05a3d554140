package pattern

import (
	"errors"
	"fmt"
)

// Sentinel errors for pattern synthesis.
var (
	// ErrInvalidSpec indicates non-positive dimensions or a missing or
	// non-finite required parameter.
	ErrInvalidSpec = errors.New("pattern: invalid spec")

	// ErrUnknownKind indicates a Kind outside the closed enum.
	ErrUnknownKind = errors.New("pattern: unknown pattern kind")
)

// Kind selects one of the closed set of synthesis formulas.
// The set is fixed; no runtime extension point exists.
type Kind int

const (
	// Sine is a periodic wave over (nx+ny): sin(2π·frequency·(nx+ny)+phase).
	Sine Kind = iota
	// Cosine is the cosine counterpart of Sine.
	Cosine
	// Spiral combines polar angle and radius: sin(turns·θ + tightness·r·10).
	Spiral
	// Interference multiplies two orthogonal waves with independent frequencies.
	Interference
	// Noise is fractal gradient noise over the fixed permutation table.
	Noise
	// Radial is a distance-from-center gradient.
	Radial
	// Random is a per-pixel uniform field keyed on an explicit seed parameter.
	Random
)

// kindNames is ordered by the Kind constants above.
var kindNames = [...]string{"sine", "cosine", "spiral", "interference", "noise", "radial", "random"}

// String returns the canonical lower-case name of k, or "kind(N)" when k
// lies outside the enum.
func (k Kind) String() string {
	if k < Sine || k > Random {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k is a member of the closed enum.
func (k Kind) Valid() bool { return k >= Sine && k <= Random }

// ParseKind resolves a canonical name back to its Kind.
// Returns ErrUnknownKind for unrecognized names.
func ParseKind(name string) (Kind, error) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}

// Kinds returns all members of the enum in declaration order.
func Kinds() []Kind {
	return []Kind{Sine, Cosine, Spiral, Interference, Noise, Radial, Random}
}

// Spec describes one pattern to synthesize. It is treated as immutable:
// Synthesize never mutates Params, and callers must not mutate a Spec
// after handing it to the library.
type Spec struct {
	Kind   Kind
	Params map[string]float64
	Width  int
	Height int
}

// Field is a dense Height×Width matrix of intensities.
// After Synthesize returns, every element lies in [0,1].
// Downstream consumers (colormap, quality) never mutate a Field in place.
type Field [][]float64

// NewField allocates a zeroed w×h field.
func NewField(w, h int) Field {
	f := make(Field, h)
	for y := range f {
		f[y] = make([]float64, w)
	}

	return f
}

// Width returns the number of columns, or 0 for an empty field.
func (f Field) Width() int {
	if len(f) == 0 {
		return 0
	}

	return len(f[0])
}

// Height returns the number of rows.
func (f Field) Height() int { return len(f) }

// ParamRange bounds one named parameter: its valid extent and the
// sub-range used when a value is drawn from a seed.
type ParamRange struct {
	Name     string
	Lo, Hi   float64 // sampling range for seeded draws
	Integral bool    // round drawn values to the nearest integer
}

// paramCatalog lists, per kind, the required parameters in fixed order.
// The order matters: latent decoding and seeded sampling both walk it.
var paramCatalog = map[Kind][]ParamRange{
	Sine:         {{Name: "frequency", Lo: 2, Hi: 8}, {Name: "phase", Lo: 0, Hi: 2 * 3.141592653589793}},
	Cosine:       {{Name: "frequency", Lo: 2, Hi: 8}, {Name: "phase", Lo: 0, Hi: 2 * 3.141592653589793}},
	Spiral:       {{Name: "turns", Lo: 3, Hi: 8}, {Name: "tightness", Lo: 0.5, Hi: 2.0}},
	Interference: {{Name: "freq1", Lo: 2, Hi: 6}, {Name: "freq2", Lo: 4, Hi: 8}},
	Noise:        {{Name: "octaves", Lo: 3, Hi: 6, Integral: true}, {Name: "scale", Lo: 0.05, Hi: 0.2}},
	Radial:       {{Name: "center_x", Lo: -0.5, Hi: 0.5}, {Name: "center_y", Lo: -0.5, Hi: 0.5}},
	Random:       {{Name: "seed", Lo: 0, Hi: 10000, Integral: true}},
}

// Parameters returns the required parameter descriptors for k in their
// fixed order, or nil when k is not a member of the enum.
func Parameters(k Kind) []ParamRange {
	return paramCatalog[k]
}
