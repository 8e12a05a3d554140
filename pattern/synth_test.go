package pattern_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/prng"
)

// specFor builds a valid spec for kind k with mid-range parameters.
func specFor(k pattern.Kind, w, h int) pattern.Spec {
	params := make(map[string]float64)
	for _, p := range pattern.Parameters(k) {
		params[p.Name] = (p.Lo + p.Hi) / 2
	}

	return pattern.Spec{Kind: k, Params: params, Width: w, Height: h}
}

// TestSynthesize_Determinism verifies referential transparency for every
// kind: two calls with an identical spec yield bit-for-bit equal fields.
func TestSynthesize_Determinism(t *testing.T) {
	for _, k := range pattern.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			spec := specFor(k, 16, 16)
			a, err := pattern.Synthesize(spec)
			assert.NoError(t, err)
			b, err := pattern.Synthesize(spec)
			assert.NoError(t, err)
			assert.Equal(t, a, b, "%s must be deterministic", k)
		})
	}
}

// TestSynthesize_RangeInvariant verifies every element lies in [0,1].
func TestSynthesize_RangeInvariant(t *testing.T) {
	for _, k := range pattern.Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			field, err := pattern.Synthesize(specFor(k, 32, 24))
			assert.NoError(t, err)
			assert.Equal(t, 24, field.Height())
			assert.Equal(t, 32, field.Width())
			for y := range field {
				for x, v := range field[y] {
					if v < 0 || v > 1 {
						t.Fatalf("%s: field[%d][%d] = %v outside [0,1]", k, y, x, v)
					}
				}
			}
		})
	}
}

// TestSynthesize_InvalidSpec verifies the error policy for malformed specs.
func TestSynthesize_InvalidSpec(t *testing.T) {
	cases := []struct {
		name string
		spec pattern.Spec
		err  error
	}{
		{"ZeroWidth", pattern.Spec{Kind: pattern.Sine, Params: map[string]float64{"frequency": 5, "phase": 0}, Width: 0, Height: 4}, pattern.ErrInvalidSpec},
		{"NegativeHeight", pattern.Spec{Kind: pattern.Sine, Params: map[string]float64{"frequency": 5, "phase": 0}, Width: 4, Height: -1}, pattern.ErrInvalidSpec},
		{"MissingParam", pattern.Spec{Kind: pattern.Sine, Params: map[string]float64{"frequency": 5}, Width: 4, Height: 4}, pattern.ErrInvalidSpec},
		{"NaNParam", pattern.Spec{Kind: pattern.Radial, Params: map[string]float64{"center_x": math.NaN(), "center_y": 0}, Width: 4, Height: 4}, pattern.ErrInvalidSpec},
		{"InfParam", pattern.Spec{Kind: pattern.Spiral, Params: map[string]float64{"turns": math.Inf(1), "tightness": 1}, Width: 4, Height: 4}, pattern.ErrInvalidSpec},
		{"UnknownKind", pattern.Spec{Kind: pattern.Kind(99), Width: 4, Height: 4}, pattern.ErrUnknownKind},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pattern.Synthesize(tc.spec)
			if !errors.Is(err, tc.err) {
				t.Errorf("Synthesize error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestSynthesize_SineScenario reproduces the end-to-end fixture: a 4×4
// sine field at frequency 5, phase 0 is bitwise equal across calls,
// element by element.
func TestSynthesize_SineScenario(t *testing.T) {
	spec := pattern.Spec{
		Kind:   pattern.Sine,
		Params: map[string]float64{"frequency": 5.0, "phase": 0.0},
		Width:  4, Height: 4,
	}
	a, err := pattern.Synthesize(spec)
	assert.NoError(t, err)
	b, err := pattern.Synthesize(spec)
	assert.NoError(t, err)
	assert.Equal(t, a[0][0], b[0][0], "element (0,0) must be bitwise equal")
	assert.Equal(t, a, b)
}

// TestSynthesize_RandomSeedSensitivity verifies that Random depends only
// on its seed parameter: equal seeds agree, different seeds differ.
func TestSynthesize_RandomSeedSensitivity(t *testing.T) {
	base := pattern.Spec{Kind: pattern.Random, Params: map[string]float64{"seed": 77}, Width: 8, Height: 8}
	a, err := pattern.Synthesize(base)
	assert.NoError(t, err)
	b, err := pattern.Synthesize(base)
	assert.NoError(t, err)
	assert.Equal(t, a, b, "same seed must reproduce the field")

	other := base
	other.Params = map[string]float64{"seed": 78}
	c, err := pattern.Synthesize(other)
	assert.NoError(t, err)
	assert.NotEqual(t, a, c, "different seeds must produce different fields")
}

// TestSynthesize_InterferenceIsProduct pins the product-of-waves design
// choice: along the zero line of either axis wave the product vanishes,
// so the output is exactly 0.5 wherever nx or ny is 0.
func TestSynthesize_InterferenceIsProduct(t *testing.T) {
	// Width 2 puts x=1 at nx=0; height 2 puts y=1 at ny=0.
	spec := pattern.Spec{
		Kind:   pattern.Interference,
		Params: map[string]float64{"freq1": 3, "freq2": 5},
		Width:  2, Height: 2,
	}
	field, err := pattern.Synthesize(spec)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, field[1][0], 1e-12, "ny=0 row must sit at the midpoint under the product rule")
	assert.InDelta(t, 0.5, field[0][1], 1e-12, "nx=0 column must sit at the midpoint under the product rule")
}

// TestSampleParams_Deterministic verifies that sampling from equal-seed
// sources draws identical parameter sets within the catalog ranges.
func TestSampleParams_Deterministic(t *testing.T) {
	for _, k := range pattern.Kinds() {
		a := pattern.SampleParams(k, prng.New(5))
		b := pattern.SampleParams(k, prng.New(5))
		assert.Equal(t, a, b, "%s: equal seeds must draw equal params", k)
		for _, p := range pattern.Parameters(k) {
			v := a[p.Name]
			if v < p.Lo || v > p.Hi {
				t.Errorf("%s: %s = %v outside [%v,%v]", k, p.Name, v, p.Lo, p.Hi)
			}
		}
	}
}

// TestParseKind_RoundTrip checks name↔Kind resolution and the unknown case.
func TestParseKind_RoundTrip(t *testing.T) {
	for _, k := range pattern.Kinds() {
		got, err := pattern.ParseKind(k.String())
		assert.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := pattern.ParseKind("fractal")
	assert.ErrorIs(t, err, pattern.ErrUnknownKind)
}
