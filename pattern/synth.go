package pattern

import (
	"fmt"
	"math"

	"github.com/katalvlaran/artfield/prng"
)

// Synthesize evaluates the formula selected by spec.Kind over normalized
// coordinates and returns a Height×Width field with every element clamped
// to [0,1].
//
// Validation:
//   - Width and Height must be ≥ 1.
//   - Every parameter listed by Parameters(spec.Kind) must be present
//     and finite.
//
// Violations return an error wrapping ErrInvalidSpec; out-of-range raw
// formula values are clamped, never rejected.
//
// Complexity: O(W×H) time and memory (×octaves for Noise).
func Synthesize(spec Spec) (Field, error) {
	if !spec.Kind.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, spec.Kind)
	}
	if spec.Width < 1 || spec.Height < 1 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidSpec, spec.Width, spec.Height)
	}
	for _, p := range paramCatalog[spec.Kind] {
		v, ok := spec.Params[p.Name]
		if !ok {
			return nil, fmt.Errorf("%w: missing parameter %q for kind %s", ErrInvalidSpec, p.Name, spec.Kind)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: parameter %q is not finite", ErrInvalidSpec, p.Name)
		}
	}

	field := NewField(spec.Width, spec.Height)
	switch spec.Kind {
	case Sine:
		fillWave(field, spec.Params["frequency"], spec.Params["phase"], math.Sin)
	case Cosine:
		fillWave(field, spec.Params["frequency"], spec.Params["phase"], math.Cos)
	case Spiral:
		fillSpiral(field, spec.Params["turns"], spec.Params["tightness"])
	case Interference:
		fillInterference(field, spec.Params["freq1"], spec.Params["freq2"])
	case Noise:
		fillNoise(field, int(math.Round(spec.Params["octaves"])), spec.Params["scale"])
	case Radial:
		fillRadial(field, spec.Params["center_x"], spec.Params["center_y"])
	case Random:
		fillRandom(field, int64(spec.Params["seed"]))
	}
	clampField(field)

	return field, nil
}

// norm maps a pixel index i in [0,size) to [-1, 1).
func norm(i, size int) float64 {
	return float64(i)/float64(size)*2 - 1
}

// fillWave writes wave((2π·freq)·(nx+ny)+phase) remapped from [-1,1] to [0,1].
func fillWave(f Field, freq, phase float64, wave func(float64) float64) {
	w, h := f.Width(), f.Height()
	omega := 2 * math.Pi * freq
	for y := 0; y < h; y++ {
		ny := norm(y, h)
		for x := 0; x < w; x++ {
			v := wave(omega*(norm(x, w)+ny) + phase)
			f[y][x] = (v + 1) / 2
		}
	}
}

// fillSpiral writes sin(turns·θ + tightness·r·10) remapped to [0,1],
// with θ and r taken from the field center.
func fillSpiral(f Field, turns, tightness float64) {
	w, h := f.Width(), f.Height()
	for y := 0; y < h; y++ {
		ny := norm(y, h)
		for x := 0; x < w; x++ {
			nx := norm(x, w)
			r := math.Hypot(nx, ny)
			theta := math.Atan2(ny, nx)
			v := math.Sin(turns*theta + tightness*r*10)
			f[y][x] = (v + 1) / 2
		}
	}
}

// fillInterference writes the product of two orthogonal waves remapped to
// [0,1]. The product form (not the sum) is the fixed design choice: it
// yields the moiré-like beat structure the rest of the pipeline expects.
func fillInterference(f Field, f1, f2 float64) {
	w, h := f.Width(), f.Height()
	for y := 0; y < h; y++ {
		w2 := math.Sin(2 * math.Pi * f2 * norm(y, h))
		for x := 0; x < w; x++ {
			w1 := math.Sin(2 * math.Pi * f1 * norm(x, w))
			f[y][x] = (w1*w2 + 1) / 2
		}
	}
}

// fillRadial writes 1 − clamp(dist((nx,ny),(cx,cy)), 0, 1).
func fillRadial(f Field, cx, cy float64) {
	w, h := f.Width(), f.Height()
	for y := 0; y < h; y++ {
		ny := norm(y, h)
		for x := 0; x < w; x++ {
			d := math.Hypot(norm(x, w)-cx, ny-cy)
			f[y][x] = 1 - math.Min(d, 1)
		}
	}
}

// fillRandom fills f with uniform draws from a stream keyed only on seed,
// in row-major order. Two calls with equal seed and shape are identical.
func fillRandom(f Field, seed int64) {
	src := prng.New(seed)
	for y := range f {
		for x := range f[y] {
			f[y][x] = src.Float64()
		}
	}
}

// clampField forces every element into [0,1].
func clampField(f Field) {
	for y := range f {
		for x, v := range f[y] {
			if v < 0 {
				f[y][x] = 0
			} else if v > 1 {
				f[y][x] = 1
			}
		}
	}
}
