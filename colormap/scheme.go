package colormap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/artfield/pattern"
)

// ApplyScheme maps every intensity of field through the channel policy s.
// Pure: identical (field, scheme) inputs yield identical images.
// Complexity: O(W×H).
func ApplyScheme(field pattern.Field, s Scheme) (Image, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, s)
	}
	img := NewImage(field.Width(), field.Height())
	for y := range field {
		for x, v := range field[y] {
			img[y][x] = schemeColor(s, clamp01(v))
		}
	}

	return img, nil
}

// schemeColor evaluates one channel policy at intensity v ∈ [0,1].
func schemeColor(s Scheme, v float64) RGB {
	switch s {
	case Grayscale:
		c := toByte(v)
		return RGB{c, c, c}
	case Red:
		return RGB{toByte(v), 0, 0}
	case Green:
		return RGB{0, toByte(v), 0}
	case Blue:
		return RGB{0, 0, toByte(v)}
	case Rainbow:
		return hueToRGB(v * 360)
	case Warm:
		return RGB{toByte(v), toByte(v * 0.7), toByte(v * 0.3)}
	default: // Cool
		return RGB{toByte(v * 0.3), toByte(v * 0.7), toByte(v)}
	}
}

// hueToRGB converts a hue angle in degrees at S=V=1 to RGB using the
// standard six-sector formula.
func hueToRGB(h float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	hp := h / 60
	x := 1 - math.Abs(math.Mod(hp, 2)-1)

	var r, g, b float64
	switch {
	case hp < 1:
		r, g, b = 1, x, 0
	case hp < 2:
		r, g, b = x, 1, 0
	case hp < 3:
		r, g, b = 0, 1, x
	case hp < 4:
		r, g, b = 0, x, 1
	case hp < 5:
		r, g, b = x, 0, 1
	default:
		r, g, b = 1, 0, x
	}

	return RGB{toByte(r), toByte(g), toByte(b)}
}

// toByte scales c ∈ [0,1] to an 8-bit channel with rounding.
func toByte(c float64) uint8 {
	return uint8(math.Round(clamp01(c) * 255))
}

// clamp01 forces v into [0,1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
