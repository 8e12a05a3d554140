package colormap

import (
	"errors"
	"fmt"
)

// Sentinel errors for color mapping.
var (
	// ErrUnknownScheme indicates a scheme name outside the closed enum.
	ErrUnknownScheme = errors.New("colormap: unknown color scheme")
	// ErrUnknownTable indicates a table name with no registered definition.
	ErrUnknownTable = errors.New("colormap: unknown color table")
	// ErrBadTable indicates a table definition with fewer than two stops.
	ErrBadTable = errors.New("colormap: table needs at least two stops")
)

// RGB is one 8-bit color triple.
type RGB struct {
	R, G, B uint8
}

// Image is a dense Height×Width matrix of RGB triples — the terminal
// artifact of the synthesis pipeline.
type Image [][]RGB

// NewImage allocates a zeroed (black) w×h image.
func NewImage(w, h int) Image {
	img := make(Image, h)
	for y := range img {
		img[y] = make([]RGB, w)
	}

	return img
}

// Width returns the number of columns, or 0 for an empty image.
func (m Image) Width() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Height returns the number of rows.
func (m Image) Height() int { return len(m) }

// Scheme selects one fixed channel policy.
type Scheme int

const (
	// Grayscale copies the intensity into all three channels.
	Grayscale Scheme = iota
	// Red places the intensity in the red channel only.
	Red
	// Green places the intensity in the green channel only.
	Green
	// Blue places the intensity in the blue channel only.
	Blue
	// Rainbow maps intensity to hue at full saturation and value.
	Rainbow
	// Warm blends toward red/orange: (v, 0.7v, 0.3v).
	Warm
	// Cool blends toward blue/cyan: (0.3v, 0.7v, v).
	Cool
)

var schemeNames = [...]string{"grayscale", "red", "green", "blue", "rainbow", "warm", "cool"}

// String returns the canonical lower-case name of s.
func (s Scheme) String() string {
	if s < Grayscale || s > Cool {
		return fmt.Sprintf("scheme(%d)", int(s))
	}

	return schemeNames[s]
}

// Valid reports whether s is a member of the closed enum.
func (s Scheme) Valid() bool { return s >= Grayscale && s <= Cool }

// ParseScheme resolves a canonical name back to its Scheme.
func ParseScheme(name string) (Scheme, error) {
	for i, n := range schemeNames {
		if n == name {
			return Scheme(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Schemes returns all members of the enum in declaration order.
func Schemes() []Scheme {
	return []Scheme{Grayscale, Red, Green, Blue, Rainbow, Warm, Cool}
}

// Stop is one control point of a Table: a position t in [0,1] and its color.
type Stop struct {
	T     float64
	Color RGB
}

// Table is a named piecewise-linear color interpolant over ordered stops.
// Tables are immutable once built; concurrent reads are safe.
type Table struct {
	Name  string
	Stops []Stop
}
