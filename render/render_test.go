package render_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/artfield/colormap"
	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/render"
)

// fixture colorizes a small interference field with the fire table.
func fixture(t *testing.T) colormap.Image {
	t.Helper()
	field, err := pattern.Synthesize(pattern.Spec{
		Kind:   pattern.Interference,
		Params: map[string]float64{"freq1": 3, "freq2": 5},
		Width:  16, Height: 12,
	})
	assert.NoError(t, err)

	return colormap.MustTable("fire").Apply(field)
}

// TestToRGBA verifies pixel-exact conversion and full opacity.
func TestToRGBA(t *testing.T) {
	img := fixture(t)
	rgba, err := render.ToRGBA(img)
	assert.NoError(t, err)
	assert.Equal(t, 16, rgba.Bounds().Dx())
	assert.Equal(t, 12, rgba.Bounds().Dy())

	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			r, g, b, a := rgba.At(x, y).RGBA()
			want := img[y][x]
			got := colormap.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("pixel (%d,%d) mismatch:\n%s", x, y, diff)
			}
			assert.Equal(t, uint32(0xFFFF), a, "alpha at (%d,%d)", x, y)
		}
	}

	_, err = render.ToRGBA(colormap.Image{})
	assert.ErrorIs(t, err, render.ErrEmptyImage)
}

// TestEncodePNG_RoundTrip re-decodes the PNG and compares dimensions and
// one known pixel.
func TestEncodePNG_RoundTrip(t *testing.T) {
	img := fixture(t)
	var buf bytes.Buffer
	assert.NoError(t, render.EncodePNG(&buf, img))

	decoded, err := png.Decode(&buf)
	assert.NoError(t, err)
	assert.Equal(t, 16, decoded.Bounds().Dx())
	assert.Equal(t, 12, decoded.Bounds().Dy())

	r, g, b, _ := decoded.At(0, 0).RGBA()
	want := img[0][0]
	assert.Equal(t, want.R, uint8(r>>8))
	assert.Equal(t, want.G, uint8(g>>8))
	assert.Equal(t, want.B, uint8(b>>8))
}

// TestContactSheet verifies grid geometry.
func TestContactSheet(t *testing.T) {
	img := fixture(t)
	sheet, err := render.ContactSheet([]colormap.Image{img, img, img, img, img}, 2, 32)
	assert.NoError(t, err)
	assert.Equal(t, 64, sheet.Bounds().Dx(), "2 columns × 32px tiles")
	assert.Equal(t, 96, sheet.Bounds().Dy(), "3 rows × 32px tiles")

	_, err = render.ContactSheet(nil, 2, 32)
	assert.ErrorIs(t, err, render.ErrEmptyImage)
}
