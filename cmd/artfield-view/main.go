// Command artfield-view is a standalone interactive surface over the
// same pattern and colormap packages the batch studio uses, so the two
// surfaces share one visual vocabulary bit for bit.
//
// Keys: ←/→ cycle the pattern kind, ↑/↓ cycle the palette,
// space draws the next seed, R re-rolls from seed 0.
package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/katalvlaran/artfield/colormap"
	"github.com/katalvlaran/artfield/pattern"
	"github.com/katalvlaran/artfield/prng"
)

const (
	fieldSize = 384
	windowTPS = 60
)

type viewer struct {
	kinds    []pattern.Kind
	palettes []string
	kindIdx  int
	palIdx   int
	seed     int64
	fbImg    *ebiten.Image
	pix      []byte
	dirty    bool
}

func newViewer() *viewer {
	palettes := make([]string, 0, 16)
	for _, s := range colormap.Schemes() {
		palettes = append(palettes, s.String())
	}
	palettes = append(palettes, colormap.TableNames()...)

	return &viewer{
		kinds:    pattern.Kinds(),
		palettes: palettes,
		pix:      make([]byte, fieldSize*fieldSize*4),
		dirty:    true,
	}
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		v.kindIdx = (v.kindIdx + 1) % len(v.kinds)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		v.kindIdx = (v.kindIdx + len(v.kinds) - 1) % len(v.kinds)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		v.palIdx = (v.palIdx + 1) % len(v.palettes)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		v.palIdx = (v.palIdx + len(v.palettes) - 1) % len(v.palettes)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.seed++
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		v.seed = 0
		v.dirty = true
	}

	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.dirty {
		if err := v.regenerate(); err != nil {
			log.Print(err)
		}
		v.dirty = false
	}
	if v.fbImg != nil {
		screen.DrawImage(v.fbImg, nil)
	}
	ebiten.SetWindowTitle(fmt.Sprintf("artfield — %s / %s / seed %d",
		v.kinds[v.kindIdx], v.palettes[v.palIdx], v.seed))
}

// regenerate synthesizes the current (kind, palette, seed) triple exactly
// the way the batch studio would: parameters drawn from the seed's stream.
func (v *viewer) regenerate() error {
	kind := v.kinds[v.kindIdx]
	src := prng.New(v.seed)
	spec := pattern.SampleSpec(kind, fieldSize, fieldSize, src)
	field, err := pattern.Synthesize(spec)
	if err != nil {
		return err
	}

	img, err := applyPalette(field, v.palettes[v.palIdx])
	if err != nil {
		return err
	}

	for y := 0; y < fieldSize; y++ {
		for x := 0; x < fieldSize; x++ {
			c := img[y][x]
			i := (y*fieldSize + x) * 4
			v.pix[i+0] = c.R
			v.pix[i+1] = c.G
			v.pix[i+2] = c.B
			v.pix[i+3] = 0xFF
		}
	}
	if v.fbImg == nil {
		v.fbImg = ebiten.NewImage(fieldSize, fieldSize)
	}
	v.fbImg.WritePixels(v.pix)

	return nil
}

func applyPalette(field pattern.Field, name string) (colormap.Image, error) {
	if scheme, err := colormap.ParseScheme(name); err == nil {
		return colormap.ApplyScheme(field, scheme)
	}
	table, err := colormap.TableByName(name)
	if err != nil {
		return nil, err
	}

	return table.Apply(field), nil
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return fieldSize, fieldSize
}

func main() {
	ebiten.SetWindowSize(fieldSize*2, fieldSize*2)
	ebiten.SetTPS(windowTPS)
	if err := ebiten.RunGame(newViewer()); err != nil {
		log.Fatal(err)
	}
}
