package render

import (
	"errors"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/artfield/colormap"
)

// ErrEmptyImage indicates a zero-sized input image.
var ErrEmptyImage = errors.New("render: image must have at least one pixel")

// ToRGBA copies img into a stdlib *image.RGBA with full opacity.
func ToRGBA(img colormap.Image) (*image.RGBA, error) {
	w, h := img.Width(), img.Height()
	if w == 0 || h == 0 {
		return nil, ErrEmptyImage
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img[y][x]
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 0xFF
		}
	}

	return out, nil
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img colormap.Image) error {
	rgba, err := ToRGBA(img)
	if err != nil {
		return err
	}

	return png.Encode(w, rgba)
}

// ContactSheet composes images into a gallery grid of cols columns,
// scaling every image to tile×tile cells. Rows fill left to right in
// input order; unused cells stay black.
func ContactSheet(images []colormap.Image, cols, tile int) (*image.RGBA, error) {
	if len(images) == 0 || cols < 1 || tile < 1 {
		return nil, ErrEmptyImage
	}
	rows := (len(images) + cols - 1) / cols
	sheet := image.NewRGBA(image.Rect(0, 0, cols*tile, rows*tile))

	for i, img := range images {
		rgba, err := ToRGBA(img)
		if err != nil {
			return nil, err
		}
		cx, cy := (i%cols)*tile, (i/cols)*tile
		cell := image.Rect(cx, cy, cx+tile, cy+tile)
		xdraw.ApproxBiLinear.Scale(sheet, cell, rgba, rgba.Bounds(), xdraw.Src, nil)
	}

	return sheet, nil
}
