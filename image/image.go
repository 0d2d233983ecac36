/*
Package image converts between Game Boy tiles and the standard image
packages.

FromImage samples an exactly 8 by 8 source into a tile, quantizing the
colors down to the four shade palette first when the source uses more.
Render scales a tile up for display with nearest neighbor interpolation so
the pixels stay crisp.
*/
package image

import (
	"errors"
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"golang.org/x/image/draw"

	"github.com/LukeBoehler/elby/tile"
)

var (
	errWrongSize = errors.New("tile: image is wrong size")
	errBadScale  = errors.New("tile: scale must be at least 1")
)

// FromImage converts m, which must be exactly 8 by 8 pixels, into a tile.
// Sources already restricted to four palette entries convert directly;
// anything else is quantized down to four colors first.
func FromImage(m image.Image) (tile.Grid, error) {
	var g tile.Grid

	b := m.Bounds()
	if b.Dx() != g.Bounds().Dx() || b.Dy() != g.Bounds().Dy() {
		return g, errWrongSize
	}

	pm, _ := m.(*image.Paletted)
	if pm == nil || len(pm.Palette) > len(tile.Colors) {
		q := quantize.MedianCutQuantizer{}
		pm = image.NewPaletted(b, q.Quantize(make(color.Palette, 0, len(tile.Colors)), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
	}

	for y := 0; y < g.Bounds().Dy(); y++ {
		for x := 0; x < g.Bounds().Dx(); x++ {
			g.SetShade(x, y, tile.ShadeModel.Convert(pm.At(b.Min.X+x, b.Min.Y+y)).(tile.Shade))
		}
	}

	return g, nil
}

// Render returns the tile drawn at the given scale, each tile pixel
// becoming a scale by scale block of the shade display palette.
func Render(g *tile.Grid, scale int) (*image.Paletted, error) {
	if scale < 1 {
		return nil, errBadScale
	}

	b := g.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale), tile.Colors)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), g, b, draw.Src, nil)

	return dst, nil
}
