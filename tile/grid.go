package tile

import (
	"image"
	"image/color"
	"image/draw"
)

// Grid is an 8 by 8 tile of shades, row major with row 0 at the top. The
// zero value is an all white tile. A Grid is a plain value; the codec never
// retains a reference to one, so copies are independent tiles.
type Grid [tileHeight][tileWidth]Shade

// ColorModel implements image.Image.
func (g *Grid) ColorModel() color.Model {
	return ShadeModel
}

// Bounds implements image.Image.
func (g *Grid) Bounds() image.Rectangle {
	return image.Rect(0, 0, tileWidth, tileHeight)
}

// At implements image.Image.
func (g *Grid) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return color.Transparent
	}
	return g[y][x]
}

// ShadeAt returns the shade at (x, y). Out of bounds coordinates report
// White.
func (g *Grid) ShadeAt(x, y int) Shade {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return White
	}
	return g[y][x]
}

// Set implements draw.Image. Coordinates outside the tile are ignored.
func (g *Grid) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return
	}
	g[y][x] = shadeModel(c).(Shade)
}

// SetShade sets the shade at (x, y). This is faster than Set as it skips
// the color conversion. Coordinates outside the tile are ignored.
func (g *Grid) SetShade(x, y int, s Shade) {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return
	}
	g[y][x] = s & 3
}

// Clear resets every pixel to White.
func (g *Grid) Clear() {
	*g = Grid{}
}

// Fill sets every pixel to the shade nearest to c.
func (g *Grid) Fill(c color.Color) {
	s := shadeModel(c).(Shade)
	for y := range g {
		for x := range g[y] {
			g[y][x] = s
		}
	}
}

// Interface checks.
var _ draw.Image = (*Grid)(nil)
