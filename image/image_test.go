package image

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LukeBoehler/elby/tile"
)

func TestFromImagePaletted(t *testing.T) {
	m := image.NewPaletted(image.Rect(0, 0, 8, 8), tile.Colors)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.SetColorIndex(x, y, uint8((x+y)%4))
		}
	}

	g, err := FromImage(m)
	require.NoError(t, err)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, tile.Shade((x+y)%4), g.ShadeAt(x, y))
		}
	}
}

func TestFromImageOffsetBounds(t *testing.T) {
	m := image.NewPaletted(image.Rect(10, 20, 18, 28), tile.Colors)
	m.SetColorIndex(10, 20, uint8(tile.Black))
	m.SetColorIndex(17, 27, uint8(tile.DarkGray))

	g, err := FromImage(m)
	require.NoError(t, err)
	assert.Equal(t, tile.Black, g.ShadeAt(0, 0))
	assert.Equal(t, tile.DarkGray, g.ShadeAt(7, 7))
	assert.Equal(t, tile.White, g.ShadeAt(1, 1))
}

func TestFromImageWrongSize(t *testing.T) {
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, 7, 8),
		image.Rect(0, 0, 8, 7),
		image.Rect(0, 0, 16, 16),
		image.Rect(0, 0, 0, 0),
	} {
		_, err := FromImage(image.NewRGBA(r))
		assert.ErrorIs(t, err, errWrongSize, "bounds %v", r)
	}
}

func TestFromImageQuantized(t *testing.T) {
	// An RGBA source with two extreme halves must quantize cleanly onto
	// the darkest and lightest shades.
	m := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		c := color.RGBA{A: 0xff}
		if y >= 4 {
			c = color.RGBA{0xff, 0xff, 0xff, 0xff}
		}
		for x := 0; x < 8; x++ {
			m.Set(x, y, c)
		}
	}

	g, err := FromImage(m)
	require.NoError(t, err)
	for x := 0; x < 8; x++ {
		assert.Equal(t, tile.Black, g.ShadeAt(x, 0))
		assert.Equal(t, tile.White, g.ShadeAt(x, 7))
	}
}

func TestRender(t *testing.T) {
	var g tile.Grid
	g.SetShade(0, 0, tile.Black)
	g.SetShade(7, 7, tile.DarkGray)

	m, err := Render(&g, 3)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 24, 24), m.Bounds())

	// Each pixel becomes a 3x3 block.
	for _, p := range []image.Point{{0, 0}, {2, 2}} {
		assert.Equal(t, uint8(tile.Black), m.ColorIndexAt(p.X, p.Y), "at %v", p)
	}
	assert.Equal(t, uint8(tile.DarkGray), m.ColorIndexAt(23, 23))
	assert.Equal(t, uint8(tile.White), m.ColorIndexAt(3, 0))
}

func TestRenderBadScale(t *testing.T) {
	var g tile.Grid
	for _, scale := range []int{0, -1, -24} {
		_, err := Render(&g, scale)
		assert.ErrorIs(t, err, errBadScale, "scale %d", scale)
	}
}

func TestRenderFromImageRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		var g tile.Grid
		for y := 0; y < 8; y++ {
			for x := 0; x < 8; x++ {
				g.SetShade(x, y, tile.Shade(r.Intn(4)))
			}
		}

		m, err := Render(&g, 1)
		require.NoError(t, err)

		got, err := FromImage(m)
		require.NoError(t, err)
		require.Equal(t, g, got)
	}
}
