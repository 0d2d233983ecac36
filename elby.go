/*
Package elby implements the model behind an 8 by 8 Game Boy tile editor.

An Editor owns one tile and the currently selected shade. Painting mutates
the tile through bounds checked operations, the hex form is always derived
from the grid, and replacing the grid from an edited hex string is all or
nothing, so a bad paste can never corrupt the pixels.
*/
package elby

import (
	"image"
	"log"

	tileimage "github.com/LukeBoehler/elby/image"
	"github.com/LukeBoehler/elby/tile"
)

// Editor holds the mutable state of a tile editing session.
type Editor struct {
	grid    tile.Grid
	current tile.Shade
	logger  *log.Logger
}

// New returns an editor with an all white tile and Black selected, matching
// a fresh canvas.
func New(logger *log.Logger) *Editor {
	return &Editor{
		current: tile.Black,
		logger:  logger,
	}
}

// Current returns the selected painting shade.
func (e *Editor) Current() tile.Shade {
	return e.current
}

// SetCurrent selects the shade used by Paint.
func (e *Editor) SetCurrent(s tile.Shade) {
	e.current = s & 3
}

// Paint sets the pixel at (x, y) to the selected shade. It reports whether
// a pixel changed; coordinates outside the tile never do.
func (e *Editor) Paint(x, y int) bool {
	return e.paint(x, y, e.current)
}

// Erase resets the pixel at (x, y) to White, the secondary button action.
func (e *Editor) Erase(x, y int) bool {
	return e.paint(x, y, tile.White)
}

func (e *Editor) paint(x, y int, s tile.Shade) bool {
	if !(image.Point{X: x, Y: y}).In(e.grid.Bounds()) {
		return false
	}
	if e.grid.ShadeAt(x, y) == s {
		return false
	}
	e.grid.SetShade(x, y, s)
	return true
}

// Clear resets the whole tile to White.
func (e *Editor) Clear() {
	e.grid.Clear()
}

// ShadeAt returns the shade at (x, y).
func (e *Editor) ShadeAt(x, y int) tile.Shade {
	return e.grid.ShadeAt(x, y)
}

// Grid returns a copy of the tile.
func (e *Editor) Grid() tile.Grid {
	return e.grid
}

// Hex returns the tile in its canonical hex form.
func (e *Editor) Hex() string {
	return tile.Encode(e.grid)
}

// SetHex replaces the tile with the one described by the hex string. On
// failure the current tile is left untouched and the error returned for
// display.
func (e *Editor) SetHex(s string) error {
	g, err := tile.Decode(s)
	if err != nil {
		e.logger.Printf("decode %q: %v", s, err)
		return err
	}
	e.grid = g
	return nil
}

// Image renders the tile at the given scale for previewing.
func (e *Editor) Image(scale int) (*image.Paletted, error) {
	return tileimage.Render(&e.grid, scale)
}
