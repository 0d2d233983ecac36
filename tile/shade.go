package tile

import (
	"fmt"
	"image/color"
)

// Shade is a 2-bit index into the four entry Game Boy palette.
type Shade uint8

// The four shades, in palette order.
const (
	White Shade = iota
	LightGray
	DarkGray
	Black
)

// shadeBits maps a shade to its (low, high) bitplane pair. It is the
// canonical table; bitShades is derived from it.
var shadeBits = [4][2]byte{
	White:     {1, 1},
	LightGray: {1, 0},
	DarkGray:  {0, 0},
	Black:     {0, 1},
}

// bitShades is the reverse mapping, indexed as [low][high].
var bitShades = makeBitShades()

func makeBitShades() (t [2][2]Shade) {
	var seen [2][2]bool
	for s, b := range shadeBits {
		lo, hi := b[0], b[1]
		if seen[lo][hi] {
			panic("tile: shade table bit pairs must be unique")
		}
		seen[lo][hi] = true
		t[lo][hi] = Shade(s)
	}
	return
}

// Bits returns the low and high bitplane bits encoding the shade. Values
// outside the 2-bit range are masked first.
func (s Shade) Bits() (low, high byte) {
	b := shadeBits[s&3]
	return b[0], b[1]
}

// ShadeFromBits returns the shade encoded by a (low, high) bitplane pair.
// Bits wider than one bit have no shade and are rejected.
func ShadeFromBits(low, high byte) (Shade, error) {
	if low > 1 || high > 1 {
		return 0, fmt.Errorf("%w (%d, %d)", ErrInvalidColorBits, low, high)
	}
	return bitShades[low][high], nil
}

// shadeLevels holds the displayed gray level for each shade.
var shadeLevels = [4]uint8{0xff, 0xc0, 0x60, 0x00}

// RGBA implements color.Color using the traditional gray palette: white,
// light gray, dark gray and black.
func (s Shade) RGBA() (r, g, b, a uint32) {
	y := uint32(shadeLevels[s&3])
	y |= y << 8
	return y, y, y, 0xffff
}

// Colors is the display palette, indexed by shade.
var Colors = color.Palette{White, LightGray, DarkGray, Black}

// ShadeModel converts any color to the nearest shade.
var ShadeModel color.Model = color.ModelFunc(shadeModel)

func shadeModel(c color.Color) color.Color {
	if s, ok := c.(Shade); ok {
		return s & 3
	}
	return Shade(Colors.Index(c))
}
