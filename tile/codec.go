package tile

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Decode failure values. Decode and the unmarshal methods wrap these with
// the offending token or count, so match them with errors.Is.
var (
	ErrMalformedLength  = errors.New("tile: hex must contain exactly 16 bytes")
	ErrInvalidHexByte   = errors.New("tile: invalid hex byte")
	ErrInvalidColorBits = errors.New("tile: bit pair has no shade")
)

// planes packs the grid into its 16 planar bytes: for each row the low
// plane byte followed by the high plane byte, column 0 in bit 7.
func (g Grid) planes() (p [numBytes]byte) {
	for y := 0; y < tileHeight; y++ {
		var low, high byte
		for x := 0; x < tileWidth; x++ {
			lo, hi := g[y][x].Bits()
			low |= lo << (7 - x)
			high |= hi << (7 - x)
		}
		p[numPlanes*y] = low
		p[numPlanes*y+1] = high
	}
	return
}

// fromPlanes rebuilds a grid from its 16 planar bytes.
func fromPlanes(p [numBytes]byte) (Grid, error) {
	var g Grid
	for y := 0; y < tileHeight; y++ {
		low, high := p[numPlanes*y], p[numPlanes*y+1]
		for x := 0; x < tileWidth; x++ {
			bit := 7 - x
			s, err := ShadeFromBits((low>>bit)&1, (high>>bit)&1)
			if err != nil {
				return Grid{}, err
			}
			g[y][x] = s
		}
	}
	return g, nil
}

// swapPairs exchanges each adjacent pair of bytes, converting between the
// planar order and the little-endian wire order. It is its own inverse.
func swapPairs(b [numBytes]byte) (out [numBytes]byte) {
	for i := 0; i < numBytes; i += numPlanes {
		out[i], out[i+1] = b[i+1], b[i]
	}
	return
}

// Encode returns the tile as 16 space-separated uppercase hex bytes in wire
// order.
func Encode(g Grid) string {
	wire := swapPairs(g.planes())
	var b strings.Builder
	b.Grow(numBytes*3 - 1)
	for i, v := range wire {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", v)
	}
	return b.String()
}

// Decode parses 16 whitespace-separated hex bytes in wire order and returns
// the tile they describe. Each token is one or two hex digits in either
// case. The grid is built in full before it is returned, so a failure never
// leaves the caller holding a partial tile.
func Decode(s string) (Grid, error) {
	fields := strings.Fields(s)
	if len(fields) != numBytes {
		return Grid{}, fmt.Errorf("%w, got %d", ErrMalformedLength, len(fields))
	}
	var wire [numBytes]byte
	for i, tok := range fields {
		if len(tok) > 2 {
			return Grid{}, fmt.Errorf("%w %q", ErrInvalidHexByte, tok)
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return Grid{}, fmt.Errorf("%w %q", ErrInvalidHexByte, tok)
		}
		wire[i] = byte(v)
	}
	return fromPlanes(swapPairs(wire))
}

// String returns the hex form of the tile.
func (g Grid) String() string {
	return Encode(g)
}

// MarshalBinary implements encoding.BinaryMarshaler, returning the 16 wire
// bytes.
func (g Grid) MarshalBinary() ([]byte, error) {
	wire := swapPairs(g.planes())
	return wire[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler from the 16 wire
// bytes. On failure the receiver is left unmodified.
func (g *Grid) UnmarshalBinary(b []byte) error {
	if len(b) != numBytes {
		return fmt.Errorf("%w, got %d", ErrMalformedLength, len(b))
	}
	var wire [numBytes]byte
	copy(wire[:], b)
	t, err := fromPlanes(swapPairs(wire))
	if err != nil {
		return err
	}
	*g = t
	return nil
}

// MarshalText implements encoding.TextMarshaler using the hex form.
func (g Grid) MarshalText() ([]byte, error) {
	return []byte(Encode(g)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler from the hex form. On
// failure the receiver is left unmodified.
func (g *Grid) UnmarshalText(text []byte) error {
	t, err := Decode(string(text))
	if err != nil {
		return err
	}
	*g = t
	return nil
}

// Interface checks.
var (
	_ encoding.BinaryMarshaler   = Grid{}
	_ encoding.BinaryUnmarshaler = (*Grid)(nil)
	_ encoding.TextMarshaler     = Grid{}
	_ encoding.TextUnmarshaler   = (*Grid)(nil)
	_ fmt.Stringer               = Grid{}
)
