/*
Package tile implements a Game Boy tile decoder and encoder.

A tile is 8 by 8 pixels exactly, each pixel holding one of four shades.
Every row is stored as two bitplane bytes; the first carries the low bit of
each pixel and the second the high bit, with column 0 in the most
significant bit. Combining the two bits at a column yields the 2-bit shade.

The 16 bytes are exchanged with each adjacent byte pair swapped, so a row
appears on the wire as its high plane byte followed by its low plane byte.
The wire form is conventionally written as 16 space-separated two-digit
uppercase hex bytes, which is the format Encode produces and Decode accepts.
*/
package tile

const (
	tileWidth  = 8
	tileHeight = tileWidth
	numPlanes  = 2
	numBytes   = tileHeight * numPlanes
)
