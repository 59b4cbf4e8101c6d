package ilda

/*
ILDA file structure

A file is a sequence of blocks. Every block starts with a fixed 32-byte
header followed by format-dependent records:

  0..3   : ASCII "ILDA"
  4..6   : reserved (zero)
  7      : format code
  8..15  : frame name (8 bytes, NUL padded)
  16..23 : company name (8 bytes, NUL padded)
  24..25 : record count (uint16, big-endian)
  26..27 : frame number (uint16)
  28..29 : total frames (uint16; count of frames, not last index)
  30     : projector / scanner head (uint8)
  31     : reserved (zero)

Record layouts by format code:

  0 : x(i16) y(i16) z(i16) status(u8) colorIndex(u8)          8 bytes
  1 : x(i16) y(i16) status(u8) colorIndex(u8)                 6 bytes
  2 : r(u8) g(u8) b(u8)  (palette entry)                      3 bytes
  4 : x(i16) y(i16) z(i16) status(u8) b(u8) g(u8) r(u8)      10 bytes
  5 : x(i16) y(i16) status(u8) b(u8) g(u8) r(u8)              8 bytes

Note the true-color byte order on the wire is blue, green, red.

The file ends with a header whose record count is zero and whose name and
company fields are empty. A legitimate frame with no visible content still
carries one blanked point, so it is never confused with the terminator.
*/

// Layout constants for the fixed parts of the format.
const (
	HeaderSize = 32     // every block header is exactly 32 bytes
	Magic      = "ILDA" // 4-byte block signature

	NameLen = 8 // frame and company name field width

	// Status byte bits. Bit 6 marks a blanked (beam-off) point; bit 7 marks
	// the last point of a frame and is set by the writer but ignored when
	// comparing decoded points.
	StatusBlanked   = 0x40
	StatusLastPoint = 0x80

	// MaxCoord/MinCoord bound the signed 16-bit device coordinate envelope.
	MaxCoord = 32767
	MinCoord = -32768
)

// Format identifies the record layout of one ILDA block. The set is closed;
// both the encoder and the decoder switch exhaustively over it.
type Format uint8

const (
	Format3DIndexed   Format = 0 // x,y,z + palette index
	Format2DIndexed   Format = 1 // x,y + palette index
	FormatPalette     Format = 2 // embedded color palette table
	Format3DTrueColor Format = 4 // x,y,z + BGR color
	Format2DTrueColor Format = 5 // x,y + BGR color
)

// RecordSize returns the per-record byte size for the format, or 0 for an
// unknown code.
func (f Format) RecordSize() int {
	switch f {
	case Format3DIndexed:
		return 8
	case Format2DIndexed:
		return 6
	case FormatPalette:
		return 3
	case Format3DTrueColor:
		return 10
	case Format2DTrueColor:
		return 8
	}
	return 0
}

// Is3D reports whether the format carries a Z coordinate.
func (f Format) Is3D() bool {
	return f == Format3DIndexed || f == Format3DTrueColor
}

// TrueColor reports whether the format carries raw RGB instead of a palette
// index.
func (f Format) TrueColor() bool {
	return f == Format3DTrueColor || f == Format2DTrueColor
}

func (f Format) String() string {
	switch f {
	case Format3DIndexed:
		return "3d-indexed"
	case Format2DIndexed:
		return "2d-indexed"
	case FormatPalette:
		return "palette"
	case Format3DTrueColor:
		return "3d-truecolor"
	case Format2DTrueColor:
		return "2d-truecolor"
	}
	return "unknown"
}

// RGB is one palette entry or true-color value.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Point is one laser point in device coordinates. ColorIndex is meaningful
// for indexed formats, Color for true-color formats; the frame's Format
// decides which is written.
type Point struct {
	X          int16
	Y          int16
	Z          int16
	Blanked    bool
	ColorIndex uint8
	Color      RGB
}

// Frame is one displayable laser frame.
type Frame struct {
	Name      string // at most NameLen bytes; longer names are truncated
	Company   string
	Projector uint8
	Format    Format
	Points    []Point
}

// File is a complete ILDA animation: the ordered frame sequence plus an
// optional embedded palette (format 2 block) written ahead of the frames
// that reference it.
type File struct {
	Frames  []Frame
	Palette []RGB
}
