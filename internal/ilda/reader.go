package ilda

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"
)

// Decode parses a complete ILDA byte stream.
//
// Decoding stops at the terminator header (zero records, empty name and
// company) or at a clean end of buffer; files written by third-party tools
// frequently omit the terminator, so its absence alone is not an error.
//
// Structural failures return a typed error (FormatError,
// UnsupportedFormatError, TruncationError). On truncation the frames parsed
// before the bad block are returned alongside the error so they can be
// inspected; on a bad magic nothing is returned, since block boundaries can
// no longer be trusted.
func Decode(data []byte) (*File, error) {
	file := &File{}
	pos := int64(0)
	size := int64(len(data))

	for {
		if pos == size {
			// Clean end without a terminator.
			return file, nil
		}
		if size-pos < HeaderSize {
			return file, &TruncationError{Offset: pos, Header: true, Remaining: size - pos}
		}

		h := data[pos : pos+HeaderSize]
		if string(h[0:4]) != Magic {
			var found [4]byte
			copy(found[:], h[0:4])
			return nil, &FormatError{Offset: pos, Found: found}
		}

		format := Format(h[7])
		if format.RecordSize() == 0 {
			return file, &UnsupportedFormatError{Offset: pos, Code: h[7]}
		}

		name := trimName(h[8:16])
		company := trimName(h[16:24])
		records := int(binary.BigEndian.Uint16(h[24:26]))
		projector := h[30]

		if records == 0 && name == "" && company == "" {
			// EOF marker. A content frame with nothing visible still has its
			// one placeholder point, so this is unambiguous.
			return file, nil
		}

		payload := int64(records) * int64(format.RecordSize())
		if size-pos-HeaderSize < payload {
			return file, &TruncationError{
				Offset:    pos,
				Format:    format,
				Records:   records,
				Remaining: size - pos - HeaderSize,
			}
		}
		body := data[pos+HeaderSize : pos+HeaderSize+payload]

		switch format {
		case FormatPalette:
			palette := make([]RGB, 0, records)
			for i := 0; i < records; i++ {
				palette = append(palette, RGB{R: body[i*3], G: body[i*3+1], B: body[i*3+2]})
			}
			file.Palette = palette

		case Format3DIndexed, Format2DIndexed, Format3DTrueColor, Format2DTrueColor:
			frame := Frame{
				Name:      name,
				Company:   company,
				Projector: projector,
				Format:    format,
				Points:    make([]Point, 0, records),
			}
			rs := format.RecordSize()
			for i := 0; i < records; i++ {
				frame.Points = append(frame.Points, decodePoint(format, body[i*rs:(i+1)*rs]))
			}
			file.Frames = append(file.Frames, frame)
		}

		pos += HeaderSize + payload
	}
}

// ReadFile decodes an .ild file from disk.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ilda: read %s: %w", path, err)
	}
	return Decode(data)
}

// Read decodes an ILDA stream from r.
func Read(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ilda: read stream: %w", err)
	}
	return Decode(data)
}

func decodePoint(format Format, rec []byte) Point {
	p := Point{
		X: int16(binary.BigEndian.Uint16(rec[0:2])),
		Y: int16(binary.BigEndian.Uint16(rec[2:4])),
	}

	var status byte
	switch format {
	case Format3DIndexed:
		p.Z = int16(binary.BigEndian.Uint16(rec[4:6]))
		status = rec[6]
		p.ColorIndex = rec[7]
	case Format2DIndexed:
		status = rec[4]
		p.ColorIndex = rec[5]
	case Format3DTrueColor:
		p.Z = int16(binary.BigEndian.Uint16(rec[4:6]))
		status = rec[6]
		p.Color = RGB{B: rec[7], G: rec[8], R: rec[9]}
	case Format2DTrueColor:
		status = rec[4]
		p.Color = RGB{B: rec[5], G: rec[6], R: rec[7]}
	}

	p.Blanked = status&StatusBlanked != 0
	return p
}

func trimName(b []byte) string {
	return strings.TrimRight(string(b), "\x00 ")
}
