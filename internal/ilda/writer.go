package ilda

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Write serializes the file to w: optional palette block, one block per
// frame, then the EOF terminator. Frame numbers and the total-frames field
// are assigned here so callers cannot desynchronize them from the actual
// sequence.
func Write(w io.Writer, f *File) error {
	total := len(f.Frames)
	if total > 0xFFFF {
		return fmt.Errorf("ilda: %d frames exceed the uint16 frame counter", total)
	}

	if len(f.Palette) > 0 {
		if len(f.Palette) > 256 {
			return fmt.Errorf("ilda: palette has %d entries, maximum is 256", len(f.Palette))
		}
		if err := writeHeader(w, FormatPalette, "PALETTE", "", len(f.Palette), 0, total, 0); err != nil {
			return err
		}
		for _, c := range f.Palette {
			if _, err := w.Write([]byte{c.R, c.G, c.B}); err != nil {
				return err
			}
		}
	}

	for i, frame := range f.Frames {
		if len(frame.Points) > 0xFFFF {
			return fmt.Errorf("ilda: frame %d has %d points, maximum is 65535", i, len(frame.Points))
		}
		if frame.Format.RecordSize() == 0 || frame.Format == FormatPalette {
			return fmt.Errorf("ilda: frame %d has non-frame format %d", i, frame.Format)
		}
		if err := writeHeader(w, frame.Format, frame.Name, frame.Company, len(frame.Points), i, total, int(frame.Projector)); err != nil {
			return err
		}
		for j, p := range frame.Points {
			if err := writePoint(w, frame.Format, p, j == len(frame.Points)-1); err != nil {
				return err
			}
		}
	}

	// EOF marker: zero records, empty name and company.
	return writeHeader(w, Format3DIndexed, "", "", 0, 0, 0, 0)
}

// Encode is the buffer-returning form of Write.
func Encode(f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the file to disk at path.
func WriteFile(path string, f *File) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ilda: create %s: %w", path, err)
	}
	if err := Write(out, f); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func writeHeader(w io.Writer, format Format, name, company string, records, frameNo, total, projector int) error {
	var h [HeaderSize]byte
	copy(h[0:4], Magic)
	// bytes 4..6 reserved
	h[7] = byte(format)
	padName(h[8:16], name)
	padName(h[16:24], company)
	binary.BigEndian.PutUint16(h[24:26], uint16(records))
	binary.BigEndian.PutUint16(h[26:28], uint16(frameNo))
	binary.BigEndian.PutUint16(h[28:30], uint16(total))
	h[30] = byte(projector)
	// byte 31 reserved
	_, err := w.Write(h[:])
	return err
}

// padName fills an 8-byte name field: ASCII bytes, truncated, NUL padded.
// Non-ASCII bytes are replaced so third-party players never see them.
func padName(dst []byte, s string) {
	i := 0
	for _, r := range s {
		if i >= NameLen {
			break
		}
		if r < 0x20 || r > 0x7E {
			dst[i] = '?'
		} else {
			dst[i] = byte(r)
		}
		i++
	}
}

func writePoint(w io.Writer, format Format, p Point, last bool) error {
	var rec [10]byte
	n := format.RecordSize()

	binary.BigEndian.PutUint16(rec[0:2], uint16(p.X))
	binary.BigEndian.PutUint16(rec[2:4], uint16(p.Y))

	status := byte(0)
	if p.Blanked {
		status |= StatusBlanked
	}
	if last {
		status |= StatusLastPoint
	}

	switch format {
	case Format3DIndexed:
		binary.BigEndian.PutUint16(rec[4:6], uint16(p.Z))
		rec[6] = status
		rec[7] = p.ColorIndex
	case Format2DIndexed:
		rec[4] = status
		rec[5] = p.ColorIndex
	case Format3DTrueColor:
		binary.BigEndian.PutUint16(rec[4:6], uint16(p.Z))
		rec[6] = status
		rec[7] = p.Color.B
		rec[8] = p.Color.G
		rec[9] = p.Color.R
	case Format2DTrueColor:
		rec[4] = status
		rec[5] = p.Color.B
		rec[6] = p.Color.G
		rec[7] = p.Color.R
	default:
		return fmt.Errorf("ilda: cannot encode points for format %d", format)
	}

	_, err := w.Write(rec[:n])
	return err
}
