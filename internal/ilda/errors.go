package ilda

import "fmt"

// FormatError reports a block whose magic bytes are not "ILDA". The offset
// and the bytes actually found are kept so a corrupted file can be diagnosed
// without a hex dump.
type FormatError struct {
	Offset int64
	Found  [4]byte
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("ilda: bad magic %q at offset %d (want %q)", e.Found[:], e.Offset, Magic)
}

// UnsupportedFormatError reports a block with a format code outside the
// supported set. No best-effort parse is attempted: the record size of an
// unknown format is unknowable, so everything after it would be garbage.
type UnsupportedFormatError struct {
	Offset int64
	Code   uint8
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("ilda: unsupported format code %d at offset %d", e.Code, e.Offset)
}

// TruncationError reports a stream that ends before a block does: either
// inside the 32-byte header itself (Header true), or with fewer record bytes
// than the header declared. Frames decoded before the bad block are still
// returned for inspection.
type TruncationError struct {
	Offset    int64
	Header    bool // the header itself is short; Format and Records are unset
	Format    Format
	Records   int
	Remaining int64
}

func (e *TruncationError) Error() string {
	if e.Header {
		return fmt.Sprintf("ilda: truncated header at offset %d: need %d bytes, %d remain",
			e.Offset, HeaderSize, e.Remaining)
	}
	return fmt.Sprintf("ilda: truncated %s block at offset %d: %d records need %d bytes, %d remain",
		e.Format, e.Offset, e.Records, e.Records*e.Format.RecordSize(), e.Remaining)
}
