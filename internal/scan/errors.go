package scan

import (
	"fmt"
	"strings"
)

// IndexError reports a character index outside the valid range for the
// operation that received it. It is a caller contract violation, never an
// input-data problem.
type IndexError struct {
	Index int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("character index out of range: %d", e.Index)
}

// LeadByteError reports a byte that cannot legally begin a UTF-8 character.
// It indicates corrupt or non-UTF-8 input; scanning past a lead byte of
// unknown length is unsafe, so the scan stops immediately.
type LeadByteError struct {
	Byte   byte
	Offset int
}

func (e *LeadByteError) Error() string {
	return fmt.Sprintf("invalid UTF-8 lead byte 0x%02x at offset %d", e.Byte, e.Offset)
}

// OffsetDataError reports an offset sequence whose consecutive entries
// imply a character length outside 1-4 bytes. It is a defect in the scanner
// or its caller, not an input validation failure; it should never occur for
// a scanner-produced sequence over well-formed UTF-8.
type OffsetDataError struct {
	Offset int
	Length int
}

func (e *OffsetDataError) Error() string {
	return fmt.Sprintf("corrupt character offsets: implied length %d at byte offset %d", e.Length, e.Offset)
}

// CharBytesError reports a character whose continuation bytes are invalid
// or which is truncated by the end of the buffer. Returned by Validate.
type CharBytesError struct {
	Offset int
	Bytes  []byte
}

func (e *CharBytesError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid UTF-8 character byte stream at offset 0x%x for %d bytes [", e.Offset, len(e.Bytes))
	for _, b := range e.Bytes {
		fmt.Fprintf(&sb, " %02x", b)
	}
	sb.WriteString(" ]")
	return sb.String()
}
