// Package scan implements the UTF-8 character boundary scanner, the
// code-point decoder and the byte-stream validator that the root textbytes
// package is built on. It works directly on raw byte slices; the root
// package adapts it to the Text buffer type.
package scan

// EndOfText is the sentinel appended to an offset sequence when the scan
// consumed its whole input, marking end-of-text distinctly from a real
// byte offset.
const EndOfText = -1

// Continuation bytes of a multi-byte character must fall in this range.
const (
	loContinuation = 0x80
	hiContinuation = 0xBF
)

// leadByteLen maps a lead byte value to the total encoded length of the
// character it begins, or -1 for bytes that can never begin a character
// (continuation bytes 0x80-0xBF and the unused range 0xF8-0xFF).
var leadByteLen [256]int8

func init() {
	for x := 0; x < 256; x++ {
		switch {
		case x <= 0x7F:
			leadByteLen[x] = 1
		case x >= 0xC0 && x <= 0xDF:
			leadByteLen[x] = 2
		case x >= 0xE0 && x <= 0xEF:
			leadByteLen[x] = 3
		case x >= 0xF0 && x <= 0xF7:
			leadByteLen[x] = 4
		default:
			leadByteLen[x] = -1
		}
	}
}

// CharOffsets resets dst and records the byte offset at which each UTF-8
// character of src begins, stopping after maxChars characters or at the end
// of src, whichever comes first. The EndOfText sentinel is appended only
// when the scan consumed src completely; a scan stopped early by the
// character cap leaves the sequence unterminated.
//
// Only the lead byte of each character is inspected; continuation bytes are
// trusted, not reinspected. A byte that cannot begin a character fails the
// scan with *LeadByteError and leaves dst in an unspecified state.
func CharOffsets(dst *Offsets, src []byte, maxChars int) error {
	dst.Reset()
	x := 0
	for count := 0; x < len(src) && count < maxChars; count++ {
		dst.off = append(dst.off, x)
		n := leadByteLen[src[x]]
		if n < 0 {
			return &LeadByteError{Byte: src[x], Offset: x}
		}
		x += int(n)
	}
	if x == len(src) {
		dst.off = append(dst.off, EndOfText)
	}
	return nil
}

// CodePoint decodes the single character spanning src[start:end] into its
// Unicode scalar value. The span must be 1 to 4 bytes; any other length
// means the offset sequence the caller derived it from is corrupt and the
// decode fails with *OffsetDataError.
func CodePoint(src []byte, start, end int) (rune, error) {
	switch end - start {
	case 1:
		return rune(src[start] & 0x7F), nil
	case 2:
		return rune(src[start]&0x1F)<<6 |
			rune(src[start+1]&0x3F), nil
	case 3:
		return rune(src[start]&0x0F)<<12 |
			rune(src[start+1]&0x3F)<<6 |
			rune(src[start+2]&0x3F), nil
	case 4:
		return rune(src[start]&0x07)<<18 |
			rune(src[start+1]&0x3F)<<12 |
			rune(src[start+2]&0x3F)<<6 |
			rune(src[start+3]&0x3F), nil
	default:
		return 0, &OffsetDataError{Offset: start, Length: end - start}
	}
}

// Validate checks that src is a well-formed sequence of 1-4 byte UTF-8
// characters. Unlike CharOffsets it does not trust continuation bytes:
// every lead byte must be classifiable, every continuation byte must fall
// in 0x80-0xBF, and the final character must not be truncated by the end
// of the buffer.
func Validate(src []byte) error {
	for x := 0; x < len(src); {
		n := int(leadByteLen[src[x]])
		if n < 0 {
			return &LeadByteError{Byte: src[x], Offset: x}
		}
		if x+n > len(src) {
			return &CharBytesError{Offset: x, Bytes: append([]byte(nil), src[x:]...)}
		}
		for i := 1; i < n; i++ {
			if src[x+i] < loContinuation || src[x+i] > hiContinuation {
				return &CharBytesError{Offset: x, Bytes: append([]byte(nil), src[x:x+n]...)}
			}
		}
		x += n
	}
	return nil
}
