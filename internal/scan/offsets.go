package scan

// Offsets is an ordered sequence of byte offsets at which UTF-8 characters
// begin within one specific byte slice, optionally terminated by the
// EndOfText sentinel. It is a function of that slice's current content: it
// is invalidated the moment the content changes or a different slice is
// scanned into the same storage.
//
// An Offsets value is owned by a single logical operation at a time; it is
// not safe for concurrent scans.
type Offsets struct {
	off []int
}

// NewOffsets returns an empty sequence with room for capacity entries.
func NewOffsets(capacity int) *Offsets {
	return &Offsets{off: make([]int, 0, capacity)}
}

// Len returns the number of recorded entries, sentinel included.
func (o *Offsets) Len() int {
	return len(o.off)
}

// At returns entry i. The final entry is EndOfText when the scan that
// produced the sequence consumed its whole input.
func (o *Offsets) At(i int) int {
	return o.off[i]
}

// CharCount returns the number of character boundaries recorded, excluding
// the sentinel if present.
func (o *Offsets) CharCount() int {
	n := len(o.off)
	if n > 0 && o.off[n-1] == EndOfText {
		n--
	}
	return n
}

// Bound resolves boundary i to a byte offset within a source of srcLen
// bytes. The sentinel, and any boundary past the recorded entries, resolve
// to srcLen.
func (o *Offsets) Bound(i, srcLen int) int {
	if i >= len(o.off) {
		return srcLen
	}
	if v := o.off[i]; v != EndOfText {
		return v
	}
	return srcLen
}

// Reset clears the sequence, keeping its storage.
func (o *Offsets) Reset() {
	o.off = o.off[:0]
}
