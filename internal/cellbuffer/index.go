package cellbuffer

import "github.com/textcore/editdoc/internal/rope"

// LineCharacterIndexType identifies a secondary position index a caller
// (typically an LSP bridge) wants kept available. Only UTF-16 is
// supported, matching the one secondary metric rope.TextSummary carries.
type LineCharacterIndexType uint8

const (
	// IndexUTF16 indexes positions in UTF-16 code units, the coordinate
	// space LSP's Position type uses.
	IndexUTF16 LineCharacterIndexType = iota
)

// AllocateLineCharacterIndex requests that kind be kept available,
// incrementing a reference count; the index itself (rope.TextSummary.
// UTF16Units) is always current, so allocation here only gates whether
// callers are expected to rely on it remaining cheap to query.
func (cb *CellBuffer) AllocateLineCharacterIndex(kind LineCharacterIndexType) {
	if kind == IndexUTF16 {
		cb.utf16IndexRefCount++
	}
}

// ReleaseLineCharacterIndex releases one reference taken by
// AllocateLineCharacterIndex.
func (cb *CellBuffer) ReleaseLineCharacterIndex(kind LineCharacterIndexType) {
	if kind == IndexUTF16 && cb.utf16IndexRefCount > 0 {
		cb.utf16IndexRefCount--
	}
}

// LineCharacterIndexActive reports whether any caller currently holds a
// reference to the named index.
func (cb *CellBuffer) LineCharacterIndexActive(kind LineCharacterIndexType) bool {
	return kind == IndexUTF16 && cb.utf16IndexRefCount > 0
}

// UTF16LengthOfLine returns the UTF-16 code unit length of line,
// excluding its terminator.
func (cb *CellBuffer) UTF16LengthOfLine(line int) uint64 {
	text := cb.LineText(line)
	return rope.ComputeSummary(text).UTF16Units
}

// UTF16PositionToByte converts a (line, utf16Column) position to a byte
// offset within the buffer, scanning the line's UTF-16 units linearly.
// Returns the line's end offset if utf16Column runs past the line.
func (cb *CellBuffer) UTF16PositionToByte(line int, utf16Column uint64) int64 {
	start := cb.LineStart(line)
	end := cb.LineEnd(line)
	text := cb.TextRange(start, end)

	var units uint64
	for i, r := range text {
		if units >= utf16Column {
			return start + int64(i)
		}
		if r <= 0xFFFF {
			units++
		} else {
			units += 2
		}
	}
	return end
}
