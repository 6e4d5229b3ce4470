package cellbuffer

// StyleAt returns the style byte at offset, or 0 (the default/unstyled
// value) if out of range.
func (cb *CellBuffer) StyleAt(offset int64) byte {
	if offset < 0 || offset >= int64(len(cb.styles)) {
		return 0
	}
	return cb.styles[offset]
}

// SetStyleAt sets a single style byte.
func (cb *CellBuffer) SetStyleAt(offset int64, style byte) Status {
	if offset < 0 || offset >= int64(len(cb.styles)) {
		return StatusFailure
	}
	cb.styles[offset] = style
	return StatusOk
}

// SetStyleFor paints style over the half-open byte range [pos, pos+length).
func (cb *CellBuffer) SetStyleFor(pos, length int64, style byte) Status {
	if pos < 0 || length < 0 || pos+length > int64(len(cb.styles)) {
		return StatusFailure
	}
	for i := pos; i < pos+length; i++ {
		cb.styles[i] = style
	}
	return StatusOk
}

// EndStyled returns the watermark up to which styling is known current.
func (cb *CellBuffer) EndStyled() int64 { return cb.endStyled }

// SetEndStyled moves the styling watermark. The lexer bridge (in
// internal/document) is the sole caller during normal operation; edits
// that land before the watermark pull it back via RetreatEndStyled.
func (cb *CellBuffer) SetEndStyled(pos int64) { cb.endStyled = pos }

// RetreatEndStyled pulls the styling watermark back to at most pos, used
// when an edit invalidates previously computed styling.
func (cb *CellBuffer) RetreatEndStyled(pos int64) {
	if pos < cb.endStyled {
		cb.endStyled = pos
	}
}

// spliceStyleInsert grows styles to make room for n freshly-inserted,
// unstyled (zero) bytes at pos.
func spliceStyleInsert(styles []byte, pos int64, n int) []byte {
	if n == 0 {
		return styles
	}
	out := make([]byte, 0, len(styles)+n)
	out = append(out, styles[:pos]...)
	out = append(out, make([]byte, n)...)
	out = append(out, styles[pos:]...)
	return out
}

// spliceStyleRemove removes the style bytes covering [pos, pos+length).
func spliceStyleRemove(styles []byte, pos, length int64) []byte {
	if length == 0 {
		return styles
	}
	out := make([]byte, 0, int64(len(styles))-length)
	out = append(out, styles[:pos]...)
	out = append(out, styles[pos+length:]...)
	return out
}
