package charclass

// CodePage identifies a DBCS code page. The lead-byte ranges and trail
// thresholds below are the specific values Scintilla's DBCS handling
// uses; no library in the ecosystem exposes "is this a DBCS lead byte,
// and what trail bytes are valid" as a queryable byte-level API (x/text's
// decoders operate on whole strings via transform.Transformer), so this
// table is necessarily hand-written.
type CodePage int

const (
	CP932  CodePage = 932  // Shift-JIS (Japanese)
	CP936  CodePage = 936  // GBK (Simplified Chinese)
	CP949  CodePage = 949  // UHC (Korean)
	CP950  CodePage = 950  // Big5 (Traditional Chinese)
	CP1361 CodePage = 1361 // Johab (Korean)
)

// DBCS is the EncodingStrategy for double-byte code pages. A DBCS
// character is one byte unless its lead byte is followed by a valid
// trail byte, in which case it is two. Distinguishing a lead byte from a
// trail byte at an arbitrary offset is, in general, only resolvable by
// scanning from a known boundary; this implementation uses the
// single-byte lookback Scintilla itself relies on for the common case;
// byte streams that defeat this lookback are not resolved.
type DBCS struct {
	CodePage CodePage
}

func (d DBCS) isLeadByte(b byte) bool {
	switch d.CodePage {
	case CP932:
		return (b >= 0x81 && b <= 0x9F) || (b >= 0xE0 && b <= 0xFC)
	case CP936, CP950:
		return b >= 0x81 && b <= 0xFE
	case CP949:
		return b >= 0x81 && b <= 0xFE
	case CP1361:
		return b >= 0x84 && b <= 0xD3
	default:
		return false
	}
}

func (d DBCS) trailThreshold() byte {
	switch d.CodePage {
	case CP932, CP936, CP950:
		return 0x40
	case CP949:
		return 0x41
	case CP1361:
		return 0x31
	default:
		return 0x40
	}
}

func (d DBCS) isValidTrailByte(b byte) bool {
	return b >= d.trailThreshold() && b != 0x7F
}

// AsciiBackwardSafeChar returns trailThreshold()-1: any byte at or below
// it cannot be a valid trail byte of this code page, so a brace/bracket
// scan comparing against it can skip the boundary check for '(' ')'
// (which sit below every trail threshold here) and, except under CP1361
// (threshold 0x31), for '<' '>', while still running it for '[' ']' '{'
// '}' (which sit above all of them).
func (d DBCS) AsciiBackwardSafeChar() byte {
	return d.trailThreshold() - 1
}

// isBoundary reports whether pos is not the trailing byte of a two-byte
// character starting at pos-1.
func (d DBCS) isBoundary(src ByteSource, pos int64) bool {
	if pos <= 0 {
		return true
	}
	prev, ok := src.ByteAt(pos - 1)
	if !ok || !d.isLeadByte(prev) {
		return true
	}
	cur, ok := src.ByteAt(pos)
	return !(ok && d.isValidTrailByte(cur))
}

// charWidthAt returns 2 if the character starting at pos is a lead byte
// followed by a valid trail byte, else 1.
func (d DBCS) charWidthAt(src ByteSource, pos int64) int64 {
	b, ok := src.ByteAt(pos)
	if !ok {
		return 1
	}
	if d.isLeadByte(b) {
		if next, ok2 := src.ByteAt(pos + 1); ok2 && d.isValidTrailByte(next) {
			return 2
		}
	}
	return 1
}

func (d DBCS) NextPosition(src ByteSource, pos int64, delta int) int64 {
	length := src.Length()
	if delta > 0 {
		for i := 0; i < delta && pos < length; i++ {
			pos += d.charWidthAt(src, pos)
			if pos > length {
				pos = length
			}
		}
	} else if delta < 0 {
		for i := 0; i < -delta && pos > 0; i++ {
			pos--
			for pos > 0 && !d.isBoundary(src, pos) {
				pos--
			}
		}
	}
	return pos
}

func (d DBCS) MovePositionOutsideChar(src ByteSource, pos int64, moveDir int, checkLineEnd bool) int64 {
	pos = clamp(pos, 0, src.Length())
	for !d.isBoundary(src, pos) {
		if moveDir < 0 {
			pos--
		} else {
			pos++
		}
	}
	if checkLineEnd {
		pos = snapOutsideCRLF(src, pos, moveDir)
	}
	return pos
}

func (d DBCS) CharacterAfter(src ByteSource, pos int64) CharacterAndWidth {
	b, ok := src.ByteAt(pos)
	if !ok {
		return CharacterAndWidth{}
	}
	w := d.charWidthAt(src, pos)
	if w == 1 {
		return CharacterAndWidth{Character: rune(b), Width: 1}
	}
	b2, _ := src.ByteAt(pos + 1)
	return CharacterAndWidth{Character: rune(int(b)<<8 | int(b2)), Width: 2}
}

func (d DBCS) CharacterBefore(src ByteSource, pos int64) CharacterAndWidth {
	if pos <= 0 {
		return CharacterAndWidth{}
	}
	start := pos - 1
	for start > 0 && !d.isBoundary(src, start) {
		start--
	}
	return d.CharacterAfter(src, start)
}

func (d DBCS) ExtractCharacter(src ByteSource, pos int64) CharacterAndWidth {
	return d.CharacterAfter(src, pos)
}
