package brace

import "github.com/textcore/editdoc/internal/charclass"

// Source is the slice of a styled document BraceMatch needs: bytes,
// styles, and the watermark past which style data can't be trusted.
type Source interface {
	charclass.ByteSource
	StyleAt(pos int64) byte
	EndStyled() int64
}

// NotFound is returned when position does not sit on a brace character,
// or no matching brace is found before running off the buffer.
const NotFound int64 = -1

// opposite returns the partner of a brace byte, or 0 if ch is not one of
// ()[]{}<>.
func opposite(ch byte) byte {
	switch ch {
	case '(', ')':
		return '(' + ')' - ch
	case '[', ']', '{', '}':
		return ('[' + ']' + (ch & 32 * 2)) - ch
	case '<', '>':
		return '<' + '>' - ch
	default:
		return 0
	}
}

// Match pairs the brace at position with its partner. startPos, when
// useStartPos is true, overrides the byte immediately adjacent to
// position as the scan's starting point (used when a caller already
// knows where the nested search should resume, e.g. re-matching after
// an edit). Direction is +1 for an opener, -1 for a closer; the scan
// walks one byte at a time, incrementing depth on same-kind braces and
// decrementing on the opposite kind, returning the position where depth
// returns to zero.
func Match(src Source, enc charclass.EncodingStrategy, position, startPos int64, useStartPos bool) int64 {
	chBrace, ok := src.ByteAt(position)
	if !ok {
		return NotFound
	}
	chSeek := opposite(chBrace)
	if chSeek == 0 {
		return NotFound
	}

	styBrace := src.StyleAt(position)
	direction := int64(1)
	if chBrace >= chSeek {
		direction = -1
	}

	pos := position + direction
	if useStartPos {
		pos = startPos
	}

	endStylePos := src.EndStyled()
	length := src.Length()
	depth := 1

	dir := 1
	if direction < 0 {
		dir = -1
	}

	for pos >= 0 && pos < length {
		chAtPos, ok := src.ByteAt(pos)
		if !ok {
			break
		}
		if chAtPos == chBrace || chAtPos == chSeek {
			styleOK := pos > endStylePos || src.StyleAt(pos) == styBrace
			boundaryOK := chAtPos <= enc.AsciiBackwardSafeChar() || pos == enc.MovePositionOutsideChar(src, pos, dir, false)
			if styleOK && boundaryOK {
				if chAtPos == chBrace {
					depth++
				} else {
					depth--
				}
				if depth == 0 {
					return pos
				}
			}
		}
		pos += direction
	}
	return NotFound
}
