package document

import "github.com/textcore/editdoc/internal/charclass"

// NextPosition advances pos by exactly one character per unit of delta.
func (d *Document) NextPosition(pos int64, delta int) int64 {
	return d.encoding.NextPosition(d, pos, delta)
}

// MovePositionOutsideChar snaps pos so it never splits a multi-byte
// character (or, when checkLineEnd is set, a CR-LF pair).
func (d *Document) MovePositionOutsideChar(pos int64, moveDir int, checkLineEnd bool) int64 {
	return d.encoding.MovePositionOutsideChar(d, pos, moveDir, checkLineEnd)
}

// wordClassOf classifies the character ce decodes to, the way
// Scintilla's WordCharacterClass does: ASCII bytes consult the
// classifier's byte table (including any SetCharClasses override),
// everything else its rune table.
func (d *Document) wordClassOf(ce charclass.CharacterAndWidth) charclass.Class {
	if ce.Width == 0 {
		return charclass.Space
	}
	if ce.Character >= 0 && ce.Character < 128 {
		return d.classifier.ClassOfByte(byte(ce.Character))
	}
	return d.classifier.ClassOfRune(ce.Character)
}

// ExtendWordSelect extends a selection from pos to the edge of the word
// (delta < 0: start, delta >= 0: end) it sits in. When onlyWordChars is
// true, a pos that starts outside a word/CJK-word run just snaps to the
// nearest character boundary instead of crossing into punctuation.
func (d *Document) ExtendWordSelect(pos int64, delta int, onlyWordChars bool) int64 {
	ccStart := charclass.Word
	if delta < 0 {
		if pos > 0 {
			ce := d.encoding.CharacterBefore(d, pos)
			ceStart := d.wordClassOf(ce)
			if !onlyWordChars || ceStart == ccStart || ceStart == charclass.CJKWord {
				ccStart = ceStart
				pos -= int64(ce.Width)
			} else {
				return d.MovePositionOutsideChar(pos, delta, true)
			}
		}
		for pos > 0 {
			ce := d.encoding.CharacterBefore(d, pos)
			if d.wordClassOf(ce) != ccStart {
				break
			}
			pos -= int64(ce.Width)
		}
	} else {
		if pos < d.Length() {
			ce := d.encoding.CharacterAfter(d, pos)
			ceStart := d.wordClassOf(ce)
			if !onlyWordChars || ceStart == ccStart || ceStart == charclass.CJKWord {
				ccStart = ceStart
				pos += int64(ce.Width)
			} else {
				return d.MovePositionOutsideChar(pos, delta, true)
			}
		}
		for pos < d.Length() {
			ce := d.encoding.CharacterAfter(d, pos)
			if d.wordClassOf(ce) != ccStart {
				break
			}
			pos += int64(ce.Width)
		}
	}
	return d.MovePositionOutsideChar(pos, delta, true)
}

// NextWordStart finds the start of the next word, forward (delta >= 0)
// or backward (delta < 0): a class transition followed by skipping past
// any whitespace run on the far side of it.
func (d *Document) NextWordStart(pos int64, delta int) int64 {
	if delta < 0 {
		for pos > 0 {
			ce := d.encoding.CharacterBefore(d, pos)
			if d.wordClassOf(ce) != charclass.Space {
				break
			}
			pos -= int64(ce.Width)
		}
		if pos > 0 {
			ce := d.encoding.CharacterBefore(d, pos)
			ccStart := d.wordClassOf(ce)
			for pos > 0 {
				ce = d.encoding.CharacterBefore(d, pos)
				if d.wordClassOf(ce) != ccStart {
					break
				}
				pos -= int64(ce.Width)
			}
		}
		return pos
	}

	ce := d.encoding.CharacterAfter(d, pos)
	ccStart := d.wordClassOf(ce)
	for pos < d.Length() {
		ce = d.encoding.CharacterAfter(d, pos)
		if d.wordClassOf(ce) != ccStart {
			break
		}
		pos += int64(ce.Width)
	}
	for pos < d.Length() {
		ce = d.encoding.CharacterAfter(d, pos)
		if d.wordClassOf(ce) != charclass.Space {
			break
		}
		pos += int64(ce.Width)
	}
	return pos
}

// NextWordEnd finds the end of the next word, symmetric to NextWordStart.
func (d *Document) NextWordEnd(pos int64, delta int) int64 {
	if delta < 0 {
		if pos > 0 {
			ce := d.encoding.CharacterBefore(d, pos)
			ccStart := d.wordClassOf(ce)
			if ccStart != charclass.Space {
				for pos > 0 {
					ce = d.encoding.CharacterBefore(d, pos)
					if d.wordClassOf(ce) != ccStart {
						break
					}
					pos -= int64(ce.Width)
				}
			}
			for pos > 0 {
				ce = d.encoding.CharacterBefore(d, pos)
				if d.wordClassOf(ce) != charclass.Space {
					break
				}
				pos -= int64(ce.Width)
			}
		}
		return pos
	}

	for pos < d.Length() {
		ce := d.encoding.CharacterAfter(d, pos)
		if d.wordClassOf(ce) != charclass.Space {
			break
		}
		pos += int64(ce.Width)
	}
	if pos < d.Length() {
		ce := d.encoding.CharacterAfter(d, pos)
		ccStart := d.wordClassOf(ce)
		for pos < d.Length() {
			ce = d.encoding.CharacterAfter(d, pos)
			if d.wordClassOf(ce) != ccStart {
				break
			}
			pos += int64(ce.Width)
		}
	}
	return pos
}

// IsWhiteLine reports whether line contains only spaces and tabs.
func (d *Document) IsWhiteLine(line int) bool {
	pos := d.LineStart(line)
	end := d.LineEnd(line)
	for pos < end {
		b, _ := d.ByteAt(pos)
		if b != ' ' && b != '\t' {
			return false
		}
		pos++
	}
	return true
}

// ParaUp moves to the start of the paragraph (a maximal run of
// non-whitespace-only lines) before pos, skipping any blank-line run
// pos sits in first.
func (d *Document) ParaUp(pos int64) int64 {
	line := d.LineFromPosition(pos)
	if pos == d.LineStart(line) {
		line--
	}
	for line >= 0 && d.IsWhiteLine(line) {
		line--
	}
	for line >= 0 && !d.IsWhiteLine(line) {
		line--
	}
	line++
	return d.LineStart(line)
}

// ParaDown moves to the start of the next paragraph after pos.
func (d *Document) ParaDown(pos int64) int64 {
	maxLine := d.LinesTotal()
	line := d.LineFromPosition(pos)
	for line < maxLine && !d.IsWhiteLine(line) {
		line++
	}
	for line < maxLine && d.IsWhiteLine(line) {
		line++
	}
	if line < maxLine {
		return d.LineStart(line)
	}
	return d.LineEnd(line - 1)
}

// isWordPartSeparator reports whether ch is a punctuation byte that also
// classifies as a word character (e.g. '_'), the boundary WordPartLeft/
// Right treat as always its own segment.
func (d *Document) isWordPartSeparator(ch rune) bool {
	return ch >= 0 && ch < 0x80 && d.classifier.ClassOfByte(byte(ch)) == charclass.Word && isPunctByte(byte(ch))
}

func isPunctByte(b byte) bool {
	return !(b >= 'a' && b <= 'z') && !(b >= 'A' && b <= 'Z') && !(b >= '0' && b <= '9')
}

func isASCIIRune(ch rune) bool  { return ch >= 0 && ch < 0x80 }
func isLowerRune(ch rune) bool  { return ch >= 'a' && ch <= 'z' }
func isUpperRune(ch rune) bool  { return ch >= 'A' && ch <= 'Z' }
func isDigitRune(ch rune) bool  { return ch >= '0' && ch <= '9' }
func isSpaceRune(ch rune) bool  { return ch == ' ' || ch == '\t' || ch == '\v' || ch == '\f' || ch == '\r' || ch == '\n' }
func isGraphicRune(ch rune) bool {
	return ch > ' ' && ch < 0x7F
}

// WordPartLeft moves left to the start of the previous camelCase/digit-
// run/punctuation-run/non-ASCII-run segment within an identifier,
// mirroring the original's word-part navigation used by ctrl-backspace-
// style editing commands.
func (d *Document) WordPartLeft(pos int64) int64 {
	if pos <= 0 {
		return pos
	}
	pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
	ceStart := d.encoding.CharacterAfter(d, pos)
	if d.isWordPartSeparator(ceStart.Character) {
		for pos > 0 && d.isWordPartSeparator(d.encoding.CharacterAfter(d, pos).Character) {
			pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
		}
	}
	if pos <= 0 {
		return pos
	}
	ce := d.encoding.CharacterAfter(d, pos)
	pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
	switch {
	case !isASCIIRune(ce.Character):
		for pos > 0 && !isASCIIRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
		}
		if isASCIIRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos += int64(d.encoding.CharacterAfter(d, pos).Width)
		}
	case isLowerRune(ce.Character):
		for pos > 0 && isLowerRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
		}
		after := d.encoding.CharacterAfter(d, pos)
		if !isUpperRune(after.Character) && !isLowerRune(after.Character) {
			pos += int64(after.Width)
		}
	case isUpperRune(ce.Character):
		for pos > 0 && isUpperRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
		}
		if !isUpperRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos += int64(d.encoding.CharacterAfter(d, pos).Width)
		}
	case isDigitRune(ce.Character):
		for pos > 0 && isDigitRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
		}
		if !isDigitRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos += int64(d.encoding.CharacterAfter(d, pos).Width)
		}
	case isGraphicRune(ce.Character):
		for pos > 0 && isPunctByte(byte(d.encoding.CharacterAfter(d, pos).Character)) {
			pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
		}
		if !isPunctByte(byte(d.encoding.CharacterAfter(d, pos).Character)) {
			pos += int64(d.encoding.CharacterAfter(d, pos).Width)
		}
	case isSpaceRune(ce.Character):
		for pos > 0 && isSpaceRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos -= int64(d.encoding.CharacterBefore(d, pos).Width)
		}
		if !isSpaceRune(d.encoding.CharacterAfter(d, pos).Character) {
			pos += int64(d.encoding.CharacterAfter(d, pos).Width)
		}
	default:
		pos += int64(d.encoding.CharacterAfter(d, pos).Width)
	}
	return pos
}

// WordPartRight moves right, symmetric to WordPartLeft.
func (d *Document) WordPartRight(pos int64) int64 {
	length := d.Length()
	ce := d.encoding.CharacterAfter(d, pos)
	for pos < length && d.isWordPartSeparator(ce.Character) {
		pos += int64(ce.Width)
		ce = d.encoding.CharacterAfter(d, pos)
	}
	switch {
	case !isASCIIRune(ce.Character):
		for pos < length && !isASCIIRune(ce.Character) {
			pos += int64(ce.Width)
			ce = d.encoding.CharacterAfter(d, pos)
		}
	case isLowerRune(ce.Character):
		for pos < length && isLowerRune(ce.Character) {
			pos += int64(ce.Width)
			ce = d.encoding.CharacterAfter(d, pos)
		}
	case isUpperRune(ce.Character):
		next := d.encoding.CharacterAfter(d, pos+int64(ce.Width))
		if isLowerRune(next.Character) {
			pos += int64(ce.Width)
			ce = next
			for pos < length && isLowerRune(ce.Character) {
				pos += int64(ce.Width)
				ce = d.encoding.CharacterAfter(d, pos)
			}
		} else {
			for pos < length && isUpperRune(ce.Character) {
				pos += int64(ce.Width)
				ce = d.encoding.CharacterAfter(d, pos)
			}
		}
	case isDigitRune(ce.Character):
		for pos < length && isDigitRune(ce.Character) {
			pos += int64(ce.Width)
			ce = d.encoding.CharacterAfter(d, pos)
		}
	case isGraphicRune(ce.Character):
		for pos < length && isPunctByte(byte(ce.Character)) {
			pos += int64(ce.Width)
			ce = d.encoding.CharacterAfter(d, pos)
		}
	case isSpaceRune(ce.Character):
		for pos < length && isSpaceRune(ce.Character) {
			pos += int64(ce.Width)
			ce = d.encoding.CharacterAfter(d, pos)
		}
	default:
		if pos < length {
			pos += int64(ce.Width)
		}
	}
	return pos
}
