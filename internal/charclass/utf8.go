package charclass

import "unicode/utf8"

// UTF8 is the EncodingStrategy for UTF-8 documents. Invalid byte
// sequences are tolerated: the iterator advances one byte and, when a
// full character is requested, reports the byte as the unpaired
// surrogate code point 0xDC80+byte rather than raising an error.
type UTF8 struct{}

func utf8SeqLen(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	default:
		return 1
	}
}

func utf8AdvanceForward(src ByteSource, pos, length int64) int64 {
	b, ok := src.ByteAt(pos)
	if !ok {
		return pos
	}
	next := pos + int64(utf8SeqLen(b))
	if next > length {
		next = pos + 1
	}
	return next
}

func utf8AdvanceBackward(src ByteSource, pos int64) int64 {
	if pos <= 0 {
		return 0
	}
	p := pos - 1
	for k := 0; k < 3 && p > 0; k++ {
		b, ok := src.ByteAt(p)
		if !ok || b&0xC0 != 0x80 {
			break
		}
		p--
	}
	return p
}

func (UTF8) NextPosition(src ByteSource, pos int64, delta int) int64 {
	length := src.Length()
	if delta > 0 {
		for i := 0; i < delta && pos < length; i++ {
			pos = utf8AdvanceForward(src, pos, length)
		}
	} else if delta < 0 {
		for i := 0; i < -delta && pos > 0; i++ {
			pos = utf8AdvanceBackward(src, pos)
		}
	}
	return pos
}

func utf8SnapToBoundary(src ByteSource, pos int64, moveDir int) int64 {
	length := src.Length()
	pos = clamp(pos, 0, length)
	if pos == 0 || pos == length {
		return pos
	}
	b, ok := src.ByteAt(pos)
	if !ok || b&0xC0 != 0x80 {
		return pos
	}
	if moveDir < 0 {
		p := pos
		for p > 0 {
			b2, ok := src.ByteAt(p)
			if !ok || b2&0xC0 != 0x80 {
				break
			}
			p--
		}
		return p
	}
	p := pos
	for p < length {
		b2, ok := src.ByteAt(p)
		if !ok || b2&0xC0 != 0x80 {
			break
		}
		p++
	}
	return p
}

func (UTF8) MovePositionOutsideChar(src ByteSource, pos int64, moveDir int, checkLineEnd bool) int64 {
	pos = utf8SnapToBoundary(src, pos, moveDir)
	if checkLineEnd {
		pos = snapOutsideCRLF(src, pos, moveDir)
	}
	return pos
}

func (UTF8) CharacterAfter(src ByteSource, pos int64) CharacterAndWidth {
	if pos >= src.Length() {
		return CharacterAndWidth{}
	}
	buf := readBytes(src, pos, 4)
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 && len(buf) > 0 {
		return CharacterAndWidth{Character: rune(0xDC80 + int(buf[0])), Width: 1}
	}
	return CharacterAndWidth{Character: r, Width: size}
}

func (UTF8) CharacterBefore(src ByteSource, pos int64) CharacterAndWidth {
	if pos <= 0 {
		return CharacterAndWidth{}
	}
	start := utf8AdvanceBackward(src, pos)
	buf := readBytes(src, start, int(pos-start))
	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 && len(buf) > 0 {
		return CharacterAndWidth{Character: rune(0xDC80 + int(buf[0])), Width: 1}
	}
	return CharacterAndWidth{Character: r, Width: size}
}

func (u UTF8) ExtractCharacter(src ByteSource, pos int64) CharacterAndWidth {
	return u.CharacterAfter(src, pos)
}

func (UTF8) AsciiBackwardSafeChar() byte { return 0xFF }
