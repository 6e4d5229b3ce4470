package charclass

// SBCS is the single-byte-character-set EncodingStrategy: every byte is
// one character, so every position is already a character boundary; the
// only snapping MovePositionOutsideChar ever has to do is around a CR-LF
// pair.
type SBCS struct{}

func (SBCS) NextPosition(src ByteSource, pos int64, delta int) int64 {
	pos += int64(delta)
	return clamp(pos, 0, src.Length())
}

func (SBCS) MovePositionOutsideChar(src ByteSource, pos int64, moveDir int, checkLineEnd bool) int64 {
	pos = clamp(pos, 0, src.Length())
	if checkLineEnd {
		pos = snapOutsideCRLF(src, pos, moveDir)
	}
	return pos
}

func (SBCS) CharacterAfter(src ByteSource, pos int64) CharacterAndWidth {
	b, ok := src.ByteAt(pos)
	if !ok {
		return CharacterAndWidth{}
	}
	return CharacterAndWidth{Character: rune(b), Width: 1}
}

func (SBCS) CharacterBefore(src ByteSource, pos int64) CharacterAndWidth {
	if pos <= 0 {
		return CharacterAndWidth{}
	}
	b, ok := src.ByteAt(pos - 1)
	if !ok {
		return CharacterAndWidth{}
	}
	return CharacterAndWidth{Character: rune(b), Width: 1}
}

func (s SBCS) ExtractCharacter(src ByteSource, pos int64) CharacterAndWidth {
	return s.CharacterAfter(src, pos)
}

func (SBCS) AsciiBackwardSafeChar() byte { return 0xFF }
