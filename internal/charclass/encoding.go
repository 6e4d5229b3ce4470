package charclass

// ByteSource is the minimal view of a document's bytes an
// EncodingStrategy needs. internal/cellbuffer.CellBuffer satisfies this
// directly via its ByteAt/Length methods.
type ByteSource interface {
	ByteAt(pos int64) (byte, bool)
	Length() int64
}

// CharacterAndWidth is one decoded character plus the number of bytes it
// occupies in the source encoding.
type CharacterAndWidth struct {
	Character rune
	Width     int
}

// EncodingStrategy is the capability behind the three concrete encoding
// families. A Document picks one strategy when its code page is set and
// uses it for every position computation from then on.
type EncodingStrategy interface {
	// NextPosition advances pos by exactly one character per unit of
	// delta (delta's sign gives direction), treating a CR-LF pair as two
	// positions.
	NextPosition(src ByteSource, pos int64, delta int) int64
	// MovePositionOutsideChar snaps pos so it never splits a multi-byte
	// character, and — when checkLineEnd is set — never splits a CR-LF
	// pair either. moveDir's sign picks which way to snap.
	MovePositionOutsideChar(src ByteSource, pos int64, moveDir int, checkLineEnd bool) int64
	// CharacterAfter decodes the character starting at pos.
	CharacterAfter(src ByteSource, pos int64) CharacterAndWidth
	// CharacterBefore decodes the character ending at pos.
	CharacterBefore(src ByteSource, pos int64) CharacterAndWidth
	// ExtractCharacter decodes the character at pos (equivalent to
	// CharacterAfter for every strategy here; kept distinct because the
	// two can differ for encodings with shift-state, which none of
	// these three have).
	ExtractCharacter(src ByteSource, pos int64) CharacterAndWidth
	// AsciiBackwardSafeChar returns the highest byte value below which a
	// brace/bracket comparison never needs a boundary check, because no
	// valid trail byte of this strategy's encoding can collide with it.
	// SBCS and UTF-8 return 0xFF (every byte is already a complete
	// character or a self-synchronizing lead byte, so the check is never
	// needed); a DBCS code page returns one below its trail-byte
	// threshold, so a caller comparing a candidate byte against it still
	// runs the boundary check for '[', ']', '{', '}' — whose ASCII codes
	// sit above the DBCS thresholds but below 0x7F.
	AsciiBackwardSafeChar() byte
}

// snapOutsideCRLF moves pos off the midpoint of a CR-LF pair, in the
// direction moveDir indicates.
func snapOutsideCRLF(src ByteSource, pos int64, moveDir int) int64 {
	prev, okPrev := src.ByteAt(pos - 1)
	cur, okCur := src.ByteAt(pos)
	if okPrev && okCur && prev == '\r' && cur == '\n' {
		if moveDir < 0 {
			return pos - 1
		}
		return pos + 1
	}
	return pos
}

func clamp(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func readBytes(src ByteSource, pos int64, n int) []byte {
	buf := make([]byte, 0, n)
	for i := 0; i < n; i++ {
		b, ok := src.ByteAt(pos + int64(i))
		if !ok {
			break
		}
		buf = append(buf, b)
	}
	return buf
}
