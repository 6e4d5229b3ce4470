package charclass

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Family names which EncodingStrategy SafeSegment should assume when
// picking a scan direction and a fallback boundary rule.
type Family uint8

const (
	FamilySBCS Family = iota
	FamilyUTF8
	FamilyDBCS
)

// SafeSegment returns a break offset <= length in text, suitable for
// line-wrapping, in preference order: a space/control byte, a
// word/punctuation class transition, a grapheme-cluster-safe retreat
// (UTF-8 only), and finally the last whole-character boundary <= length.
// dbcs is consulted only when family is FamilyDBCS; it may be nil
// otherwise.
func SafeSegment(classifier *Classifier, text string, length int, family Family, dbcs *DBCS) int {
	if length <= 0 {
		return 0
	}
	if length >= len(text) {
		return len(text)
	}

	for i := length; i > 0; i-- {
		c := classifier.ClassOfByte(text[i-1])
		if c == Space || c == Newline || text[i-1] < ' ' {
			return i - 1
		}
	}

	if brk, ok := classTransitionBreak(classifier, text, length, family); ok {
		return brk
	}

	return lastCharBoundaryAtOrBefore(text, length, family, dbcs)
}

func classTransitionBreak(classifier *Classifier, text string, length int, family Family) (int, bool) {
	switch family {
	case FamilyDBCS:
		for i := 1; i < length; i++ {
			if classifier.ClassOfByte(text[i-1]) != classifier.ClassOfByte(text[i]) {
				return i, true
			}
		}
	case FamilyUTF8:
		for i := length; i > 1; i-- {
			if !utf8.RuneStart(text[i-1]) || !utf8.RuneStart(text[i]) {
				continue
			}
			if classifier.ClassOfByte(text[i-1]) != classifier.ClassOfByte(text[i]) {
				return i, true
			}
		}
	default: // FamilySBCS
		for i := length; i > 1; i-- {
			if classifier.ClassOfByte(text[i-1]) != classifier.ClassOfByte(text[i]) {
				return i, true
			}
		}
	}
	return 0, false
}

func lastCharBoundaryAtOrBefore(text string, length int, family Family, dbcs *DBCS) int {
	switch family {
	case FamilySBCS:
		return length
	case FamilyDBCS:
		if dbcs == nil {
			return length
		}
		src := stringSource(text)
		var pos, last int64
		for pos < int64(length) {
			w := dbcs.charWidthAt(src, pos)
			if pos+w > int64(length) {
				break
			}
			pos += w
			last = pos
		}
		return int(last)
	default: // FamilyUTF8
		return graphemeBoundaryAtOrBefore(text, length)
	}
}

// graphemeBoundaryAtOrBefore returns the largest grapheme-cluster
// boundary in text at or before limit, so a line break never splits a
// user-perceived character (e.g. a base letter plus combining accents).
func graphemeBoundaryAtOrBefore(text string, limit int) int {
	if limit <= 0 {
		return 0
	}
	if limit >= len(text) {
		return len(text)
	}

	boundary := 0
	state := -1
	pos := 0
	for pos < limit {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(text[pos:], state)
		if len(cluster) == 0 {
			break
		}
		end := pos + len(cluster)
		if end > limit {
			break
		}
		boundary = end
		pos = end
		state = newState
		if rest == "" {
			break
		}
	}
	return boundary
}

type stringSource string

func (s stringSource) ByteAt(pos int64) (byte, bool) {
	if pos < 0 || pos >= int64(len(s)) {
		return 0, false
	}
	return s[pos], true
}

func (s stringSource) Length() int64 { return int64(len(s)) }
