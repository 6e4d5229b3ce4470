package search

import (
	"github.com/textcore/editdoc/internal/casefold"
	"github.com/textcore/editdoc/internal/charclass"
)

// Options selects the matching behavior of FindText.
type Options struct {
	MatchCase bool
	WholeWord bool
	WordStart bool
}

// Searcher runs literal searches over a byte source using the
// classifier/encoding strategy/case folder a Document has configured.
// Folder may be nil when only case-sensitive search is needed.
type Searcher struct {
	Classifier *charclass.Classifier
	Encoding   charclass.EncodingStrategy
	Folder     casefold.Folder
}

// NotFound is returned as the position of a failed search.
const NotFound int64 = -1

// FindText finds needle in src within [minPos,maxPos), searching forward
// when maxPos >= minPos and backward otherwise, and returns the match
// position plus its byte length (which can differ from len(needle) only
// under case folding that changes byte length). Returns (NotFound, 0) on
// no match. An empty needle matches at minPos with length 0.
func (s *Searcher) FindText(src charclass.ByteSource, minPos, maxPos int64, needle []byte, opts Options) (int64, int64) {
	if len(needle) == 0 {
		return minPos, 0
	}
	direction := maxPos - minPos
	increment := 1
	if direction < 0 {
		increment = -1
	}

	startPos := s.Encoding.MovePositionOutsideChar(src, minPos, increment, false)
	endPos := s.Encoding.MovePositionOutsideChar(src, maxPos, increment, false)
	limitPos := startPos
	if endPos > limitPos {
		limitPos = endPos
	}

	if opts.MatchCase {
		return s.findCaseSensitive(src, startPos, endPos, limitPos, direction, increment, needle, opts)
	}
	return s.findCaseFolded(src, startPos, endPos, limitPos, direction, increment, needle, opts)
}

// findCaseSensitive implements the Boyer-Moore-Horspool-Sunday scan: a
// 256-entry shift table keyed by the byte one past the current window,
// built once per call and consulted after every failed match to skip
// ahead by more than one byte. Pattern length 1 degenerates to a bare
// byte scan since there is no "one past the window" shift to compute.
func (s *Searcher) findCaseSensitive(src charclass.ByteSource, startPos, endPos, limitPos int64, direction int64, increment int, needle []byte, opts Options) (int64, int64) {
	lengthFind := int64(len(needle))
	pos := startPos
	if direction < 0 {
		pos = s.Encoding.MovePositionOutsideChar(src, pos-lengthFind, -1, false)
	}

	if lengthFind == 1 {
		target := needle[0]
		for (direction ^ (pos - endPos)) < 0 {
			b, ok := src.ByteAt(pos)
			if ok && b == target && matchesWordOptions(src, s.Classifier, s.Encoding, opts.WholeWord, opts.WordStart, pos, 1) {
				return pos, 1
			}
			pos += int64(increment)
		}
		return NotFound, 0
	}

	var shiftTable [256]int64
	shift := lengthFind
	value := (shift + 1) * int64(increment)
	for i := range shiftTable {
		shiftTable[i] = value
	}
	if increment > 0 {
		for i := 0; i < len(needle); i++ {
			shiftTable[needle[i]] = shift
			shift--
		}
	} else {
		shift = -shift
		for i := len(needle) - 1; i >= 0; i-- {
			shiftTable[needle[i]] = shift
			shift++
		}
	}

	endSearch := endPos
	if startPos <= endPos {
		endSearch = endPos - lengthFind + 1
	}
	skip := int64(lengthFind)
	if increment < 0 {
		skip = -1
	}

	for (direction ^ (pos - endSearch)) < 0 {
		leadByte, ok := src.ByteAt(pos)
		if ok && leadByte == needle[0] {
			found := pos+lengthFind <= limitPos
			for i := int64(1); i < lengthFind && found; i++ {
				b, ok2 := src.ByteAt(pos + i)
				found = ok2 && b == needle[i]
			}
			if found && matchesWordOptions(src, s.Classifier, s.Encoding, opts.WholeWord, opts.WordStart, pos, lengthFind) {
				return pos, lengthFind
			}
		}
		nextByte, ok := src.ByteAt(pos + skip)
		if !ok {
			break
		}
		pos += shiftTable[nextByte]
	}
	return NotFound, 0
}

// findCaseFolded scans character-by-character, folding both the needle
// (once) and each candidate document character, so folded forms whose
// byte length differs from the raw bytes (accent-stripping, German ß,
// etc.) still compare correctly.
func (s *Searcher) findCaseFolded(src charclass.ByteSource, startPos, endPos, limitPos int64, direction int64, increment int, needle []byte, opts Options) (int64, int64) {
	folder := s.Folder
	if folder == nil {
		folder = casefold.NewASCIITable()
	}
	foldedNeedle := make([]byte, len(needle)*4+1)
	nFolded := folder.Fold(foldedNeedle, needle)
	foldedNeedle = foldedNeedle[:nFolded]

	pos := startPos
	if direction < 0 {
		pos = s.Encoding.NextPosition(src, pos, -1)
	}

	for (direction ^ (pos - endPos)) < 0 {
		matchLen, ok := s.matchFoldedAt(src, pos, limitPos, foldedNeedle, folder)
		if ok && matchesWordOptions(src, s.Classifier, s.Encoding, opts.WholeWord, opts.WordStart, pos, matchLen) {
			return pos, matchLen
		}
		next := s.Encoding.NextPosition(src, pos, increment)
		if next == pos {
			break
		}
		pos = next
	}
	return NotFound, 0
}

func (s *Searcher) matchFoldedAt(src charclass.ByteSource, pos, limitPos int64, foldedNeedle []byte, folder casefold.Folder) (int64, bool) {
	docPos := pos
	needleIdx := 0
	for needleIdx < len(foldedNeedle) {
		cw := s.Encoding.CharacterAfter(src, docPos)
		if cw.Width == 0 {
			return 0, false
		}
		if docPos+int64(cw.Width) > limitPos {
			return 0, false
		}
		raw := make([]byte, cw.Width)
		for i := 0; i < cw.Width; i++ {
			b, _ := src.ByteAt(docPos + int64(i))
			raw[i] = b
		}
		buf := make([]byte, cw.Width*4+4)
		n := folder.Fold(buf, raw)
		if needleIdx+n > len(foldedNeedle) {
			return 0, false
		}
		for i := 0; i < n; i++ {
			if foldedNeedle[needleIdx+i] != buf[i] {
				return 0, false
			}
		}
		needleIdx += n
		docPos += int64(cw.Width)
	}
	return docPos - pos, true
}
