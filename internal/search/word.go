package search

import "github.com/textcore/editdoc/internal/charclass"

// isWordEdgeClass reports whether a character class counts toward a word
// boundary: word and CJK-word characters always do, and punctuation also
// does (a quoted word like "foo" still has a word start/end at the quote
// boundary). Space and newline never do.
func isWordEdgeClass(c charclass.Class) bool {
	return c == charclass.Word || c == charclass.CJKWord || c == charclass.Punctuation
}

func isWordEdge(cc, ccNext charclass.Class) bool {
	return cc != ccNext && isWordEdgeClass(cc)
}

func classifyChar(classifier *charclass.Classifier, cw charclass.CharacterAndWidth, hasChar bool) charclass.Class {
	if !hasChar {
		return charclass.Space
	}
	if cw.Character >= 0 && cw.Character < 128 {
		return classifier.ClassOfByte(byte(cw.Character))
	}
	return classifier.ClassOfRune(cw.Character)
}

// isWordStartAt reports whether pos begins a word or punctuation run that
// the previous character's class does not continue. The start of the
// document is treated as if preceded by a space, so it can be a word
// start.
func isWordStartAt(src charclass.ByteSource, classifier *charclass.Classifier, enc charclass.EncodingStrategy, pos int64) bool {
	length := src.Length()
	if pos >= length {
		return false
	}
	if pos < 0 {
		return true
	}
	after := enc.CharacterAfter(src, pos)
	ccPos := classifyChar(classifier, after, true)
	ccPrev := charclass.Space
	if pos > 0 {
		before := enc.CharacterBefore(src, pos)
		ccPrev = classifyChar(classifier, before, true)
	}
	return isWordEdge(ccPos, ccPrev)
}

// isWordEndAt reports whether pos ends a word or punctuation run that the
// following character's class does not continue. The end of the document
// is treated as if followed by a space, so it can be a word end.
func isWordEndAt(src charclass.ByteSource, classifier *charclass.Classifier, enc charclass.EncodingStrategy, pos int64) bool {
	if pos <= 0 {
		return false
	}
	length := src.Length()
	if pos > length {
		return true
	}
	ccPos := charclass.Space
	if pos < length {
		after := enc.CharacterAfter(src, pos)
		ccPos = classifyChar(classifier, after, true)
	}
	before := enc.CharacterBefore(src, pos)
	ccPrev := classifyChar(classifier, before, true)
	return isWordEdge(ccPrev, ccPos)
}

func isWordAt(src charclass.ByteSource, classifier *charclass.Classifier, enc charclass.EncodingStrategy, start, end int64) bool {
	return start < end &&
		isWordStartAt(src, classifier, enc, start) &&
		isWordEndAt(src, classifier, enc, end)
}

// matchesWordOptions implements Document::MatchesWordOptions: no
// constraint when neither flag is set, a full word match when WholeWord
// is set, or just a word-start check when WordStart is set.
func matchesWordOptions(src charclass.ByteSource, classifier *charclass.Classifier, enc charclass.EncodingStrategy, wholeWord, wordStart bool, pos, length int64) bool {
	if !wholeWord && !wordStart {
		return true
	}
	if wholeWord && isWordAt(src, classifier, enc, pos, pos+length) {
		return true
	}
	if wordStart && isWordStartAt(src, classifier, enc, pos) {
		return true
	}
	return false
}
