package document

import "github.com/textcore/editdoc/internal/brace"

// BraceMatch pairs the brace at position with its partner, honoring
// style boundaries the way internal/brace.Match does. startPos,
// when useStartPos is true, overrides where the nested search resumes.
func (d *Document) BraceMatch(position, startPos int64, useStartPos bool) int64 {
	return brace.Match(d, d.encoding, position, startPos, useStartPos)
}
