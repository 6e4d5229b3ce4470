package casefold

import (
	"golang.org/x/text/cases"
)

// Unicode folds full Unicode case, falling back to the ASCII table for
// plain ASCII input (the common case) and to golang.org/x/text/cases for
// any byte sequence that decodes as a non-ASCII rune. It embeds an
// ASCIITable the same way CaseFolderUnicode derives from CaseFolderTable,
// so SetTranslation overrides still apply to the ASCII fast path.
type Unicode struct {
	ASCIITable
	caser cases.Caser
}

// NewUnicode builds a Unicode folder using the root (untagged) locale's
// case-folding rules, which is the locale-independent behavior the spec's
// "Unicode variant" calls for.
func NewUnicode() *Unicode {
	return &Unicode{
		ASCIITable: *NewASCIITable(),
		caser:      cases.Fold(cases.Compact),
	}
}

// Fold writes the folded form of mixed into dst and returns the number of
// bytes written, which may differ from len(mixed): Unicode case folding
// can change the byte length of a multi-byte sequence (e.g. German ß
// folds to "ss"). dst must be sized generously — the spec calls for up to
// a 4x expansion buffer for UTF-8/DBCS text.
func (u *Unicode) Fold(dst []byte, mixed []byte) int {
	if isASCII(mixed) {
		return u.ASCIITable.Fold(dst, mixed)
	}
	out := u.caser.Bytes(mixed)
	return copy(dst, out)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
