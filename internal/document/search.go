package document

import (
	"github.com/textcore/editdoc/internal/regexsearch"
	"github.com/textcore/editdoc/internal/search"
)

// FindFlags selects FindText's matching behavior, mirroring spec §4.5's
// flag set.
type FindFlags struct {
	MatchCase   bool
	WholeWord   bool
	WordStart   bool
	RegExp      bool
	RegexDotAll bool
	// Cxx11RegEx selects the ECMAScript backend instead of the built-in
	// one; meaningless unless RegExp is set.
	Cxx11RegEx bool
}

// NotFound is returned as the position of a failed search.
const NotFound int64 = -1

// FindText finds needle (a literal pattern unless flags.RegExp is set)
// in [minPos, maxPos), searching forward when maxPos >= minPos and
// backward otherwise. Returns the match position and its byte length,
// or (NotFound, 0).
func (d *Document) FindText(minPos, maxPos int64, needle string, flags FindFlags) (int64, int64, error) {
	if flags.RegExp {
		backend := regexsearch.BackendBuiltin
		if flags.Cxx11RegEx {
			backend = regexsearch.BackendECMAScript
		}
		return d.regex.FindText(d, minPos, maxPos, needle, regexsearch.Options{
			Backend:     backend,
			RegexDotAll: flags.RegexDotAll,
		})
	}
	pos, length := d.literal.FindText(d, minPos, maxPos, []byte(needle), search.Options{
		MatchCase: flags.MatchCase,
		WholeWord: flags.WholeWord,
		WordStart: flags.WordStart,
	})
	return pos, length, nil
}

// SubstituteByPosition expands a replacement template against the
// submatches recorded by the last successful regex FindText call. Only
// meaningful after a RegExp FindText; callers doing literal
// find/replace build the replacement text themselves.
func (d *Document) SubstituteByPosition(template string) []byte {
	return d.regex.SubstituteByPosition(template, d.TextRangeBytes)
}

// TextRangeBytes is TextRange returning []byte, the shape
// SubstituteByPosition's textOf callback needs.
func (d *Document) TextRangeBytes(start, end int64) []byte {
	return []byte(d.TextRange(start, end))
}
