package regexsearch

import "testing"

type stringLineSource struct {
	text       string
	lineStarts []int64
}

func newStringLineSource(text string) *stringLineSource {
	starts := []int64{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, int64(i+1))
		}
	}
	return &stringLineSource{text: text, lineStarts: starts}
}

func (s *stringLineSource) ByteAt(pos int64) (byte, bool) {
	if pos < 0 || pos >= int64(len(s.text)) {
		return 0, false
	}
	return s.text[pos], true
}

func (s *stringLineSource) Length() int64  { return int64(len(s.text)) }
func (s *stringLineSource) LinesTotal() int { return len(s.lineStarts) }

func (s *stringLineSource) LineFromPosition(pos int64) int {
	line := 0
	for i, start := range s.lineStarts {
		if start <= pos {
			line = i
		}
	}
	return line
}

func (s *stringLineSource) LineStart(line int) int64 {
	if line < 0 {
		return 0
	}
	if line >= len(s.lineStarts) {
		return int64(len(s.text))
	}
	return s.lineStarts[line]
}

func (s *stringLineSource) LineEnd(line int) int64 {
	var end int64
	if line+1 < len(s.lineStarts) {
		end = s.lineStarts[line+1] - 1
		if end > 0 && s.text[end-1] == '\r' {
			end--
		}
	} else {
		end = int64(len(s.text))
	}
	return end
}

func (s *stringLineSource) textOf(start, end int64) []byte {
	return []byte(s.text[start:end])
}

func TestBuiltinFindTextCapturesGroupAndSubstitutes(t *testing.T) {
	src := newStringLineSource("x(name)y")
	r := NewRegexSearcher()
	pos, length, err := r.FindText(src, 0, int64(src.Length()), `\(([A-Za-z]+)\)`, Options{})
	if err != nil {
		t.Fatalf("FindText error: %v", err)
	}
	if pos != 1 || length != 6 {
		t.Fatalf("FindText = (%d,%d), want (1,6)", pos, length)
	}
	out := r.SubstituteByPosition(`[\1]`, src.textOf)
	if string(out) != "[name]" {
		t.Fatalf("SubstituteByPosition = %q, want %q", out, "[name]")
	}
}

func TestBuiltinFindTextNoMatch(t *testing.T) {
	src := newStringLineSource("hello world")
	r := NewRegexSearcher()
	pos, _, err := r.FindText(src, 0, int64(src.Length()), `\d+`, Options{})
	if err != nil {
		t.Fatalf("FindText error: %v", err)
	}
	if pos != NotFound {
		t.Fatalf("FindText = %d, want NotFound", pos)
	}
}

func TestBuiltinFindTextDigitClassFindsFirstMatch(t *testing.T) {
	src := newStringLineSource("line1\nline2\nabc123")
	r := NewRegexSearcher()
	pos, length, err := r.FindText(src, 0, int64(src.Length()), `\d+`, Options{})
	if err != nil {
		t.Fatalf("FindText error: %v", err)
	}
	if pos != 4 || length != 1 {
		t.Fatalf("FindText = (%d,%d), want (4,1)", pos, length)
	}
}

func TestBuiltinFindTextSearchesSubsequentLines(t *testing.T) {
	src := newStringLineSource("line1\nline2\nabc123")
	r := NewRegexSearcher()
	pos, length, err := r.FindText(src, 12, int64(src.Length()), `\d+`, Options{})
	if err != nil {
		t.Fatalf("FindText error: %v", err)
	}
	want := int64(len("line1\nline2\nabc"))
	if pos != want || length != 3 {
		t.Fatalf("FindText = (%d,%d), want (%d,3)", pos, length, want)
	}
}

func TestBuiltinReverseSearchReturnsLastMatchOnLine(t *testing.T) {
	src := newStringLineSource("a1 b2 c3")
	r := NewRegexSearcher()
	pos, length, err := r.FindText(src, int64(src.Length()), 0, `[a-z]\d`, Options{})
	if err != nil {
		t.Fatalf("FindText error: %v", err)
	}
	if pos != 6 || length != 2 {
		t.Fatalf("reverse FindText = (%d,%d), want (6,2)", pos, length)
	}
}

func TestECMAScriptBackendFindsAndCachesPattern(t *testing.T) {
	src := newStringLineSource("x(name)y")
	r := NewRegexSearcher()
	pos, length, err := r.FindText(src, 0, int64(src.Length()), `\(([A-Za-z]+)\)`, Options{Backend: BackendECMAScript})
	if err != nil {
		t.Fatalf("FindText error: %v", err)
	}
	if pos != 1 || length != 6 {
		t.Fatalf("ECMAScript FindText = (%d,%d), want (1,6)", pos, length)
	}
	if _, ok := r.ecmaCache[ecmaCacheKey{pattern: `\(([A-Za-z]+)\)`}]; !ok {
		t.Fatal("expected compiled ECMAScript pattern to be cached")
	}
}

func TestSubstituteByPositionHandlesEscapes(t *testing.T) {
	src := newStringLineSource("ab")
	r := NewRegexSearcher()
	_, _, err := r.FindText(src, 0, int64(src.Length()), `(a)(b)`, Options{})
	if err != nil {
		t.Fatalf("FindText error: %v", err)
	}
	out := r.SubstituteByPosition(`\1\t\2\n\\done`, src.textOf)
	want := "a\tb\n\\done"
	if string(out) != want {
		t.Fatalf("SubstituteByPosition = %q, want %q", out, want)
	}
}
