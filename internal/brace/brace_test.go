package brace

import (
	"testing"

	"github.com/textcore/editdoc/internal/charclass"
)

type fakeSource struct {
	text      string
	styles    []byte
	endStyled int64
}

func newFakeSource(text string) *fakeSource {
	return &fakeSource{text: text, styles: make([]byte, len(text)), endStyled: int64(len(text))}
}

func (f *fakeSource) ByteAt(pos int64) (byte, bool) {
	if pos < 0 || pos >= int64(len(f.text)) {
		return 0, false
	}
	return f.text[pos], true
}

func (f *fakeSource) Length() int64 { return int64(len(f.text)) }

func (f *fakeSource) StyleAt(pos int64) byte {
	if pos < 0 || pos >= int64(len(f.styles)) {
		return 0
	}
	return f.styles[pos]
}

func (f *fakeSource) EndStyled() int64 { return f.endStyled }

func TestBraceMatchNestedParens(t *testing.T) {
	src := newFakeSource("(a(b)c)")
	var enc charclass.EncodingStrategy = charclass.UTF8{}

	if got := Match(src, enc, 0, 0, false); got != 6 {
		t.Fatalf("Match(0) = %d, want 6", got)
	}
	if got := Match(src, enc, 2, 0, false); got != 4 {
		t.Fatalf("Match(2) = %d, want 4", got)
	}
}

func TestBraceMatchClosingBrace(t *testing.T) {
	src := newFakeSource("(a(b)c)")
	var enc charclass.EncodingStrategy = charclass.UTF8{}
	if got := Match(src, enc, 6, 0, false); got != 0 {
		t.Fatalf("Match(6) = %d, want 0", got)
	}
}

func TestBraceMatchNonBraceReturnsNotFound(t *testing.T) {
	src := newFakeSource("(a(b)c)")
	var enc charclass.EncodingStrategy = charclass.UTF8{}
	if got := Match(src, enc, 1, 0, false); got != NotFound {
		t.Fatalf("Match(non-brace) = %d, want NotFound", got)
	}
}

func TestBraceMatchRespectsStyleBoundary(t *testing.T) {
	src := newFakeSource("(a(b)c)")
	src.styles[2] = 1 // inner '(' styled differently, e.g. inside a string literal
	var enc charclass.EncodingStrategy = charclass.UTF8{}
	if got := Match(src, enc, 0, 0, false); got != 4 {
		t.Fatalf("Match(0) with style mismatch = %d, want 4 (skipping the differently-styled brace)", got)
	}
}

func TestBraceMatchBracketsAndAngles(t *testing.T) {
	src := newFakeSource("[x<y>z]")
	var enc charclass.EncodingStrategy = charclass.UTF8{}
	if got := Match(src, enc, 0, 0, false); got != 6 {
		t.Fatalf("Match([) = %d, want 6", got)
	}
	if got := Match(src, enc, 2, 0, false); got != 4 {
		t.Fatalf("Match(<) = %d, want 4", got)
	}
}

func TestBraceMatchUsesStartPosOverride(t *testing.T) {
	src := newFakeSource("((x))")
	var enc charclass.EncodingStrategy = charclass.UTF8{}
	// Resume the nested search from position 3 instead of position+direction
	// (1), so the inner '(' at 1 is never seen and the first ')' at 3
	// closes the outer brace.
	if got := Match(src, enc, 0, 3, true); got != 3 {
		t.Fatalf("Match with startPos override = %d, want 3", got)
	}
}
