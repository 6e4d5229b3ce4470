package charclass

import "testing"

func TestClassifierDefaults(t *testing.T) {
	c := NewClassifier()
	cases := map[byte]Class{
		' ':  Space,
		'\t': Space,
		'\n': Newline,
		'\r': Newline,
		'a':  Word,
		'Z':  Word,
		'9':  Word,
		'_':  Word,
		'.':  Punctuation,
		'(':  Punctuation,
	}
	for b, want := range cases {
		if got := c.ClassOfByte(b); got != want {
			t.Errorf("ClassOfByte(%q) = %s, want %s", b, got, want)
		}
	}
}

func TestClassifierSetCharClassesOverrides(t *testing.T) {
	c := NewClassifier()
	c.SetCharClasses([]byte{'-', '$'}, Word)
	if c.ClassOfByte('-') != Word {
		t.Fatal("expected '-' overridden to Word")
	}
	if c.ClassOfByte('$') != Word {
		t.Fatal("expected '$' overridden to Word")
	}
	if c.ClassOfByte('.') != Punctuation {
		t.Fatal("unrelated byte must not be affected")
	}
}

func TestClassifierClassOfRuneCJKAndLetters(t *testing.T) {
	c := NewClassifier()
	if got := c.ClassOfRune('漢'); got != CJKWord {
		t.Errorf("ClassOfRune('漢') = %s, want cjk_word", got)
	}
	if got := c.ClassOfRune('é'); got != Word {
		t.Errorf("ClassOfRune('é') = %s, want word", got)
	}
	if got := c.ClassOfRune('€'); got != Punctuation {
		t.Errorf("ClassOfRune('€') = %s, want punctuation", got)
	}
}

type testSource string

func (s testSource) ByteAt(pos int64) (byte, bool) {
	if pos < 0 || pos >= int64(len(s)) {
		return 0, false
	}
	return s[pos], true
}

func (s testSource) Length() int64 { return int64(len(s)) }

func TestSBCSNextPositionClampsAtEdges(t *testing.T) {
	var s SBCS
	src := testSource("abc")
	if got := s.NextPosition(src, 0, -1); got != 0 {
		t.Errorf("NextPosition(0,-1) = %d, want 0", got)
	}
	if got := s.NextPosition(src, 3, 1); got != 3 {
		t.Errorf("NextPosition(len,1) = %d, want 3", got)
	}
	if got := s.NextPosition(src, 0, 1); got != 1 {
		t.Errorf("NextPosition(0,1) = %d, want 1", got)
	}
}

func TestSBCSSnapsOutsideCRLF(t *testing.T) {
	var s SBCS
	src := testSource("a\r\nb")
	if got := s.MovePositionOutsideChar(src, 2, -1, true); got != 1 {
		t.Errorf("snap backward out of CRLF = %d, want 1", got)
	}
	if got := s.MovePositionOutsideChar(src, 2, 1, true); got != 3 {
		t.Errorf("snap forward out of CRLF = %d, want 3", got)
	}
}

func TestUTF8NextPositionAdvancesWholeRunes(t *testing.T) {
	var u UTF8
	src := testSource("aéb") // 'a', 'é' (2 bytes), 'b'
	if got := u.NextPosition(src, 0, 1); got != 1 {
		t.Errorf("NextPosition(0,1) = %d, want 1", got)
	}
	if got := u.NextPosition(src, 1, 1); got != 3 {
		t.Errorf("NextPosition past 2-byte rune = %d, want 3", got)
	}
	if got := u.NextPosition(src, 3, -1); got != 1 {
		t.Errorf("NextPosition backward over 2-byte rune = %d, want 1", got)
	}
	if got := u.NextPosition(src, 0, -1); got != 0 {
		t.Errorf("NextPosition(0,-1) = %d, want 0", got)
	}
	length := src.Length()
	if got := u.NextPosition(src, length, 1); got != length {
		t.Errorf("NextPosition(length,1) = %d, want %d", got, length)
	}
}

func TestUTF8InvalidSequenceReportsUnpairedSurrogate(t *testing.T) {
	var u UTF8
	src := testSource("\xff\xfe")
	cw := u.CharacterAfter(src, 0)
	if cw.Width != 1 {
		t.Fatalf("invalid byte must advance by 1, got width %d", cw.Width)
	}
	if cw.Character != rune(0xDC80+0xFF) {
		t.Fatalf("invalid byte must report 0xDC80+byte, got %#x", cw.Character)
	}
}

func TestUTF8SnapOutsideCRLF(t *testing.T) {
	var u UTF8
	src := testSource("a\r\nb")
	if got := u.MovePositionOutsideChar(src, 2, -1, true); got != 1 {
		t.Errorf("snap backward out of CRLF = %d, want 1", got)
	}
	if got := u.MovePositionOutsideChar(src, 2, 1, true); got != 3 {
		t.Errorf("snap forward out of CRLF = %d, want 3", got)
	}
}

func TestDBCSCharWidthAndNextPosition(t *testing.T) {
	d := DBCS{CodePage: CP932}
	src := testSource([]byte{0x82, 0xA0, 'x', 0x82, 0xA2})
	if got := d.NextPosition(src, 0, 1); got != 2 {
		t.Errorf("NextPosition over lead+trail = %d, want 2", got)
	}
	if got := d.NextPosition(src, 2, 1); got != 3 {
		t.Errorf("NextPosition over single ascii byte = %d, want 3", got)
	}
	if got := d.NextPosition(src, 3, 1); got != 5 {
		t.Errorf("NextPosition over second DBCS char = %d, want 5", got)
	}
}

func TestSafeSegmentBreaksAtSpace(t *testing.T) {
	c := NewClassifier()
	text := "ab cd ef"
	if got := SafeSegment(c, text, 6, FamilyUTF8, nil); got != 5 {
		t.Errorf("SafeSegment(%q,6) = %d, want 5", text, got)
	}
}

func TestSafeSegmentNeverSplitsCJKGraphemeCluster(t *testing.T) {
	c := NewClassifier()
	text := "漢字x" // two 3-byte CJK characters then ascii 'x'
	if got := SafeSegment(c, text, 4, FamilyUTF8, nil); got != 3 {
		t.Errorf("SafeSegment(cjk,4) = %d, want 3", got)
	}
}

func TestSafeSegmentReturnsLengthWhenAtOrPastEnd(t *testing.T) {
	c := NewClassifier()
	text := "abc"
	if got := SafeSegment(c, text, 10, FamilyUTF8, nil); got != len(text) {
		t.Errorf("SafeSegment past end = %d, want %d", got, len(text))
	}
	if got := SafeSegment(c, text, 0, FamilyUTF8, nil); got != 0 {
		t.Errorf("SafeSegment(0) = %d, want 0", got)
	}
}

func TestSafeSegmentDBCSFallsBackToCharacterBoundary(t *testing.T) {
	c := NewClassifier()
	d := &DBCS{CodePage: CP932}
	text := string([]byte{0x82, 0xA0, 0x82, 0xA2})
	if got := SafeSegment(c, text, 3, FamilyDBCS, d); got != 2 {
		t.Errorf("SafeSegment DBCS mid-character = %d, want 2", got)
	}
}
