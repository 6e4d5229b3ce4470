package perline

// Kind distinguishes the three text-bearing per-line stores. Only
// KindAnnotation reports a line-count delta from Set: margin and
// end-of-line annotation text is always rendered as a single visual
// line, but a plain-line annotation can itself span several lines and
// so changes how much vertical space the view must reserve.
type Kind uint8

const (
	KindMargin Kind = iota
	KindAnnotation
	KindEOLAnnotation
)

// TextLine holds optional text plus an optional parallel style array
// (one byte per byte of Text, or nil for "use the default style").
type TextLine struct {
	Text   string
	Styles []byte
}

// TextStore is the per-line store backing Margin, Annotation, and
// EOL-Annotation text.
type TextStore struct {
	kind  Kind
	lines []TextLine
}

// NewTextStore creates a TextStore of the given kind with lines empty lines.
func NewTextStore(kind Kind, lines int) *TextStore {
	t := &TextStore{kind: kind}
	t.Init(lines)
	return t
}

func (t *TextStore) Init(lines int) {
	if lines < 1 {
		lines = 1
	}
	t.lines = make([]TextLine, lines)
}

func (t *TextStore) InsertLine(line int) { t.InsertLines(line, 1) }

func (t *TextStore) InsertLines(line, n int) {
	if n <= 0 {
		return
	}
	ins := make([]TextLine, n)
	t.lines = append(t.lines[:line:line], append(ins, t.lines[line:]...)...)
}

func (t *TextStore) RemoveLine(line int) {
	if line < 0 || line >= len(t.lines) {
		return
	}
	t.lines = append(t.lines[:line], t.lines[line+1:]...)
}

func (t *TextStore) IsActive() bool {
	for _, l := range t.lines {
		if l.Text != "" {
			return true
		}
	}
	return false
}

// Get returns the text/styles set on line, or the zero TextLine.
func (t *TextStore) Get(line int) TextLine {
	if line < 0 || line >= len(t.lines) {
		return TextLine{}
	}
	return t.lines[line]
}

// Set assigns text (and optional per-byte styles, which must be the same
// length as text if non-nil) to line. It returns the annotation-line-count
// delta (text split on '\n'); for KindMargin and KindEOLAnnotation this is
// always 0, since those are single-line by definition.
func (t *TextStore) Set(line int, text string, styles []byte) int {
	if line < 0 || line >= len(t.lines) {
		return 0
	}
	before := t.lineCountOf(line)
	t.lines[line] = TextLine{Text: text, Styles: styles}
	if t.kind != KindAnnotation {
		return 0
	}
	return countTextLines(text) - before
}

// Clear removes line's text, returning the same kind of delta as Set.
func (t *TextStore) Clear(line int) int {
	return t.Set(line, "", nil)
}

func (t *TextStore) lineCountOf(line int) int {
	if t.kind != KindAnnotation {
		return 0
	}
	return countTextLines(t.lines[line].Text)
}

func countTextLines(s string) int {
	if s == "" {
		return 0
	}
	n := 1
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			n++
		}
	}
	return n
}
