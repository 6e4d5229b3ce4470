package document

import (
	"github.com/guiguan/caster"

	"github.com/textcore/editdoc/internal/casefold"
	"github.com/textcore/editdoc/internal/cellbuffer"
	"github.com/textcore/editdoc/internal/charclass"
	"github.com/textcore/editdoc/internal/decoration"
	"github.com/textcore/editdoc/internal/perline"
	"github.com/textcore/editdoc/internal/regexsearch"
	"github.com/textcore/editdoc/internal/search"
)

// Lexer is the external styling/folding collaborator a Document can
// delegate to. Fold is optional in the sense that a lexer with nothing
// useful to report about structure can return immediately; Document
// still calls it whenever folding is requested.
type Lexer interface {
	Lex(start, length int64, initialStyle int, doc *Document) int
	Fold(start, length int64, initialStyle int, doc *Document)
	LineEndTypesSupported() LineEndKind
}

// Document is the facade described by spec §3: it owns one CellBuffer,
// six per-line stores, one Decorations set, the character classifier
// and encoding strategy, and the optional case folder/regex searcher/
// lexer bridge, and it is the sole funnel every mutation passes through
// on its way to watchers.
type Document struct {
	buf *cellbuffer.CellBuffer

	markers     *perline.Markers
	levels      *perline.Levels
	states      *perline.States
	margin      *perline.TextStore
	annotation  *perline.TextStore
	eolAnnot    *perline.TextStore
	perLineList []perline.Store

	decorations *decoration.Decorations

	classifier *charclass.Classifier
	codePage   CodePage
	encoding   charclass.EncodingStrategy

	folder  casefold.Folder
	lexer   Lexer
	regex   *regexsearch.RegexSearcher
	literal search.Searcher

	watchers []watcherEntry
	events   *caster.Caster

	tabWidth          int
	indentWidth       int
	useTabs           bool
	eolMode           EndOfLine
	allowedLineEnds   LineEndKind
	readOnly          bool
	refCount          int
	performingStyle   bool

	enteredModification int
	enteredReadOnly     int
	enteredStyling      int

	styleSecsPerByte float64
	pendingInsertion []byte
	delaySavePoint   bool
}

// Option configures a Document during creation.
type Option func(*Document)

// WithContent seeds the buffer with text before undo collection begins.
// It does not itself generate an undo record.
func WithContent(content string) Option {
	return func(d *Document) {
		d.buf = cellbuffer.New(cellbuffer.WithInitialText(content), cellbuffer.WithCollectingUndo(true))
	}
}

// WithCodePage selects the encoding strategy (0 = SBCS, 65001 = UTF-8,
// else a charclass.CodePage DBCS id).
func WithCodePage(cp CodePage) Option {
	return func(d *Document) { d.codePage = cp }
}

// WithTabWidth sets the tab width used by indentation/column logic.
func WithTabWidth(width int) Option {
	return func(d *Document) {
		if width > 0 {
			d.tabWidth = width
		}
	}
}

// WithIndentWidth sets the width IndentWidth reports; 0 means IndentWidth
// falls back to the tab width.
func WithIndentWidth(width int) Option {
	return func(d *Document) { d.indentWidth = width }
}

// WithUseTabs sets whether SetLineIndentation emits tabs or spaces.
func WithUseTabs(useTabs bool) Option {
	return func(d *Document) { d.useTabs = useTabs }
}

// WithEOLMode sets the line-ending mode new lines are written with.
func WithEOLMode(eol EndOfLine) Option {
	return func(d *Document) { d.eolMode = eol }
}

// WithReadOnly marks the Document read-only from construction.
func WithReadOnly(readOnly bool) Option {
	return func(d *Document) { d.readOnly = readOnly }
}

// WithCaseFolder installs a Folder for case-insensitive search.
func WithCaseFolder(f casefold.Folder) Option {
	return func(d *Document) { d.folder = f }
}

// WithLexer installs a styling/folding collaborator.
func WithLexer(l Lexer) Option {
	return func(d *Document) { d.lexer = l }
}

// DefaultTabWidth and friends mirror Scintilla's usual defaults.
const (
	DefaultTabWidth    = 8
	DefaultIndentWidth = 0
)

// New creates a Document ready for use: an empty buffer (unless
// WithContent overrides it), default-size per-line stores, and a
// reference count of 1.
func New(opts ...Option) *Document {
	d := &Document{
		codePage:        CodePageUTF8,
		tabWidth:        DefaultTabWidth,
		indentWidth:     DefaultIndentWidth,
		eolMode:         EOLCrLf,
		allowedLineEnds: LineEndDefault | LineEndUnicode,
		refCount:        1,
		classifier:      charclass.NewClassifier(),
		regex:           regexsearch.NewRegexSearcher(),
		events:          caster.New(nil),
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.buf == nil {
		d.buf = cellbuffer.New()
	}
	if d.readOnly {
		d.buf.SetReadOnly(true)
	}
	if d.folder == nil {
		d.folder = casefold.NewASCIITable()
	}
	d.encoding = strategyFor(d.codePage)
	d.literal = search.Searcher{Classifier: d.classifier, Encoding: d.encoding, Folder: d.folder}

	lines := d.buf.LinesTotal()
	d.markers = perline.NewMarkers(lines)
	d.levels = perline.NewLevels(lines)
	d.states = perline.NewStates(lines)
	d.margin = perline.NewTextStore(perline.KindMargin, lines)
	d.annotation = perline.NewTextStore(perline.KindAnnotation, lines)
	d.eolAnnot = perline.NewTextStore(perline.KindEOLAnnotation, lines)
	d.perLineList = []perline.Store{d.markers, d.levels, d.states, d.margin, d.annotation, d.eolAnnot}

	d.decorations = decoration.New(d.buf.Length())
	d.styleSecsPerByte = 0

	return d
}

// AddRef increments the reference count.
func (d *Document) AddRef() { d.refCount++ }

// Release decrements the reference count, notifying every watcher of
// deletion and severing the broadcast caster when it reaches zero.
// Reports whether this call destroyed the Document.
func (d *Document) Release() bool {
	d.refCount--
	if d.refCount > 0 {
		return false
	}
	d.notifyDeleted()
	return true
}

// RefCount reports the current reference count.
func (d *Document) RefCount() int { return d.refCount }

// IsReadOnly reports whether mutation is currently rejected.
func (d *Document) IsReadOnly() bool { return d.readOnly }

// SetReadOnly toggles the read-only flag. Has no effect, and returns
// false, while enteredReadOnly is held by an in-progress guard check.
func (d *Document) SetReadOnly(readOnly bool) bool {
	if d.enteredReadOnly > 0 {
		return false
	}
	d.readOnly = readOnly
	d.buf.SetReadOnly(readOnly)
	return true
}

// TabWidth/IndentWidth/UseTabs/EOLMode/CodePage/AllowedLineEnds accessors.
func (d *Document) TabWidth() int         { return d.tabWidth }
func (d *Document) IndentWidth() int {
	if d.indentWidth > 0 {
		return d.indentWidth
	}
	return d.tabWidth
}
func (d *Document) UseTabs() bool         { return d.useTabs }
func (d *Document) EOLMode() EndOfLine    { return d.eolMode }
func (d *Document) CodePage() CodePage    { return d.codePage }
func (d *Document) AllowedLineEnds() LineEndKind { return d.allowedLineEnds }

// SetTabWidth/SetIndentWidth/SetUseTabs/SetEOLMode update the
// corresponding scalar state. The first three fire a ChangeTabStops
// notification when the value changes, since a view's expanded-column
// cache depends on them; SetEOLMode only stores the mode and fires no
// notification.
func (d *Document) SetTabWidth(width int) {
	if width <= 0 || width == d.tabWidth {
		return
	}
	d.tabWidth = width
	d.notifyModified(Notification{Flags: FlagChangeTabStops})
}

func (d *Document) SetIndentWidth(width int) {
	if width == d.indentWidth {
		return
	}
	d.indentWidth = width
	d.notifyModified(Notification{Flags: FlagChangeTabStops})
}

func (d *Document) SetUseTabs(useTabs bool) {
	if useTabs == d.useTabs {
		return
	}
	d.useTabs = useTabs
	d.notifyModified(Notification{Flags: FlagChangeTabStops})
}

func (d *Document) SetEOLMode(eol EndOfLine) { d.eolMode = eol }

// SetDBCSCodePage switches the encoding strategy. Per §9's design note,
// this is the single place the concrete strategy is chosen; every other
// operation goes through the EncodingStrategy capability.
func (d *Document) SetDBCSCodePage(cp CodePage) {
	d.codePage = cp
	d.encoding = strategyFor(cp)
	d.literal.Encoding = d.encoding
}

// Classifier exposes the character classifier for callers that need to
// install SetCharClasses overrides.
func (d *Document) Classifier() *charclass.Classifier { return d.classifier }

// Length returns the total byte length of the buffer.
func (d *Document) Length() int64 { return d.buf.Length() }

// LinesTotal returns the number of lines in the buffer.
func (d *Document) LinesTotal() int { return d.buf.LinesTotal() }

// ByteAt, CharAt, TextRange, LineStart/LineEnd/LineFromPosition/LineText
// delegate straight to the CellBuffer: Document adds no value over these
// pure reads beyond the guard-free pass-through itself.
func (d *Document) ByteAt(pos int64) (byte, bool)   { return d.buf.ByteAt(pos) }
func (d *Document) CharAt(pos int64) int            { return d.buf.CharAt(pos) }
func (d *Document) TextRange(start, end int64) string { return d.buf.TextRange(start, end) }
func (d *Document) LineStart(line int) int64        { return d.buf.LineStart(line) }
func (d *Document) LineEnd(line int) int64          { return d.buf.LineEnd(line) }
func (d *Document) LineFromPosition(pos int64) int  { return d.buf.LineFromPosition(pos) }
func (d *Document) LineText(line int) string        { return d.buf.LineText(line) }
func (d *Document) StyleAt(pos int64) byte          { return d.buf.StyleAt(pos) }
func (d *Document) EndStyled() int64                { return d.buf.EndStyled() }

// CanUndo / CanRedo / IsSavePoint mirror the CellBuffer's undo log state.
func (d *Document) CanUndo() bool     { return d.buf.CanUndo() }
func (d *Document) CanRedo() bool     { return d.buf.CanRedo() }
func (d *Document) IsSavePoint() bool { return d.buf.IsSavePoint() }

// Markers, Levels, States, Margin, Annotation, and EOLAnnotation expose
// the six per-line stores for direct manipulation (AddMark, fold-level
// edits, and so on); Document is responsible only for keeping their
// length in sync with LinesTotal, not for wrapping every one of their
// methods.
func (d *Document) Markers() *perline.Markers       { return d.markers }
func (d *Document) Levels() *perline.Levels         { return d.levels }
func (d *Document) States() *perline.States         { return d.states }
func (d *Document) Margin() *perline.TextStore      { return d.margin }
func (d *Document) Annotation() *perline.TextStore  { return d.annotation }
func (d *Document) EOLAnnotation() *perline.TextStore { return d.eolAnnot }

// Decorations exposes the indicator-layer set.
func (d *Document) Decorations() *decoration.Decorations { return d.decorations }
