package cellbuffer

import (
	"github.com/textcore/editdoc/internal/rope"
	"github.com/textcore/editdoc/internal/undo"
)

// CellBuffer is the byte-addressed text store for one Document: rope
// storage for content, a parallel style-byte array, and an undo.Log
// threading every mutation into undo/redo history.
//
// It is not goroutine-safe; Document serializes access the way spec's
// single cooperative thread of control assumes.
type CellBuffer struct {
	text   rope.Rope
	styles []byte

	lineStarts []int64

	log *undo.Log

	readOnly bool

	endStyled int64

	utf16IndexRefCount int
}

// Option configures a CellBuffer at construction time.
type Option func(*CellBuffer)

// WithInitialText seeds the buffer with text before undo collection or
// styling begins. It does not itself generate an undo record; callers
// that want the initial load to be undoable should use InsertString
// against an empty buffer instead.
func WithInitialText(text string) Option {
	return func(cb *CellBuffer) {
		cb.text = rope.FromString(text)
	}
}

// WithCollectingUndo sets the initial undo-collection state. Pass false
// to suppress history for a bulk initial load, matching Scintilla's
// SetUndoCollection(false) idiom around file open.
func WithCollectingUndo(collect bool) Option {
	return func(cb *CellBuffer) {
		cb.log.SetCollectingUndo(collect)
	}
}

// WithReadOnly marks the buffer read-only from construction.
func WithReadOnly(readOnly bool) Option {
	return func(cb *CellBuffer) {
		cb.readOnly = readOnly
	}
}

// New creates an empty, writable CellBuffer with undo collection enabled.
func New(opts ...Option) *CellBuffer {
	cb := &CellBuffer{
		text: rope.New(),
		log:  undo.NewLog(),
	}
	for _, opt := range opts {
		opt(cb)
	}
	cb.styles = make([]byte, cb.text.Len())
	cb.lineStarts = scanLineStarts(cb.text.String())
	return cb
}

// Length returns the total byte length of the buffer.
func (cb *CellBuffer) Length() int64 {
	return int64(cb.text.Len())
}

// String returns the full buffer contents. Use sparingly on large buffers.
func (cb *CellBuffer) String() string {
	return cb.text.String()
}

// ByteAt returns the byte at offset, or (0, false) if out of range.
func (cb *CellBuffer) ByteAt(offset int64) (byte, bool) {
	if offset < 0 {
		return 0, false
	}
	return cb.text.ByteAt(rope.ByteOffset(offset))
}

// CharAt returns the byte at offset, or -1 if out of range, matching the
// Scintilla CharAt(pos) convention used by the navigation/search layers.
func (cb *CellBuffer) CharAt(offset int64) int {
	b, ok := cb.ByteAt(offset)
	if !ok {
		return -1
	}
	return int(b)
}

// TextRange returns the text in the half-open byte range [start, end).
// Out-of-range or inverted bounds clamp to the empty string rather than
// panicking.
func (cb *CellBuffer) TextRange(start, end int64) string {
	if start < 0 {
		start = 0
	}
	length := cb.Length()
	if end > length {
		end = length
	}
	if start >= end {
		return ""
	}
	return cb.text.Slice(rope.ByteOffset(start), rope.ByteOffset(end))
}

// IsReadOnly reports whether edits are currently rejected.
func (cb *CellBuffer) IsReadOnly() bool { return cb.readOnly }

// SetReadOnly toggles the read-only flag.
func (cb *CellBuffer) SetReadOnly(readOnly bool) { cb.readOnly = readOnly }

// applyInsert performs the raw insertion into text, styles, and the line
// index. It does not touch the undo log; callers record the Action.
//
// The line index is updated by rescanning only a bounded window around
// pos (one line of margin either side) rather than the whole buffer:
// rope already answers the byte-offset query behind that window lookup
// in O(log n), so a single edit costs O(window + log n) instead of
// O(n) regardless of how large the document has grown.
func (cb *CellBuffer) applyInsert(pos int64, data []byte) {
	oldStarts := cb.lineStarts
	oldLength := cb.Length()
	window := computeLineSpliceWindow(oldStarts, oldLength, pos, pos)
	oldWindowText := cb.text.Slice(rope.ByteOffset(window.start), rope.ByteOffset(window.end))

	cb.text = cb.text.Insert(rope.ByteOffset(pos), string(data))
	cb.styles = spliceStyleInsert(cb.styles, pos, len(data))

	localPos := int(pos - window.start)
	newWindowText := oldWindowText[:localPos] + string(data) + oldWindowText[localPos:]
	cb.lineStarts = spliceLineStarts(oldStarts, window, newWindowText, int64(len(data)))
}

// applyRemove performs the raw deletion and returns the bytes removed,
// maintaining the line index with the same bounded-window rescan as
// applyInsert.
func (cb *CellBuffer) applyRemove(pos, length int64) []byte {
	oldStarts := cb.lineStarts
	oldLength := cb.Length()
	window := computeLineSpliceWindow(oldStarts, oldLength, pos, pos+length)
	oldWindowText := cb.text.Slice(rope.ByteOffset(window.start), rope.ByteOffset(window.end))

	removed := []byte(cb.text.Slice(rope.ByteOffset(pos), rope.ByteOffset(pos+length)))
	cb.text = cb.text.Delete(rope.ByteOffset(pos), rope.ByteOffset(pos+length))
	cb.styles = spliceStyleRemove(cb.styles, pos, length)

	localStart := int(pos - window.start)
	localEnd := localStart + int(length)
	newWindowText := oldWindowText[:localStart] + oldWindowText[localEnd:]
	cb.lineStarts = spliceLineStarts(oldStarts, window, newWindowText, -length)
	return removed
}

// applyForward replays an Action in its recorded direction (used by Redo
// and by TentativeCommit's implicit no-op — the buffer is already in the
// post-action state for a committed tentative group).
func (cb *CellBuffer) applyForward(a undo.Action) {
	switch a.Type {
	case undo.Insert:
		cb.applyInsert(a.Position, a.Data)
	case undo.Remove:
		cb.applyRemove(a.Position, a.Length)
	}
}

// applyInverse reverses an Action (used by Undo and TentativeUndo).
func (cb *CellBuffer) applyInverse(a undo.Action) {
	cb.applyForward(a.Invert())
}
