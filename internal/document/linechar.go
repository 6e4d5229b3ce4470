package document

import "github.com/textcore/editdoc/internal/cellbuffer"

// AllocateLineCharacterIndex, ReleaseLineCharacterIndex, and
// LineCharacterIndexActive expose the CellBuffer's opt-in UTF-16 index
// reference count: a caller (typically an LSP bridge translating
// Position{line,character} coordinates) allocates the index while it
// needs UTF16PositionToByte to stay cheap, and releases it when done.
func (d *Document) AllocateLineCharacterIndex(kind cellbuffer.LineCharacterIndexType) {
	d.buf.AllocateLineCharacterIndex(kind)
}

func (d *Document) ReleaseLineCharacterIndex(kind cellbuffer.LineCharacterIndexType) {
	d.buf.ReleaseLineCharacterIndex(kind)
}

func (d *Document) LineCharacterIndexActive(kind cellbuffer.LineCharacterIndexType) bool {
	return d.buf.LineCharacterIndexActive(kind)
}

// UTF16LengthOfLine and UTF16PositionToByte delegate straight to the
// CellBuffer, giving the LSP bridge a UTF-16 coordinate space without
// exposing the buffer itself.
func (d *Document) UTF16LengthOfLine(line int) uint64 {
	return d.buf.UTF16LengthOfLine(line)
}

func (d *Document) UTF16PositionToByte(line int, utf16Column uint64) int64 {
	return d.buf.UTF16PositionToByte(line, utf16Column)
}

// MarkerNext returns the first line at or after fromLine carrying any of
// the markers in mask, notifying nothing since it is a pure query.
func (d *Document) MarkerNext(fromLine int, mask uint32) int {
	return d.markers.MarkerNext(fromLine, mask)
}

// GetFoldParent and GetLastChild expose the fold-level store's structural
// queries directly on Document, matching how a folding margin actually
// asks for them: by line, not by store.
func (d *Document) GetFoldParent(line int) int {
	return d.levels.GetFoldParent(line)
}

func (d *Document) GetLastChild(parent int, level int, lastLine int) int {
	return d.levels.GetLastChild(parent, level, lastLine)
}

// PendingInsertion returns the bytes staged by SetPendingInsertion, the
// buffer a caller uses to batch an in-flight multi-keystroke insertion
// (e.g. an IME composition) before it lands as a single InsertString.
func (d *Document) PendingInsertion() []byte { return d.pendingInsertion }

// SetPendingInsertion replaces the staged-insertion buffer.
func (d *Document) SetPendingInsertion(data []byte) { d.pendingInsertion = data }

// ClearPendingInsertion discards any staged insertion without applying it.
func (d *Document) ClearPendingInsertion() { d.pendingInsertion = nil }

// DelaySavePoint arms a one-shot latch that suppresses the next automatic
// save-point transition notification an edit, Undo or Redo would otherwise fire,
// letting a caller finish a compound operation (e.g. a multi-document
// find-and-replace) before the save-point state is reported as changed.
func (d *Document) DelaySavePoint() { d.delaySavePoint = true }

// IsSavePointDelayed reports whether the latch armed by DelaySavePoint is
// still pending.
func (d *Document) IsSavePointDelayed() bool { return d.delaySavePoint }
