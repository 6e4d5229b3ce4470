package cellbuffer

import "github.com/textcore/editdoc/internal/undo"

// InsertString inserts text at pos. It coalesces with the immediately
// preceding undo action when the two are adjacent single-unit edits
// (typing), matching Scintilla's InsertString(position, text, length,
// startSequence) contract: startSequence reports whether this call began
// a new undo group.
func (cb *CellBuffer) InsertString(pos int64, text string) (startSequence bool, status Status) {
	if cb.readOnly {
		return false, StatusFailure
	}
	if pos < 0 || pos > cb.Length() {
		return false, StatusFailure
	}
	if text == "" {
		return false, StatusOk
	}

	data := []byte(text)
	cb.applyInsert(pos, data)
	start := cb.log.Append(undo.Insert, pos, int64(len(data)), data, len(data) == 1)
	return start, StatusOk
}

// DeleteRange removes length bytes starting at pos, the CellBuffer
// analogue of Scintilla's DeleteChars(position, length, startSequence).
func (cb *CellBuffer) DeleteRange(pos, length int64) (startSequence bool, status Status) {
	if cb.readOnly {
		return false, StatusFailure
	}
	if pos < 0 || length < 0 || pos+length > cb.Length() {
		return false, StatusFailure
	}
	if length == 0 {
		return false, StatusOk
	}

	removed := cb.applyRemove(pos, length)
	start := cb.log.Append(undo.Remove, pos, length, removed, length == 1)
	return start, StatusOk
}

// ReplaceRange replaces the half-open range [pos, pos+length) with text
// as a single undo group: a deletion followed by an insertion, bracketed
// by BeginUndoAction/EndUndoAction so one Undo() call reverses both.
func (cb *CellBuffer) ReplaceRange(pos, length int64, text string) Status {
	if cb.readOnly {
		return StatusFailure
	}
	if pos < 0 || length < 0 || pos+length > cb.Length() {
		return StatusFailure
	}

	cb.BeginUndoAction()
	defer cb.EndUndoAction()

	if length > 0 {
		if _, status := cb.DeleteRange(pos, length); status != StatusOk {
			return status
		}
	}
	if text != "" {
		if _, status := cb.InsertString(pos, text); status != StatusOk {
			return status
		}
	}
	return StatusOk
}
