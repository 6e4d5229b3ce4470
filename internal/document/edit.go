package document

// syncPerLineStores keeps the six per-line stores' length invariants in
// lockstep with LinesTotal, per spec §3: called before the text change
// itself is broadcast to external watchers.
func (d *Document) syncPerLineStores(line, linesDelta int) {
	if linesDelta > 0 {
		for _, s := range d.perLineList {
			s.InsertLines(line+1, linesDelta)
		}
	} else if linesDelta < 0 {
		for i := 0; i < -linesDelta; i++ {
			for _, s := range d.perLineList {
				s.RemoveLine(line + 1)
			}
		}
	}
}

// InsertString inserts text at pos, guarded by read-only and reentrance
// checks, and notified as BeforeInsert then InsertText. Returns
// StatusFailure without mutating anything if the document is read-only,
// a modification is already in progress, or pos is out of range.
func (d *Document) InsertString(pos int64, text string) Status {
	if d.readOnly {
		tracer().Debugf("InsertString(%d, %d bytes) rejected: document is read-only", pos, len(text))
		d.notifyModifyAttempt()
		return StatusFailure
	}
	if d.enteredModification > 0 {
		return StatusFailure
	}
	if pos < 0 || pos > d.Length() || text == "" {
		if text == "" {
			return StatusOk
		}
		tracer().Debugf("InsertString(%d, %d bytes) rejected: position out of range (length=%d)", pos, len(text), d.Length())
		return StatusFailure
	}

	d.enteredModification++
	defer func() { d.enteredModification-- }()

	d.notifyModified(Notification{Flags: FlagBeforeInsert, Position: pos, Length: int64(len(text))})

	line := d.buf.LineFromPosition(pos)
	linesBefore := d.buf.LinesTotal()
	wasSavePoint := d.buf.IsSavePoint()

	startSeq, status := d.buf.InsertString(pos, text)
	if status != StatusOk {
		tracer().Errorf("InsertString(%d, %d bytes) buffer operation failed: %v", pos, len(text), status)
		d.notifyErrorOccurred(int(status))
		return status
	}

	linesDelta := d.buf.LinesTotal() - linesBefore
	d.syncPerLineStores(line, linesDelta)
	d.decorations.InsertSpace(pos, int64(len(text)))
	d.buf.RetreatEndStyled(pos)
	d.reconcileSavePoint(wasSavePoint)

	flags := FlagInsertText | FlagUser
	if startSeq {
		flags |= FlagStartAction
	}
	if linesDelta != 0 {
		flags |= FlagMultilineUndoRedo
	}
	d.notifyModified(Notification{
		Flags:      flags,
		Position:   pos,
		Length:     int64(len(text)),
		LinesAdded: linesDelta,
		Text:       []byte(text),
		Line:       line,
	})
	return StatusOk
}

// DeleteRange removes length bytes starting at pos, guarded and notified
// the same way as InsertString (BeforeDelete then DeleteText).
func (d *Document) DeleteRange(pos, length int64) Status {
	if d.readOnly {
		tracer().Debugf("DeleteRange(%d, %d) rejected: document is read-only", pos, length)
		d.notifyModifyAttempt()
		return StatusFailure
	}
	if d.enteredModification > 0 {
		return StatusFailure
	}
	if length == 0 {
		return StatusOk
	}
	if pos < 0 || length < 0 || pos+length > d.Length() {
		tracer().Debugf("DeleteRange(%d, %d) rejected: out of range (length=%d)", pos, length, d.Length())
		return StatusFailure
	}

	d.enteredModification++
	defer func() { d.enteredModification-- }()

	d.notifyModified(Notification{Flags: FlagBeforeDelete, Position: pos, Length: length})

	line := d.buf.LineFromPosition(pos)
	linesBefore := d.buf.LinesTotal()
	removedText := d.buf.TextRange(pos, pos+length)
	wasSavePoint := d.buf.IsSavePoint()

	_, status := d.buf.DeleteRange(pos, length)
	if status != StatusOk {
		tracer().Errorf("DeleteRange(%d, %d) buffer operation failed: %v", pos, length, status)
		d.notifyErrorOccurred(int(status))
		return status
	}

	linesDelta := d.buf.LinesTotal() - linesBefore
	d.syncPerLineStores(line, linesDelta)
	d.decorations.DeleteRange(pos, length)
	d.buf.RetreatEndStyled(pos)
	d.reconcileSavePoint(wasSavePoint)

	flags := FlagDeleteText | FlagUser
	if linesDelta != 0 {
		flags |= FlagMultilineUndoRedo
	}
	d.notifyModified(Notification{
		Flags:      flags,
		Position:   pos,
		Length:     length,
		LinesAdded: linesDelta,
		Text:       []byte(removedText),
		Line:       line,
	})
	return StatusOk
}

// ReplaceRange replaces [pos, pos+length) with text as one undo group: a
// deletion (if length > 0) followed by an insertion (if text != ""),
// bracketed so one Undo reverses both.
func (d *Document) ReplaceRange(pos, length int64, text string) Status {
	if d.readOnly {
		d.notifyModifyAttempt()
		return StatusFailure
	}
	if d.enteredModification > 0 {
		return StatusFailure
	}

	d.buf.BeginUndoAction()
	defer func() {
		if d.buf.EndUndoAction() {
			d.notifyGroupCompleted()
		}
	}()

	if length > 0 {
		if status := d.DeleteRange(pos, length); status != StatusOk {
			return status
		}
	}
	if text != "" {
		if status := d.InsertString(pos, text); status != StatusOk {
			return status
		}
	}
	return StatusOk
}

// BeginUndoAction / EndUndoAction expose explicit undo grouping for
// callers issuing several edits that should undo as one step (e.g.
// SetLineIndentation). EndUndoAction fires NotifyGroupCompleted when it
// closes the outermost group.
func (d *Document) BeginUndoAction() int { return d.buf.BeginUndoAction() }

func (d *Document) EndUndoAction() bool {
	done := d.buf.EndUndoAction()
	if done {
		d.notifyGroupCompleted()
	}
	return done
}

// SetSavePoint marks the current undo position as "on disk" and notifies
// watchers that the document is now at its save point.
func (d *Document) SetSavePoint() {
	d.buf.SetSavePoint()
	d.notifySavePoint(true)
}
