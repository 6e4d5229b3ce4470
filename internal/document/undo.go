package document

// Undo reverses the next undo group, notifying watchers of each
// reversed Action (flagged Undo, plus MultiStepUndoRedo on every step
// but the last, and LastStepInUndoRedo on the last) and of any save-point
// transition the reversal crosses.
func (d *Document) Undo() bool {
	if d.readOnly {
		d.notifyModifyAttempt()
		return false
	}
	if d.enteredModification > 0 || !d.buf.CanUndo() {
		return false
	}

	d.enteredModification++
	defer func() { d.enteredModification-- }()

	wasSavePoint := d.buf.IsSavePoint()
	actions := d.buf.Undo()
	d.applyUndoRedoNotifications(actions, FlagUndo)
	d.reconcileSavePoint(wasSavePoint)
	return len(actions) > 0
}

// Redo replays the next redo group, notified the same way as Undo.
func (d *Document) Redo() bool {
	if d.readOnly {
		d.notifyModifyAttempt()
		return false
	}
	if d.enteredModification > 0 || !d.buf.CanRedo() {
		return false
	}

	d.enteredModification++
	defer func() { d.enteredModification-- }()

	wasSavePoint := d.buf.IsSavePoint()
	actions := d.buf.Redo()
	d.applyUndoRedoNotifications(actions, FlagRedo)
	d.reconcileSavePoint(wasSavePoint)
	return len(actions) > 0
}

func (d *Document) applyUndoRedoNotifications(actions []Action, dirFlag ModFlags) {
	for i, a := range actions {
		flags := dirFlag | FlagUser
		if len(actions) > 1 {
			flags |= FlagMultiStepUndoRedo
			if i == len(actions)-1 {
				flags |= FlagLastStepInUndoRedo
			}
		}
		switch a.Type {
		case ActionInsert:
			flags |= FlagInsertText
		case ActionRemove:
			flags |= FlagDeleteText
		case ActionContainer:
			flags |= FlagContainer
		}
		line := d.buf.LineFromPosition(a.Position)
		d.buf.RetreatEndStyled(a.Position)
		d.notifyModified(Notification{
			Flags:    flags,
			Position: a.Position,
			Length:   a.Length,
			Text:     a.Data,
			Line:     line,
			Token:    a.Token,
		})
	}
}

func (d *Document) reconcileSavePoint(was bool) {
	now := d.buf.IsSavePoint()
	if now == was {
		return
	}
	if d.delaySavePoint {
		d.delaySavePoint = false
		return
	}
	d.notifySavePoint(now)
}

// TentativeStart opens a speculative undo group at the current position.
func (d *Document) TentativeStart() { d.buf.TentativeStart() }

// IsTentativeActive reports whether a tentative group is open.
func (d *Document) IsTentativeActive() bool { return d.buf.IsTentativeActive() }

// TentativeCommit accepts the speculative group as ordinary history.
func (d *Document) TentativeCommit() { d.buf.TentativeCommit() }

// TentativeUndo rolls back every edit since TentativeStart, leaving no
// trace in the undo log, and notifies watchers of the rollback the same
// way an ordinary Undo would.
func (d *Document) TentativeUndo() {
	wasSavePoint := d.buf.IsSavePoint()
	actions := d.buf.TentativeUndo()
	d.applyUndoRedoNotifications(actions, FlagUndo)
	d.reconcileSavePoint(wasSavePoint)
}
