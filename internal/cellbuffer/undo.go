package cellbuffer

import "github.com/textcore/editdoc/internal/undo"

// BeginUndoAction opens (or nests into) an undo group.
func (cb *CellBuffer) BeginUndoAction() int { return cb.log.BeginAction() }

// EndUndoAction closes one level of undo group nesting; see undo.Log.EndAction.
func (cb *CellBuffer) EndUndoAction() bool { return cb.log.EndAction() }

// UndoSequenceDepth returns the current group nesting depth.
func (cb *CellBuffer) UndoSequenceDepth() int { return cb.log.UndoSequenceDepth() }

// CanUndo reports whether Undo would do anything.
func (cb *CellBuffer) CanUndo() bool { return cb.log.CanUndo() }

// CanRedo reports whether Redo would do anything.
func (cb *CellBuffer) CanRedo() bool { return cb.log.CanRedo() }

// SetCollectingUndo enables or disables undo recording.
func (cb *CellBuffer) SetCollectingUndo(collect bool) { cb.log.SetCollectingUndo(collect) }

// IsCollectingUndo reports whether undo recording is enabled.
func (cb *CellBuffer) IsCollectingUndo() bool { return cb.log.IsCollectingUndo() }

// SetSavePoint marks the current undo position as "on disk".
func (cb *CellBuffer) SetSavePoint() { cb.log.SetSavePoint() }

// IsSavePoint reports whether the buffer is at its save point.
func (cb *CellBuffer) IsSavePoint() bool { return cb.log.IsSavePoint() }

// SetDetachPoint marks the current position as where history parted from
// some external, persisted copy (e.g. a reload from disk).
func (cb *CellBuffer) SetDetachPoint() { cb.log.SetDetachPoint() }

// DetachPoint returns the recorded detach index.
func (cb *CellBuffer) DetachPoint() int { return cb.log.DetachPoint() }

// Undo reverses the next undo group and returns the Actions it reversed,
// most recent first.
func (cb *CellBuffer) Undo() []undo.Action {
	if !cb.log.CanUndo() {
		return nil
	}
	n := cb.log.StartUndo()
	applied := make([]undo.Action, 0, n)
	for i := 0; i < n; i++ {
		a, ok := cb.log.PerformUndoStep()
		if !ok {
			break
		}
		cb.applyInverse(a)
		applied = append(applied, a)
	}
	return applied
}

// Redo replays the next redo group and returns the Actions it replayed,
// in application order.
func (cb *CellBuffer) Redo() []undo.Action {
	if !cb.log.CanRedo() {
		return nil
	}
	n := cb.log.StartRedo()
	applied := make([]undo.Action, 0, n)
	for i := 0; i < n; i++ {
		a, ok := cb.log.PerformRedoStep()
		if !ok {
			break
		}
		cb.applyForward(a)
		applied = append(applied, a)
	}
	return applied
}

// TentativeStart opens a speculative undo group at the current position.
func (cb *CellBuffer) TentativeStart() { cb.log.TentativeStart() }

// IsTentativeActive reports whether a tentative group is open.
func (cb *CellBuffer) IsTentativeActive() bool { return cb.log.IsTentativeActive() }

// TentativeSteps returns how many actions have been recorded since TentativeStart.
func (cb *CellBuffer) TentativeSteps() int { return cb.log.TentativeSteps() }

// TentativeCommit accepts the speculative group: its edits remain applied
// and become ordinary history.
func (cb *CellBuffer) TentativeCommit() { cb.log.TentativeCommit() }

// TentativeUndo rolls back every edit recorded since TentativeStart,
// leaving both the undo log and the buffer contents exactly as they were
// before the tentative group opened.
func (cb *CellBuffer) TentativeUndo() {
	rolled := cb.log.TentativeUndo()
	for _, a := range rolled {
		cb.applyInverse(a)
	}
}
