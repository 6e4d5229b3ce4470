package undo

// Log is the growable Action sequence for one CellBuffer.
//
// actions[:current] is the "applied" prefix; actions[current:] is the
// redo tail, retained until a new edit truncates it. It is not
// goroutine-safe; callers serialize access the way the rest of this
// module assumes a single logical lock per Document (spec: single
// cooperative thread of control).
type Log struct {
	actions []Action
	current int

	savePoint int // -1 once truncated past: no reachable "clean" state
	detach    int
	tentative int // -1 when no tentative group is open

	groupDepth int
	collecting bool
}

// NewLog creates an empty, collecting log with SavePoint at 0.
func NewLog() *Log {
	return &Log{
		savePoint:  0,
		detach:     0,
		tentative:  -1,
		collecting: true,
	}
}

// IsCollectingUndo reports whether Append records actions at all.
// Bulk operations (e.g. initial file load) disable collection so no
// history is generated for content the user didn't type.
func (l *Log) IsCollectingUndo() bool { return l.collecting }

// SetCollectingUndo enables or disables recording.
func (l *Log) SetCollectingUndo(collect bool) { l.collecting = collect }

// Current returns the current log position (number of applied actions).
func (l *Log) Current() int { return l.current }

// Len returns the total number of recorded actions, including the redo tail.
func (l *Log) Len() int { return len(l.actions) }

// UndoSequenceDepth returns the current Begin/EndUndoAction nesting depth.
func (l *Log) UndoSequenceDepth() int { return l.groupDepth }

// BeginAction opens (or nests into) an undo group and returns the new depth.
func (l *Log) BeginAction() int {
	l.groupDepth++
	return l.groupDepth
}

// EndAction closes one level of undo group nesting. It returns true
// exactly when this call closed the outermost group (depth reached 0),
// in which case the last recorded action (if any, and if it belongs to
// this group) is marked EndSequence.
func (l *Log) EndAction() bool {
	if l.groupDepth == 0 {
		return false
	}
	l.groupDepth--
	if l.groupDepth != 0 {
		return false
	}
	if l.current > 0 && l.current <= len(l.actions) {
		l.actions[l.current-1].EndSequence = true
	}
	return true
}

// Append records a new action. If the log is not collecting, it is a
// no-op and reports startSequence=false. coalesce requests merging with
// the immediately preceding action when it is adjacent, of the same
// Type, the new action is outside any explicit Begin/EndUndoAction group,
// and the preceding action forms an undo group of its own; it never merges
// across the save point or the tentative mark. Callers pass coalesce=true
// only for single-unit edits (typing, backspace) the way
// CellBuffer.InsertString/DeleteRange do.
//
// Appending while Current is behind the end of the log (redo history
// exists) truncates that abandoned tail first. If the truncated tail
// contained SavePoint, SavePoint becomes unreachable (-1): the document
// can no longer return to "saved" by undoing alone.
func (l *Log) Append(t Type, position, length int64, data []byte, coalesce bool) (startSequence bool) {
	if !l.collecting {
		return false
	}

	if l.current < len(l.actions) {
		if l.savePoint > l.current {
			l.savePoint = -1
		}
		if l.tentative > l.current {
			l.tentative = l.current
		}
		l.actions = l.actions[:l.current]
	}

	if coalesce && l.groupDepth == 0 && len(l.actions) > 0 &&
		l.savePoint != len(l.actions) && l.tentative != len(l.actions) {
		last := &l.actions[len(l.actions)-1]
		if last.StartSequence && last.EndSequence && last.Type == t && coalesces(*last, t, position) {
			switch t {
			case Insert:
				last.Data = append(last.Data, data...)
				last.Length += length
			case Remove:
				if position == last.Position {
					// forward delete: new bytes follow the old ones
					last.Data = append(last.Data, data...)
				} else {
					// backspace: new bytes precede the old ones
					merged := make([]byte, 0, len(data)+len(last.Data))
					merged = append(merged, data...)
					merged = append(merged, last.Data...)
					last.Data = merged
					last.Position = position
				}
				last.Length += length
			}
			return false
		}
	}

	a := Action{Type: t, Position: position, Length: length, Data: data}
	if l.groupDepth > 0 {
		a.StartSequence = len(l.actions) == 0 || l.actions[len(l.actions)-1].EndSequence
	} else {
		a.StartSequence = true
		a.EndSequence = true
	}
	l.actions = append(l.actions, a)
	l.current = len(l.actions)
	return a.StartSequence
}

// coalesces reports whether an action of type t at position would sit
// immediately adjacent to last, so the two can merge into one step.
func coalesces(last Action, t Type, position int64) bool {
	switch t {
	case Insert:
		return position == last.Position+last.Length
	case Remove:
		// either a forward-delete continuing at the same point, or a
		// backspace eating the byte immediately before last's start.
		return position == last.Position || position == last.Position-1
	default:
		return false
	}
}

// AppendContainer records a caller-opaque Container action (no text change).
func (l *Log) AppendContainer(token any) {
	if !l.collecting {
		return
	}
	if l.current < len(l.actions) {
		l.actions = l.actions[:l.current]
	}
	a := Action{Type: Container, Token: token, StartSequence: l.groupDepth == 0, EndSequence: l.groupDepth == 0}
	l.actions = append(l.actions, a)
	l.current = len(l.actions)
}

// CanUndo reports whether there is at least one applied action.
func (l *Log) CanUndo() bool { return l.current > 0 }

// CanRedo reports whether there is a retained redo tail.
func (l *Log) CanRedo() bool { return l.current < len(l.actions) }

// StartUndo returns the number of individual actions that the next
// undo transaction will reverse: the current group, walking backward
// from Current to (and including) the action with StartSequence set.
func (l *Log) StartUndo() int {
	if l.current == 0 {
		return 0
	}
	n := 0
	for i := l.current - 1; i >= 0; i-- {
		n++
		if l.actions[i].StartSequence {
			break
		}
	}
	return n
}

// PerformUndoStep consumes one action moving backward and returns it
// (already inverted callers apply via Action.Invert if they need the
// reverse edit; PerformUndoStep returns the original recorded action).
func (l *Log) PerformUndoStep() (Action, bool) {
	if l.current == 0 {
		return Action{}, false
	}
	l.current--
	return l.actions[l.current], true
}

// StartRedo returns the number of individual actions the next redo
// transaction will replay.
func (l *Log) StartRedo() int {
	if l.current >= len(l.actions) {
		return 0
	}
	n := 0
	for i := l.current; i < len(l.actions); i++ {
		n++
		if l.actions[i].EndSequence {
			break
		}
	}
	return n
}

// PerformRedoStep consumes one action moving forward and returns it.
func (l *Log) PerformRedoStep() (Action, bool) {
	if l.current >= len(l.actions) {
		return Action{}, false
	}
	a := l.actions[l.current]
	l.current++
	return a, true
}

// GetUndoStep peeks at the action the next PerformUndoStep would return,
// without consuming it.
func (l *Log) GetUndoStep() (Action, bool) {
	if l.current == 0 {
		return Action{}, false
	}
	return l.actions[l.current-1], true
}

// SetSavePoint marks Current as the "on disk" position.
func (l *Log) SetSavePoint() { l.savePoint = l.current }

// IsSavePoint reports whether Current is exactly the save point.
func (l *Log) IsSavePoint() bool { return l.savePoint >= 0 && l.current == l.savePoint }

// SetDetachPoint marks Current as where the log parted from its
// persisted origin (e.g. the buffer was reloaded from disk).
func (l *Log) SetDetachPoint() { l.detach = l.current }

// DetachPoint returns the recorded detach index.
func (l *Log) DetachPoint() int { return l.detach }

// TentativeStart opens a speculative group at Current.
func (l *Log) TentativeStart() { l.tentative = l.current }

// IsTentativeActive reports whether a tentative group is open.
func (l *Log) IsTentativeActive() bool { return l.tentative >= 0 }

// TentativeSteps returns how many actions have been recorded since
// TentativeStart.
func (l *Log) TentativeSteps() int {
	if l.tentative < 0 {
		return 0
	}
	return l.current - l.tentative
}

// TentativeCommit accepts the speculative group: its actions remain in
// the log as ordinary history.
func (l *Log) TentativeCommit() { l.tentative = -1 }

// TentativeUndo rolls back every action recorded since TentativeStart
// and removes them from the log entirely, leaving no trace. It returns
// the rolled-back actions in the order they must be undone (most recent
// first). TentativeUndo never crosses a group boundary that was already
// committed before the tentative mark: it only ever unwinds actions at
// or after the tentative index, which by construction cannot include an
// already-closed earlier group.
func (l *Log) TentativeUndo() []Action {
	if l.tentative < 0 || l.tentative > l.current {
		return nil
	}
	steps := l.current - l.tentative
	if steps == 0 {
		l.tentative = -1
		return nil
	}
	out := make([]Action, 0, steps)
	for i := l.current - 1; i >= l.tentative; i-- {
		out = append(out, l.actions[i])
	}
	l.actions = l.actions[:l.tentative]
	l.current = l.tentative
	if l.savePoint > l.current {
		l.savePoint = -1
	}
	l.tentative = -1
	return out
}

// Clear discards all history, resetting SavePoint to 0 as if the
// document were freshly loaded.
func (l *Log) Clear() {
	l.actions = nil
	l.current = 0
	l.savePoint = 0
	l.detach = 0
	l.tentative = -1
	l.groupDepth = 0
}
