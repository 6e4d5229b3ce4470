package document

import "github.com/guiguan/caster"

// ModFlags is the modification-flag bitset carried on every
// Notification, matching spec §6's enumerated set.
type ModFlags uint32

const (
	FlagInsertText ModFlags = 1 << iota
	FlagDeleteText
	FlagChangeStyle
	FlagChangeFold
	FlagUser
	FlagUndo
	FlagRedo
	FlagMultiStepUndoRedo
	FlagLastStepInUndoRedo
	FlagMultilineUndoRedo
	FlagStartAction
	FlagBeforeInsert
	FlagBeforeDelete
	FlagChangeMarker
	FlagChangeIndicator
	FlagChangeLineState
	FlagChangeMargin
	FlagChangeAnnotation
	FlagChangeEOLAnnotation
	FlagContainer
	FlagLexerState
	FlagInsertCheck
	FlagChangeTabStops
)

// Notification is the payload delivered to NotifyModified.
type Notification struct {
	Flags                ModFlags
	Position             int64
	Length               int64
	LinesAdded           int
	Text                 []byte
	Line                 int
	FoldLevelNow         int
	FoldLevelPrev        int
	AnnotationLinesAdded int
	Token                any
}

// Watcher is the observer interface a view or lexer bridge registers on
// a Document. Every method is called synchronously, in registration
// order, from inside the funnel that produced the event; a Watcher must
// not call back into the Document that invoked it (enforced by the
// enteredModification/enteredReadOnly/enteredStyling counters, not by
// this interface).
type Watcher interface {
	NotifyModified(doc *Document, mod Notification, userData any)
	NotifyDeleted(doc *Document, userData any)
	NotifySavePoint(doc *Document, userData any, atSavePoint bool)
	NotifyModifyAttempt(doc *Document, userData any)
	NotifyStyleNeeded(doc *Document, userData any, endPos int64)
	NotifyErrorOccurred(doc *Document, userData any, statusCode int)
	NotifyGroupCompleted(doc *Document, userData any)
}

type watcherEntry struct {
	w        Watcher
	userData any
}

// AddWatcher registers w (paired with userData) if it is not already
// registered with that exact pairing. Registration order is preserved;
// watchers are notified in the order they were added.
func (d *Document) AddWatcher(w Watcher, userData any) {
	for _, e := range d.watchers {
		if e.w == w && e.userData == userData {
			return
		}
	}
	d.watchers = append(d.watchers, watcherEntry{w: w, userData: userData})
}

// RemoveWatcher unregisters the first matching (w, userData) pairing, if any.
func (d *Document) RemoveWatcher(w Watcher, userData any) {
	for i, e := range d.watchers {
		if e.w == w && e.userData == userData {
			d.watchers = append(d.watchers[:i], d.watchers[i+1:]...)
			return
		}
	}
}

// notifyModified fans mod out to every watcher, then republishes it on
// the broadcast caster for any asynchronous subscriber (e.g. a
// background indexer) that only wants a read-only stream of changes.
// Reentrant calls (enteredModification already raised by the caller)
// are still delivered — the guard against reentrant *mutation* lives in
// the editing entry points, not here: a watcher is free to read, just
// not to write.
func (d *Document) notifyModified(mod Notification) {
	for _, e := range d.watchers {
		e.w.NotifyModified(d, mod, e.userData)
	}
	if d.events != nil {
		d.events.Pub(mod)
	}
}

func (d *Document) notifyDeleted() {
	for _, e := range d.watchers {
		e.w.NotifyDeleted(d, e.userData)
	}
	if d.events != nil {
		d.events.Close()
	}
}

func (d *Document) notifySavePoint(atSavePoint bool) {
	for _, e := range d.watchers {
		e.w.NotifySavePoint(d, e.userData, atSavePoint)
	}
}

func (d *Document) notifyModifyAttempt() {
	for _, e := range d.watchers {
		e.w.NotifyModifyAttempt(d, e.userData)
	}
}

func (d *Document) notifyErrorOccurred(statusCode int) {
	for _, e := range d.watchers {
		e.w.NotifyErrorOccurred(d, e.userData, statusCode)
	}
}

func (d *Document) notifyGroupCompleted() {
	for _, e := range d.watchers {
		e.w.NotifyGroupCompleted(d, e.userData)
	}
}

// Subscribe returns a fresh asynchronous subscription to this
// Document's modification stream, independent of the synchronous
// Watcher list. The subscription is closed when the Document is
// released to zero references.
func (d *Document) Subscribe() (*caster.Subscription, error) {
	return d.events.Sub()
}
