package document

import (
	"testing"

	"github.com/textcore/editdoc/internal/perline"
)

// recordingWatcher counts every notification it receives and remembers
// the flags passed to NotifyModified, in arrival order.
type recordingWatcher struct {
	modified       []Notification
	deleted        int
	savePoints     []bool
	modifyAttempts int
	styleNeeded    int
	errors         []int
	groupsDone     int
}

func (w *recordingWatcher) NotifyModified(doc *Document, mod Notification, userData any) {
	w.modified = append(w.modified, mod)
}
func (w *recordingWatcher) NotifyDeleted(doc *Document, userData any) { w.deleted++ }
func (w *recordingWatcher) NotifySavePoint(doc *Document, userData any, atSavePoint bool) {
	w.savePoints = append(w.savePoints, atSavePoint)
}
func (w *recordingWatcher) NotifyModifyAttempt(doc *Document, userData any) { w.modifyAttempts++ }
func (w *recordingWatcher) NotifyStyleNeeded(doc *Document, userData any, endPos int64) {
	w.styleNeeded++
}
func (w *recordingWatcher) NotifyErrorOccurred(doc *Document, userData any, statusCode int) {
	w.errors = append(w.errors, statusCode)
}
func (w *recordingWatcher) NotifyGroupCompleted(doc *Document, userData any) { w.groupsDone++ }

func TestInsertAtTailThenUndo(t *testing.T) {
	d := New()
	if got := d.Length(); got != 0 {
		t.Fatalf("Length() = %d, want 0", got)
	}

	if status := d.InsertString(0, "hello"); status != StatusOk {
		t.Fatalf("InsertString failed: %v", status)
	}
	if got := d.Length(); got != 5 {
		t.Fatalf("Length() = %d, want 5", got)
	}
	if got := d.LinesTotal(); got != 1 {
		t.Fatalf("LinesTotal() = %d, want 1", got)
	}

	wasSavePoint := d.IsSavePoint()

	if !d.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	if got := d.Length(); got != 0 {
		t.Fatalf("Length() after undo = %d, want 0", got)
	}
	if got := d.LinesTotal(); got != 1 {
		t.Fatalf("LinesTotal() after undo = %d, want 1", got)
	}
	if d.IsSavePoint() != wasSavePoint {
		t.Fatalf("IsSavePoint() after undo = %v, want back to %v", d.IsSavePoint(), wasSavePoint)
	}
}

func TestLineIndexAfterCRLFEdit(t *testing.T) {
	d := New(WithContent("a\r\nb"))
	if got := d.LinesTotal(); got != 2 {
		t.Fatalf("LinesTotal() = %d, want 2", got)
	}

	if status := d.InsertString(2, "X"); status != StatusOk {
		t.Fatalf("InsertString failed: %v", status)
	}
	if got := d.TextRange(0, d.Length()); got != "a\rX\nb" {
		t.Fatalf("content = %q, want %q", got, "a\rX\nb")
	}
	if got := d.LinesTotal(); got != 3 {
		t.Fatalf("LinesTotal() after split = %d, want 3", got)
	}

	if !d.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	if got := d.LinesTotal(); got != 2 {
		t.Fatalf("LinesTotal() after undo = %d, want 2", got)
	}
}

func TestSavePointFlipsOnEditAndRestoresOnUndo(t *testing.T) {
	d := New(WithContent("abc"))
	w := &recordingWatcher{}
	d.AddWatcher(w, nil)

	d.SetSavePoint()
	if !d.IsSavePoint() {
		t.Fatal("IsSavePoint() = false right after SetSavePoint")
	}
	if len(w.savePoints) != 1 || w.savePoints[0] != true {
		t.Fatalf("savePoints = %v, want [true]", w.savePoints)
	}

	d.InsertString(3, "d")
	if d.IsSavePoint() {
		t.Fatal("IsSavePoint() = true after an edit")
	}
	if len(w.savePoints) != 2 || w.savePoints[1] != false {
		t.Fatalf("savePoints = %v, want [.. false]", w.savePoints)
	}

	d.Undo()
	if !d.IsSavePoint() {
		t.Fatal("IsSavePoint() = false after undoing back to the save point")
	}
	if len(w.savePoints) != 3 || w.savePoints[2] != true {
		t.Fatalf("savePoints = %v, want [.. true]", w.savePoints)
	}
}

func TestDelaySavePointSuppressesOneTransition(t *testing.T) {
	d := New(WithContent("abc"))
	w := &recordingWatcher{}
	d.AddWatcher(w, nil)
	d.SetSavePoint()

	baseline := len(w.savePoints)
	d.InsertString(3, "d")
	if len(w.savePoints) != baseline+1 {
		t.Fatalf("expected the leave-save-point transition to notify normally")
	}

	d.SetSavePoint()
	d.DelaySavePoint()
	if !d.IsSavePointDelayed() {
		t.Fatal("IsSavePointDelayed() = false right after DelaySavePoint")
	}
	before := len(w.savePoints)
	d.InsertString(4, "e")
	if len(w.savePoints) != before {
		t.Fatalf("savePoints grew from %d to %d, want the delayed transition suppressed", before, len(w.savePoints))
	}
	if d.IsSavePointDelayed() {
		t.Fatal("IsSavePointDelayed() still true after the latch should have fired once")
	}

	// The latch is one-shot: the next transition notifies normally again.
	d.Undo()
	if len(w.savePoints) != before+1 {
		t.Fatalf("expected the next transition after the latch fires to notify")
	}
}

func TestReadOnlyRejectsEditsAndNotifiesModifyAttempt(t *testing.T) {
	d := New(WithContent("abc"), WithReadOnly(true))
	w := &recordingWatcher{}
	d.AddWatcher(w, nil)

	if status := d.InsertString(0, "x"); status != StatusFailure {
		t.Fatalf("InsertString on read-only doc = %v, want StatusFailure", status)
	}
	if w.modifyAttempts != 1 {
		t.Fatalf("modifyAttempts = %d, want 1", w.modifyAttempts)
	}
	if got := d.TextRange(0, d.Length()); got != "abc" {
		t.Fatalf("content changed under read-only: %q", got)
	}

	if !d.SetReadOnly(false) {
		t.Fatal("SetReadOnly(false) = false")
	}
	if status := d.InsertString(0, "x"); status != StatusOk {
		t.Fatalf("InsertString after clearing read-only = %v, want StatusOk", status)
	}
}

func TestReentrantModificationGuardIsANoOp(t *testing.T) {
	d := New(WithContent("abc"))

	var nestedStatus Status
	reenterer := &reentrantWatcher{
		onModified: func() {
			nestedStatus = d.InsertString(0, "nested")
		},
	}
	d.AddWatcher(reenterer, nil)

	if status := d.InsertString(0, "x"); status != StatusOk {
		t.Fatalf("outer InsertString = %v, want StatusOk", status)
	}
	if nestedStatus != StatusFailure {
		t.Fatalf("nested InsertString from inside NotifyModified = %v, want StatusFailure", nestedStatus)
	}
	if got := d.TextRange(0, d.Length()); got != "xabc" {
		t.Fatalf("content = %q, want %q (nested insert must not have applied)", got, "xabc")
	}
}

type reentrantWatcher struct {
	onModified func()
}

func (w *reentrantWatcher) NotifyModified(doc *Document, mod Notification, userData any) {
	if w.onModified != nil {
		cb := w.onModified
		w.onModified = nil
		cb()
	}
}
func (w *reentrantWatcher) NotifyDeleted(doc *Document, userData any)                      {}
func (w *reentrantWatcher) NotifySavePoint(doc *Document, userData any, atSavePoint bool)  {}
func (w *reentrantWatcher) NotifyModifyAttempt(doc *Document, userData any)                {}
func (w *reentrantWatcher) NotifyStyleNeeded(doc *Document, userData any, endPos int64)    {}
func (w *reentrantWatcher) NotifyErrorOccurred(doc *Document, userData any, statusCode int) {}
func (w *reentrantWatcher) NotifyGroupCompleted(doc *Document, userData any)               {}

func TestReplaceRangeGroupsAsOneUndoStep(t *testing.T) {
	d := New(WithContent("hello world"))

	if status := d.ReplaceRange(0, 5, "goodbye"); status != StatusOk {
		t.Fatalf("ReplaceRange failed: %v", status)
	}
	if got := d.TextRange(0, d.Length()); got != "goodbye world" {
		t.Fatalf("content = %q, want %q", got, "goodbye world")
	}

	if !d.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	if got := d.TextRange(0, d.Length()); got != "hello world" {
		t.Fatalf("content after one undo = %q, want %q (replace should be one step)", got, "hello world")
	}
}

func TestDecorationsStayAnchoredThroughEdits(t *testing.T) {
	d := New(WithContent("hello world"))
	layer := d.Decorations().Layer(0)
	layer.FillRange(6, 5, 1) // "world"

	d.InsertString(0, "say ")
	if got := layer.ValueAt(10); got != 1 {
		t.Fatalf("ValueAt(10) = %d, want 1 (decoration should have shifted with the insert)", got)
	}
	if got := layer.ValueAt(3); got != 0 {
		t.Fatalf("ValueAt(3) = %d, want 0 (untouched region)", got)
	}
}

func TestWatcherNotificationOrderingAndDedup(t *testing.T) {
	d := New()
	first := &recordingWatcher{}
	second := &recordingWatcher{}
	d.AddWatcher(first, nil)
	d.AddWatcher(second, nil)
	d.AddWatcher(first, nil) // duplicate (w, userData) pair: ignored

	d.InsertString(0, "x")

	if len(first.modified) != 2 {
		t.Fatalf("first watcher saw %d notifications, want 2 (BeforeInsert + InsertText)", len(first.modified))
	}
	if len(second.modified) != 2 {
		t.Fatalf("second watcher saw %d notifications, want 2", len(second.modified))
	}
	if first.modified[0].Flags&FlagBeforeInsert == 0 {
		t.Fatalf("first notification flags = %v, want FlagBeforeInsert set", first.modified[0].Flags)
	}
	if first.modified[1].Flags&FlagInsertText == 0 {
		t.Fatalf("second notification flags = %v, want FlagInsertText set", first.modified[1].Flags)
	}

	d.RemoveWatcher(first, nil)
	d.InsertString(1, "y")
	if len(first.modified) != 2 {
		t.Fatalf("removed watcher kept receiving notifications: got %d, want still 2", len(first.modified))
	}
	if len(second.modified) != 4 {
		t.Fatalf("remaining watcher notifications = %d, want 4", len(second.modified))
	}
}

func TestReleaseNotifiesDeletedAtZeroRefs(t *testing.T) {
	d := New()
	w := &recordingWatcher{}
	d.AddWatcher(w, nil)
	d.AddRef()

	if d.Release() {
		t.Fatal("Release() reported destruction with refs still held")
	}
	if w.deleted != 0 {
		t.Fatalf("deleted = %d, want 0 before the final Release", w.deleted)
	}
	if !d.Release() {
		t.Fatal("Release() did not report destruction on the final reference")
	}
	if w.deleted != 1 {
		t.Fatalf("deleted = %d, want 1", w.deleted)
	}
}

func TestGetAndSetLineIndentationRoundTrip(t *testing.T) {
	d := New(WithContent("    foo\nbar"), WithTabWidth(4))

	if got := d.GetLineIndentation(0); got != 4 {
		t.Fatalf("GetLineIndentation(0) = %d, want 4", got)
	}
	if got := d.GetLineIndentation(1); got != 0 {
		t.Fatalf("GetLineIndentation(1) = %d, want 0", got)
	}

	d.SetLineIndentation(1, 8)
	if got := d.GetLineIndentation(1); got != 8 {
		t.Fatalf("GetLineIndentation(1) after SetLineIndentation = %d, want 8", got)
	}
	if got := d.LineText(1); got != "        bar" {
		t.Fatalf("LineText(1) = %q, want %q", got, "        bar")
	}

	if !d.Undo() {
		t.Fatal("Undo() = false, want true (SetLineIndentation should be one undo group)")
	}
	if got := d.GetLineIndentation(1); got != 0 {
		t.Fatalf("GetLineIndentation(1) after undo = %d, want 0", got)
	}
}

func TestNextTabRoundsUpToStop(t *testing.T) {
	cases := []struct{ col, tabSize, want int }{
		{0, 4, 4},
		{3, 4, 4},
		{4, 4, 8},
		{5, 8, 8},
	}
	for _, c := range cases {
		if got := NextTab(c.col, c.tabSize); got != c.want {
			t.Fatalf("NextTab(%d, %d) = %d, want %d", c.col, c.tabSize, got, c.want)
		}
	}
}

func TestGetColumnExpandsTabs(t *testing.T) {
	d := New(WithContent("a\tb"), WithTabWidth(4))
	if got := d.GetColumn(0); got != 0 {
		t.Fatalf("GetColumn(0) = %d, want 0", got)
	}
	if got := d.GetColumn(1); got != 1 {
		t.Fatalf("GetColumn(1) = %d, want 1", got)
	}
	if got := d.GetColumn(2); got != 4 {
		t.Fatalf("GetColumn(2) = %d, want 4 (tab expands to next stop)", got)
	}
	if got := d.GetColumn(3); got != 5 {
		t.Fatalf("GetColumn(3) = %d, want 5", got)
	}
}

func TestNextWordStartAndExtendWordSelect(t *testing.T) {
	d := New(WithContent("foo bar baz"))

	if got := d.NextWordStart(0, 1); got != 4 {
		t.Fatalf("NextWordStart(0, 1) = %d, want 4", got)
	}
	if got := d.ExtendWordSelect(1, 1, true); got != 3 {
		t.Fatalf("ExtendWordSelect(1, 1, true) = %d, want 3", got)
	}
	if got := d.ExtendWordSelect(1, -1, true); got != 0 {
		t.Fatalf("ExtendWordSelect(1, -1, true) = %d, want 0", got)
	}
}

func TestParaUpAndParaDownSkipBlankRuns(t *testing.T) {
	d := New(WithContent("one\ntwo\n\n\nthree\nfour"))

	if got := d.ParaDown(0); got != d.LineStart(4) {
		t.Fatalf("ParaDown(0) = %d, want start of line 4 (%d)", got, d.LineStart(4))
	}
	if got := d.ParaUp(d.LineStart(4)); got != 0 {
		t.Fatalf("ParaUp(start of line 4) = %d, want 0", got)
	}
}

func TestFindTextLiteralCaseInsensitive(t *testing.T) {
	d := New(WithContent("Hello World"))

	pos, length, err := d.FindText(0, d.Length(), "world", FindFlags{MatchCase: false})
	if err != nil {
		t.Fatalf("FindText returned error: %v", err)
	}
	if pos != 6 || length != 5 {
		t.Fatalf("FindText(\"world\") = (%d, %d), want (6, 5)", pos, length)
	}

	pos, _, err = d.FindText(0, d.Length(), "world", FindFlags{MatchCase: true})
	if err != nil {
		t.Fatalf("FindText returned error: %v", err)
	}
	if pos != NotFound {
		t.Fatalf("FindText case-sensitive \"world\" = %d, want NotFound", pos)
	}
}

func TestBraceMatchFindsPartner(t *testing.T) {
	d := New(WithContent("a(b(c)d)e"))

	if got := d.BraceMatch(1, 0, false); got != 7 {
		t.Fatalf("BraceMatch(1) = %d, want 7", got)
	}
	if got := d.BraceMatch(3, 0, false); got != 5 {
		t.Fatalf("BraceMatch(3) = %d, want 5", got)
	}
	if got := d.BraceMatch(8, 0, false); got != NotFound {
		t.Fatalf("BraceMatch on a non-brace byte = %d, want NotFound", got)
	}
}

func TestMarkerNextAndFoldLevelQueries(t *testing.T) {
	d := New(WithContent("a\nb\nc\nd"))

	d.Markers().AddMark(2, 5)
	if got := d.MarkerNext(0, 1<<5); got != 2 {
		t.Fatalf("MarkerNext(0, 1<<5) = %d, want 2", got)
	}
	if got := d.MarkerNext(3, 1<<5); got != -1 {
		t.Fatalf("MarkerNext(3, 1<<5) = %d, want -1", got)
	}

	d.Levels().Set(0, perline.FoldLevel{Number: 1000, Header: true})
	d.Levels().Set(1, perline.FoldLevel{Number: 1001})
	if got := d.GetFoldParent(1); got != 0 {
		t.Fatalf("GetFoldParent(1) = %d, want 0", got)
	}
}

func TestActionsInAllowedTimeClampsToBounds(t *testing.T) {
	d := New()
	if got := d.ActionsInAllowedTime(0); got != maxByteUnits*byteBudgetUnit {
		t.Fatalf("ActionsInAllowedTime(0) = %d, want the max budget (no samples yet)", got)
	}

	d.styleSecsPerByte = 1.0 // absurdly slow, to exercise the floor
	if got := d.ActionsInAllowedTime(1); got != minByteUnits*byteBudgetUnit {
		t.Fatalf("ActionsInAllowedTime under a slow estimate = %d, want the floor %d", got, minByteUnits*byteBudgetUnit)
	}
}

func TestAddRefAndReleaseTrackCount(t *testing.T) {
	d := New()
	if got := d.RefCount(); got != 1 {
		t.Fatalf("RefCount() = %d, want 1", got)
	}
	d.AddRef()
	if got := d.RefCount(); got != 2 {
		t.Fatalf("RefCount() = %d, want 2", got)
	}
	d.Release()
	if got := d.RefCount(); got != 1 {
		t.Fatalf("RefCount() = %d, want 1", got)
	}
}
