package cellbuffer

import "testing"

func TestLineSplittingRecognizesCRLFAndLoneTerminators(t *testing.T) {
	cb := New(WithInitialText("a\r\nb"))
	if got := cb.LinesTotal(); got != 2 {
		t.Fatalf("expected 2 lines for %q, got %d", "a\r\nb", got)
	}

	// Insert "X" at byte 2 (between the \r and \n), splitting the CRLF
	// pair into a lone \r ending line 0 and a lone \n ending line 1.
	if _, status := cb.InsertString(2, "X"); status != StatusOk {
		t.Fatalf("insert failed: %v", status)
	}
	if got, want := cb.String(), "a\rX\nb"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if got := cb.LinesTotal(); got != 3 {
		t.Fatalf("expected 3 lines after split, got %d", got)
	}

	cb.Undo()
	if got := cb.String(); got != "a\r\nb" {
		t.Fatalf("content after undo = %q, want %q", got, "a\r\nb")
	}
	if got := cb.LinesTotal(); got != 2 {
		t.Fatalf("expected 2 lines after undo, got %d", got)
	}
}

func TestLineStartIsMonotonic(t *testing.T) {
	cb := New(WithInitialText("one\ntwo\r\nthree\rfour"))
	prev := int64(-1)
	for l := 0; l < cb.LinesTotal(); l++ {
		start := cb.LineStart(l)
		if start <= prev {
			t.Fatalf("LineStart(%d)=%d is not strictly greater than LineStart(%d)=%d", l, start, l-1, prev)
		}
		prev = start
	}
	if got := cb.LineStart(cb.LinesTotal()); got != cb.Length() {
		t.Fatalf("LineStart(LinesTotal()) = %d, want Length() = %d", got, cb.Length())
	}
}

func TestInsertDeleteUndoRoundTrip(t *testing.T) {
	cb := New(WithInitialText("hello world"))
	lengthBefore := cb.Length()
	linesBefore := cb.LinesTotal()
	contentBefore := cb.String()

	cb.BeginUndoAction()
	cb.InsertString(5, ",")
	cb.DeleteRange(0, 1)
	cb.EndUndoAction()

	if got := cb.String(); got == contentBefore {
		t.Fatal("expected content to change after edits")
	}

	applied := cb.Undo()
	if len(applied) != 2 {
		t.Fatalf("expected one undo group of 2 actions, got %d", len(applied))
	}
	if got := cb.Length(); got != lengthBefore {
		t.Fatalf("length after undo = %d, want %d", got, lengthBefore)
	}
	if got := cb.LinesTotal(); got != linesBefore {
		t.Fatalf("lines after undo = %d, want %d", got, linesBefore)
	}
	if got := cb.String(); got != contentBefore {
		t.Fatalf("content after undo = %q, want %q", got, contentBefore)
	}

	redone := cb.Redo()
	if len(redone) != 2 {
		t.Fatalf("expected redo to replay 2 actions, got %d", len(redone))
	}
}

func TestSavePointBitAcrossUndo(t *testing.T) {
	cb := New(WithInitialText("abc"))
	cb.SetSavePoint()
	if !cb.IsSavePoint() {
		t.Fatal("expected save point immediately after SetSavePoint")
	}

	cb.InsertString(3, "d")
	if cb.IsSavePoint() {
		t.Fatal("expected save point bit to clear after an edit")
	}

	cb.Undo()
	if !cb.IsSavePoint() {
		t.Fatal("expected save point bit to return after undoing back to it")
	}
}

func TestCoalescingTypingProducesSingleUndoGroup(t *testing.T) {
	cb := New()
	cb.InsertString(0, "h")
	cb.InsertString(1, "i")
	cb.InsertString(2, "!")

	applied := cb.Undo()
	if len(applied) != 1 {
		t.Fatalf("expected adjacent typing to coalesce into one undo step, got %d actions", len(applied))
	}
	if got := cb.String(); got != "" {
		t.Fatalf("expected empty buffer after undoing coalesced insert, got %q", got)
	}
}

func TestReplaceRangeIsOneUndoGroup(t *testing.T) {
	cb := New(WithInitialText("hello world"))
	if status := cb.ReplaceRange(0, 5, "goodbye"); status != StatusOk {
		t.Fatalf("replace failed: %v", status)
	}
	if got, want := cb.String(), "goodbye world"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}

	applied := cb.Undo()
	if len(applied) != 2 {
		t.Fatalf("expected ReplaceRange to undo as one group of 2 actions, got %d", len(applied))
	}
	if got, want := cb.String(), "hello world"; got != want {
		t.Fatalf("content after undo = %q, want %q", got, want)
	}
}

func TestStyleBytesTrackInsertAndDelete(t *testing.T) {
	cb := New(WithInitialText("abcdef"))
	cb.SetStyleFor(0, 6, 5)

	cb.InsertString(3, "XY")
	if got := cb.StyleAt(3); got != 0 {
		t.Fatalf("newly inserted bytes must start unstyled, got style %d", got)
	}
	if got := cb.StyleAt(0); got != 5 {
		t.Fatalf("style before the insertion point must be preserved, got %d", got)
	}
	if got := cb.StyleAt(5); got != 5 {
		t.Fatalf("style after the insertion point must be preserved, got %d", got)
	}

	cb.DeleteRange(3, 2)
	if got := cb.StyleAt(3); got != 5 {
		t.Fatalf("style after deleting the inserted span must match surrounding style, got %d", got)
	}
}

func TestReadOnlyRejectsEdits(t *testing.T) {
	cb := New(WithInitialText("abc"), WithReadOnly(true))
	if _, status := cb.InsertString(0, "x"); status != StatusFailure {
		t.Fatalf("expected StatusFailure inserting into a read-only buffer, got %v", status)
	}
	if _, status := cb.DeleteRange(0, 1); status != StatusFailure {
		t.Fatalf("expected StatusFailure deleting from a read-only buffer, got %v", status)
	}
	if got, want := cb.String(), "abc"; got != want {
		t.Fatalf("read-only buffer content changed: got %q, want %q", got, want)
	}
}

func TestTentativeUndoLeavesNoTrace(t *testing.T) {
	cb := New(WithInitialText("fixed"))
	cb.SetSavePoint()

	cb.TentativeStart()
	cb.InsertString(5, " draft")
	if got, want := cb.String(), "fixed draft"; got != want {
		t.Fatalf("content during tentative edit = %q, want %q", got, want)
	}

	cb.TentativeUndo()
	if got, want := cb.String(), "fixed"; got != want {
		t.Fatalf("content after TentativeUndo = %q, want %q (must leave no trace)", got, want)
	}
	if cb.CanUndo() {
		t.Fatal("tentative rollback must not leave any undoable residue")
	}
	if !cb.IsSavePoint() {
		t.Fatal("rolling back a tentative group should restore the prior save point")
	}
}

func TestOutOfRangeEditsFail(t *testing.T) {
	cb := New(WithInitialText("abc"))
	if _, status := cb.InsertString(10, "x"); status != StatusFailure {
		t.Fatalf("expected StatusFailure for out-of-range insert, got %v", status)
	}
	if _, status := cb.DeleteRange(2, 5); status != StatusFailure {
		t.Fatalf("expected StatusFailure for out-of-range delete, got %v", status)
	}
}
