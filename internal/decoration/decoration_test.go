package decoration

import "testing"

func TestFillRangeSetsValueAndReportsChange(t *testing.T) {
	l := newLayer(20)
	changed, pos, length := l.FillRange(5, 5, 3)
	if !changed {
		t.Fatal("expected FillRange to report a change on an untouched range")
	}
	if pos != 5 || length != 5 {
		t.Fatalf("got position=%d length=%d, want 5,5", pos, length)
	}
	for p := int64(0); p < 20; p++ {
		want := 0
		if p >= 5 && p < 10 {
			want = 3
		}
		if got := l.ValueAt(p); got != want {
			t.Fatalf("ValueAt(%d) = %d, want %d", p, got, want)
		}
	}
}

func TestFillRangeMergesAdjacentEqualValues(t *testing.T) {
	l := newLayer(20)
	l.FillRange(0, 5, 7)
	l.FillRange(5, 5, 7)
	// The two fills should merge into a single run the second time.
	changed, pos, length := l.FillRange(5, 5, 7)
	if changed {
		t.Fatal("re-filling an already-uniform range must report changed=false")
	}
	if pos != 0 || length != 10 {
		t.Fatalf("expected merged extent [0,10), got position=%d length=%d", pos, length)
	}
}

func TestFillRangeNoChangeWhenAlreadyUniform(t *testing.T) {
	l := newLayer(20)
	changed, _, _ := l.FillRange(0, 20, 0)
	if changed {
		t.Fatal("filling already-uniform background value must report changed=false")
	}
}

func TestInsertSpaceAnchorsRangesByInsertionPoint(t *testing.T) {
	l := newLayer(20)
	l.FillRange(5, 5, 1) // [5,10) = 1

	l.InsertSpace(3, 4) // insert before the range: P <= R.start, shift start
	if got := l.ValueAt(5); got != 0 {
		t.Fatalf("expected unstyled gap at old position 5, got %d", got)
	}
	if got := l.ValueAt(9); got != 1 {
		t.Fatalf("expected the decorated range to have shifted to start at 9, got value %d at 9", got)
	}
	if got := l.ValueAt(8); got != 0 {
		t.Fatalf("expected position 8 (before the shifted range) to stay unstyled, got %d", got)
	}
}

func TestInsertSpaceInsideRangeGrowsIt(t *testing.T) {
	l := newLayer(20)
	l.FillRange(5, 5, 1) // [5,10) = 1

	l.InsertSpace(7, 2) // insert inside the decorated range
	for _, p := range []int64{5, 6, 7, 8, 9, 10, 11} {
		if got := l.ValueAt(p); got != 1 {
			t.Fatalf("expected the range to grow through the insertion point, ValueAt(%d) = %d", p, got)
		}
	}
	if got := l.ValueAt(12); got != 0 {
		t.Fatalf("expected byte 12 to be outside the grown range, got %d", got)
	}
}

func TestDeleteRangeClipsAndShifts(t *testing.T) {
	l := newLayer(20)
	l.FillRange(5, 5, 1) // [5,10) = 1

	l.DeleteRange(7, 10) // deletes [7,17), straddling the end of the range
	if got := l.ValueAt(5); got != 1 {
		t.Fatalf("expected decorated byte at 5 to survive, got %d", got)
	}
	if got := l.ValueAt(6); got != 1 {
		t.Fatalf("expected decorated byte at 6 to survive, got %d", got)
	}
	if got := l.ValueAt(7); got != 0 {
		t.Fatalf("expected byte 7 (now past the clipped range) to be unstyled, got %d", got)
	}
}
