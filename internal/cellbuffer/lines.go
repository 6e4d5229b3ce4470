package cellbuffer

// scanLineStarts rebuilds the line-start table for text. A line ends at
// a lone '\r', a lone '\n', or a "\r\n" pair treated as one terminator;
// all three may appear in the same buffer. starts[0] is always 0;
// starts[L] is the byte offset of line L for every L < len(starts). The
// offset just past the end of the text (line LinesTotal) is not stored
// here: callers treat it as Length().
func scanLineStarts(text string) []int64 {
	starts := make([]int64, 1, 64)
	starts[0] = 0

	n := len(text)
	for i := 0; i < n; i++ {
		switch text[i] {
		case '\n':
			starts = append(starts, int64(i+1))
		case '\r':
			if i+1 < n && text[i+1] == '\n' {
				i++
			}
			starts = append(starts, int64(i+1))
		}
	}
	return starts
}

// LinesTotal returns the number of lines in the buffer. An empty buffer
// has exactly one (empty) line.
func (cb *CellBuffer) LinesTotal() int {
	return len(cb.lineStarts)
}

// LineStart returns the byte offset where line starts. LineStart(LinesTotal())
// returns Length(). Out-of-range lines clamp to the nearest valid line.
func (cb *CellBuffer) LineStart(line int) int64 {
	switch {
	case line < 0:
		return 0
	case line >= len(cb.lineStarts):
		return cb.Length()
	default:
		return cb.lineStarts[line]
	}
}

// LineEnd returns the byte offset of the end of line, not including
// whatever terminator (if any) ends it.
func (cb *CellBuffer) LineEnd(line int) int64 {
	n := len(cb.lineStarts)
	if line < 0 {
		return 0
	}
	if line >= n {
		return cb.Length()
	}

	start := cb.lineStarts[line]
	var segEnd int64
	if line+1 < n {
		segEnd = cb.lineStarts[line+1]
	} else {
		// last line: no terminator follows it by construction.
		return cb.Length()
	}
	if segEnd == start {
		return segEnd
	}

	last, _ := cb.ByteAt(segEnd - 1)
	switch last {
	case '\n':
		if segEnd-2 >= start {
			if prev, _ := cb.ByteAt(segEnd - 2); prev == '\r' {
				return segEnd - 2
			}
		}
		return segEnd - 1
	case '\r':
		return segEnd - 1
	default:
		return segEnd
	}
}

// LineFromPosition returns the line containing the byte position pos,
// clamping out-of-range positions to the first or last line.
func (cb *CellBuffer) LineFromPosition(pos int64) int {
	return lineFromPosition(cb.lineStarts, pos)
}

// lineFromPosition is LineFromPosition's binary search lifted free of a
// *CellBuffer receiver, so the incremental splice helpers in buffer.go
// can search a pre-edit lineStarts snapshot without needing a buffer
// already in its post-edit state.
func lineFromPosition(starts []int64, pos int64) int {
	if pos <= 0 {
		return 0
	}
	lo, hi := 0, len(starts)-1
	result := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if starts[mid] <= pos {
			result = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return result
}

// LineText returns the text of line, excluding its terminator.
func (cb *CellBuffer) LineText(line int) string {
	return cb.TextRange(cb.LineStart(line), cb.LineEnd(line))
}

// LineEndingOf returns the terminator bytes for line ("", "\n", "\r", or
// "\r\n"). The last line has no terminator.
func (cb *CellBuffer) LineEndingOf(line int) string {
	end := cb.LineEnd(line)
	n := len(cb.lineStarts)
	if line < 0 || line >= n || line+1 >= n {
		return ""
	}
	nextStart := cb.lineStarts[line+1]
	return cb.TextRange(end, nextStart)
}

// lineSpliceWindow is the old-coordinate span of lineStarts that a
// local edit at [editStart, editStart+editOldLen) might touch, plus one
// full line of margin on each side so a terminator that straddles the
// window boundary (a "\r\n" newly formed, or split, right at the edge)
// is always fully inside the rescanned text. startLine/endLineExcl are
// indices into the pre-edit lineStarts; endLineExcl may equal
// len(oldStarts) when the window reaches the end of the buffer.
type lineSpliceWindow struct {
	startLine   int
	endLineExcl int
	start       int64
	end         int64
}

func computeLineSpliceWindow(oldStarts []int64, oldLength, editStart, editOldEnd int64) lineSpliceWindow {
	startLine := lineFromPosition(oldStarts, editStart)
	if startLine > 0 {
		startLine--
	}
	endLine := lineFromPosition(oldStarts, editOldEnd)
	endLineExcl := endLine + 2
	if endLineExcl > len(oldStarts) {
		endLineExcl = len(oldStarts)
	}

	w := lineSpliceWindow{startLine: startLine, endLineExcl: endLineExcl, start: oldStarts[startLine]}
	if endLineExcl < len(oldStarts) {
		w.end = oldStarts[endLineExcl]
	} else {
		w.end = oldLength
	}
	return w
}

// spliceLineStarts replaces the lineStarts entries covering w with the
// lines found by rescanning newWindowText (the window's content after
// the edit), then shifts every entry after the window by delta bytes.
// This keeps line-start maintenance proportional to the edited region
// and its immediate neighbors instead of the whole buffer.
func spliceLineStarts(oldStarts []int64, w lineSpliceWindow, newWindowText string, delta int64) []int64 {
	localStarts := scanLineStarts(newWindowText)

	result := make([]int64, 0, len(oldStarts)+len(localStarts))
	result = append(result, oldStarts[:w.startLine]...)
	for _, local := range localStarts {
		result = append(result, w.start+local)
	}
	for _, s := range oldStarts[w.endLineExcl:] {
		result = append(result, s+delta)
	}
	return result
}
