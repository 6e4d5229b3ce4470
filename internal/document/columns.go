package document

// NextTab rounds col up to the next tab stop of width tabSize, matching
// Scintilla's NextTab(pos, tabSize) = ((pos/tabSize)+1)*tabSize.
func NextTab(col, tabSize int) int {
	return ((col / tabSize) + 1) * tabSize
}

// GetLineIndentation returns line's visual indent: each space counts as
// one column, each tab advances to the next tab stop.
func (d *Document) GetLineIndentation(line int) int {
	if line < 0 || line >= d.LinesTotal() {
		return 0
	}
	indent := 0
	pos := d.LineStart(line)
	length := d.Length()
	for pos < length {
		b, _ := d.ByteAt(pos)
		switch b {
		case ' ':
			indent++
		case '\t':
			indent = NextTab(indent, d.tabWidth)
		default:
			return indent
		}
		pos++
	}
	return indent
}

// GetLineIndentPosition returns the byte offset of the first
// non-space/tab byte on line (or the line's end, if it is all
// whitespace).
func (d *Document) GetLineIndentPosition(line int) int64 {
	if line < 0 {
		return 0
	}
	pos := d.LineStart(line)
	length := d.Length()
	for pos < length {
		b, _ := d.ByteAt(pos)
		if b != ' ' && b != '\t' {
			break
		}
		pos++
	}
	return pos
}

// SetLineIndentation rebuilds line's leading whitespace to represent
// indent columns: useTabs leading tabs followed by residual spaces, or
// all spaces otherwise, wrapped in one undo group. Returns the byte
// position just past the new indentation.
func (d *Document) SetLineIndentation(line int, indent int) int64 {
	if indent < 0 {
		indent = 0
	}
	current := d.GetLineIndentation(line)
	if indent == current {
		return d.GetLineIndentPosition(line)
	}

	var buf []byte
	remaining := indent
	if d.useTabs {
		count := remaining / d.tabWidth
		remaining = remaining % d.tabWidth
		for i := 0; i < count; i++ {
			buf = append(buf, '\t')
		}
	}
	for i := 0; i < remaining; i++ {
		buf = append(buf, ' ')
	}

	lineStart := d.LineStart(line)
	indentPos := d.GetLineIndentPosition(line)

	d.BeginUndoAction()
	defer d.EndUndoAction()
	d.DeleteRange(lineStart, indentPos-lineStart)
	d.InsertString(lineStart, string(buf))
	return lineStart + int64(len(buf))
}

// GetColumn returns the visual column of pos within its line, expanding
// tabs and stopping at the line's terminator.
func (d *Document) GetColumn(pos int64) int64 {
	line := d.LineFromPosition(pos)
	if line < 0 || line >= d.LinesTotal() {
		return 0
	}
	var column int64
	i := d.LineStart(line)
	length := d.Length()
	for i < pos {
		b, _ := d.ByteAt(i)
		switch {
		case b == '\t':
			column = int64(NextTab(int(column), d.tabWidth))
			i++
		case b == '\r' || b == '\n':
			return column
		case b < 0x80:
			column++
			i++
		case i >= length:
			return column
		default:
			column++
			i = d.NextPosition(i, 1)
		}
	}
	return column
}

// FindColumn returns the byte position on line at visual column column,
// expanding tabs the same way GetColumn does.
func (d *Document) FindColumn(line int, column int64) int64 {
	pos := d.LineStart(line)
	if line < 0 || line >= d.LinesTotal() {
		return pos
	}
	var current int64
	length := d.Length()
	for current < column && pos < length {
		b, _ := d.ByteAt(pos)
		switch {
		case b == '\t':
			current = int64(NextTab(int(current), d.tabWidth))
			if current > column {
				return pos
			}
			pos++
		case b == '\r' || b == '\n':
			return pos
		default:
			current++
			pos = d.NextPosition(pos, 1)
		}
	}
	return pos
}

// CountCharacters counts the characters in [startPos, endPos), snapping
// both ends outside any character they land inside of.
func (d *Document) CountCharacters(startPos, endPos int64) int64 {
	startPos = d.MovePositionOutsideChar(startPos, 1, false)
	endPos = d.MovePositionOutsideChar(endPos, -1, false)
	var count int64
	for i := startPos; i < endPos; i = d.NextPosition(i, 1) {
		count++
	}
	return count
}

// CountCharactersAndColumns counts characters in [startPos,endPos) and
// simultaneously accumulates the expanded-tab column width, returning
// (characters, columns).
func (d *Document) CountCharactersAndColumns(startPos, endPos int64) (characters, columns int64) {
	i := startPos
	for i < endPos {
		b, _ := d.ByteAt(i)
		switch {
		case b == '\t':
			columns = int64(NextTab(int(columns), d.tabWidth))
			i++
		case b < 0x80:
			columns++
			i++
		default:
			columns++
			i = d.NextPosition(i, 1)
		}
		characters++
	}
	return characters, columns
}

// CountUTF16 counts the UTF-16 code units in [startPos,endPos): every
// character contributes one unit, plus a second when its encoded width
// exceeds 3 bytes (a non-BMP code point needing a surrogate pair).
func (d *Document) CountUTF16(startPos, endPos int64) int64 {
	startPos = d.MovePositionOutsideChar(startPos, 1, false)
	endPos = d.MovePositionOutsideChar(endPos, -1, false)
	var count int64
	i := startPos
	for i < endPos {
		count++
		next := d.NextPosition(i, 1)
		if next-i > 3 {
			count++
		}
		i = next
	}
	return count
}
