package rope

import "unicode/utf8"

// ByteOffset represents an absolute byte position in the rope.
type ByteOffset uint64

// Point represents a line/column position.
// Line and Column are both 0-indexed.
type Point struct {
	Line   uint32
	Column uint32
}

// TextSummary holds aggregated metrics for a text span.
// This is the "summary" type for our SumTree, implementing monoid operations.
type TextSummary struct {
	// Bytes is the UTF-8 byte count.
	Bytes ByteOffset

	// UTF16Units is the UTF-16 code unit count (for LSP compatibility).
	UTF16Units uint64

	// Lines is the number of line terminators: a lone '\n', a lone '\r'
	// and a "\r\n" pair each count once.
	Lines uint32

	// LongestLine is the byte length of the longest line.
	LongestLine uint32

	// FirstLineLen is the byte length of the first line (excluding newline).
	FirstLineLen uint32

	// LastLineLen is the byte length of the last line (excluding newline).
	LastLineLen uint32

	// Flags indicate text properties for fast paths.
	Flags TextFlags

	// StartsWithLF and EndsWithCR record whether the summarized span's
	// first and last byte are '\n' and '\r' respectively. Add uses them
	// to detect a "\r\n" pair split across two spans: each half's own
	// ComputeSummary counted its half of the pair as a line terminator
	// in isolation, so Add corrects the double count when it sees them
	// meet at a boundary.
	StartsWithLF bool
	EndsWithCR   bool
}

// TextFlags indicate text properties for optimization fast paths.
type TextFlags uint8

const (
	// FlagASCII indicates all characters are ASCII (< 128).
	FlagASCII TextFlags = 1 << iota

	// FlagHasNewlines indicates the text contains newline characters.
	FlagHasNewlines

	// FlagHasTabs indicates the text contains tab characters.
	FlagHasTabs

	// FlagHasCR indicates the text contains at least one '\r' byte,
	// whether standalone or paired with a following '\n'. A document
	// whose rope never sets this bit anywhere can skip CR/CRLF line-end
	// detection entirely and treat every '\n' as a one-byte terminator.
	FlagHasCR
)

// Add combines two summaries (monoid operation).
// This is called when concatenating rope sections.
func (s TextSummary) Add(other TextSummary) TextSummary {
	if s.Bytes == 0 {
		return other
	}
	if other.Bytes == 0 {
		return s
	}

	lines := s.Lines + other.Lines
	crlfSplit := s.EndsWithCR && other.StartsWithLF
	if crlfSplit {
		// s ended on a lone '\r' and other opens on '\n': together they
		// are one "\r\n" terminator, but each side's own ComputeSummary
		// counted its half as a full line break. Undo the double count.
		lines--
	}

	result := TextSummary{
		Bytes:        s.Bytes + other.Bytes,
		UTF16Units:   s.UTF16Units + other.UTF16Units,
		Lines:        lines,
		Flags:        s.Flags & other.Flags, // AND for flags (all must have property)
		StartsWithLF: s.StartsWithLF,
		EndsWithCR:   other.EndsWithCR,
	}

	// Update line length tracking
	if other.Lines > 0 {
		// Other has newlines, so longest line could be from either
		result.LongestLine = max(s.LongestLine, other.LongestLine)
		result.FirstLineLen = s.FirstLineLen
		result.LastLineLen = other.LastLineLen
	} else {
		// Other has no newlines, extends last line of s
		combined := s.LastLineLen + other.LastLineLen
		result.LongestLine = max(s.LongestLine, combined)
		if s.Lines == 0 {
			result.FirstLineLen = combined
		} else {
			result.FirstLineLen = s.FirstLineLen
		}
		result.LastLineLen = combined
	}

	// Combine flags properly
	if s.Flags&FlagHasNewlines != 0 || other.Flags&FlagHasNewlines != 0 {
		result.Flags |= FlagHasNewlines
	}
	if s.Flags&FlagHasTabs != 0 || other.Flags&FlagHasTabs != 0 {
		result.Flags |= FlagHasTabs
	}
	if s.Flags&FlagHasCR != 0 || other.Flags&FlagHasCR != 0 {
		result.Flags |= FlagHasCR
	}

	return result
}

// Zero returns the identity element for the summary monoid.
func (TextSummary) Zero() TextSummary {
	return TextSummary{Flags: FlagASCII}
}

// IsZero returns true if this is the zero/identity summary.
func (s TextSummary) IsZero() bool {
	return s.Bytes == 0
}

// ComputeSummary calculates metrics for a string. A line terminator is a
// lone '\r', a lone '\n', or a "\r\n" pair counted once — the same rule
// internal/cellbuffer's line-start scanner uses. A '\r' at the very end
// of s is counted provisionally, since s may be one half of a "\r\n"
// pair split across a chunk boundary; Add corrects the count if the
// following span turns out to start with '\n'.
func ComputeSummary(s string) TextSummary {
	if len(s) == 0 {
		return TextSummary{Flags: FlagASCII}
	}

	var sum TextSummary
	sum.Bytes = ByteOffset(len(s))
	sum.Flags = FlagASCII // Start optimistic
	sum.StartsWithLF = s[0] == '\n'
	sum.EndsWithCR = s[len(s)-1] == '\r'

	var lineLen uint32
	recordBreak := func() {
		sum.Lines++
		sum.Flags |= FlagHasNewlines
		if lineLen > sum.LongestLine {
			sum.LongestLine = lineLen
		}
		if sum.Lines == 1 {
			sum.FirstLineLen = lineLen
		}
		lineLen = 0
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		if r <= 0xFFFF {
			sum.UTF16Units++
		} else {
			sum.UTF16Units += 2 // Surrogate pair
		}
		if r > 127 {
			sum.Flags &^= FlagASCII
		}

		switch r {
		case '\n':
			recordBreak()
		case '\r':
			sum.Flags |= FlagHasCR
			if i+1 < len(s) && s[i+1] == '\n' {
				// "\r\n" is one terminator; consume both bytes here so
				// the loop's next iteration starts past the '\n'.
				i++
				sum.UTF16Units++
			}
			recordBreak()
		default:
			lineLen += uint32(size)
			if r == '\t' {
				sum.Flags |= FlagHasTabs
			}
		}
		i += size
	}

	// Handle last line
	sum.LastLineLen = lineLen
	if sum.Lines == 0 {
		sum.FirstLineLen = lineLen
		sum.LongestLine = lineLen
	} else if lineLen > sum.LongestLine {
		sum.LongestLine = lineLen
	}

	return sum
}
