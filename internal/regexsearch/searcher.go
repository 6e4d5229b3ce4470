package regexsearch

import (
	"fmt"
	"regexp"
)

// LineSource is the slice of Document/CellBuffer a RegexSearcher needs:
// byte access plus the line table the built-in backend iterates over.
type LineSource interface {
	ByteAt(pos int64) (byte, bool)
	Length() int64
	LinesTotal() int
	LineFromPosition(pos int64) int
	LineStart(line int) int64
	LineEnd(line int) int64
}

// Backend selects which regex engine FindText uses.
type Backend int

const (
	BackendBuiltin Backend = iota
	BackendECMAScript
)

// Options configures one FindText call.
type Options struct {
	Backend     Backend
	RegexDotAll bool
}

// Range is a byte half-open interval; an unset submatch has Start < 0.
type Range struct {
	Start, End int64
}

// RegexSearcher compiles and runs patterns against a LineSource, caching
// compiled ECMAScript patterns by (dotAll, pattern) and remembering the
// last match's submatches for SubstituteByPosition.
type RegexSearcher struct {
	builtinCache map[string]*program
	ecmaCache    map[ecmaCacheKey]*regexp.Regexp
	lastGroups   [10]Range
	lastText     []byte
}

type ecmaCacheKey struct {
	dotAll  bool
	pattern string
}

// NewRegexSearcher returns a ready-to-use RegexSearcher with empty caches.
func NewRegexSearcher() *RegexSearcher {
	return &RegexSearcher{
		builtinCache: make(map[string]*program),
		ecmaCache:    make(map[ecmaCacheKey]*regexp.Regexp),
	}
}

// FindText searches src in [minPos,maxPos) — backward when maxPos < minPos
// — for pattern, and returns the match position and its byte length.
// Submatches from the match are retained for a subsequent
// SubstituteByPosition call.
func (r *RegexSearcher) FindText(src LineSource, minPos, maxPos int64, pattern string, opts Options) (int64, int64, error) {
	switch opts.Backend {
	case BackendECMAScript:
		return r.findECMAScript(src, minPos, maxPos, pattern, opts)
	default:
		return r.findBuiltin(src, minPos, maxPos, pattern, opts)
	}
}

func (r *RegexSearcher) findBuiltin(src LineSource, minPos, maxPos int64, pattern string, opts Options) (int64, int64, error) {
	prog, ok := r.builtinCache[pattern]
	if !ok {
		var err error
		prog, err = compileBuiltin(pattern)
		if err != nil {
			return NotFound, 0, err
		}
		r.builtinCache[pattern] = prog
	}

	forward := maxPos >= minPos
	startLine := src.LineFromPosition(minPos)
	endLine := src.LineFromPosition(maxPos)

	step := 1
	if !forward {
		step = -1
	}
	for line := startLine; ; line += step {
		lineStart := src.LineStart(line)
		lineEnd := src.LineEnd(line)
		segStart, segEnd := lineStart, lineEnd
		if forward {
			if line == startLine {
				segStart = minPos
			}
			if line == endLine {
				segEnd = maxPos
			}
		} else {
			if line == endLine {
				segStart = maxPos
			}
			if line == startLine {
				segEnd = minPos
			}
		}
		if segEnd < segStart {
			segStart, segEnd = segEnd, segStart
		}

		text := readRange(src, lineStart, lineEnd)
		relStart := int(segStart - lineStart)
		relEnd := int(segEnd - lineStart)

		var m matcher
		var found bool
		if forward {
			m, found = prog.search(text, relStart, relEnd, opts.RegexDotAll)
		} else {
			m, found = prog.searchReverse(text, relStart, relEnd, opts.RegexDotAll)
		}
		if found {
			r.recordGroups(m, prog.groupCount, lineStart, text)
			return lineStart + int64(m.bopat[0]), int64(m.eopat[0] - m.bopat[0]), nil
		}

		if line == endLine {
			break
		}
	}
	return NotFound, 0, nil
}

func (r *RegexSearcher) recordGroups(m matcher, groupCount int, lineStart int64, text []byte) {
	for i := range r.lastGroups {
		r.lastGroups[i] = Range{Start: -1, End: -1}
	}
	for i := 0; i <= groupCount && i < 10; i++ {
		if m.bopat[i] < 0 {
			continue
		}
		r.lastGroups[i] = Range{Start: lineStart + int64(m.bopat[i]), End: lineStart + int64(m.eopat[i])}
	}
	r.lastText = text
}

func readRange(src LineSource, start, end int64) []byte {
	buf := make([]byte, 0, end-start)
	for p := start; p < end; p++ {
		b, ok := src.ByteAt(p)
		if !ok {
			break
		}
		buf = append(buf, b)
	}
	return buf
}

func (r *RegexSearcher) findECMAScript(src LineSource, minPos, maxPos int64, pattern string, opts Options) (int64, int64, error) {
	key := ecmaCacheKey{dotAll: opts.RegexDotAll, pattern: pattern}
	re, ok := r.ecmaCache[key]
	if !ok {
		effective := pattern
		if opts.RegexDotAll {
			effective = "(?s)" + effective
		}
		compiled, err := regexp.Compile(effective)
		if err != nil {
			return NotFound, 0, fmt.Errorf("regexsearch: %w", err)
		}
		re = compiled
		r.ecmaCache[key] = re
	}

	forward := maxPos >= minPos
	lo, hi := minPos, maxPos
	if !forward {
		lo, hi = maxPos, minPos
	}
	text := readRange(src, lo, hi)

	indices := re.FindAllSubmatchIndex(text, -1)
	if len(indices) == 0 {
		return NotFound, 0, nil
	}
	chosen := indices[0]
	if !forward {
		chosen = indices[len(indices)-1]
	}

	for i := range r.lastGroups {
		r.lastGroups[i] = Range{Start: -1, End: -1}
	}
	for g := 0; g*2 < len(chosen); g++ {
		if chosen[g*2] < 0 {
			continue
		}
		r.lastGroups[g] = Range{Start: lo + int64(chosen[g*2]), End: lo + int64(chosen[g*2+1])}
	}
	r.lastText = text

	return lo + int64(chosen[0]), int64(chosen[1] - chosen[0]), nil
}

// NotFound is returned as the position of a failed search.
const NotFound int64 = -1

// SubstituteByPosition expands a replacement template against the
// submatches recorded by the last successful FindText call: \0-\9
// substitute the corresponding submatch, \a\b\f\n\r\t\v\\ yield the
// obvious escapes, and any other \x is emitted literally as \x.
func (r *RegexSearcher) SubstituteByPosition(template string, textOf func(start, end int64) []byte) []byte {
	out := make([]byte, 0, len(template))
	for j := 0; j < len(template); j++ {
		c := template[j]
		if c != '\\' || j+1 >= len(template) {
			out = append(out, c)
			continue
		}
		j++
		next := template[j]
		switch {
		case next >= '0' && next <= '9':
			g := next - '0'
			rg := r.lastGroups[g]
			if rg.Start >= 0 && rg.End > rg.Start {
				out = append(out, textOf(rg.Start, rg.End)...)
			}
		case next == 'a':
			out = append(out, '\a')
		case next == 'b':
			out = append(out, '\b')
		case next == 'f':
			out = append(out, '\f')
		case next == 'n':
			out = append(out, '\n')
		case next == 'r':
			out = append(out, '\r')
		case next == 't':
			out = append(out, '\t')
		case next == 'v':
			out = append(out, '\v')
		case next == '\\':
			out = append(out, '\\')
		default:
			out = append(out, '\\', next)
		}
	}
	return out
}
