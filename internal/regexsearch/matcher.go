package regexsearch

// matcher holds the state one FindText call against the built-in backend
// threads through node.match: the text being scanned and the parallel
// bopat/eopat submatch arrays, named the way Scintilla's own RESearch
// names them (group 0 is the whole match).
type matcher struct {
	text   []byte
	dotAll bool
	bopat  [10]int
	eopat  [10]int
}

// program is a compiled built-in pattern, ready to run against any text.
type program struct {
	root       node
	groupCount int
}

func compileBuiltin(pattern string) (*program, error) {
	root, groupCount, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return &program{root: root, groupCount: groupCount}, nil
}

// findAt attempts a match anchored exactly at start and, on success,
// returns the populated bopat/eopat arrays.
func (p *program) findAt(text []byte, start int, dotAll bool) (matcher, bool) {
	m := matcher{text: text, dotAll: dotAll}
	for i := range m.bopat {
		m.bopat[i], m.eopat[i] = -1, -1
	}
	ok := p.root.match(&m, start, func(end int) bool { return true })
	return m, ok
}

// search scans forward from start to limit (inclusive of limit as a
// valid anchor point, so an end-of-text anchor like "$" can still
// match) and returns the first successful match at or after start.
func (p *program) search(text []byte, start, limit int, dotAll bool) (matcher, bool) {
	for pos := start; pos <= limit; pos++ {
		if m, ok := p.findAt(text, pos, dotAll); ok {
			return m, true
		}
	}
	return matcher{}, false
}

// searchReverse repeatedly advances past each match starting from start
// until none remains at or before limit, then returns the last one
// found — the direction-reversal rule spec §4.6 describes for the
// built-in backend. An empty match advances by one byte so the scan
// always terminates.
func (p *program) searchReverse(text []byte, start, limit int, dotAll bool) (matcher, bool) {
	var last matcher
	found := false
	pos := start
	for pos <= limit {
		m, ok := p.findAt(text, pos, dotAll)
		if !ok {
			pos++
			continue
		}
		if m.eopat[0] > limit {
			break
		}
		last = m
		found = true
		if m.eopat[0] > pos {
			pos = m.eopat[0]
		} else {
			pos++
		}
	}
	return last, found
}
