// Package regexsearch implements RegexSearcher: pattern-based search over
// a document's bytes with two back-ends. The built-in backend is a small
// hand-rolled NFA supporting the bespoke syntax Scintilla's own built-in
// regex engine supports (anchors, character classes, shorthand classes,
// up to 10 capturing groups, alternation, greedy quantifiers, and word
// boundaries). The ECMAScript backend delegates to the standard library's
// RE2-based regexp package and caches compiled patterns keyed by
// (flags, pattern).
package regexsearch
