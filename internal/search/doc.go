// Package search implements literal text search over a byte source, with
// a Boyer-Moore-Horspool-Sunday shift table for the case-sensitive path
// and a character-by-character case-folded scan otherwise. Regular
// expression search lives in internal/regexsearch.
package search
