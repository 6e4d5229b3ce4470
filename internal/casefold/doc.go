// Package casefold folds byte sequences to a canonical case-insensitive
// form for search. Two folders are provided: an ASCII-only table variant
// for speed, and a Unicode-aware variant built on golang.org/x/text/cases
// for documents whose encoding can produce non-ASCII letters.
package casefold
