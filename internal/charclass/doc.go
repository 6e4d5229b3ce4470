// Package charclass implements the character classifier and the three
// encoding strategies (single-byte, UTF-8, DBCS) that let navigation and
// search code work in terms of "characters" without sprinkling
// code-page checks through every caller. Callers pick a strategy once
// (when the document's code page is set) and use it behind the
// EncodingStrategy capability from then on.
package charclass
