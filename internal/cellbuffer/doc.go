// Package cellbuffer implements the byte-addressed text store that backs
// one Document: a rope-based buffer, a parallel style-byte array, and the
// Action log that gives it undo/redo.
//
// Text storage is delegated to internal/rope. CellBuffer does not use
// rope's line index at all: a document may contain CR, LF, or CRLF line
// endings simultaneously (most visibly right after an edit splits what
// used to be a CRLF pair), so CellBuffer keeps its own CR/LF/CRLF-aware
// line-start table and, on each mutation, rescans only the window of lines
// around the edit. See lines.go.
package cellbuffer
