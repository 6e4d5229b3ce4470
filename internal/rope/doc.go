// Package rope is the immutable byte-storage engine underneath
// internal/cellbuffer's CellBuffer: the piece of a Document that holds
// the actual text and answers byte-offset and line queries in O(log n)
// regardless of buffer size.
//
// A rope is a B+ tree where leaf nodes hold text chunks and internal
// nodes carry a TextSummary — byte count, UTF-16 unit count, and line
// count — aggregated bottom-up as a monoid (TextSummary.Add), so every
// node's summary is derivable from its children without rescanning
// text. Insert/Delete/Concat/Split all return a new Rope; the original
// is left untouched, which is what lets CellBuffer's undo log hold
// onto old Rope values as cheap snapshots instead of copying text.
//
// Line counting treats a lone '\r', a lone '\n', or a "\r\n" pair as
// one terminator, matching internal/cellbuffer's own line-start rule;
// TextSummary.Add is where a "\r\n" pair split across two chunks gets
// corrected back down to one line, via each chunk's StartsWithLF/
// EndsWithCR boundary flags.
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	r = r.Delete(0, 6)             // "world"
//	text := r.String()             // "world"
package rope
