// Package undo implements the Action log that backs a CellBuffer's
// undo/redo history.
//
// Unlike a stack of inverse commands, the log is a single growable
// sequence of Actions. Undo walks Current backwards; redo replays
// forward to the high-water mark. A new edit recorded while Current is
// behind the end of the log truncates the abandoned redo tail. Three
// indices into the same sequence give the log its other behaviors:
//
//   - SavePoint: the index considered "on disk".
//   - Detach: the index where the log parted ways with its persisted
//     origin (set once, used to tell a caller whether undo can still
//     reach a version that matches some external copy).
//   - Tentative: the start of a speculative group that may be committed
//     (kept) or rolled back (discarded without leaving a trace).
//
// Grouping is explicit: BeginAction/EndAction bracket a sequence of
// Actions so a single Undo() call reverses all of them together. Nesting
// is allowed; only the outermost EndAction reports GroupCompleted.
package undo
