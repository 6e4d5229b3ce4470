package document

import (
	"github.com/textcore/editdoc/internal/cellbuffer"
	"github.com/textcore/editdoc/internal/charclass"
	"github.com/textcore/editdoc/internal/undo"
)

// Re-exported so callers configuring a Document never need to import
// internal/cellbuffer or internal/undo directly.

// Status is the result of a boundary operation (InsertString, DeleteRange, ...).
type Status = cellbuffer.Status

const (
	StatusOk       = cellbuffer.StatusOk
	StatusFailure  = cellbuffer.StatusFailure
	StatusBadAlloc = cellbuffer.StatusBadAlloc
)

// Action is one undo-log record, surfaced on modification notifications.
type Action = undo.Action

// ActionType categorizes an Action.
type ActionType = undo.Type

const (
	ActionInsert    = undo.Insert
	ActionRemove    = undo.Remove
	ActionContainer = undo.Container
)

// EndOfLine names a line terminator; a Document stores one as its EOL
// mode (WithEOLMode/SetEOLMode/EOLMode).
type EndOfLine int

const (
	EOLCrLf EndOfLine = iota
	EOLCr
	EndOfLineLf
)

// String implements fmt.Stringer for debugging/log output.
func (e EndOfLine) String() string {
	switch e {
	case EOLCrLf:
		return "\r\n"
	case EOLCr:
		return "\r"
	case EndOfLineLf:
		return "\n"
	default:
		return ""
	}
}

// LineEndKind is one bit of the allowed-line-endings bitset reported by
// Document.AllowedLineEnds and by a lexer's LineEndTypesSupported.
type LineEndKind uint8

const (
	LineEndDefault LineEndKind = 1 << iota
	LineEndUnicode
)

// CodePage selects the encoding strategy. 0 means single-byte, 65001
// means UTF-8, and any other positive value names a DBCS code page (see
// charclass.CodePage).
type CodePage int

const (
	CodePageSBCS CodePage = 0
	CodePageUTF8 CodePage = 65001
)

func strategyFor(cp CodePage) charclass.EncodingStrategy {
	switch cp {
	case CodePageSBCS:
		return charclass.SBCS{}
	case CodePageUTF8:
		return charclass.UTF8{}
	default:
		return charclass.DBCS{CodePage: charclass.CodePage(cp)}
	}
}
