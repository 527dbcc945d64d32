package dispatcher

import (
	"github.com/dshills/editcore/internal/dispatcher/handlers/cursor"
	"github.com/dshills/editcore/internal/dispatcher/handlers/editor"
	"github.com/dshills/editcore/internal/dispatcher/handlers/history"
	"github.com/dshills/editcore/internal/dispatcher/handlers/mode"
)

// DefaultAliases maps the single-key command names to canonical names.
var DefaultAliases = map[string]string{
	"h":  cursor.OpMoveLeft,
	"j":  cursor.OpMoveDown,
	"k":  cursor.OpMoveUp,
	"l":  cursor.OpMoveRight,
	"w":  cursor.OpMoveWordForward,
	"b":  cursor.OpMoveWordBackward,
	"W":  cursor.OpMoveBigWordForward,
	"B":  cursor.OpMoveBigWordBackward,
	"0":  cursor.OpMoveLineStart,
	"$":  cursor.OpMoveLineEnd,
	"gg": cursor.OpMoveDocumentStart,
	"G":  cursor.OpMoveDocumentEnd,
	"%":  cursor.OpMoveMatchingBracket,
	"}":  cursor.OpMoveParagraphForward,
	"{":  cursor.OpMoveParagraphBackward,

	"x":  editor.OpDeleteChar,
	"X":  editor.OpBackspace,
	"dd": editor.OpDeleteLine,
	"yy": editor.OpCopy,
	"p":  editor.OpPaste,
	"o":  editor.OpInsertLineBelow,
	"O":  editor.OpInsertLineAbove,

	"u": history.OpUndo,
	"r": history.OpRedo,

	":": mode.OpCommand,
}
