package editor

import "github.com/dshills/editcore/internal/dispatcher/handler"

// Factories returns the factories for every editing operation.
func Factories() map[string]handler.Factory {
	f := map[string]handler.Factory{
		OpInsertChar:      NewInsertChar,
		OpInsertString:    NewInsertString,
		OpInsertNewline:   handler.Fixed(Insert{Op: OpInsertNewline, Text: "\n"}),
		OpInsertTab:       handler.Fixed(Insert{Op: OpInsertTab, Text: "\t"}),
		OpInsertSpaces:    NewInsertSpaces,
		OpInsertLineAbove: handler.Fixed(InsertLineAbove{}),
		OpInsertLineBelow: handler.Fixed(InsertLineBelow{}),

		OpCopy:  handler.Fixed(Copy{}),
		OpCut:   handler.Fixed(Cut{}),
		OpPaste: NewPaste,

		OpIndentSelection:   handler.Fixed(Indent{}),
		OpUnindentSelection: handler.Fixed(Unindent{}),

		OpDuplicateLine: handler.Fixed(DuplicateLine{}),
		OpMoveLineUp:    handler.Fixed(MoveLineUp{}),
		OpMoveLineDown:  handler.Fixed(MoveLineDown{}),
	}
	for name := range spans {
		f[name] = handler.Fixed(Delete{Op: name})
	}
	for name := range converters {
		f[name] = handler.Fixed(ChangeCase{Op: name})
	}
	return f
}
