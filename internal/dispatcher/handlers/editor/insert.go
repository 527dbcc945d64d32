package editor

import (
	"strings"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
	"github.com/dshills/editcore/internal/textobject"
)

// Operation names for insertion.
const (
	OpInsertChar      = "insert_char"
	OpInsertString    = "insert_string"
	OpInsertNewline   = "insert_newline"
	OpInsertTab       = "insert_tab"
	OpInsertSpaces    = "insert_spaces"
	OpInsertLineAbove = "insert_line_above"
	OpInsertLineBelow = "insert_line_below"
)

// Insert replaces the selection with Text.
type Insert struct {
	Op   string
	Text string
}

// Name implements handler.Operation.
func (i Insert) Name() string { return i.Op }

// Execute implements handler.Operation.
func (i Insert) Execute(ctx *execctx.Context) (handler.Result, error) {
	start, end := ctx.Selection().Bounds()
	changed, err := ctx.Commit(i.Op, buffer.NewReplace(start, end, i.Text))
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	ctx.Registers.SetLastInserted(i.Text)
	return handler.Continue(), nil
}

// NewInsertChar requires exactly one character.
func NewInsertChar(param string) (handler.Operation, error) {
	r, err := handler.SingleChar(OpInsertChar, param)
	if err != nil {
		return nil, err
	}
	return Insert{Op: OpInsertChar, Text: string(r)}, nil
}

// NewInsertString requires non-empty text.
func NewInsertString(param string) (handler.Operation, error) {
	text, err := handler.RequireParam(OpInsertString, param, "text")
	if err != nil {
		return nil, err
	}
	return Insert{Op: OpInsertString, Text: text}, nil
}

// NewInsertSpaces takes an optional positive count, default 1.
func NewInsertSpaces(param string) (handler.Operation, error) {
	n, err := handler.PositiveInt(OpInsertSpaces, param, 1)
	if err != nil {
		return nil, err
	}
	return Insert{Op: OpInsertSpaces, Text: strings.Repeat(" ", n)}, nil
}

// InsertLineAbove opens an empty line above the head's line and puts the
// cursor on it.
type InsertLineAbove struct{}

// Name implements handler.Operation.
func (InsertLineAbove) Name() string { return OpInsertLineAbove }

// Execute implements handler.Operation.
func (InsertLineAbove) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	line := buf.LineOf(ctx.Head())

	if line == 0 {
		// No previous terminator to extend: push the first line down.
		if _, err := ctx.CommitSelect(OpInsertLineAbove, cursor.NewCursorSelection(0), buffer.NewInsert(0, "\n")); err != nil {
			return handler.NoOp(), err
		}
		return handler.Continue(), nil
	}

	at := textobject.LineContentEnd(buf, line-1)
	if _, err := ctx.Commit(OpInsertLineAbove, buffer.NewInsert(at, "\n")); err != nil {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}

// InsertLineBelow opens an empty line below the head's line and puts the
// cursor on it.
type InsertLineBelow struct{}

// Name implements handler.Operation.
func (InsertLineBelow) Name() string { return OpInsertLineBelow }

// Execute implements handler.Operation.
func (InsertLineBelow) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	at := textobject.LineContentEnd(buf, buf.LineOf(ctx.Head()))
	if _, err := ctx.Commit(OpInsertLineBelow, buffer.NewInsert(at, "\n")); err != nil {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}
