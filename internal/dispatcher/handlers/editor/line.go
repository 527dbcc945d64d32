package editor

import (
	"unicode/utf8"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
)

// Operation names for whole-line edits.
const (
	OpDuplicateLine = "duplicate_line"
	OpMoveLineUp    = "move_line_up"
	OpMoveLineDown  = "move_line_down"
)

// DuplicateLine copies the head's line below itself. The cursor keeps its
// column on the copy.
type DuplicateLine struct{}

// Name implements handler.Operation.
func (DuplicateLine) Name() string { return OpDuplicateLine }

// Execute implements handler.Operation.
func (DuplicateLine) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	head := ctx.Head()
	line := buf.LineOf(head)
	text := buf.LineText(line) + "\n"

	after := cursor.NewCursorSelection(head + utf8.RuneCountInString(text))
	if _, err := ctx.CommitSelect(OpDuplicateLine, after, buffer.NewInsert(buf.OffsetOfLine(line), text)); err != nil {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}

// MoveLineUp swaps the head's line with the one above it.
type MoveLineUp struct{}

// Name implements handler.Operation.
func (MoveLineUp) Name() string { return OpMoveLineUp }

// Execute implements handler.Operation.
func (MoveLineUp) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	head := ctx.Head()
	line := buf.LineOf(head)
	if line == 0 {
		return handler.NoOp(), nil
	}

	prevStart := buf.OffsetOfLine(line - 1)
	curStart := buf.OffsetOfLine(line)
	prev := buf.LineText(line - 1)

	// Re-insert the previous line after this one, then drop it from above.
	var below buffer.Edit
	if line+1 < buf.LineCount() {
		below = buffer.NewInsert(buf.OffsetOfLine(line+1), prev+"\n")
	} else {
		below = buffer.NewInsert(buf.Len(), "\n"+prev)
	}
	after := cursor.NewCursorSelection(prevStart + head - curStart)
	changed, err := ctx.CommitSelect(OpMoveLineUp, after, below, buffer.NewDelete(prevStart, curStart))
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}

// MoveLineDown swaps the head's line with the one below it.
type MoveLineDown struct{}

// Name implements handler.Operation.
func (MoveLineDown) Name() string { return OpMoveLineDown }

// Execute implements handler.Operation.
func (MoveLineDown) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	head := ctx.Head()
	line := buf.LineOf(head)
	if line+1 >= buf.LineCount() {
		return handler.NoOp(), nil
	}

	curStart := buf.OffsetOfLine(line)
	nextStart := buf.OffsetOfLine(line + 1)
	next := buf.LineText(line + 1)

	// Drop the next line with one separator, then re-insert it above.
	var drop buffer.Edit
	if line+2 < buf.LineCount() {
		drop = buffer.NewDelete(nextStart, buf.OffsetOfLine(line+2))
	} else {
		drop = buffer.NewDelete(nextStart-1, buf.Len())
	}
	after := cursor.NewCursorSelection(head + utf8.RuneCountInString(next) + 1)
	changed, err := ctx.CommitSelect(OpMoveLineDown, after, drop, buffer.NewInsert(curStart, next+"\n"))
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}
