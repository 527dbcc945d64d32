package editor

import (
	"fmt"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	cursorops "github.com/dshills/editcore/internal/dispatcher/handlers/cursor"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
	"github.com/dshills/editcore/internal/textobject"
)

// Operation names for deletion.
const (
	OpDeleteChar         = "delete_char"
	OpBackspace          = "backspace"
	OpDeleteWord         = "delete_word"
	OpDeleteWordBackward = "delete_word_backward"
	OpDeleteLine         = "delete_line"
	OpDeleteToLineStart  = "delete_to_line_start"
	OpDeleteToLineEnd    = "delete_to_line_end"
)

// span picks the range a delete removes and whether it is whole lines.
type span func(buf *buffer.Buffer, sel cursor.Selection) (start, end int, linewise bool)

// selectionOr removes the selection when there is one, otherwise the
// range fn computes from the head.
func selectionOr(fn func(buf *buffer.Buffer, head int) (int, int)) span {
	return func(buf *buffer.Buffer, sel cursor.Selection) (int, int, bool) {
		if !sel.IsCursor() {
			start, end := sel.Bounds()
			return start, end, false
		}
		start, end := fn(buf, sel.Head)
		return start, end, false
	}
}

var spans = map[string]span{
	OpDeleteChar: selectionOr(func(buf *buffer.Buffer, head int) (int, int) {
		return head, cursorops.Right(buf, head)
	}),
	OpBackspace: selectionOr(func(buf *buffer.Buffer, head int) (int, int) {
		return cursorops.Left(buf, head), head
	}),
	OpDeleteWord: selectionOr(func(buf *buffer.Buffer, head int) (int, int) {
		return head, textobject.WordForward(buf, head)
	}),
	OpDeleteWordBackward: selectionOr(func(buf *buffer.Buffer, head int) (int, int) {
		return textobject.WordBackward(buf, head), head
	}),
	OpDeleteLine: func(buf *buffer.Buffer, sel cursor.Selection) (int, int, bool) {
		line := buf.LineOf(sel.Head)
		return buf.OffsetOfLine(line), buf.OffsetOfLine(line + 1), true
	},
	OpDeleteToLineStart: func(buf *buffer.Buffer, sel cursor.Selection) (int, int, bool) {
		return cursorops.LineStart(buf, sel.Head), sel.Head, false
	},
	OpDeleteToLineEnd: func(buf *buffer.Buffer, sel cursor.Selection) (int, int, bool) {
		return sel.Head, cursorops.LineEnd(buf, sel.Head), false
	},
}

// Delete removes a range chosen by the operation name and records the
// removed text in the active register.
type Delete struct {
	Op string
}

// Name implements handler.Operation.
func (d Delete) Name() string { return d.Op }

// Execute implements handler.Operation.
func (d Delete) Execute(ctx *execctx.Context) (handler.Result, error) {
	pick, ok := spans[d.Op]
	if !ok {
		return handler.NoOp(), fmt.Errorf("editor: unknown delete %q", d.Op)
	}
	start, end, linewise := pick(ctx.Buffer(), ctx.Selection())
	return deleteRange(ctx, d.Op, start, end, linewise)
}

// deleteRange removes [start, end) as one transaction and records the
// removed text in the active register.
func deleteRange(ctx *execctx.Context, op string, start, end int, linewise bool) (handler.Result, error) {
	if start >= end {
		return handler.NoOp(), nil
	}
	text := ctx.Buffer().Slice(start, end)

	changed, err := ctx.Commit(op, buffer.NewDelete(start, end))
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	ctx.Registers.Delete(ctx.Register, text, linewise)
	return handler.Continue(), nil
}
