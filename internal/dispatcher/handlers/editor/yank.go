package editor

import (
	"strings"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine/buffer"
)

// Operation names for the clipboard family.
const (
	OpCopy  = "copy"
	OpCut   = "cut"
	OpPaste = "paste"
)

// yankRange returns the selection, or the head's whole line when the
// selection is a cursor.
func yankRange(ctx *execctx.Context) (start, end int, linewise bool) {
	sel := ctx.Selection()
	if !sel.IsCursor() {
		start, end = sel.Bounds()
		return start, end, false
	}
	buf := ctx.Buffer()
	line := buf.LineOf(sel.Head)
	return buf.OffsetOfLine(line), buf.OffsetOfLine(line + 1), true
}

// Copy stores the selection, or the current line, in the active register.
// It never changes the document.
type Copy struct{}

// Name implements handler.Operation.
func (Copy) Name() string { return OpCopy }

// Execute implements handler.Operation.
func (Copy) Execute(ctx *execctx.Context) (handler.Result, error) {
	start, end, linewise := yankRange(ctx)
	if start >= end {
		return handler.NoOp(), nil
	}
	ctx.Registers.Yank(ctx.Register, ctx.Buffer().Slice(start, end), linewise)
	return handler.Continue(), nil
}

// Cut copies like Copy and then removes the copied text.
type Cut struct{}

// Name implements handler.Operation.
func (Cut) Name() string { return OpCut }

// Execute implements handler.Operation.
func (Cut) Execute(ctx *execctx.Context) (handler.Result, error) {
	start, end, linewise := yankRange(ctx)
	return deleteRange(ctx, OpCut, start, end, linewise)
}

// Paste inserts Text, or the active register when Text is empty.
//
// Linewise register content goes in below the head's line. Everything
// else replaces the selection.
type Paste struct {
	Text string
}

// Name implements handler.Operation.
func (Paste) Name() string { return OpPaste }

// Execute implements handler.Operation.
func (p Paste) Execute(ctx *execctx.Context) (handler.Result, error) {
	text, linewise := p.Text, false
	if text == "" {
		text, linewise = ctx.Registers.Get(ctx.Register)
	}
	if text == "" {
		return handler.NoOp(), nil
	}

	var edit buffer.Edit
	if linewise {
		edit = pasteBelow(ctx.Buffer(), ctx.Head(), text)
	} else {
		start, end := ctx.Selection().Bounds()
		edit = buffer.NewReplace(start, end, text)
	}

	changed, err := ctx.Commit(OpPaste, edit)
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}

// pasteBelow builds the insert that puts whole lines after the line
// containing head.
func pasteBelow(buf *buffer.Buffer, head int, text string) buffer.Edit {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	line := buf.LineOf(head)
	if line+1 < buf.LineCount() {
		return buffer.NewInsert(buf.OffsetOfLine(line+1), text)
	}

	// Last line: terminate it first, and drop the trailing newline so the
	// document does not gain an empty last line.
	end := buf.Len()
	if c, ok := buf.CharAt(end - 1); ok && c == '\n' {
		return buffer.NewInsert(end, text)
	}
	return buffer.NewInsert(end, "\n"+strings.TrimSuffix(text, "\n"))
}

// NewPaste accepts optional literal text.
func NewPaste(param string) (handler.Operation, error) {
	return Paste{Text: param}, nil
}
