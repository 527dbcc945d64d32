package selection

import (
	"fmt"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	cursorops "github.com/dshills/editcore/internal/dispatcher/handlers/cursor"
	"github.com/dshills/editcore/internal/engine/cursor"
	"github.com/dshills/editcore/internal/textobject"
)

// Operation names for selection changes.
const (
	OpSelectLeft      = "select_left"
	OpSelectRight     = "select_right"
	OpSelectUp        = "select_up"
	OpSelectDown      = "select_down"
	OpSelectLineStart = "select_line_start"
	OpSelectLineEnd   = "select_line_end"
	OpSelectWord      = "select_word"
	OpSelectLine      = "select_line"
	OpSelectAll       = "select_all"
	OpClearSelection  = "clear_selection"
)

var extendTargets = map[string]cursorops.Target{
	OpSelectLeft:      cursorops.Left,
	OpSelectRight:     cursorops.Right,
	OpSelectUp:        cursorops.Up,
	OpSelectDown:      cursorops.Down,
	OpSelectLineStart: cursorops.LineStart,
	OpSelectLineEnd:   cursorops.LineEnd,
}

// Extend moves the head to a motion target and keeps the anchor.
type Extend struct {
	Op string
}

// Name implements handler.Operation.
func (e Extend) Name() string { return e.Op }

// Execute implements handler.Operation.
func (e Extend) Execute(ctx *execctx.Context) (handler.Result, error) {
	target, ok := extendTargets[e.Op]
	if !ok {
		return handler.NoOp(), fmt.Errorf("selection: unknown motion %q", e.Op)
	}
	sel := ctx.Selection()
	head := target(ctx.Buffer(), sel.Head)
	if head == sel.Head {
		return handler.NoOp(), nil
	}
	ctx.ExtendTo(head)
	return handler.Continue(), nil
}

// SelectWord selects the word at the head.
type SelectWord struct{}

// Name implements handler.Operation.
func (SelectWord) Name() string { return OpSelectWord }

// Execute implements handler.Operation.
func (SelectWord) Execute(ctx *execctx.Context) (handler.Result, error) {
	obj := textobject.New(textobject.KindWord, textobject.Inner)
	r, found, err := ctx.Objects.FindAt(ctx.Buffer(), ctx.Head(), obj)
	if err != nil {
		return handler.NoOp(), err
	}
	if !found || r.IsEmpty() {
		return handler.NoOp(), nil
	}
	ctx.SetSelection(cursor.NewRangeSelection(r))
	return handler.Continue(), nil
}

// SelectLine selects the line at the head, terminator included.
type SelectLine struct{}

// Name implements handler.Operation.
func (SelectLine) Name() string { return OpSelectLine }

// Execute implements handler.Operation.
func (SelectLine) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	line := buf.LineOf(ctx.Head())
	ctx.SelectRange(buf.OffsetOfLine(line), buf.OffsetOfLine(line+1))
	return handler.Continue(), nil
}

// SelectAll selects the whole document.
type SelectAll struct{}

// Name implements handler.Operation.
func (SelectAll) Name() string { return OpSelectAll }

// Execute implements handler.Operation.
func (SelectAll) Execute(ctx *execctx.Context) (handler.Result, error) {
	ctx.SelectRange(0, ctx.Buffer().Len())
	return handler.Continue(), nil
}

// ClearSelection collapses the selection onto its head.
type ClearSelection struct{}

// Name implements handler.Operation.
func (ClearSelection) Name() string { return OpClearSelection }

// Execute implements handler.Operation.
func (ClearSelection) Execute(ctx *execctx.Context) (handler.Result, error) {
	sel := ctx.Selection()
	if sel.IsCursor() {
		return handler.NoOp(), nil
	}
	ctx.CursorTo(sel.Head)
	return handler.Continue(), nil
}

// Factories returns the factories for every selection operation.
func Factories() map[string]handler.Factory {
	f := map[string]handler.Factory{
		OpSelectWord:     handler.Fixed(SelectWord{}),
		OpSelectLine:     handler.Fixed(SelectLine{}),
		OpSelectAll:      handler.Fixed(SelectAll{}),
		OpClearSelection: handler.Fixed(ClearSelection{}),
	}
	for name := range extendTargets {
		f[name] = handler.Fixed(Extend{Op: name})
	}
	return f
}
