package editor

import (
	"strings"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
)

// Operation names for indentation.
const (
	OpIndentSelection   = "indent_selection"
	OpUnindentSelection = "unindent_selection"
)

// selectedLines returns the first and last line touched by sel. A
// selection that ends exactly at a line start does not include that line.
func selectedLines(buf *buffer.Buffer, sel cursor.Selection) (first, last int) {
	start, end := sel.Bounds()
	first = buf.LineOf(start)
	last = buf.LineOf(end)
	if last > first && end == buf.OffsetOfLine(last) {
		last--
	}
	return first, last
}

// Indent inserts one indent level at the start of every selected line
// that has content.
type Indent struct{}

// Name implements handler.Operation.
func (Indent) Name() string { return OpIndentSelection }

// Execute implements handler.Operation.
func (Indent) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	unit := strings.Repeat(" ", ctx.IndentWidth)
	first, last := selectedLines(buf, ctx.Selection())

	var edits []buffer.Edit
	for line := first; line <= last; line++ {
		if buf.LineText(line) == "" {
			continue
		}
		edits = append(edits, buffer.NewInsert(buf.OffsetOfLine(line), unit))
	}
	return commitKeepingSelection(ctx, OpIndentSelection, edits)
}

// Unindent removes one leading tab, or up to one indent level of spaces,
// from every selected line.
type Unindent struct{}

// Name implements handler.Operation.
func (Unindent) Name() string { return OpUnindentSelection }

// Execute implements handler.Operation.
func (Unindent) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	first, last := selectedLines(buf, ctx.Selection())

	var edits []buffer.Edit
	for line := first; line <= last; line++ {
		if n := leadingIndent(buf.LineText(line), ctx.IndentWidth); n > 0 {
			start := buf.OffsetOfLine(line)
			edits = append(edits, buffer.NewDelete(start, start+n))
		}
	}
	return commitKeepingSelection(ctx, OpUnindentSelection, edits)
}

// leadingIndent returns how many characters one unindent removes from text.
func leadingIndent(text string, width int) int {
	if strings.HasPrefix(text, "\t") {
		return 1
	}
	n := 0
	for n < len(text) && n < width && text[n] == ' ' {
		n++
	}
	return n
}

// commitKeepingSelection applies edits as one transaction and maps the
// previous selection through them instead of collapsing it.
func commitKeepingSelection(ctx *execctx.Context, name string, edits []buffer.Edit) (handler.Result, error) {
	if len(edits) == 0 {
		return handler.NoOp(), nil
	}
	sel := ctx.Selection()

	// A cursor at a line start follows the inserted indent.
	sticky := sel.IsCursor()
	after := cursor.NewSelection(mapOffset(sel.Anchor, edits, sticky), mapOffset(sel.Head, edits, sticky))
	changed, err := ctx.CommitSelect(name, after, edits...)
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}

// mapOffset translates a pre-transaction offset through edits. Offsets
// inside a removed range land at its start. An insertion exactly at p moves
// p only when sticky is set.
func mapOffset(p int, edits []buffer.Edit, sticky bool) int {
	out := p
	for _, e := range edits {
		switch {
		case e.End < p, e.End == p && (e.Start < p || sticky):
			out += e.Delta()
		case e.Start < p:
			out -= p - e.Start
		}
	}
	return out
}
