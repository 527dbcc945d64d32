// Package execctx provides the execution context for operations.
package execctx

import (
	"go.uber.org/zap"

	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
	"github.com/dshills/editcore/internal/engine/history"
	"github.com/dshills/editcore/internal/register"
	"github.com/dshills/editcore/internal/textobject"
)

// DefaultIndentWidth is the number of spaces one indent level inserts.
const DefaultIndentWidth = 4

// DefaultMode is the mode a new context starts in.
const DefaultMode = "normal"

// Document abstracts the text engine for operations.
// *engine.Engine implements it.
type Document interface {
	// Buffer returns the document text for reading.
	Buffer() *buffer.Buffer

	// Selection state
	Selection() cursor.Selection
	SetSelection(sel cursor.Selection)

	// Commit applies edits as one undoable transaction and repositions
	// the selection. A nil transaction with a nil error means every edit
	// was a no-op.
	Commit(name string, edits []buffer.Edit) (*history.Transaction, error)

	// CommitSelect is Commit with an explicit final selection in
	// post-transaction coordinates.
	CommitSelect(name string, edits []buffer.Edit, after cursor.Selection) (*history.Transaction, error)

	// Undo/redo report false when the stack is empty.
	Undo() (bool, error)
	Redo() (bool, error)
}

// Context provides what an operation needs to run.
type Context struct {
	// Document is the text, selection and history being edited.
	Document Document

	// Objects resolves text objects.
	Objects *textobject.Registry

	// Registers hold copied and deleted text.
	Registers *register.Store

	// Register is the register the next copy, cut or paste uses.
	Register rune

	// Logger receives operation diagnostics.
	Logger *zap.Logger

	// Mode is the name of the current editor mode.
	Mode string

	// IndentWidth is the number of spaces one indent level inserts.
	IndentWidth int
}

// New creates an execution context for doc with the default text object
// registry and an empty register store.
func New(doc Document) *Context {
	return &Context{
		Document:    doc,
		Objects:     textobject.NewDefaultRegistry(),
		Registers:   register.NewStore(),
		Register:    register.Unnamed,
		Logger:      zap.NewNop(),
		Mode:        DefaultMode,
		IndentWidth: DefaultIndentWidth,
	}
}

// WithObjects returns the context with the text object registry set.
func (ctx *Context) WithObjects(objects *textobject.Registry) *Context {
	ctx.Objects = objects
	return ctx
}

// WithRegisters returns the context with the register store set.
func (ctx *Context) WithRegisters(registers *register.Store) *Context {
	ctx.Registers = registers
	return ctx
}

// WithLogger returns the context with the logger set. A nil logger
// discards output.
func (ctx *Context) WithLogger(logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	ctx.Logger = logger
	return ctx
}

// WithMode returns the context with the current mode set.
func (ctx *Context) WithMode(mode string) *Context {
	if mode != "" {
		ctx.Mode = mode
	}
	return ctx
}

// WithIndentWidth returns the context with the indent width set.
func (ctx *Context) WithIndentWidth(width int) *Context {
	if width > 0 {
		ctx.IndentWidth = width
	}
	return ctx
}

// Validate checks that the context has all required components.
func (ctx *Context) Validate() error {
	if ctx.Document == nil {
		return ErrMissingBuffer
	}
	if ctx.Objects == nil {
		return ErrMissingObjects
	}
	if ctx.Registers == nil {
		return ErrMissingRegisters
	}
	return nil
}

// Buffer returns the document text.
func (ctx *Context) Buffer() *buffer.Buffer {
	return ctx.Document.Buffer()
}

// Selection returns the current selection.
func (ctx *Context) Selection() cursor.Selection {
	return ctx.Document.Selection()
}

// SetSelection replaces the current selection.
func (ctx *Context) SetSelection(sel cursor.Selection) {
	ctx.Document.SetSelection(sel)
}

// Head returns the moving end of the selection.
func (ctx *Context) Head() int {
	return ctx.Document.Selection().Head
}

// CursorTo collapses the selection to pos.
func (ctx *Context) CursorTo(pos int) {
	ctx.Document.SetSelection(cursor.NewCursorSelection(pos))
}

// SelectRange selects [anchor, head) with head as the moving end.
func (ctx *Context) SelectRange(anchor, head int) {
	ctx.Document.SetSelection(cursor.NewSelection(anchor, head))
}

// ExtendTo moves the head and keeps the anchor.
func (ctx *Context) ExtendTo(head int) {
	sel := ctx.Document.Selection()
	sel.Extend(head)
	ctx.Document.SetSelection(sel)
}

// Commit applies edits as one transaction. It reports whether anything
// changed.
func (ctx *Context) Commit(name string, edits ...buffer.Edit) (bool, error) {
	tx, err := ctx.Document.Commit(name, edits)
	if err != nil {
		return false, err
	}
	return tx != nil, nil
}

// CommitSelect applies edits as one transaction that leaves after as the
// selection. after is in post-transaction coordinates and is part of the
// transaction, so redo restores it.
func (ctx *Context) CommitSelect(name string, after cursor.Selection, edits ...buffer.Edit) (bool, error) {
	tx, err := ctx.Document.CommitSelect(name, edits, after)
	if err != nil {
		return false, err
	}
	return tx != nil, nil
}

// Stats summarizes the document and the cursor position.
type Stats struct {
	TotalChars    int
	TotalLines    int
	SelectedChars int

	// Line and Column are 1-based.
	Line   int
	Column int

	Revision uint64
}

// Stats returns statistics about the document.
func (ctx *Context) Stats() Stats {
	buf := ctx.Buffer()
	sel := ctx.Selection()
	line := buf.LineOf(sel.Head)
	return Stats{
		TotalChars:    buf.Len(),
		TotalLines:    buf.LineCount(),
		SelectedChars: sel.Len(),
		Line:          line + 1,
		Column:        sel.Head - buf.OffsetOfLine(line) + 1,
		Revision:      buf.Revision(),
	}
}
