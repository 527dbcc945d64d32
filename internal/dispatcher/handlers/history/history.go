package history

import (
	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
)

// Operation names for history.
const (
	OpUndo = "undo"
	OpRedo = "redo"
)

// Undo reverts the most recent transaction.
type Undo struct{}

// Name implements handler.Operation.
func (Undo) Name() string { return OpUndo }

// Execute implements handler.Operation.
func (Undo) Execute(ctx *execctx.Context) (handler.Result, error) {
	return step(ctx.Document.Undo, "already at oldest change")
}

// Redo reapplies the most recently undone transaction.
type Redo struct{}

// Name implements handler.Operation.
func (Redo) Name() string { return OpRedo }

// Execute implements handler.Operation.
func (Redo) Execute(ctx *execctx.Context) (handler.Result, error) {
	return step(ctx.Document.Redo, "already at newest change")
}

func step(fn func() (bool, error), empty string) (handler.Result, error) {
	ok, err := fn()
	if err != nil {
		return handler.NoOp(), err
	}
	if !ok {
		return handler.NoOp().WithMessage(empty), nil
	}
	return handler.Continue(), nil
}

// Factories returns the factories for undo and redo.
func Factories() map[string]handler.Factory {
	return map[string]handler.Factory{
		OpUndo: handler.Fixed(Undo{}),
		OpRedo: handler.Fixed(Redo{}),
	}
}
