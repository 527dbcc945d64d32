package object

import (
	"fmt"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/textobject"
)

// Operation names for text object operations.
const (
	OpSelectObject = "select_object"
	OpDeleteObject = "delete_object"
	OpChangeObject = "change_object"
	OpNextObject   = "next_object"
	OpPrevObject   = "prev_object"
)

// insertMode is the mode change_object switches to.
const insertMode = "insert"

// Object runs the operation Op against a resolved text object.
type Object struct {
	Op     string
	Object textobject.TextObject
}

// Name implements handler.Operation.
func (o Object) Name() string { return o.Op }

// Execute implements handler.Operation.
func (o Object) Execute(ctx *execctx.Context) (handler.Result, error) {
	rng, ok, err := o.resolve(ctx)
	if err != nil {
		return handler.NoOp(), err
	}
	if !ok || rng.IsEmpty() {
		return handler.NoOp().WithMessage("no " + o.Object.String()), nil
	}

	switch o.Op {
	case OpSelectObject, OpNextObject, OpPrevObject:
		ctx.SelectRange(rng.Start, rng.End)
		return handler.Continue(), nil
	case OpDeleteObject:
		return o.remove(ctx, rng)
	case OpChangeObject:
		if _, err := o.remove(ctx, rng); err != nil {
			return handler.NoOp(), err
		}
		return handler.SwitchMode(insertMode), nil
	default:
		return handler.NoOp(), fmt.Errorf("object: unknown operation %q", o.Op)
	}
}

// resolve finds the object relative to the selection.
func (o Object) resolve(ctx *execctx.Context) (textobject.Range, bool, error) {
	buf := ctx.Buffer()
	switch o.Op {
	case OpNextObject:
		return ctx.Objects.FindNext(buf, ctx.Head(), o.Object)
	case OpPrevObject:
		return ctx.Objects.FindPrev(buf, ctx.Selection().Start(), o.Object)
	default:
		return ctx.Objects.FindAt(buf, ctx.Head(), o.Object)
	}
}

// remove deletes rng and records it in the active register. Line objects
// are stored linewise.
func (o Object) remove(ctx *execctx.Context, rng textobject.Range) (handler.Result, error) {
	text := ctx.Buffer().Slice(rng.Start, rng.End)
	changed, err := ctx.Commit(o.Op, buffer.NewDelete(rng.Start, rng.End))
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	ctx.Registers.Delete(ctx.Register, text, o.Object.Kind == textobject.KindLine)
	return handler.Continue(), nil
}

// factory parses the object description for op.
func factory(op string) handler.Factory {
	return func(param string) (handler.Operation, error) {
		if param == "" {
			return nil, handler.InvalidParam(op, param, "requires a text object")
		}
		obj, err := textobject.ParseObject(param)
		if err != nil {
			return nil, handler.MalformedParam(op, param, err.Error())
		}
		return Object{Op: op, Object: obj}, nil
	}
}

// Factories returns the factories for every text object operation.
func Factories() map[string]handler.Factory {
	f := make(map[string]handler.Factory)
	for _, op := range []string{OpSelectObject, OpDeleteObject, OpChangeObject, OpNextObject, OpPrevObject} {
		f[op] = factory(op)
	}
	return f
}
