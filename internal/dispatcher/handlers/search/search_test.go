package search

import (
	"errors"
	"testing"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine"
	"github.com/dshills/editcore/internal/engine/cursor"
)

const text = "foo bar foo baz foo"

func newContext(text string, anchor, head int) *execctx.Context {
	ctx := execctx.New(engine.New(engine.WithContent(text)))
	ctx.SelectRange(anchor, head)
	return ctx
}

func TestFindNext(t *testing.T) {
	ctx := newContext(text, 0, 0)
	op := FindNext{Pattern: "foo"}

	want := []struct {
		sel     cursor.Selection
		message string
	}{
		{cursor.NewSelection(0, 3), "search: foo"},
		{cursor.NewSelection(8, 11), "search: foo"},
		{cursor.NewSelection(16, 19), "search: foo"},
		{cursor.NewSelection(0, 3), "search: foo (wrapped)"},
	}
	for i, w := range want {
		res, err := op.Execute(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if got := ctx.Selection(); got != w.sel {
			t.Errorf("step %d: selection = %v, want %v", i, got, w.sel)
		}
		if res.Message != w.message {
			t.Errorf("step %d: message = %q, want %q", i, res.Message, w.message)
		}
	}

	if got, _ := ctx.Registers.Get('/'); got != "foo" {
		t.Errorf(`register "/" = %q, want "foo"`, got)
	}
}

func TestFindPrevious(t *testing.T) {
	ctx := newContext(text, 10, 10)
	op := FindPrevious{Pattern: "foo"}

	want := []cursor.Selection{
		cursor.NewSelection(0, 3),
		cursor.NewSelection(16, 19),
		cursor.NewSelection(8, 11),
	}
	for i, w := range want {
		if _, err := op.Execute(ctx); err != nil {
			t.Fatal(err)
		}
		if got := ctx.Selection(); got != w {
			t.Errorf("step %d: selection = %v, want %v", i, got, w)
		}
	}
}

func TestFindNotFound(t *testing.T) {
	ctx := newContext(text, 5, 5)
	for _, op := range []handler.Operation{FindNext{"qux"}, FindPrevious{"qux"}} {
		res, err := op.Execute(ctx)
		if err != nil {
			t.Fatal(err)
		}
		if res.Status != handler.StatusNoOp || res.Message != "pattern not found: qux" {
			t.Errorf("%s: got %v %q", op.Name(), res, res.Message)
		}
		if ctx.Selection() != cursor.NewCursorSelection(5) {
			t.Errorf("%s moved the selection to %v", op.Name(), ctx.Selection())
		}
	}
}

func TestFindLiteral(t *testing.T) {
	ctx := newContext("a.b axb héllo", 0, 0)

	if _, err := (FindNext{Pattern: "x"}).Execute(ctx); err != nil {
		t.Fatal(err)
	}
	if got, want := ctx.Selection(), cursor.NewSelection(5, 6); got != want {
		t.Errorf("x: selection = %v, want %v", got, want)
	}

	ctx.CursorTo(0)
	if _, err := (FindNext{Pattern: "."}).Execute(ctx); err != nil {
		t.Fatal(err)
	}
	if got, want := ctx.Selection(), cursor.NewSelection(1, 2); got != want {
		t.Errorf(".: selection = %v, want %v", got, want)
	}

	if _, err := (FindNext{Pattern: "llo"}).Execute(ctx); err != nil {
		t.Fatal(err)
	}
	if got, want := ctx.Selection(), cursor.NewSelection(10, 13); got != want {
		t.Errorf("llo: selection = %v, want %v", got, want)
	}
}

func TestReplace(t *testing.T) {
	ctx := newContext(text, 4, 7)
	res, err := (Replace{Pattern: "bar", Replacement: "BAR!"}).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsOK() {
		t.Errorf("expected ok, got %v", res)
	}
	if got, want := ctx.Buffer().Text(), "foo BAR! foo baz foo"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	if ctx.Head() != 8 {
		t.Errorf("head = %d, want 8", ctx.Head())
	}

	// Selection does not hold the pattern.
	ctx.SelectRange(0, 3)
	res, err = (Replace{Pattern: "bar", Replacement: "x"}).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != handler.StatusNoOp {
		t.Errorf("expected no-op, got %v", res)
	}
}

func TestReplaceAll(t *testing.T) {
	ctx := newContext(text, 0, 0)
	res, err := (ReplaceAll{Pattern: "foo", Replacement: "x"}).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := ctx.Buffer().Text(), "x bar x baz x"; got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
	if res.Message != "replaced 3 occurrence(s)" {
		t.Errorf("message = %q", res.Message)
	}
	if ctx.Head() != 13 {
		t.Errorf("head = %d, want 13", ctx.Head())
	}

	eng := ctx.Document.(*engine.Engine)
	if ok, err := eng.Undo(); !ok || err != nil {
		t.Fatalf("Undo = %v, %v", ok, err)
	}
	if got := eng.Text(); got != text {
		t.Errorf("after one undo: %q, want %q", got, text)
	}
	if eng.CanUndo() {
		t.Error("replace_all must record exactly one transaction")
	}
}

func TestReplaceAllNotFound(t *testing.T) {
	ctx := newContext(text, 0, 0)
	res, err := (ReplaceAll{Pattern: "qux", Replacement: "x"}).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != handler.StatusNoOp {
		t.Errorf("expected no-op, got %v", res)
	}
}

func TestFactories(t *testing.T) {
	tests := []struct {
		op      string
		param   string
		want    handler.Operation
		wantErr error
	}{
		{OpFindNext, "foo", FindNext{"foo"}, nil},
		{OpFindNext, "", nil, handler.ErrInvalidParameter},
		{OpFindPrevious, "foo bar", FindPrevious{"foo bar"}, nil},
		{OpFindPrevious, "", nil, handler.ErrInvalidParameter},
		{OpReplace, "foo with bar", Replace{"foo", "bar"}, nil},
		{OpReplace, "foo with ", Replace{"foo", ""}, nil},
		{OpReplace, "a with b with c", Replace{"a", "b with c"}, nil},
		{OpReplace, "foo", nil, handler.ErrMalformedParameter},
		{OpReplace, " with bar", nil, handler.ErrMalformedParameter},
		{OpReplace, "", nil, handler.ErrInvalidParameter},
		{OpReplaceAll, "x with y", ReplaceAll{"x", "y"}, nil},
		{OpReplaceAll, "x y", nil, handler.ErrMalformedParameter},
	}

	factories := Factories()
	for _, tt := range tests {
		t.Run(tt.op+"/"+tt.param, func(t *testing.T) {
			got, err := factories[tt.op](tt.param)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %#v, want %#v", got, tt.want)
			}
		})
	}

	if errors.Is(mustErr(factories[OpReplace]("")), handler.ErrMalformedParameter) {
		t.Error("a missing parameter is not a syntax error")
	}
}

func mustErr(_ handler.Operation, err error) error { return err }
