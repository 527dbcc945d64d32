package mode

import (
	"errors"
	"testing"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine"
	"github.com/dshills/editcore/internal/engine/cursor"
)

func newContext(text string) *execctx.Context {
	return execctx.New(engine.New(engine.WithContent(text)))
}

func TestSwitchMode(t *testing.T) {
	ctx := newContext("hello world")
	ctx.SelectRange(0, 5)

	res, err := (SwitchMode{Mode: Insert}).Execute(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if res.Action != handler.ActionSwitchMode || res.Mode != Insert {
		t.Errorf("got %v, want switch-mode(insert)", res)
	}
	if ctx.Selection() != cursor.NewSelection(0, 5) {
		t.Errorf("insert mode changed the selection: %v", ctx.Selection())
	}

	if _, err := (SwitchMode{Mode: Normal}).Execute(ctx); err != nil {
		t.Fatal(err)
	}
	if ctx.Selection() != cursor.NewCursorSelection(5) {
		t.Errorf("normal mode should collapse onto the head, got %v", ctx.Selection())
	}
}

func TestExit(t *testing.T) {
	res, err := (Exit{}).Execute(newContext(""))
	if err != nil {
		t.Fatal(err)
	}
	if !res.IsExit() {
		t.Errorf("got %v, want exit", res)
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		param    string
		wantExit bool
		wantHead int
		wantErr  bool
	}{
		{"q", true, 0, false},
		{" quit ", true, 0, false},
		{"2", false, 6, false},
		{"99", false, 13, false},
		{"0", false, 0, true},
		{"w", false, 0, true},
		{"wq", false, 0, true},
		{"", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.param, func(t *testing.T) {
			op, err := NewCommand(tt.param)
			if tt.wantErr {
				if !errors.Is(err, handler.ErrInvalidParameter) {
					t.Errorf("expected ErrInvalidParameter, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			ctx := newContext("first\nsecond\nthird")
			res, err := op.Execute(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if res.IsExit() != tt.wantExit {
				t.Errorf("exit = %v, want %v", res.IsExit(), tt.wantExit)
			}
			if !tt.wantExit && ctx.Head() != tt.wantHead {
				t.Errorf("head = %d, want %d", ctx.Head(), tt.wantHead)
			}
			if got, _ := ctx.Registers.Get(':'); got == "" {
				t.Error(`command line not stored in ":"`)
			}
		})
	}
}

func TestFactories(t *testing.T) {
	f := Factories()

	op, err := f[OpSwitchMode]("visual")
	if err != nil || op != (SwitchMode{Mode: "visual"}) {
		t.Errorf("switch_mode visual = %v, %v", op, err)
	}
	if _, err := f[OpSwitchMode](""); !errors.Is(err, handler.ErrInvalidParameter) {
		t.Errorf("switch_mode without a name: %v", err)
	}
	if op, _ := f[OpExit]("ignored"); op != (Exit{}) {
		t.Errorf("exit = %v", op)
	}
}
