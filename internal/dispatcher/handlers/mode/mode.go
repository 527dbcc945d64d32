package mode

import (
	"strconv"
	"strings"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	cursorops "github.com/dshills/editcore/internal/dispatcher/handlers/cursor"
)

// Operation names for mode and session control.
const (
	OpSwitchMode = "switch_mode"
	OpExit       = "exit"
	OpCommand    = "command"
)

// Mode names with special handling.
const (
	Normal = "normal"
	Insert = "insert"
)

// SwitchMode requests a change to Mode.
type SwitchMode struct {
	Mode string
}

// Name implements handler.Operation.
func (SwitchMode) Name() string { return OpSwitchMode }

// Execute implements handler.Operation.
func (s SwitchMode) Execute(ctx *execctx.Context) (handler.Result, error) {
	if s.Mode == Normal {
		ctx.CursorTo(ctx.Head())
	}
	return handler.SwitchMode(s.Mode), nil
}

// NewSwitchMode requires a mode name.
func NewSwitchMode(param string) (handler.Operation, error) {
	name, err := handler.RequireParam(OpSwitchMode, strings.TrimSpace(param), "a mode name")
	if err != nil {
		return nil, err
	}
	return SwitchMode{Mode: name}, nil
}

// Exit ends the session.
type Exit struct{}

// Name implements handler.Operation.
func (Exit) Name() string { return OpExit }

// Execute implements handler.Operation.
func (Exit) Execute(*execctx.Context) (handler.Result, error) {
	return handler.Exit(), nil
}

// Command is a parsed command line.
type Command struct {
	Text string
	Quit bool
	Line int
}

// Name implements handler.Operation.
func (Command) Name() string { return OpCommand }

// Execute implements handler.Operation.
func (c Command) Execute(ctx *execctx.Context) (handler.Result, error) {
	ctx.Registers.SetLastCommand(c.Text)
	if c.Quit {
		return handler.Exit(), nil
	}
	return cursorops.JumpToLine{Line: c.Line}.Execute(ctx)
}

// NewCommand parses a command line. Write commands are not supported:
// persistence belongs to the caller.
func NewCommand(param string) (handler.Operation, error) {
	text := strings.TrimSpace(param)
	switch text {
	case "":
		return nil, handler.InvalidParam(OpCommand, param, "requires a command")
	case "q", "quit", "q!":
		return Command{Text: text, Quit: true}, nil
	}
	if n, err := strconv.Atoi(text); err == nil {
		if n <= 0 {
			return nil, handler.InvalidParam(OpCommand, param, "line numbers start at 1")
		}
		return Command{Text: text, Line: n}, nil
	}
	return nil, handler.InvalidParam(OpCommand, param, "unknown command")
}

// Factories returns the factories for every mode operation.
func Factories() map[string]handler.Factory {
	return map[string]handler.Factory{
		OpSwitchMode: NewSwitchMode,
		OpExit:       handler.Fixed(Exit{}),
		OpCommand:    NewCommand,
	}
}
