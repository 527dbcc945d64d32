package cursor

import (
	"fmt"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
)

// Operation names for cursor movements.
const (
	OpMoveLeft              = "move_left"
	OpMoveRight             = "move_right"
	OpMoveUp                = "move_up"
	OpMoveDown              = "move_down"
	OpMoveLineStart         = "move_line_start"
	OpMoveLineEnd           = "move_line_end"
	OpMoveWordForward       = "move_word_forward"
	OpMoveWordBackward      = "move_word_backward"
	OpMoveBigWordForward    = "move_big_word_forward"
	OpMoveBigWordBackward   = "move_big_word_backward"
	OpMoveDocumentStart     = "move_document_start"
	OpMoveDocumentEnd       = "move_document_end"
	OpMoveMatchingBracket   = "move_matching_bracket"
	OpMoveParagraphForward  = "move_paragraph_forward"
	OpMoveParagraphBackward = "move_paragraph_backward"

	OpJumpToLine      = "jump_to_line"
	OpJumpToCharacter = "jump_to_character"
)

// Move collapses the selection to the target of a named motion.
type Move struct {
	Op string
}

// Name implements handler.Operation.
func (m Move) Name() string { return m.Op }

// Execute implements handler.Operation.
func (m Move) Execute(ctx *execctx.Context) (handler.Result, error) {
	target, ok := targets[m.Op]
	if !ok {
		return handler.NoOp(), fmt.Errorf("cursor: unknown motion %q", m.Op)
	}

	sel := ctx.Selection()
	pos := target(ctx.Buffer(), sel.Head)
	if sel.IsCursor() && pos == sel.Head {
		return handler.NoOp(), nil
	}
	ctx.CursorTo(pos)
	return handler.Continue(), nil
}

// JumpToLine moves the cursor to the start of a 1-based line. Lines past
// the end clamp to the last line.
type JumpToLine struct {
	Line int
}

// Name implements handler.Operation.
func (JumpToLine) Name() string { return OpJumpToLine }

// Execute implements handler.Operation.
func (j JumpToLine) Execute(ctx *execctx.Context) (handler.Result, error) {
	buf := ctx.Buffer()
	line := min(max(j.Line-1, 0), buf.LineCount()-1)
	ctx.CursorTo(buf.OffsetOfLine(line))
	return handler.Continue(), nil
}

// JumpToCharacter moves the cursor to a character offset, clamped to the
// document.
type JumpToCharacter struct {
	Offset int
}

// Name implements handler.Operation.
func (JumpToCharacter) Name() string { return OpJumpToCharacter }

// Execute implements handler.Operation.
func (j JumpToCharacter) Execute(ctx *execctx.Context) (handler.Result, error) {
	ctx.CursorTo(min(j.Offset, ctx.Buffer().Len()))
	return handler.Continue(), nil
}

// NewJumpToLine parses a 1-based line number.
func NewJumpToLine(param string) (handler.Operation, error) {
	n, err := handler.PositiveInt(OpJumpToLine, param, 0)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, handler.InvalidParam(OpJumpToLine, param, "requires a line number")
	}
	return JumpToLine{Line: n}, nil
}

// NewJumpToCharacter parses a character offset.
func NewJumpToCharacter(param string) (handler.Operation, error) {
	n, err := handler.NonNegativeInt(OpJumpToCharacter, param)
	if err != nil {
		return nil, err
	}
	return JumpToCharacter{Offset: n}, nil
}

// Factories returns the factories for every cursor operation.
func Factories() map[string]handler.Factory {
	f := make(map[string]handler.Factory, len(targets)+2)
	for name := range targets {
		f[name] = handler.Fixed(Move{Op: name})
	}
	f[OpJumpToLine] = NewJumpToLine
	f[OpJumpToCharacter] = NewJumpToCharacter
	return f
}
