package editor

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
)

// Operation names for case conversion.
const (
	OpUppercase  = "uppercase_selection"
	OpLowercase  = "lowercase_selection"
	OpToggleCase = "toggle_case_selection"
)

var converters = map[string]func(string) string{
	OpUppercase:  upper,
	OpLowercase:  lower,
	OpToggleCase: toggleCase,
}

// A cases.Caser may keep state, so each call builds its own.
func upper(s string) string { return cases.Upper(language.Und).String(s) }

func lower(s string) string { return cases.Lower(language.Und).String(s) }

// toggleCase swaps the case of each letter. Runes without a simple
// case mapping are kept.
func toggleCase(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsUpper(r):
			return unicode.ToLower(r)
		case unicode.IsLower(r):
			return unicode.ToUpper(r)
		default:
			return r
		}
	}, s)
}

// ChangeCase rewrites the selected text and keeps the selection.
type ChangeCase struct {
	Op string
}

// Name implements handler.Operation.
func (c ChangeCase) Name() string { return c.Op }

// Execute implements handler.Operation.
func (c ChangeCase) Execute(ctx *execctx.Context) (handler.Result, error) {
	convert, ok := converters[c.Op]
	if !ok {
		return handler.NoOp(), fmt.Errorf("editor: unknown case change %q", c.Op)
	}
	sel := ctx.Selection()
	if sel.IsCursor() {
		return handler.NoOp(), nil
	}

	start, end := sel.Bounds()
	old := ctx.Buffer().Slice(start, end)
	text := convert(old)
	if text == old {
		return handler.NoOp(), nil
	}
	// Full case mapping can change the length (ß to SS).
	newEnd := start + utf8.RuneCountInString(text)
	after := cursor.NewSelection(start, newEnd)
	if !sel.IsForward() {
		after = cursor.NewSelection(newEnd, start)
	}
	if _, err := ctx.CommitSelect(c.Op, after, buffer.NewReplace(start, end, text)); err != nil {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}
