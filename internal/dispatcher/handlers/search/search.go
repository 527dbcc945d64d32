package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/textobject"
)

// Operation names for search and replace.
const (
	OpFindNext     = "find_next"
	OpFindPrevious = "find_previous"
	OpReplace      = "replace"
	OpReplaceAll   = "replace_all"
)

// replaceSeparator splits a replace parameter into pattern and replacement.
const replaceSeparator = " with "

// literal returns the pattern text object matching text exactly.
func literal(text string) textobject.TextObject {
	return textobject.NewPattern(regexp.QuoteMeta(text), textobject.Inner)
}

// FindNext selects the first occurrence of Pattern at or after the head,
// wrapping to the start of the document.
type FindNext struct {
	Pattern string
}

// Name implements handler.Operation.
func (FindNext) Name() string { return OpFindNext }

// Execute implements handler.Operation.
func (f FindNext) Execute(ctx *execctx.Context) (handler.Result, error) {
	ctx.Registers.SetLastSearch(f.Pattern)
	buf := ctx.Buffer()
	obj := literal(f.Pattern)

	// FindNext reports matches starting strictly after its position.
	rng, ok, err := ctx.Objects.FindNext(buf, ctx.Head()-1, obj)
	if err != nil {
		return handler.NoOp(), err
	}
	wrapped := false
	if !ok {
		if rng, ok, err = ctx.Objects.FindNext(buf, -1, obj); err != nil {
			return handler.NoOp(), err
		}
		wrapped = true
	}
	return selectMatch(ctx, f.Pattern, rng, ok, wrapped), nil
}

// FindPrevious selects the last occurrence of Pattern that ends at or
// before the selection start, wrapping to the end of the document.
type FindPrevious struct {
	Pattern string
}

// Name implements handler.Operation.
func (FindPrevious) Name() string { return OpFindPrevious }

// Execute implements handler.Operation.
func (f FindPrevious) Execute(ctx *execctx.Context) (handler.Result, error) {
	ctx.Registers.SetLastSearch(f.Pattern)
	buf := ctx.Buffer()
	obj := literal(f.Pattern)

	rng, ok, err := ctx.Objects.FindPrev(buf, ctx.Selection().Start(), obj)
	if err != nil {
		return handler.NoOp(), err
	}
	wrapped := false
	if !ok {
		if rng, ok, err = ctx.Objects.FindPrev(buf, buf.Len(), obj); err != nil {
			return handler.NoOp(), err
		}
		wrapped = true
	}
	return selectMatch(ctx, f.Pattern, rng, ok, wrapped), nil
}

// selectMatch selects rng with the head at its end.
func selectMatch(ctx *execctx.Context, pattern string, rng textobject.Range, ok, wrapped bool) handler.Result {
	if !ok {
		return handler.NoOp().WithMessage("pattern not found: " + pattern)
	}
	ctx.SelectRange(rng.Start, rng.End)
	if wrapped {
		return handler.Continue().WithMessage("search: " + pattern + " (wrapped)")
	}
	return handler.Continue().WithMessage("search: " + pattern)
}

// Replace swaps the selection for Replacement when the selected text is
// exactly Pattern.
type Replace struct {
	Pattern     string
	Replacement string
}

// Name implements handler.Operation.
func (Replace) Name() string { return OpReplace }

// Execute implements handler.Operation.
func (r Replace) Execute(ctx *execctx.Context) (handler.Result, error) {
	start, end := ctx.Selection().Bounds()
	if ctx.Buffer().Slice(start, end) != r.Pattern {
		return handler.NoOp(), nil
	}
	changed, err := ctx.Commit(OpReplace, buffer.NewReplace(start, end, r.Replacement))
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	return handler.Continue(), nil
}

// ReplaceAll replaces every occurrence of Pattern in one transaction.
type ReplaceAll struct {
	Pattern     string
	Replacement string
}

// Name implements handler.Operation.
func (ReplaceAll) Name() string { return OpReplaceAll }

// Execute implements handler.Operation.
func (r ReplaceAll) Execute(ctx *execctx.Context) (handler.Result, error) {
	text := ctx.Buffer().Text()
	re := regexp.MustCompile(regexp.QuoteMeta(r.Pattern))
	matches := textobject.MatchRanges(text, re.FindAllStringIndex(text, -1))
	if len(matches) == 0 {
		return handler.NoOp().WithMessage("pattern not found: " + r.Pattern), nil
	}

	edits := make([]buffer.Edit, len(matches))
	for i, m := range matches {
		edits[i] = buffer.NewReplace(m.Start, m.End, r.Replacement)
	}
	changed, err := ctx.Commit(OpReplaceAll, edits...)
	if err != nil || !changed {
		return handler.NoOp(), err
	}
	return handler.Continue().WithMessage("replaced " + strconv.Itoa(len(matches)) + " occurrence(s)"), nil
}

// NewFindNext requires a pattern.
func NewFindNext(param string) (handler.Operation, error) {
	p, err := handler.RequireParam(OpFindNext, param, "a search pattern")
	if err != nil {
		return nil, err
	}
	return FindNext{Pattern: p}, nil
}

// NewFindPrevious requires a pattern.
func NewFindPrevious(param string) (handler.Operation, error) {
	p, err := handler.RequireParam(OpFindPrevious, param, "a search pattern")
	if err != nil {
		return nil, err
	}
	return FindPrevious{Pattern: p}, nil
}

// parseReplace splits "pattern with replacement". The replacement may be
// empty; the pattern may not.
func parseReplace(op, param string) (pattern, replacement string, err error) {
	if param == "" {
		return "", "", handler.InvalidParam(op, param, "requires pattern and replacement")
	}
	pattern, replacement, ok := strings.Cut(param, replaceSeparator)
	if !ok || pattern == "" {
		return "", "", handler.MalformedParam(op, param, `expected "pattern with replacement"`)
	}
	return pattern, replacement, nil
}

// NewReplace parses "pattern with replacement".
func NewReplace(param string) (handler.Operation, error) {
	pattern, replacement, err := parseReplace(OpReplace, param)
	if err != nil {
		return nil, err
	}
	return Replace{Pattern: pattern, Replacement: replacement}, nil
}

// NewReplaceAll parses "pattern with replacement".
func NewReplaceAll(param string) (handler.Operation, error) {
	pattern, replacement, err := parseReplace(OpReplaceAll, param)
	if err != nil {
		return nil, err
	}
	return ReplaceAll{Pattern: pattern, Replacement: replacement}, nil
}

// Factories returns the factories for every search operation.
func Factories() map[string]handler.Factory {
	return map[string]handler.Factory{
		OpFindNext:     NewFindNext,
		OpFindPrevious: NewFindPrevious,
		OpReplace:      NewReplace,
		OpReplaceAll:   NewReplaceAll,
	}
}
