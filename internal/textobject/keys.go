package textobject

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// KeyBinding ties a single-character key to a text object kind, in the
// style of Vim's i<key>/a<key> text objects.
type KeyBinding struct {
	// Key is the character following the i/a prefix.
	Key rune

	// Kind is the kind the key selects.
	Kind Kind

	// Name is a short description for help output.
	Name string
}

// Standard key bindings.
var keyBindings = []KeyBinding{
	{Key: 'g', Kind: KindGrapheme, Name: "grapheme"},
	{Key: 'w', Kind: KindWord, Name: "word"},
	{Key: 'W', Kind: KindBigWord, Name: "WORD"},
	{Key: 'l', Kind: KindLine, Name: "line"},
	{Key: 'p', Kind: KindParagraph, Name: "paragraph"},
	{Key: '(', Kind: KindParentheses, Name: "paren"},
	{Key: ')', Kind: KindParentheses, Name: "paren"},
	{Key: 'b', Kind: KindParentheses, Name: "block"},
	{Key: '[', Kind: KindBrackets, Name: "bracket"},
	{Key: ']', Kind: KindBrackets, Name: "bracket"},
	{Key: '{', Kind: KindBraces, Name: "brace"},
	{Key: '}', Kind: KindBraces, Name: "brace"},
	{Key: 'B', Kind: KindBraces, Name: "bigBlock"},
	{Key: 'f', Kind: KindFunction, Name: "function"},
	{Key: 'c', Kind: KindClass, Name: "class"},
	{Key: 's', Kind: KindStatement, Name: "statement"},
	{Key: 'a', Kind: KindParameter, Name: "parameter"},
	{Key: '#', Kind: KindComment, Name: "comment"},
	{Key: '"', Kind: KindString, Name: "doubleQuote"},
	{Key: '\'', Kind: KindString, Name: "singleQuote"},
	{Key: '`', Kind: KindString, Name: "backtick"},
	{Key: '/', Kind: KindPattern, Name: "pattern"},
}

// KindForKey returns the kind bound to key.
func KindForKey(key rune) (Kind, bool) {
	i := slices.IndexFunc(keyBindings, func(b KeyBinding) bool { return b.Key == key })
	if i < 0 {
		return 0, false
	}
	return keyBindings[i].Kind, true
}

// KeyBindings returns a copy of the key table.
func KeyBindings() []KeyBinding {
	return slices.Clone(keyBindings)
}

// ModeForPrefix maps 'i' and 'a' to Inner and Around.
func ModeForPrefix(prefix rune) (Mode, bool) {
	switch prefix {
	case 'i':
		return Inner, true
	case 'a':
		return Around, true
	default:
		return Inner, false
	}
}

// ParseObject parses a text object description. Two forms are accepted:
//
//	iw  a(  ip  i/foo+        prefix, key, and for '/' a pattern
//	inner word                mode name and kind name
//	around pattern [a-z]+     pattern kinds take the rest as the pattern
func ParseObject(expr string) (TextObject, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return TextObject{}, fmt.Errorf("%w: empty", ErrInvalidObject)
	}

	fields := strings.Fields(expr)
	if mode, ok := parseModeName(fields[0]); ok {
		return parseLong(mode, expr, fields)
	}
	return parseShort(expr)
}

func parseModeName(name string) (Mode, bool) {
	switch strings.ToLower(name) {
	case "inner":
		return Inner, true
	case "around":
		return Around, true
	default:
		return Inner, false
	}
}

func parseLong(mode Mode, expr string, fields []string) (TextObject, error) {
	if len(fields) < 2 {
		return TextObject{}, fmt.Errorf("%w: %q has no kind", ErrInvalidObject, expr)
	}
	kind, ok := ParseKind(strings.ToLower(fields[1]))
	if !ok {
		return TextObject{}, fmt.Errorf("%w: unknown kind %q", ErrInvalidObject, fields[1])
	}
	if kind == KindPattern {
		// Keep the pattern exactly as written after the kind name.
		rest := strings.TrimSpace(expr[strings.Index(expr, fields[1])+len(fields[1]):])
		return patternObject(rest, mode)
	}
	if len(fields) > 2 {
		return TextObject{}, fmt.Errorf("%w: unexpected %q", ErrInvalidObject, strings.Join(fields[2:], " "))
	}
	return New(kind, mode), nil
}

func parseShort(expr string) (TextObject, error) {
	runes := []rune(expr)
	if len(runes) < 2 {
		return TextObject{}, fmt.Errorf("%w: %q", ErrInvalidObject, expr)
	}
	mode, ok := ModeForPrefix(runes[0])
	if !ok {
		return TextObject{}, fmt.Errorf("%w: prefix %q is not i or a", ErrInvalidObject, runes[0])
	}
	kind, ok := KindForKey(runes[1])
	if !ok {
		return TextObject{}, fmt.Errorf("%w: unknown key %q", ErrInvalidObject, runes[1])
	}
	if kind == KindPattern {
		return patternObject(string(runes[2:]), mode)
	}
	if len(runes) > 2 {
		return TextObject{}, fmt.Errorf("%w: trailing %q", ErrInvalidObject, string(runes[2:]))
	}
	return New(kind, mode), nil
}

func patternObject(pattern string, mode Mode) (TextObject, error) {
	if pattern == "" {
		return TextObject{}, fmt.Errorf("%w: missing pattern", ErrInvalidObject)
	}
	if _, err := regexp.Compile(pattern); err != nil {
		return TextObject{}, fmt.Errorf("%w: %v", ErrInvalidObject, err)
	}
	return NewPattern(pattern, mode), nil
}
