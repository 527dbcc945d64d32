package textobject

import (
	"fmt"

	"github.com/dshills/editcore/internal/engine/buffer"
)

// Range is a half-open span of character offsets.
type Range = buffer.Range

// Kind identifies a family of text objects.
type Kind uint8

const (
	KindGrapheme Kind = iota
	KindWord
	KindBigWord
	KindLine
	KindParagraph
	KindParentheses
	KindBrackets
	KindBraces

	// Syntax-aware kinds. No finder in this module resolves them.
	KindFunction
	KindClass
	KindStatement
	KindParameter
	KindComment
	KindString

	// KindPattern matches a regular expression given in TextObject.Pattern.
	KindPattern
)

var kindNames = [...]string{
	KindGrapheme:    "grapheme",
	KindWord:        "word",
	KindBigWord:     "bigword",
	KindLine:        "line",
	KindParagraph:   "paragraph",
	KindParentheses: "parentheses",
	KindBrackets:    "brackets",
	KindBraces:      "braces",
	KindFunction:    "function",
	KindClass:       "class",
	KindStatement:   "statement",
	KindParameter:   "parameter",
	KindComment:     "comment",
	KindString:      "string",
	KindPattern:     "pattern",
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsSyntax returns true for kinds that need a syntax tree to resolve.
func (k Kind) IsSyntax() bool {
	return k >= KindFunction && k <= KindString
}

// ParseKind maps a kind name back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// delimiters returns the open and close characters of a bracket kind.
func (k Kind) delimiters() (open, close rune, ok bool) {
	switch k {
	case KindParentheses:
		return '(', ')', true
	case KindBrackets:
		return '[', ']', true
	case KindBraces:
		return '{', '}', true
	default:
		return 0, 0, false
	}
}

// Mode selects whether delimiters and surrounding blanks are included.
type Mode uint8

const (
	// Inner excludes delimiters and surrounding whitespace.
	Inner Mode = iota

	// Around includes them.
	Around
)

// String returns a string representation of the mode.
func (m Mode) String() string {
	if m == Around {
		return "around"
	}
	return "inner"
}

// TextObject is a kind/mode pair. Pattern is only used by KindPattern.
type TextObject struct {
	Kind    Kind
	Mode    Mode
	Pattern string
}

// New returns a text object of the given kind and mode.
func New(kind Kind, mode Mode) TextObject {
	return TextObject{Kind: kind, Mode: mode}
}

// NewPattern returns a KindPattern text object.
func NewPattern(pattern string, mode Mode) TextObject {
	return TextObject{Kind: KindPattern, Mode: mode, Pattern: pattern}
}

// String returns a human-readable representation such as "inner word".
func (o TextObject) String() string {
	if o.Kind == KindPattern {
		return fmt.Sprintf("%s pattern %q", o.Mode, o.Pattern)
	}
	return fmt.Sprintf("%s %s", o.Mode, o.Kind)
}
