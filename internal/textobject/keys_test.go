package textobject

import (
	"errors"
	"testing"
)

func TestParseObject(t *testing.T) {
	tests := []struct {
		expr string
		want TextObject
	}{
		{"iw", New(KindWord, Inner)},
		{"aW", New(KindBigWord, Around)},
		{"a(", New(KindParentheses, Around)},
		{"i)", New(KindParentheses, Inner)},
		{"ib", New(KindParentheses, Inner)},
		{"aB", New(KindBraces, Around)},
		{"ip", New(KindParagraph, Inner)},
		{"il", New(KindLine, Inner)},
		{"ig", New(KindGrapheme, Inner)},
		{"if", New(KindFunction, Inner)},
		{`i"`, New(KindString, Inner)},
		{"i/fo+", NewPattern("fo+", Inner)},
		{"inner word", New(KindWord, Inner)},
		{" around  brackets ", New(KindBrackets, Around)},
		{"around pattern [a-z]+ x", NewPattern("[a-z]+ x", Around)},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := ParseObject(tt.expr)
			if err != nil {
				t.Fatalf("ParseObject: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseObjectErrors(t *testing.T) {
	for _, expr := range []string{"", "w", "xw", "iz", "iww", "inner", "inner nothing", "inner word extra", "i/", "a/(", "around pattern"} {
		t.Run(expr, func(t *testing.T) {
			if _, err := ParseObject(expr); !errors.Is(err, ErrInvalidObject) {
				t.Errorf("expected ErrInvalidObject, got %v", err)
			}
		})
	}
}

func TestKindNames(t *testing.T) {
	for _, b := range KeyBindings() {
		k, ok := ParseKind(b.Kind.String())
		if !ok || k != b.Kind {
			t.Errorf("kind %v does not round trip through its name", b.Kind)
		}
	}
	if !KindFunction.IsSyntax() || KindWord.IsSyntax() || KindPattern.IsSyntax() {
		t.Error("IsSyntax misclassifies kinds")
	}
}
