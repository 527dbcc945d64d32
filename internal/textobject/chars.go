package textobject

import (
	"unicode"

	"github.com/dshills/editcore/internal/engine/grapheme"
)

// charClass groups characters for word boundaries.
type charClass uint8

const (
	classSpace charClass = iota
	classWord
	classPunct
)

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isBlank reports horizontal whitespace. Newlines are not blank.
func isBlank(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

func wordClass(r rune) charClass {
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case isWordChar(r):
		return classWord
	default:
		return classPunct
	}
}

func bigWordClass(r rune) charClass {
	if unicode.IsSpace(r) {
		return classSpace
	}
	return classWord
}

// classAt returns the class of the character at pos; out of range is space.
func classAt(nav Navigator, pos int, class func(rune) charClass) charClass {
	r, ok := nav.CharAt(pos)
	if !ok {
		return classSpace
	}
	return class(r)
}

// lineBounds returns [start, end) of line including its terminator.
func lineBounds(nav Navigator, line int) (int, int) {
	start := nav.OffsetOfLine(line)
	if line+1 < nav.LineCount() {
		return start, nav.OffsetOfLine(line + 1)
	}
	return start, nav.Len()
}

// LineContentEnd returns the offset just before the terminator of line.
func LineContentEnd(nav Navigator, line int) int {
	start, end := lineBounds(nav, line)
	if end > start {
		if r, _ := nav.CharAt(end - 1); r == '\n' {
			return end - 1
		}
	}
	return end
}

// isBlankLine reports whether every character of line is whitespace.
// An empty line is blank.
func isBlankLine(nav Navigator, line int) bool {
	for r := range nav.LineRunes(line) {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// NextGrapheme returns the end of the grapheme cluster that starts at or
// contains pos. It reports false at the end of the document.
func NextGrapheme(nav Navigator, pos int) (int, bool) {
	if pos < 0 || pos >= nav.Len() {
		return nav.Len(), false
	}
	start, end := lineBounds(nav, nav.LineOf(pos))
	text := nav.Slice(start, end)

	b, ok := grapheme.NextBoundary(text, grapheme.ByteOffset(text, pos-start))
	if !ok {
		return pos + 1, true
	}
	return start + grapheme.RuneOffset(text, b), true
}

// PrevGrapheme returns the start of the grapheme cluster that ends at or
// contains pos-1. It reports false at the start of the document.
func PrevGrapheme(nav Navigator, pos int) (int, bool) {
	if pos <= 0 {
		return 0, false
	}
	pos = min(pos, nav.Len())
	start, end := lineBounds(nav, nav.LineOf(pos-1))
	text := nav.Slice(start, end)

	b, ok := grapheme.PrevBoundary(text, grapheme.ByteOffset(text, pos-start))
	if !ok {
		return pos - 1, true
	}
	return start + grapheme.RuneOffset(text, b), true
}
