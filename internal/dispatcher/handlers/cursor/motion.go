package cursor

import (
	"github.com/dshills/editcore/internal/textobject"
)

// Target computes where a motion starting at pos lands.
type Target func(nav textobject.Navigator, pos int) int

// Left returns the start of the grapheme cluster before pos.
func Left(nav textobject.Navigator, pos int) int {
	p, _ := textobject.PrevGrapheme(nav, pos)
	return p
}

// Right returns the end of the grapheme cluster at pos.
func Right(nav textobject.Navigator, pos int) int {
	p, _ := textobject.NextGrapheme(nav, pos)
	return p
}

// Up returns the position in the same column on the previous line, or pos
// on the first line.
func Up(nav textobject.Navigator, pos int) int {
	line := nav.LineOf(pos)
	if line == 0 {
		return pos
	}
	return columnOn(nav, line-1, pos-nav.OffsetOfLine(line))
}

// Down returns the position in the same column on the next line, or pos
// on the last line.
func Down(nav textobject.Navigator, pos int) int {
	line := nav.LineOf(pos)
	if line+1 >= nav.LineCount() {
		return pos
	}
	return columnOn(nav, line+1, pos-nav.OffsetOfLine(line))
}

// columnOn returns col on line, clamped to the line's content.
func columnOn(nav textobject.Navigator, line, col int) int {
	start := nav.OffsetOfLine(line)
	return min(start+col, textobject.LineContentEnd(nav, line))
}

// LineStart returns the first position of the line containing pos.
func LineStart(nav textobject.Navigator, pos int) int {
	return nav.OffsetOfLine(nav.LineOf(pos))
}

// LineEnd returns the position before the terminator of the line
// containing pos.
func LineEnd(nav textobject.Navigator, pos int) int {
	return textobject.LineContentEnd(nav, nav.LineOf(pos))
}

// DocumentStart returns 0.
func DocumentStart(textobject.Navigator, int) int {
	return 0
}

// DocumentEnd returns the document length.
func DocumentEnd(nav textobject.Navigator, _ int) int {
	return nav.Len()
}

// MatchingBracket returns the partner of the bracket at pos, or pos.
func MatchingBracket(nav textobject.Navigator, pos int) int {
	if p, ok := textobject.MatchingBracket(nav, pos); ok {
		return p
	}
	return pos
}

// targets maps each motion operation to its target.
var targets = map[string]Target{
	OpMoveLeft:              Left,
	OpMoveRight:             Right,
	OpMoveUp:                Up,
	OpMoveDown:              Down,
	OpMoveLineStart:         LineStart,
	OpMoveLineEnd:           LineEnd,
	OpMoveWordForward:       textobject.WordForward,
	OpMoveWordBackward:      textobject.WordBackward,
	OpMoveBigWordForward:    textobject.BigWordForward,
	OpMoveBigWordBackward:   textobject.BigWordBackward,
	OpMoveDocumentStart:     DocumentStart,
	OpMoveDocumentEnd:       DocumentEnd,
	OpMoveMatchingBracket:   MatchingBracket,
	OpMoveParagraphForward:  textobject.ParagraphForward,
	OpMoveParagraphBackward: textobject.ParagraphBackward,
}
