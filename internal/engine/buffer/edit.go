package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Edit replaces the characters in [Start, End) with Text.
//
// Offsets are character offsets into the buffer as it was before the
// transaction containing the edit started.
type Edit struct {
	Start int
	End   int
	Text  string
}

// NewInsert creates an Edit that inserts text at offset.
func NewInsert(offset int, text string) Edit {
	return Edit{Start: offset, End: offset, Text: text}
}

// NewDelete creates an Edit that removes [start, end).
func NewDelete(start, end int) Edit {
	return Edit{Start: start, End: end}
}

// NewReplace creates an Edit that replaces [start, end) with text.
func NewReplace(start, end int, text string) Edit {
	return Edit{Start: start, End: end, Text: text}
}

// Range returns the span the edit removes.
func (e Edit) Range() Range {
	return Range{Start: e.Start, End: e.End}
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	switch {
	case e.IsNoop():
		return "Noop"
	case e.IsInsert():
		return fmt.Sprintf("Insert(%d, %q)", e.Start, e.Text)
	case e.IsDelete():
		return fmt.Sprintf("Delete%s", e.Range())
	default:
		return fmt.Sprintf("Replace%s with %q", e.Range(), e.Text)
	}
}

// IsInsert returns true if this is a pure insertion.
func (e Edit) IsInsert() bool {
	return e.Start == e.End && e.Text != ""
}

// IsDelete returns true if this is a pure deletion.
func (e Edit) IsDelete() bool {
	return e.Start < e.End && e.Text == ""
}

// IsReplace returns true if this removes text and inserts new text.
func (e Edit) IsReplace() bool {
	return e.Start < e.End && e.Text != ""
}

// IsNoop returns true if this edit changes nothing.
func (e Edit) IsNoop() bool {
	return e.Start == e.End && e.Text == ""
}

// TextLen returns the number of characters in Text.
func (e Edit) TextLen() int {
	return utf8.RuneCountInString(e.Text)
}

// Delta returns the change in buffer length caused by this edit.
func (e Edit) Delta() int {
	return e.TextLen() - (e.End - e.Start)
}
