package buffer

import "iter"

// Store is the character storage the editing core mutates.
//
// All offsets are character offsets. Lines are separated by '\n'; a store
// with N newlines has N+1 lines.
type Store interface {
	// Len returns the number of characters.
	Len() int

	// CharAt returns the character at offset, false when out of range.
	CharAt(offset int) (rune, bool)

	// LineOf returns the line containing offset. Offsets at or past the end
	// map to the last line.
	LineOf(offset int) int

	// OffsetOfLine returns the offset of the first character of line.
	OffsetOfLine(line int) int

	// LineCount returns the number of lines.
	LineCount() int

	// LineRunes iterates the characters of line, terminator included.
	LineRunes(line int) iter.Seq[rune]

	// Slice returns the text in [start, end).
	Slice(start, end int) string

	// Remove deletes [start, end).
	Remove(start, end int) error

	// Insert inserts text at offset.
	Insert(offset int, text string) error
}
