package textobject

import "iter"

// Navigator is the read-only view of a document that finders scan.
// *buffer.Buffer implements it.
type Navigator interface {
	Len() int
	CharAt(offset int) (rune, bool)
	LineOf(offset int) int
	OffsetOfLine(line int) int
	LineCount() int
	LineRunes(line int) iter.Seq[rune]
	Slice(start, end int) string
}

// Finder resolves text objects of the kinds it reports.
//
// Finders hold no per-document state and may be shared between documents.
// A false result means no object was found at, after or before pos.
type Finder interface {
	Kinds() []Kind
	FindAt(nav Navigator, pos int, obj TextObject) (Range, bool)
	FindNext(nav Navigator, pos int, obj TextObject) (Range, bool)
	FindPrev(nav Navigator, pos int, obj TextObject) (Range, bool)
}

// probeNext returns the first non-empty range found by findAt strictly
// after pos.
func probeNext(nav Navigator, pos int, findAt func(int) (Range, bool)) (Range, bool) {
	for i := pos + 1; i < nav.Len(); i++ {
		if r, ok := findAt(i); ok && !r.IsEmpty() && r.Start > pos {
			return r, true
		}
	}
	return Range{}, false
}

// probePrev returns the first non-empty range found by findAt that ends at
// or before pos, scanning backwards.
func probePrev(nav Navigator, pos int, findAt func(int) (Range, bool)) (Range, bool) {
	for i := min(pos, nav.Len()) - 1; i >= 0; i-- {
		if r, ok := findAt(i); ok && !r.IsEmpty() && r.End <= pos {
			return r, true
		}
	}
	return Range{}, false
}
