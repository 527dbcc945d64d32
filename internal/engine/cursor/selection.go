package cursor

import (
	"fmt"

	"github.com/dshills/editcore/internal/engine/buffer"
)

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection is the editor's selection model.
// Anchor is where the selection started; Head is the cursor position.
// When Anchor == Head the selection is a bare cursor.
type Selection struct {
	Anchor int
	Head   int
}

// NewSelection creates a selection from anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{Anchor: anchor, Head: head}
}

// NewCursorSelection creates a selection with no extent.
func NewCursorSelection(offset int) Selection {
	return Selection{Anchor: offset, Head: offset}
}

// NewRangeSelection creates a forward selection covering r.
func NewRangeSelection(r Range) Selection {
	return Selection{Anchor: r.Start, Head: r.End}
}

// CursorTo collapses the selection to a cursor at pos.
func (s *Selection) CursorTo(pos int) {
	s.Anchor = pos
	s.Head = pos
}

// SetRange sets both ends of the selection.
func (s *Selection) SetRange(anchor, head int) {
	s.Anchor = anchor
	s.Head = head
}

// Extend moves the head, keeping the anchor.
func (s *Selection) Extend(head int) {
	s.Head = head
}

// IsCursor returns true if the selection has no extent.
func (s Selection) IsCursor() bool {
	return s.Anchor == s.Head
}

// Range returns the normalized span of the selection.
func (s Selection) Range() Range {
	return buffer.NewRange(s.Anchor, s.Head)
}

// Bounds returns the normalized (start, end) pair.
func (s Selection) Bounds() (int, int) {
	r := s.Range()
	return r.Start, r.End
}

// Start returns the lower bound of the selection.
func (s Selection) Start() int {
	return min(s.Anchor, s.Head)
}

// End returns the upper bound of the selection.
func (s Selection) End() int {
	return max(s.Anchor, s.Head)
}

// Len returns the number of characters selected.
func (s Selection) Len() int {
	return s.End() - s.Start()
}

// IsForward returns true if head >= anchor.
func (s Selection) IsForward() bool {
	return s.Head >= s.Anchor
}

// Clamp returns a selection with both ends inside [0, maxOffset].
func (s Selection) Clamp(maxOffset int) Selection {
	return Selection{
		Anchor: max(0, min(s.Anchor, maxOffset)),
		Head:   max(0, min(s.Head, maxOffset)),
	}
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if s.IsCursor() {
		return fmt.Sprintf("Cursor(%d)", s.Head)
	}
	return fmt.Sprintf("Selection(%d->%d)", s.Anchor, s.Head)
}
