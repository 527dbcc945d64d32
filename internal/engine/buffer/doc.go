// Package buffer holds the text storage contract and the transactional edit
// primitive of the editing core.
//
// All positions are character (rune) offsets, never byte offsets. A Store
// exposes character access, line lookups and the two primitive mutations
// Remove and Insert. Buffer is the in-memory Store used by the editor.
//
// Apply takes a batch of edits that all refer to the same original buffer and
// applies them as one unit:
//
//	buf := buffer.NewBufferFromString("0123456789")
//	removed, err := buffer.Apply(buf, []buffer.Edit{
//	    buffer.NewDelete(5, 8),
//	    buffer.NewInsert(0, "X"),
//	})
//	// buf.Text() == "X01234789", removed == []string{"567", ""}
//
// Thread Safety:
//
// Buffer methods are safe for concurrent use. Apply itself does not lock
// across edits; callers serialize transactions on a Store.
package buffer
