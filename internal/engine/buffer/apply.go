package buffer

import (
	"fmt"
	"slices"
)

// Order returns the indexes of edits sorted ascending by (Start, End, index),
// which is the order their results appear in the edited buffer. Apply walks
// this order backwards.
func Order(edits []Edit) []int {
	idx := make([]int, len(edits))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		ea, eb := edits[a], edits[b]
		if ea.Start != eb.Start {
			return ea.Start - eb.Start
		}
		if ea.End != eb.End {
			return ea.End - eb.End
		}
		return a - b
	})
	return idx
}

// Validate checks that every edit lies inside a buffer of length n and that
// no two edits overlap. Insertions may touch a neighbouring range and no-op
// edits are ignored.
func Validate(n int, edits []Edit) error {
	for i, e := range edits {
		if e.Start < 0 || e.Start > e.End || e.End > n {
			return fmt.Errorf("edit %d %s in buffer of %d: %w", i, e, n, ErrRangeInvalid)
		}
	}
	// Sorted by Order, any overlap shows up between neighbours.
	var prev *Edit
	for _, i := range Order(edits) {
		next := &edits[i]
		if next.IsNoop() {
			continue
		}
		if prev != nil && prev.Range().Overlaps(next.Range()) {
			return fmt.Errorf("%s and %s: %w", prev, next, ErrEditsOverlap)
		}
		prev = next
	}
	return nil
}

// Apply applies a batch of edits expressed against the original buffer.
//
// Edits are applied from the highest start offset to the lowest so no edit
// disturbs the coordinates of another. Ties apply the wider range first, then
// the later edit first, which leaves insertions at the same offset in input
// order. The returned slice holds the text each edit removed, aligned with
// the input order.
//
// Nothing is applied if validation fails. If the store rejects an edit part
// way through, the edits already applied are rolled back before returning.
func Apply(store Store, edits []Edit) ([]string, error) {
	if err := Validate(store.Len(), edits); err != nil {
		return nil, err
	}

	removed := make([]string, len(edits))
	idx := Order(edits)

	for k := len(idx) - 1; k >= 0; k-- {
		i := idx[k]
		e := edits[i]
		if e.IsNoop() {
			continue
		}

		removed[i] = store.Slice(e.Start, e.End)
		if err := replace(store, e.Start, e.End, removed[i], e.Text); err != nil {
			rollback(store, edits, removed, idx[k+1:])
			return nil, fmt.Errorf("apply %s: %w", e, err)
		}
	}

	return removed, nil
}

// replace swaps old, the current text of [start, end), for text. If the
// insertion fails the removed text is put back.
func replace(store Store, start, end int, old, text string) error {
	if start < end {
		if err := store.Remove(start, end); err != nil {
			return err
		}
	}
	if text == "" {
		return nil
	}
	if err := store.Insert(start, text); err != nil {
		if old != "" {
			_ = store.Insert(start, old)
		}
		return err
	}
	return nil
}

// rollback reverts the applied edits, lowest start first, which is the
// reverse of the order Apply used.
func rollback(store Store, edits []Edit, removed []string, applied []int) {
	for _, i := range applied {
		e := edits[i]
		if e.IsNoop() {
			continue
		}
		_ = replace(store, e.Start, e.Start+e.TextLen(), e.Text, removed[i])
	}
}

// Shifted returns, for each edit, where it starts once the whole batch has
// been applied.
func Shifted(edits []Edit) []int {
	starts := make([]int, len(edits))
	delta := 0
	for _, i := range Order(edits) {
		starts[i] = edits[i].Start + delta
		delta += edits[i].Delta()
	}
	return starts
}
