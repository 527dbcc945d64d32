package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
)

// Entry is one applied edit together with the text it removed.
type Entry struct {
	Edit    buffer.Edit
	Removed string
}

// Transaction is the unit of undo and redo: the edits of one operation,
// captured when they were applied.
type Transaction struct {
	ID        uuid.UUID
	Name      string
	Entries   []Entry
	Before    cursor.Selection // Selection before the edits
	After     cursor.Selection // Selection after the edits
	Timestamp time.Time
}

// NewTransaction builds a transaction from applied edits and the removed
// text Apply reported for them.
func NewTransaction(name string, edits []buffer.Edit, removed []string, before, after cursor.Selection) *Transaction {
	entries := make([]Entry, len(edits))
	for i, e := range edits {
		entries[i] = Entry{Edit: e}
		if i < len(removed) {
			entries[i].Removed = removed[i]
		}
	}
	return &Transaction{
		ID:        uuid.New(),
		Name:      name,
		Entries:   entries,
		Before:    before,
		After:     after,
		Timestamp: time.Now(),
	}
}

// Edits returns the original edits, for redo.
func (tx *Transaction) Edits() []buffer.Edit {
	edits := make([]buffer.Edit, len(tx.Entries))
	for i, e := range tx.Entries {
		edits[i] = e.Edit
	}
	return edits
}

// IsNoop returns true if no entry changes the buffer.
func (tx *Transaction) IsNoop() bool {
	for _, e := range tx.Entries {
		if !e.Edit.IsNoop() {
			return false
		}
	}
	return true
}

// Delta returns the net change in buffer length.
func (tx *Transaction) Delta() int {
	d := 0
	for _, e := range tx.Entries {
		d += e.Edit.Delta()
	}
	return d
}

// Inverse returns the edits that undo the transaction when applied to the
// buffer it produced.
//
// Each entry is first moved to where it landed in that buffer, then
// inverted: an insertion becomes a deletion of the inserted text, a
// deletion re-inserts the removed text, a replacement swaps the two texts
// back. Entries are emitted in the reverse of the order Apply used, so
// re-inserted text sharing one offset comes back in its original order.
func (tx *Transaction) Inverse() []buffer.Edit {
	edits := tx.Edits()
	starts := buffer.Shifted(edits)

	inverse := make([]buffer.Edit, 0, len(edits))
	for _, i := range buffer.Order(edits) {
		e := tx.Entries[i]
		s := starts[i]
		switch {
		case e.Edit.IsNoop():
			inverse = append(inverse, buffer.NewInsert(s, ""))
		case e.Edit.IsInsert():
			inverse = append(inverse, buffer.NewDelete(s, s+e.Edit.TextLen()))
		case e.Edit.IsDelete():
			inverse = append(inverse, buffer.NewInsert(s, e.Removed))
		default:
			inverse = append(inverse, buffer.NewReplace(s, s+e.Edit.TextLen(), e.Removed))
		}
	}
	return inverse
}

// Info returns a read-only summary of the transaction.
func (tx *Transaction) Info() TransactionInfo {
	return TransactionInfo{
		ID:        tx.ID,
		Name:      tx.Name,
		Edits:     len(tx.Entries),
		Delta:     tx.Delta(),
		Timestamp: tx.Timestamp,
	}
}

// String returns a human-readable description.
func (tx *Transaction) String() string {
	return fmt.Sprintf("%s (%d edits, %+d)", tx.Name, len(tx.Entries), tx.Delta())
}

// TransactionInfo provides read-only info about a transaction.
// Used for displaying undo/redo history to users.
type TransactionInfo struct {
	ID        uuid.UUID
	Name      string
	Edits     int
	Delta     int // Positive for insertions, negative for deletions
	Timestamp time.Time
}
