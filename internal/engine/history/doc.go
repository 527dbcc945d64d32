// Package history provides undo/redo for the editing core.
//
// Every operation that changes text commits a Transaction: the edits it
// applied, the text each edit removed, and the selection before and after.
// History keeps two stacks of transactions:
//
//	h := history.NewHistory(1000)
//	h.Record(tx)              // clears redo
//	tx, ok := h.Undo()        // caller applies tx.Inverse()
//	tx, ok = h.Redo()         // caller applies tx.Edits()
//
// Undo never recomputes removed text. The inverse of a transaction is built
// from the text captured when it was applied, and redo replays the original
// edits, so undo followed by redo restores the exact post-transaction buffer.
//
// Transactions made only of no-op edits are not recorded. Applying edits is
// the caller's job; if that fails, CancelUndo or CancelRedo puts the
// transaction back where it was.
package history
