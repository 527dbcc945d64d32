// Package history provides the undo and redo operations.
//
// Both restore the text and the selection recorded with the transaction.
// With nothing to undo or redo they report a no-op, not an error.
package history
