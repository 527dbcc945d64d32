package history

import (
	"sync"
)

// DefaultMaxEntries bounds the undo stack when no limit is configured.
const DefaultMaxEntries = 1000

// History manages the undo and redo stacks of one document.
type History struct {
	mu sync.Mutex

	undoStack []*Transaction
	redoStack []*Transaction

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Record pushes tx onto the undo stack and reports whether it was kept.
// Transactions whose edits are all no-ops are dropped. The redo stack is
// cleared either way.
func (h *History) Record(tx *Transaction) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.redoStack = nil

	if tx == nil || tx.IsNoop() {
		return false
	}

	h.undoStack = append(h.undoStack, tx)
	h.trimLocked()
	return true
}

// trimLocked drops the oldest undo entries above the limit.
func (h *History) trimLocked() {
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo moves the most recent transaction to the redo stack and returns it.
// The caller applies tx.Inverse(). Returns false if there is nothing to undo.
func (h *History) Undo() (*Transaction, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return nil, false
	}

	tx := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, tx)
	return tx, true
}

// Redo moves the most recently undone transaction back to the undo stack
// and returns it. The caller re-applies tx.Edits(), whose removed text is
// the text captured when the transaction was first applied.
func (h *History) Redo() (*Transaction, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return nil, false
	}

	tx := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, tx)
	return tx, true
}

// CancelUndo reverses an Undo whose edits could not be applied.
func (h *History) CancelUndo(tx *Transaction) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.redoStack); n > 0 && h.redoStack[n-1] == tx {
		h.redoStack = h.redoStack[:n-1]
		h.undoStack = append(h.undoStack, tx)
	}
}

// CancelRedo reverses a Redo whose edits could not be applied.
func (h *History) CancelRedo(tx *Transaction) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.undoStack); n > 0 && h.undoStack[n-1] == tx {
		h.undoStack = h.undoStack[:n-1]
		h.redoStack = append(h.redoStack, tx)
	}
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo operations available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo operations available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
}

// UndoInfo returns info about available undo operations, oldest first.
func (h *History) UndoInfo() []TransactionInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return infos(h.undoStack)
}

// RedoInfo returns info about available redo operations, oldest first.
func (h *History) RedoInfo() []TransactionInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return infos(h.redoStack)
}

func infos(stack []*Transaction) []TransactionInfo {
	result := make([]TransactionInfo, len(stack))
	for i, tx := range stack {
		result[i] = tx.Info()
	}
	return result
}

// PeekUndo returns info about the next undo operation without removing it.
func (h *History) PeekUndo() (TransactionInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return TransactionInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].Info(), true
}

// PeekRedo returns info about the next redo operation without removing it.
func (h *History) PeekRedo() (TransactionInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.redoStack) == 0 {
		return TransactionInfo{}, false
	}
	return h.redoStack[len(h.redoStack)-1].Info(), true
}

// SetMaxEntries changes the maximum number of undo entries.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(limit int) {
	if limit <= 0 {
		limit = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = limit
	h.trimLocked()
}

// MaxEntries returns the maximum number of undo entries.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
