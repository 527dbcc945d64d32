package engine

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
	"github.com/dshills/editcore/internal/engine/history"
)

// Re-export commonly used types for convenience.
type (
	// Edit replaces a character range with new text.
	Edit = buffer.Edit

	// Range is a half-open character range.
	Range = buffer.Range

	// Selection is the anchor/head selection.
	Selection = cursor.Selection

	// Transaction is one undoable unit of edits.
	Transaction = history.Transaction
)

// Engine owns one document: its text, its selection and its undo history.
//
// Commit is the only way text changes. It applies the edits, records the
// transaction and repositions the selection as one step, so callers never
// observe a buffer that changed without a matching history entry.
// All methods are safe for concurrent use; transactions are serialized.
type Engine struct {
	mu sync.Mutex

	buf     *buffer.Buffer
	sel     cursor.Selection
	history *history.History
	logger  *zap.Logger

	// Configuration
	lineEnding     buffer.LineEnding
	maxUndoEntries int
	readOnly       bool

	// Initialization
	initContent string
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		lineEnding:     buffer.LineEndingLF,
		maxUndoEntries: DefaultMaxUndoEntries,
		logger:         zap.NewNop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.NewBufferFromString(e.initContent, buffer.WithLineEnding(e.lineEnding))
	e.history = history.NewHistory(e.maxUndoEntries)
	return e
}

// ============================================================================
// Read Operations
// ============================================================================

// Buffer returns the document store for read access. Mutate it only through
// Commit.
func (e *Engine) Buffer() *buffer.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf
}

// Text returns the document content with '\n' separators.
func (e *Engine) Text() string {
	return e.Buffer().Text()
}

// Content returns the document content with the configured line ending.
func (e *Engine) Content() string {
	return e.Buffer().Content()
}

// Len returns the number of characters in the document.
func (e *Engine) Len() int {
	return e.Buffer().Len()
}

// ============================================================================
// Selection
// ============================================================================

// Selection returns the current selection.
func (e *Engine) Selection() cursor.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel
}

// SetSelection replaces the selection, clamped to the document.
func (e *Engine) SetSelection(sel cursor.Selection) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.sel = sel.Clamp(e.buf.Len())
}

// ============================================================================
// Transactions
// ============================================================================

// Commit applies edits as one transaction, records it and moves the cursor.
//
// Offsets in edits refer to the document before the call. The cursor ends
// up after the text inserted by the last edit, or at the start of the range
// it removed when it only deletes. A batch of no-op edits changes nothing
// and returns a nil transaction. On error nothing changes.
func (e *Engine) Commit(name string, edits []Edit) (*Transaction, error) {
	return e.commit(name, edits, nil)
}

// CommitSelect is Commit with an explicit final selection. after is in
// post-transaction coordinates and is clamped to the new length. It is
// recorded as the transaction's After selection, so redo restores it.
func (e *Engine) CommitSelect(name string, edits []Edit, after cursor.Selection) (*Transaction, error) {
	return e.commit(name, edits, &after)
}

func (e *Engine) commit(name string, edits []Edit, sel *cursor.Selection) (*Transaction, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return nil, ErrReadOnly
	}

	last := lastChange(edits)
	if last < 0 {
		return nil, nil
	}

	removed, err := buffer.Apply(e.buf, edits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	before := e.sel
	after := cursor.NewCursorSelection(cursorAfter(edits, last))
	if sel != nil {
		after = sel.Clamp(e.buf.Len())
	}
	tx := history.NewTransaction(name, edits, removed, before, after)
	e.history.Record(tx)
	e.sel = after

	e.logger.Debug("transaction committed",
		zap.String("name", name),
		zap.Stringer("id", tx.ID),
		zap.Int("edits", len(edits)),
		zap.Int("delta", tx.Delta()),
	)
	return tx, nil
}

// lastChange returns the index of the last edit that is not a no-op, or -1.
func lastChange(edits []Edit) int {
	for i := len(edits) - 1; i >= 0; i-- {
		if !edits[i].IsNoop() {
			return i
		}
	}
	return -1
}

// cursorAfter places the cursor for edits[last] in post-transaction
// coordinates.
func cursorAfter(edits []Edit, last int) int {
	start := buffer.Shifted(edits)[last]
	if edits[last].IsDelete() {
		return start
	}
	return start + edits[last].TextLen()
}

// Undo reverts the most recent transaction and restores the selection it
// started from. It reports false when there is nothing to undo.
func (e *Engine) Undo() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return false, ErrReadOnly
	}

	tx, ok := e.history.Undo()
	if !ok {
		return false, nil
	}

	if _, err := buffer.Apply(e.buf, tx.Inverse()); err != nil {
		e.history.CancelUndo(tx)
		return false, fmt.Errorf("undo %s: %w", tx.Name, err)
	}
	e.sel = tx.Before

	e.logger.Debug("transaction undone", zap.String("name", tx.Name), zap.Stringer("id", tx.ID))
	return true, nil
}

// Redo re-applies the most recently undone transaction and restores the
// selection it ended with. It reports false when there is nothing to redo.
func (e *Engine) Redo() (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.readOnly {
		return false, ErrReadOnly
	}

	tx, ok := e.history.Redo()
	if !ok {
		return false, nil
	}

	if _, err := buffer.Apply(e.buf, tx.Edits()); err != nil {
		e.history.CancelRedo(tx)
		return false, fmt.Errorf("redo %s: %w", tx.Name, err)
	}
	e.sel = tx.After

	e.logger.Debug("transaction redone", zap.String("name", tx.Name), zap.Stringer("id", tx.ID))
	return true, nil
}

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// History returns the undo history.
func (e *Engine) History() *history.History {
	return e.history
}

// ============================================================================
// Document Lifecycle
// ============================================================================

// SetDocument replaces the whole document. History is cleared and the
// cursor returns to the start.
func (e *Engine) SetDocument(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.buf = buffer.NewBufferFromString(text, buffer.WithLineEnding(e.lineEnding))
	e.sel = cursor.NewCursorSelection(0)
	e.history.Clear()
}

// IsReadOnly returns true if edits are rejected.
func (e *Engine) IsReadOnly() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readOnly
}

// SetReadOnly toggles read-only mode.
func (e *Engine) SetReadOnly(readOnly bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.readOnly = readOnly
}
