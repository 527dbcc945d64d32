package engine

import (
	"go.uber.org/zap"

	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/history"
)

// DefaultMaxUndoEntries is the undo depth used when none is configured.
const DefaultMaxUndoEntries = history.DefaultMaxEntries

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithLineEnding sets the line ending used when exporting content.
func WithLineEnding(ending buffer.LineEnding) Option {
	return func(e *Engine) {
		e.lineEnding = ending
	}
}

// WithMaxUndoEntries sets the maximum number of undo history entries.
func WithMaxUndoEntries(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.maxUndoEntries = limit
		}
	}
}

// WithReadOnly rejects every edit with ErrReadOnly.
func WithReadOnly(readOnly bool) Option {
	return func(e *Engine) {
		e.readOnly = readOnly
	}
}

// WithLogger sets the logger used for transaction events.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
