// Package engine is the document facade of the editing core.
//
// The engine package combines a character buffer, a selection and an undo
// history into one unit with a single mutation path.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: character-addressed storage and transactional Apply
//   - grapheme: user-perceived character boundaries
//   - cursor: the anchor/head selection
//   - history: transactions and the undo/redo stacks
//
// # Basic Usage
//
//	e := engine.New(engine.WithContent("0123456789"))
//
//	// Offsets refer to the text before the transaction.
//	e.Commit("edit", []engine.Edit{
//	    buffer.NewDelete(5, 8),
//	    buffer.NewInsert(0, "X"),
//	})
//	// e.Text() == "X01234789"
//
//	e.Undo() // "0123456789"
//	e.Redo() // "X01234789"
//
// # Thread Safety
//
// Engine methods are safe for concurrent use. Commit, Undo and Redo hold
// the engine lock for the whole apply, record and reposition sequence.
package engine
