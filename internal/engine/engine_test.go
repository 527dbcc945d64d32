package engine

import (
	"errors"
	"testing"

	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/engine/cursor"
)

// ============================================================================
// Basic Operations
// ============================================================================

func TestNew(t *testing.T) {
	e := New()
	if e.Len() != 0 {
		t.Errorf("expected empty engine, got len %d", e.Len())
	}
	if !e.Selection().IsCursor() || e.Selection().Head != 0 {
		t.Errorf("expected cursor at 0, got %v", e.Selection())
	}
}

func TestNewWithContent(t *testing.T) {
	e := New(WithContent("a\nb"), WithLineEnding(buffer.LineEndingCRLF))
	if e.Text() != "a\nb" {
		t.Errorf("got %q", e.Text())
	}
	if e.Content() != "a\r\nb" {
		t.Errorf("got content %q", e.Content())
	}
}

// ============================================================================
// Transactions
// ============================================================================

func TestCommitMultiEdit(t *testing.T) {
	e := New(WithContent("0123456789"))

	tx, err := e.Commit("edit", []Edit{buffer.NewDelete(5, 8), buffer.NewInsert(0, "X")})
	if err != nil {
		t.Fatal(err)
	}
	if e.Text() != "X01234789" {
		t.Fatalf("got %q, want %q", e.Text(), "X01234789")
	}
	if tx.Entries[0].Removed != "567" {
		t.Errorf("removed = %q", tx.Entries[0].Removed)
	}
	// The last edit is the insertion of "X" at 0.
	if e.Selection().Head != 1 {
		t.Errorf("cursor at %d, want 1", e.Selection().Head)
	}
}

func TestCommitCursorPlacement(t *testing.T) {
	tests := []struct {
		name  string
		edits []Edit
		want  int
	}{
		{"insert", []Edit{buffer.NewInsert(2, "xyz")}, 5},
		{"delete", []Edit{buffer.NewDelete(2, 4)}, 2},
		{"replace", []Edit{buffer.NewReplace(1, 3, "Q")}, 2},
		{"last edit shifted", []Edit{buffer.NewInsert(0, "--"), buffer.NewDelete(4, 5)}, 6},
		{"trailing noop ignored", []Edit{buffer.NewInsert(1, "+"), buffer.NewInsert(5, "")}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithContent("abcdefgh"))
			if _, err := e.Commit(tt.name, tt.edits); err != nil {
				t.Fatal(err)
			}
			if got := e.Selection(); !got.IsCursor() || got.Head != tt.want {
				t.Errorf("selection %v, want cursor at %d", got, tt.want)
			}
		})
	}
}

func TestCommitNoop(t *testing.T) {
	e := New(WithContent("abc"))
	e.SetSelection(cursor.NewSelection(0, 2))

	tx, err := e.Commit("noop", []Edit{buffer.NewInsert(1, "")})
	if err != nil || tx != nil {
		t.Fatalf("expected nil transaction, got %v, %v", tx, err)
	}
	if e.Text() != "abc" || e.CanUndo() {
		t.Error("no-op commit changed state")
	}
	if e.Selection() != cursor.NewSelection(0, 2) {
		t.Errorf("selection changed to %v", e.Selection())
	}
}

func TestCommitFailureLeavesStateUntouched(t *testing.T) {
	e := New(WithContent("abc"))
	e.SetSelection(cursor.NewCursorSelection(1))

	_, err := e.Commit("bad", []Edit{buffer.NewDelete(0, 2), buffer.NewDelete(1, 3)})
	if !errors.Is(err, buffer.ErrEditsOverlap) {
		t.Fatalf("expected ErrEditsOverlap, got %v", err)
	}
	if e.Text() != "abc" || e.CanUndo() || e.Selection().Head != 1 {
		t.Error("failed commit changed state")
	}
}

func TestCommitSelect(t *testing.T) {
	e := New(WithContent("abc"))
	e.SetSelection(cursor.NewSelection(0, 3))

	tx, err := e.CommitSelect("upper", []Edit{buffer.NewReplace(0, 3, "ABC")}, cursor.NewSelection(0, 3))
	if err != nil {
		t.Fatal(err)
	}
	if tx.After != cursor.NewSelection(0, 3) || e.Selection() != tx.After {
		t.Fatalf("after commit: tx.After %v, selection %v", tx.After, e.Selection())
	}

	if _, err := e.Undo(); err != nil {
		t.Fatal(err)
	}
	if _, err := e.Redo(); err != nil {
		t.Fatal(err)
	}
	if got := e.Selection(); got != cursor.NewSelection(0, 3) {
		t.Errorf("after redo selection = %v, want the committed one", got)
	}

	// Out-of-range selections are clamped to the new text.
	tx, err = e.CommitSelect("cut", []Edit{buffer.NewDelete(1, 3)}, cursor.NewCursorSelection(9))
	if err != nil {
		t.Fatal(err)
	}
	if tx.After != cursor.NewCursorSelection(1) {
		t.Errorf("clamped After = %v, want cursor at 1", tx.After)
	}
}

func TestUndoRedoSelections(t *testing.T) {
	e := New(WithContent("hello"))
	e.SetSelection(cursor.NewSelection(0, 5))

	if _, err := e.Commit("replace", []Edit{buffer.NewReplace(0, 5, "bye")}); err != nil {
		t.Fatal(err)
	}

	ok, err := e.Undo()
	if !ok || err != nil {
		t.Fatalf("Undo = %v, %v", ok, err)
	}
	if e.Text() != "hello" || e.Selection() != cursor.NewSelection(0, 5) {
		t.Errorf("after undo: %q %v", e.Text(), e.Selection())
	}

	ok, err = e.Redo()
	if !ok || err != nil {
		t.Fatalf("Redo = %v, %v", ok, err)
	}
	if e.Text() != "bye" || e.Selection() != cursor.NewCursorSelection(3) {
		t.Errorf("after redo: %q %v", e.Text(), e.Selection())
	}
}

func TestUndoEmpty(t *testing.T) {
	e := New()
	if ok, err := e.Undo(); ok || err != nil {
		t.Errorf("Undo on empty history = %v, %v", ok, err)
	}
	if ok, err := e.Redo(); ok || err != nil {
		t.Errorf("Redo on empty history = %v, %v", ok, err)
	}
}

func TestReadOnly(t *testing.T) {
	e := New(WithContent("abc"), WithReadOnly(true))

	if _, err := e.Commit("x", []Edit{buffer.NewInsert(0, "x")}); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly, got %v", err)
	}

	e.SetReadOnly(false)
	if _, err := e.Commit("x", []Edit{buffer.NewInsert(0, "x")}); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestSetDocumentResets(t *testing.T) {
	e := New(WithContent("abc"))
	e.Commit("x", []Edit{buffer.NewInsert(3, "d")})

	e.SetDocument("new")
	if e.Text() != "new" || e.CanUndo() || e.Selection().Head != 0 {
		t.Error("SetDocument did not reset state")
	}
}

func TestSetSelectionClamps(t *testing.T) {
	e := New(WithContent("abc"))
	e.SetSelection(cursor.NewSelection(-1, 10))
	if e.Selection() != cursor.NewSelection(0, 3) {
		t.Errorf("got %v", e.Selection())
	}
}
