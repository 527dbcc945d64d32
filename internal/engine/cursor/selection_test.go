package cursor

import "testing"

func TestSelectionRange(t *testing.T) {
	tests := []struct {
		name       string
		sel        Selection
		start, end int
		cursor     bool
	}{
		{"cursor", NewCursorSelection(4), 4, 4, true},
		{"forward", NewSelection(2, 6), 2, 6, false},
		{"backward", NewSelection(6, 2), 2, 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.sel.Bounds()
			if start != tt.start || end != tt.end {
				t.Errorf("Bounds = (%d, %d), want (%d, %d)", start, end, tt.start, tt.end)
			}
			if tt.sel.IsCursor() != tt.cursor {
				t.Errorf("IsCursor = %v", tt.sel.IsCursor())
			}
			if tt.sel.Len() != tt.end-tt.start {
				t.Errorf("Len = %d", tt.sel.Len())
			}
		})
	}
}

func TestSelectionMutators(t *testing.T) {
	var s Selection

	s.SetRange(5, 1)
	if s.Anchor != 5 || s.Head != 1 || s.IsForward() {
		t.Errorf("SetRange produced %v", s)
	}

	s.Extend(9)
	if s.Range() != (Range{Start: 5, End: 9}) {
		t.Errorf("Extend produced %v", s.Range())
	}

	s.CursorTo(3)
	if !s.IsCursor() || s.Head != 3 {
		t.Errorf("CursorTo produced %v", s)
	}
}

func TestSelectionClamp(t *testing.T) {
	s := NewSelection(-2, 50).Clamp(10)
	if s.Anchor != 0 || s.Head != 10 {
		t.Errorf("Clamp produced %v", s)
	}
}
