package buffer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		edits   []Edit
		want    string
		removed []string
	}{
		{
			name:    "delete and insert in original coordinates",
			text:    "0123456789",
			edits:   []Edit{NewDelete(5, 8), NewInsert(0, "X")},
			want:    "X01234789",
			removed: []string{"567", ""},
		},
		{
			name:    "replace",
			text:    "hello world",
			edits:   []Edit{NewReplace(6, 11, "there")},
			want:    "hello there",
			removed: []string{"world"},
		},
		{
			name:    "inserts at same offset keep input order",
			text:    "ab",
			edits:   []Edit{NewInsert(1, "1"), NewInsert(1, "2")},
			want:    "a12b",
			removed: []string{"", ""},
		},
		{
			name:    "insert touching a deletion",
			text:    "abcdef",
			edits:   []Edit{NewInsert(2, "X"), NewDelete(2, 4)},
			want:    "abXef",
			removed: []string{"", "cd"},
		},
		{
			name:    "whitespace insert",
			text:    "ab",
			edits:   []Edit{NewInsert(1, "  ")},
			want:    "a  b",
			removed: []string{""},
		},
		{
			name:    "noop",
			text:    "ab",
			edits:   []Edit{NewInsert(1, "")},
			want:    "ab",
			removed: []string{""},
		},
		{
			name:    "multibyte characters",
			text:    "añb",
			edits:   []Edit{NewDelete(1, 2)},
			want:    "ab",
			removed: []string{"ñ"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString(tt.text)
			removed, err := Apply(b, tt.edits)
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if b.Text() != tt.want {
				t.Errorf("got %q, want %q", b.Text(), tt.want)
			}
			if diff := cmp.Diff(tt.removed, removed); diff != "" {
				t.Errorf("removed mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyRejectsBadEdits(t *testing.T) {
	tests := []struct {
		name  string
		edits []Edit
		err   error
	}{
		{"past end", []Edit{NewDelete(2, 20)}, ErrRangeInvalid},
		{"inverted", []Edit{{Start: 3, End: 1}}, ErrRangeInvalid},
		{"negative", []Edit{NewInsert(-1, "x")}, ErrRangeInvalid},
		{"overlap", []Edit{NewDelete(0, 3), NewDelete(2, 4)}, ErrEditsOverlap},
		{"insert inside delete", []Edit{NewDelete(0, 3), NewInsert(1, "x")}, ErrEditsOverlap},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBufferFromString("abcdef")
			_, err := Apply(b, tt.edits)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if b.Text() != "abcdef" {
				t.Errorf("buffer changed to %q", b.Text())
			}
			if b.Revision() != 0 {
				t.Errorf("expected no mutation, revision %d", b.Revision())
			}
		})
	}
}

func TestRangeOverlaps(t *testing.T) {
	tests := []struct {
		a, b Range
		want bool
	}{
		{Range{0, 3}, Range{2, 4}, true},
		{Range{0, 3}, Range{3, 5}, false},
		{Range{0, 3}, Range{1, 1}, true},
		{Range{2, 4}, Range{2, 2}, false},
		{Range{2, 2}, Range{2, 2}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := tt.b.Overlaps(tt.a); got != tt.want {
			t.Errorf("%s.Overlaps(%s) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

// failingStore rejects one particular insertion.
type failingStore struct {
	*Buffer
	reject string
}

var errStore = errors.New("store full")

func (s *failingStore) Insert(offset int, text string) error {
	if text == s.reject {
		return errStore
	}
	return s.Buffer.Insert(offset, text)
}

func TestApplyRollsBackOnStoreError(t *testing.T) {
	store := &failingStore{Buffer: NewBufferFromString("abcdef"), reject: "X"}

	_, err := Apply(store, []Edit{NewReplace(0, 1, "X"), NewReplace(4, 5, "Y")})
	if !errors.Is(err, errStore) {
		t.Fatalf("expected store error, got %v", err)
	}

	if store.Text() != "abcdef" {
		t.Errorf("expected rollback, got %q", store.Text())
	}
}

func TestShifted(t *testing.T) {
	edits := []Edit{NewDelete(5, 8), NewInsert(0, "X"), NewReplace(9, 10, "yz")}
	want := []int{6, 0, 7}

	if diff := cmp.Diff(want, Shifted(edits)); diff != "" {
		t.Errorf("Shifted mismatch (-want +got):\n%s", diff)
	}
}

func TestEditPredicates(t *testing.T) {
	tests := []struct {
		edit                       Edit
		insert, del, replace, noop bool
	}{
		{NewInsert(0, "a"), true, false, false, false},
		{NewDelete(0, 1), false, true, false, false},
		{NewReplace(0, 1, "b"), false, false, true, false},
		{NewInsert(3, ""), false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.edit.String(), func(t *testing.T) {
			if tt.edit.IsInsert() != tt.insert || tt.edit.IsDelete() != tt.del ||
				tt.edit.IsReplace() != tt.replace || tt.edit.IsNoop() != tt.noop {
				t.Errorf("unexpected classification for %s", tt.edit)
			}
		})
	}
}
