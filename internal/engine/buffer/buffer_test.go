package buffer

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNewBuffer(t *testing.T) {
	b := NewBuffer()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
}

func TestNewBufferFromStringNormalizes(t *testing.T) {
	b := NewBufferFromString("a\r\nb\rc")

	if b.Text() != "a\nb\nc" {
		t.Errorf("got %q, want %q", b.Text(), "a\nb\nc")
	}
	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
}

func TestBufferContentLineEnding(t *testing.T) {
	b := NewBufferFromString("a\nb", WithCRLF())
	if b.Content() != "a\r\nb" {
		t.Errorf("got %q", b.Content())
	}
}

func TestBufferCharOffsets(t *testing.T) {
	b := NewBufferFromString("héllo\nwörld")

	if b.Len() != 11 {
		t.Fatalf("expected 11 characters, got %d", b.Len())
	}
	if r, ok := b.CharAt(1); !ok || r != 'é' {
		t.Errorf("CharAt(1) = %q, %v", r, ok)
	}
	if _, ok := b.CharAt(11); ok {
		t.Error("CharAt past end should fail")
	}
	if got := b.Slice(6, 11); got != "wörld" {
		t.Errorf("Slice = %q", got)
	}
}

func TestBufferLines(t *testing.T) {
	b := NewBufferFromString("ab\ncd\n")

	tests := []struct {
		offset int
		line   int
	}{
		{0, 0}, {2, 0}, {3, 1}, {5, 1}, {6, 2}, {99, 2},
	}
	for _, tt := range tests {
		if got := b.LineOf(tt.offset); got != tt.line {
			t.Errorf("LineOf(%d) = %d, want %d", tt.offset, got, tt.line)
		}
	}

	if got := b.OffsetOfLine(1); got != 3 {
		t.Errorf("OffsetOfLine(1) = %d, want 3", got)
	}
	if got := b.LineText(1); got != "cd" {
		t.Errorf("LineText(1) = %q", got)
	}
	if got := string(slices.Collect(b.LineRunes(0))); got != "ab\n" {
		t.Errorf("LineRunes(0) = %q", got)
	}
	if got := string(slices.Collect(b.LineRunes(2))); got != "" {
		t.Errorf("LineRunes(2) = %q", got)
	}
}

func TestBufferInsertRemove(t *testing.T) {
	b := NewBufferFromString("hello world")

	if err := b.Insert(5, ","); err != nil {
		t.Fatal(err)
	}
	if err := b.Remove(0, 1); err != nil {
		t.Fatal(err)
	}
	if b.Text() != "ello, world" {
		t.Errorf("got %q", b.Text())
	}
	if b.Revision() != 2 {
		t.Errorf("expected revision 2, got %d", b.Revision())
	}

	if err := b.Insert(100, "x"); !errors.Is(err, ErrOffsetOutOfRange) {
		t.Errorf("expected ErrOffsetOutOfRange, got %v", err)
	}
	if err := b.Remove(3, 1); !errors.Is(err, ErrRangeInvalid) {
		t.Errorf("expected ErrRangeInvalid, got %v", err)
	}
}

func TestBufferFromReader(t *testing.T) {
	b, err := NewBufferFromReader(strings.NewReader("x\ny"))
	if err != nil {
		t.Fatal(err)
	}
	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}
}

func TestDetectLineEnding(t *testing.T) {
	tests := []struct {
		text string
		want LineEnding
	}{
		{"a\nb\n", LineEndingLF},
		{"a\r\nb\r\n", LineEndingCRLF},
		{"a\rb\r", LineEndingCR},
		{"abc", LineEndingLF},
	}
	for _, tt := range tests {
		if got := DetectLineEnding(tt.text); got != tt.want {
			t.Errorf("DetectLineEnding(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
