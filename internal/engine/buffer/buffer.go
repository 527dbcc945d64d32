package buffer

import (
	"errors"
	"io"
	"iter"
	"sort"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
	ErrEditsOverlap     = errors.New("edits overlap")
)

// LineEnding specifies the line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// Buffer is an in-memory Store addressed by character offset.
//
// Content is held with '\n' line separators regardless of the line ending
// it was loaded with; Content converts back on export.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       []rune
	lineStarts []int
	lineEnding LineEnding
	revision   uint64
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		lineStarts: []int{0},
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.text = []rune(normalizeLineEndings(s))
	b.reindex()
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data), opts...), nil
}

// normalizeLineEndings converts CRLF and CR to LF.
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// reindex rebuilds the line start table. Caller must hold the write lock.
func (b *Buffer) reindex() {
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i, r := range b.text {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// Read Operations

// Text returns the full buffer content with '\n' separators.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.text)
}

// Content returns the buffer content using the configured line ending.
func (b *Buffer) Content() string {
	text := b.Text()
	if b.LineEnding() == LineEndingLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", b.LineEnding().Sequence())
}

// Len returns the number of characters in the buffer.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text)
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// CharAt returns the character at offset.
func (b *Buffer) CharAt(offset int) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset >= len(b.text) {
		return 0, false
	}
	return b.text[offset], true
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.lineStarts)
}

// LineOf returns the zero-based line containing offset.
func (b *Buffer) LineOf(offset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset <= 0 {
		return 0
	}
	// First line whose start is past offset, minus one.
	return sort.SearchInts(b.lineStarts, offset+1) - 1
}

// OffsetOfLine returns the offset of the first character of line.
// Lines past the end clamp to the buffer length.
func (b *Buffer) OffsetOfLine(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	switch {
	case line <= 0:
		return 0
	case line >= len(b.lineStarts):
		return len(b.text)
	default:
		return b.lineStarts[line]
	}
}

// LineRunes iterates the characters of line, including its '\n'.
func (b *Buffer) LineRunes(line int) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		b.mu.RLock()
		start, end := b.lineBoundsLocked(line)
		runes := b.text[start:end]
		b.mu.RUnlock()

		for _, r := range runes {
			if !yield(r) {
				return
			}
		}
	}
}

// LineText returns the text of line without its terminator.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end := b.lineBoundsLocked(line)
	if end > start && b.text[end-1] == '\n' {
		end--
	}
	return string(b.text[start:end])
}

// lineBoundsLocked returns [start, end) of line including its terminator.
func (b *Buffer) lineBoundsLocked(line int) (int, int) {
	if line < 0 || line >= len(b.lineStarts) {
		return len(b.text), len(b.text)
	}
	start := b.lineStarts[line]
	end := len(b.text)
	if line+1 < len(b.lineStarts) {
		end = b.lineStarts[line+1]
	}
	return start, end
}

// Slice returns the text in [start, end), clamped to the buffer.
func (b *Buffer) Slice(start, end int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start = max(0, min(start, len(b.text)))
	end = max(start, min(end, len(b.text)))
	return string(b.text[start:end])
}

// Write Operations

// Insert inserts text at offset. Text is stored verbatim so that its
// character count matches the edit that produced it.
func (b *Buffer) Insert(offset int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > len(b.text) {
		return ErrOffsetOutOfRange
	}
	if text == "" {
		return nil
	}

	ins := []rune(text)
	b.text = append(b.text[:offset], append(ins, b.text[offset:]...)...)
	b.reindex()
	b.revision++
	return nil
}

// Remove deletes the characters in [start, end).
func (b *Buffer) Remove(start, end int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > len(b.text) {
		return ErrRangeInvalid
	}
	if start == end {
		return nil
	}

	b.text = append(b.text[:start], b.text[end:]...)
	b.reindex()
	b.revision++
	return nil
}

// Buffer State

// Revision returns a counter incremented by every mutation.
func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// LineEnding returns the export line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding sets the export line ending style.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}
