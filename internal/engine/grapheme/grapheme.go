// Package grapheme locates user-perceived character boundaries.
//
// Boundaries follow Unicode extended grapheme clusters as implemented by
// uniseg. Offsets passed to and returned from NextBoundary and PrevBoundary
// are byte offsets into a UTF-8 string; ByteOffset and RuneOffset convert to
// and from the character offsets used by the rest of the editor.
package grapheme

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// NextBoundary returns the first grapheme boundary strictly after byteOffset.
// It reports false when byteOffset is at or past the end of text.
func NextBoundary(text string, byteOffset int) (int, bool) {
	if byteOffset >= len(text) {
		return len(text), false
	}

	pos := 0
	rest := text
	state := -1
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		if pos > byteOffset {
			return pos, true
		}
	}
	return len(text), true
}

// PrevBoundary returns the last grapheme boundary strictly before byteOffset.
// It reports false when byteOffset is at or before the start of text.
func PrevBoundary(text string, byteOffset int) (int, bool) {
	if byteOffset <= 0 {
		return 0, false
	}
	byteOffset = min(byteOffset, len(text))

	prev := 0
	pos := 0
	rest := text
	state := -1
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		pos += len(cluster)
		if pos >= byteOffset {
			return prev, true
		}
		prev = pos
	}
	return prev, true
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// ByteOffset converts a character offset in text to a byte offset.
// Offsets past the end map to len(text).
func ByteOffset(text string, runeOffset int) int {
	if runeOffset <= 0 {
		return 0
	}
	n := 0
	for i := range text {
		if n == runeOffset {
			return i
		}
		n++
	}
	return len(text)
}

// RuneOffset converts a byte offset in text to a character offset.
func RuneOffset(text string, byteOffset int) int {
	byteOffset = max(0, min(byteOffset, len(text)))
	return utf8.RuneCountInString(text[:byteOffset])
}
