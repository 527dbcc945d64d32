// Package cursor provides operations that move the cursor.
//
// Every motion collapses the selection to a cursor at its target:
//   - move_left (h), move_right (l): previous/next grapheme cluster
//   - move_up (k), move_down (j): same column on the adjacent line,
//     clamped to the line's content
//   - move_line_start (0), move_line_end ($)
//   - move_word_forward (w), move_word_backward (b): word starts
//   - move_big_word_forward (W), move_big_word_backward (B): WORD starts
//   - move_document_start (gg), move_document_end (G)
//   - move_matching_bracket (%): partner of the bracket under the cursor
//   - move_paragraph_forward (}), move_paragraph_backward ({)
//
// jump_to_line and jump_to_character take a host-supplied position,
// which is clamped to the document.
//
// The motion targets are exported so selection operations can extend
// the selection to the same places.
package cursor
