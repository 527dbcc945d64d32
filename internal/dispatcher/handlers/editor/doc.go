// Package editor provides the operations that change text.
//
// Every operation builds its edits from the selection or the line under
// the head, then commits them as a single transaction, so one undo
// reverts one operation.
//
// # Insert Operations
//   - insert_char, insert_string: replace the selection with text
//   - insert_newline, insert_tab, insert_spaces [n]
//   - insert_line_above (O), insert_line_below (o): open an empty line
//
// # Delete Operations
//   - delete_char (x), backspace (X): the selection, or one grapheme
//   - delete_word, delete_word_backward
//   - delete_line (dd), delete_to_line_start, delete_to_line_end
//
// # Register Operations
//   - copy (yy): yank the selection, or the current line
//   - cut: yank and delete the selection, or the current line
//   - paste (p): insert the parameter, or the active register
//
// # Transform Operations
//   - uppercase_selection, lowercase_selection, toggle_case_selection
//   - indent_selection, unindent_selection
//
// # Line Operations
//   - duplicate_line, move_line_up, move_line_down
package editor
