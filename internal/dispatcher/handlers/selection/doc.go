// Package selection provides operations that shape the selection without
// changing text.
//
// select_left, select_right, select_up, select_down, select_line_start and
// select_line_end move the head to the same targets as the matching cursor
// motions and keep the anchor. select_word, select_line and select_all
// replace the selection; clear_selection collapses it onto its head.
package selection
