// Package search provides find and replace operations.
//
// Patterns are literal text. Matching goes through the pattern text
// object finder, so find_next and find_previous resolve the same matches
// a pattern object would.
//
//   - find_next <text>: select the next match at or after the head (wraps)
//   - find_previous <text>: select the last match before the selection (wraps)
//   - replace <pattern with replacement>: replace the selection if it is
//     exactly the pattern
//   - replace_all <pattern with replacement>: replace every match as one
//     transaction
//
// The last pattern searched for is kept in the "/" register.
package search
