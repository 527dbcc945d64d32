// Package object provides operations built on text objects.
//
// Each takes an object description as its parameter, in short form
// ("iw", "a(", "i/[0-9]+") or long form ("inner word", "around paragraph").
//
//   - select_object: select the object around the head
//   - delete_object: delete it into the active register
//   - change_object: delete it and enter insert mode
//   - next_object, prev_object: select the next or previous object
//
// An empty range means no object; the operation is then a no-op.
package object
