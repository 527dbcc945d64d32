// Package mode provides operations that change the editor mode or end the
// session.
//
//   - switch_mode <name>: enter the named mode. Entering normal mode
//     collapses the selection onto its head.
//   - exit: end the session.
//   - command (":"): run a command line. "q" exits and a line number
//     jumps to that line.
//
// The dispatcher applies the returned mode; operations here only report it.
package mode
