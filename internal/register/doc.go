// Package register stores yanked and deleted text for copy, cut and paste.
//
// Registers follow the vi conventions: the unnamed register (") receives
// every yank and delete, register 0 keeps the last yank, registers 1-9
// rotate through whole-line deletes, '-' keeps the last small delete and
// '_' discards writes. Named registers a-z are written directly; the
// uppercase name appends. The + and * registers forward to a Clipboard
// when one is set.
package register
