// Package textobject resolves semantic ranges of a document: graphemes,
// words, lines, paragraphs, bracket pairs and pattern matches.
//
// A Registry maps each Kind to the Finder that resolves it. The last finder
// registered for a kind wins, so a smarter finder can be layered over the
// BasicFinder for the kinds they share. Kinds nobody registered for, which
// includes the syntax-aware kinds, fail with ErrUnsupportedKind.
//
//	reg := textobject.NewDefaultRegistry()
//	r, ok, err := reg.FindAt(buf, pos, textobject.New(textobject.KindWord, textobject.Inner))
//
// Finders scan a Navigator using character offsets. Besides object lookup
// the package exposes the cursor motions built on the same scans, such as
// WordForward and MatchingBracket.
package textobject
