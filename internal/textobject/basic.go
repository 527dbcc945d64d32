package textobject

// BasicFinder resolves the structural kinds: graphemes, words, lines,
// paragraphs and bracket pairs.
type BasicFinder struct{}

// NewBasicFinder creates a BasicFinder.
func NewBasicFinder() *BasicFinder {
	return &BasicFinder{}
}

// Kinds returns the kinds this finder resolves.
func (f *BasicFinder) Kinds() []Kind {
	return []Kind{
		KindGrapheme,
		KindWord,
		KindBigWord,
		KindLine,
		KindParagraph,
		KindParentheses,
		KindBrackets,
		KindBraces,
	}
}

// FindAt resolves the object at pos.
//
// A word lookup on punctuation returns a found, zero-width range; callers
// treat an empty range as no object.
func (f *BasicFinder) FindAt(nav Navigator, pos int, obj TextObject) (Range, bool) {
	n := nav.Len()

	// Line and paragraph objects also exist at the very end of the document.
	switch obj.Kind {
	case KindLine:
		if pos < 0 || pos > n {
			return Range{}, false
		}
		start, end := lineBounds(nav, nav.LineOf(pos))
		return Range{Start: start, End: end}, true
	case KindParagraph:
		if pos < 0 || pos > n {
			return Range{}, false
		}
		return paragraphAt(nav, pos), true
	}

	if pos < 0 || pos >= n {
		return Range{}, false
	}

	switch obj.Kind {
	case KindGrapheme:
		end, _ := NextGrapheme(nav, pos)
		start, _ := PrevGrapheme(nav, end)
		return Range{Start: start, End: end}, true
	case KindWord:
		return wordAt(nav, pos, obj.Mode, wordClass), true
	case KindBigWord:
		return wordAt(nav, pos, obj.Mode, bigWordClass), true
	case KindParentheses, KindBrackets, KindBraces:
		open, close, _ := obj.Kind.delimiters()
		o, c, err := EnclosingPair(nav, pos, open, close)
		if err != nil {
			return Range{}, false
		}
		if obj.Mode == Around {
			return Range{Start: o, End: c + 1}, true
		}
		return Range{Start: o + 1, End: c}, true
	default:
		return Range{}, false
	}
}

// FindNext returns the first non-empty object starting after pos.
func (f *BasicFinder) FindNext(nav Navigator, pos int, obj TextObject) (Range, bool) {
	return probeNext(nav, pos, func(i int) (Range, bool) {
		return f.FindAt(nav, i, obj)
	})
}

// FindPrev returns the nearest non-empty object ending at or before pos.
func (f *BasicFinder) FindPrev(nav Navigator, pos int, obj TextObject) (Range, bool) {
	return probePrev(nav, pos, func(i int) (Range, bool) {
		return f.FindAt(nav, i, obj)
	})
}

// wordAt resolves a word or WORD around pos; class decides what a word is.
func wordAt(nav Navigator, pos int, mode Mode, class func(rune) charClass) Range {
	n := nav.Len()
	at := func(i int) charClass { return classAt(nav, i, class) }
	blank := func(i int) bool {
		r, ok := nav.CharAt(i)
		return ok && isBlank(r)
	}

	r, _ := nav.CharAt(pos)
	switch class(r) {
	case classPunct:
		return Range{Start: pos, End: pos}
	case classSpace:
		if r == '\n' {
			return Range{Start: pos, End: pos}
		}
		// Skip blanks forward, then take the word that follows.
		i := pos
		for i < n && blank(i) {
			i++
		}
		if at(i) != classWord {
			return Range{Start: pos, End: pos}
		}
		end := i
		for end < n && at(end) == classWord {
			end++
		}
		if mode == Around {
			start := pos
			for start > 0 && blank(start-1) {
				start--
			}
			return Range{Start: start, End: end}
		}
		return Range{Start: i, End: end}
	}

	start := pos
	for start > 0 && at(start-1) == classWord {
		start--
	}
	end := pos + 1
	for end < n && at(end) == classWord {
		end++
	}
	if mode == Inner {
		return Range{Start: start, End: end}
	}

	// Around takes trailing blanks, or leading blanks when there are none.
	trail := end
	for trail < n && blank(trail) {
		trail++
	}
	if trail > end {
		return Range{Start: start, End: trail}
	}
	for start > 0 && blank(start-1) {
		start--
	}
	return Range{Start: start, End: end}
}

// paragraphAt returns the run of lines around pos that share its
// blankness.
func paragraphAt(nav Navigator, pos int) Range {
	line := nav.LineOf(pos)
	blank := isBlankLine(nav, line)

	first := line
	for first > 0 && isBlankLine(nav, first-1) == blank {
		first--
	}
	last := line
	for last+1 < nav.LineCount() && isBlankLine(nav, last+1) == blank {
		last++
	}

	_, end := lineBounds(nav, last)
	return Range{Start: nav.OffsetOfLine(first), End: end}
}

// EnclosingPair returns the innermost open/close delimiter pair that
// encloses pos. The backward scan counts the character at pos, so a cursor
// on an open delimiter selects its own pair and a cursor on a close
// delimiter selects the pair around it.
func EnclosingPair(nav Navigator, pos int, open, close rune) (int, int, error) {
	openPos := -1
	depth := 0
	for i := pos; i >= 0; i-- {
		r, _ := nav.CharAt(i)
		if r == close {
			depth++
		} else if r == open {
			if depth == 0 {
				openPos = i
				break
			}
			depth--
		}
	}
	if openPos < 0 {
		return 0, 0, ErrUnbalancedDelimiter
	}

	depth = 1
	for i := openPos + 1; i < nav.Len(); i++ {
		r, _ := nav.CharAt(i)
		if r == open {
			depth++
		} else if r == close {
			depth--
			if depth == 0 {
				return openPos, i, nil
			}
		}
	}
	return 0, 0, ErrUnbalancedDelimiter
}
