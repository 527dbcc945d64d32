package textobject

// bracketPairs maps each bracket to its partner and scan direction.
var bracketPairs = map[rune]struct {
	partner rune
	step    int
}{
	'(': {')', 1},
	'[': {']', 1},
	'{': {'}', 1},
	')': {'(', -1},
	']': {'[', -1},
	'}': {'{', -1},
}

// MatchingBracket returns the position of the bracket matching the one at
// pos. It reports false when pos is not on a bracket or the bracket has no
// partner.
func MatchingBracket(nav Navigator, pos int) (int, bool) {
	r, ok := nav.CharAt(pos)
	if !ok {
		return 0, false
	}
	pair, ok := bracketPairs[r]
	if !ok {
		return 0, false
	}

	depth := 1
	for i := pos + pair.step; i >= 0 && i < nav.Len(); i += pair.step {
		c, _ := nav.CharAt(i)
		switch c {
		case r:
			depth++
		case pair.partner:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// WordForward returns the start of the next word after pos.
func WordForward(nav Navigator, pos int) int {
	return forward(nav, pos, wordClass)
}

// BigWordForward returns the start of the next WORD after pos.
func BigWordForward(nav Navigator, pos int) int {
	return forward(nav, pos, bigWordClass)
}

// WordBackward returns the start of the word before pos.
func WordBackward(nav Navigator, pos int) int {
	return backward(nav, pos, wordClass)
}

// BigWordBackward returns the start of the WORD before pos.
func BigWordBackward(nav Navigator, pos int) int {
	return backward(nav, pos, bigWordClass)
}

// WordEnd returns the end of the word run containing pos, or pos when pos
// is not on a word.
func WordEnd(nav Navigator, pos int) int {
	end := pos
	for end < nav.Len() && classAt(nav, end, wordClass) == classWord {
		end++
	}
	return end
}

func forward(nav Navigator, pos int, class func(rune) charClass) int {
	n := nav.Len()
	if pos >= n {
		return n
	}
	i := pos
	if c := classAt(nav, i, class); c != classSpace {
		for i < n && classAt(nav, i, class) == c {
			i++
		}
	}
	for i < n && classAt(nav, i, class) == classSpace {
		i++
	}
	return i
}

func backward(nav Navigator, pos int, class func(rune) charClass) int {
	i := min(pos, nav.Len())
	for i > 0 && classAt(nav, i-1, class) == classSpace {
		i--
	}
	if i == 0 {
		return 0
	}
	c := classAt(nav, i-1, class)
	for i > 0 && classAt(nav, i-1, class) == c {
		i--
	}
	return i
}

// ParagraphForward returns the start of the first blank line after the
// paragraph at or after pos, or the document end. Blank lines at pos are
// skipped first.
func ParagraphForward(nav Navigator, pos int) int {
	count := nav.LineCount()
	line := nav.LineOf(pos)
	for line < count && isBlankLine(nav, line) {
		line++
	}
	for line < count && !isBlankLine(nav, line) {
		line++
	}
	if line >= count {
		return nav.Len()
	}
	return nav.OffsetOfLine(line)
}

// ParagraphBackward returns the start of the first blank line before the
// paragraph at or before pos, or the document start.
func ParagraphBackward(nav Navigator, pos int) int {
	line := nav.LineOf(pos)
	for line >= 0 && isBlankLine(nav, line) {
		line--
	}
	for line >= 0 && !isBlankLine(nav, line) {
		line--
	}
	if line < 0 {
		return 0
	}
	return nav.OffsetOfLine(line)
}
