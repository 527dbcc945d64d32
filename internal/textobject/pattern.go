package textobject

import (
	"regexp"
	"sync"
	"unicode/utf8"
)

// PatternFinder resolves KindPattern objects as regular expression matches.
// Compiled expressions are cached; invalid patterns never match.
type PatternFinder struct {
	mu    sync.Mutex
	cache map[string]*regexp.Regexp
}

// NewPatternFinder creates a PatternFinder.
func NewPatternFinder() *PatternFinder {
	return &PatternFinder{cache: make(map[string]*regexp.Regexp)}
}

// Kinds returns the kinds this finder resolves.
func (f *PatternFinder) Kinds() []Kind {
	return []Kind{KindPattern}
}

// FindAt returns the match containing pos.
func (f *PatternFinder) FindAt(nav Navigator, pos int, obj TextObject) (Range, bool) {
	for _, m := range f.matches(nav, obj.Pattern) {
		if m.Start <= pos && pos < m.End {
			return m, true
		}
		if m.Start > pos {
			break
		}
	}
	return Range{}, false
}

// FindNext returns the first match starting after pos.
func (f *PatternFinder) FindNext(nav Navigator, pos int, obj TextObject) (Range, bool) {
	for _, m := range f.matches(nav, obj.Pattern) {
		if m.Start > pos {
			return m, true
		}
	}
	return Range{}, false
}

// FindPrev returns the last match ending at or before pos.
func (f *PatternFinder) FindPrev(nav Navigator, pos int, obj TextObject) (Range, bool) {
	var found Range
	ok := false
	for _, m := range f.matches(nav, obj.Pattern) {
		if m.End > pos {
			break
		}
		found, ok = m, true
	}
	return found, ok
}

func (f *PatternFinder) compile(pattern string) (*regexp.Regexp, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if re, ok := f.cache[pattern]; ok {
		return re, re != nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = nil
	}
	f.cache[pattern] = re
	return re, re != nil
}

// matches returns every non-empty match of pattern in character offsets.
func (f *PatternFinder) matches(nav Navigator, pattern string) []Range {
	if pattern == "" {
		return nil
	}
	re, ok := f.compile(pattern)
	if !ok {
		return nil
	}

	text := nav.Slice(0, nav.Len())
	return MatchRanges(text, re.FindAllStringIndex(text, -1))
}

// MatchRanges converts byte index pairs from regexp into character ranges,
// dropping empty matches. locs must be in ascending order.
func MatchRanges(text string, locs [][]int) []Range {
	ranges := make([]Range, 0, len(locs))
	byteOff, runeOff := 0, 0
	advance := func(to int) int {
		runeOff += utf8.RuneCountInString(text[byteOff:to])
		byteOff = to
		return runeOff
	}
	for _, loc := range locs {
		if loc[0] == loc[1] {
			continue
		}
		start := advance(loc[0])
		end := advance(loc[1])
		ranges = append(ranges, Range{Start: start, End: end})
	}
	return ranges
}
