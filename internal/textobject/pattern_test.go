package textobject

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/editcore/internal/engine/buffer"
)

func TestPatternFinder(t *testing.T) {
	nav := buffer.NewBufferFromString("añb 12 cd 345")
	f := NewPatternFinder()
	digits := NewPattern(`[0-9]+`, Inner)

	tests := []struct {
		name string
		find func() (Range, bool)
		want Range
		ok   bool
	}{
		{"at", func() (Range, bool) { return f.FindAt(nav, 5, digits) }, Range{Start: 4, End: 6}, true},
		{"at miss", func() (Range, bool) { return f.FindAt(nav, 1, digits) }, Range{}, false},
		{"next", func() (Range, bool) { return f.FindNext(nav, 4, digits) }, Range{Start: 10, End: 13}, true},
		{"prev", func() (Range, bool) { return f.FindPrev(nav, 12, digits) }, Range{Start: 4, End: 6}, true},
		{"prev none", func() (Range, bool) { return f.FindPrev(nav, 5, digits) }, Range{}, false},
		{"invalid", func() (Range, bool) { return f.FindAt(nav, 0, NewPattern(`(`, Inner)) }, Range{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.find()
			if got != tt.want || ok != tt.ok {
				t.Errorf("got %v, %v; want %v, %v", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestMatchRanges(t *testing.T) {
	text := "ñx ñx"
	re := regexp.MustCompile(`x|y*`)
	got := MatchRanges(text, re.FindAllStringIndex(text, -1))
	want := []Range{{Start: 1, End: 2}, {Start: 4, End: 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MatchRanges mismatch (-want +got):\n%s", diff)
	}
}
