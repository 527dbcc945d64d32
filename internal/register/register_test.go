package register

import (
	"errors"
	"testing"
)

type fakeClipboard struct {
	content string
	err     error
}

func (c *fakeClipboard) Get() (string, error) { return c.content, c.err }

func (c *fakeClipboard) Set(content string) error {
	c.content = content
	return c.err
}

func TestStore(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		s := NewStore()
		s.Set('a', "hello", false)

		content, linewise := s.Get('a')
		if content != "hello" {
			t.Errorf("expected 'hello', got %q", content)
		}
		if linewise {
			t.Error("expected charwise content")
		}
	})

	t.Run("uppercase append", func(t *testing.T) {
		s := NewStore()
		s.Set('a', "hello", false)
		s.Set('A', " world", false)

		if content, _ := s.Get('a'); content != "hello world" {
			t.Errorf("expected 'hello world', got %q", content)
		}
		if content, _ := s.Get('A'); content != "hello world" {
			t.Errorf("uppercase read: got %q", content)
		}
	})

	t.Run("linewise append", func(t *testing.T) {
		s := NewStore()
		s.Set('b', "one", true)
		s.Set('B', "two\n", false)

		content, linewise := s.Get('b')
		if content != "one\ntwo\n" || !linewise {
			t.Errorf("got %q linewise=%v", content, linewise)
		}
	})

	t.Run("black hole", func(t *testing.T) {
		s := NewStore()
		s.Set('_', "discarded", false)
		s.Yank('_', "also discarded", false)

		if content, _ := s.Get('_'); content != "" {
			t.Errorf("expected empty black hole, got %q", content)
		}
		if content, _ := s.Get(Unnamed); content != "" {
			t.Errorf("black hole yank reached unnamed register: %q", content)
		}
	})

	t.Run("read-only registers", func(t *testing.T) {
		s := NewStore()
		s.Set('/', "pattern", false)
		if content, _ := s.Get('/'); content != "" {
			t.Errorf("expected '/' to ignore Set, got %q", content)
		}

		s.SetLastSearch("foo")
		if content, _ := s.Get('/'); content != "foo" {
			t.Errorf("expected 'foo', got %q", content)
		}
	})
}

func TestYank(t *testing.T) {
	s := NewStore()
	s.Yank(Unnamed, "text", false)
	s.Yank('c', "line\n", true)

	if content, _ := s.Get('c'); content != "line\n" {
		t.Errorf("named: got %q", content)
	}
	content, linewise := s.Get('0')
	if content != "line\n" || !linewise {
		t.Errorf("register 0: got %q linewise=%v", content, linewise)
	}
	if content, _ := s.Get(Unnamed); content != "line\n" {
		t.Errorf("unnamed: got %q", content)
	}
}

func TestDeleteRotation(t *testing.T) {
	s := NewStore()
	s.Delete(Unnamed, "first\n", true)
	s.Delete(Unnamed, "second\n", true)
	s.Delete(Unnamed, "word", false)

	if content, _ := s.Get('1'); content != "second\n" {
		t.Errorf("register 1: got %q", content)
	}
	if content, _ := s.Get('2'); content != "first\n" {
		t.Errorf("register 2: got %q", content)
	}
	if content, _ := s.Get('-'); content != "word" {
		t.Errorf("small delete: got %q", content)
	}
	if content, _ := s.Get(Unnamed); content != "word" {
		t.Errorf("unnamed: got %q", content)
	}
	if content, _ := s.Get('0'); content != "" {
		t.Errorf("delete reached yank register: %q", content)
	}

	for i := 0; i < 10; i++ {
		s.Delete(Unnamed, "x\n", true)
	}
	if content, _ := s.Get('9'); content != "x\n" {
		t.Errorf("register 9 after rotation: got %q", content)
	}
}

func TestDeleteEmptyIsIgnored(t *testing.T) {
	s := NewStore()
	s.Yank(Unnamed, "kept", false)
	s.Delete(Unnamed, "", false)

	if content, _ := s.Get(Unnamed); content != "kept" {
		t.Errorf("got %q", content)
	}
}

func TestClipboard(t *testing.T) {
	s := NewStore()
	cb := &fakeClipboard{}
	s.SetClipboard(cb)

	s.Set('+', "shared\n", true)
	if cb.content != "shared\n" {
		t.Errorf("clipboard got %q", cb.content)
	}
	content, linewise := s.Get('*')
	if content != "shared\n" || !linewise {
		t.Errorf("got %q linewise=%v", content, linewise)
	}

	cb.err = errors.New("unavailable")
	if content, _ := s.Get('+'); content != "" {
		t.Errorf("expected empty content on clipboard error, got %q", content)
	}
}

func TestSnapshot(t *testing.T) {
	s := NewStore()
	s.Set('z', "last", false)
	s.Yank(Unnamed, "y", false)

	snap := s.Snapshot()
	var names []rune
	for _, r := range snap {
		names = append(names, r.Name)
	}
	want := []rune{Unnamed, '0', 'z'}
	if string(names) != string(want) {
		t.Errorf("snapshot names = %q, want %q", string(names), string(want))
	}
}

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name rune
		want Type
	}{
		{'"', TypeUnnamed},
		{'a', TypeNamed},
		{'Z', TypeNamed},
		{'0', TypeLastYank},
		{'5', TypeNumbered},
		{'-', TypeSmallDelete},
		{'_', TypeBlackHole},
		{'+', TypeClipboard},
		{'/', TypeSearch},
		{'!', TypeInvalid},
	}
	for _, tt := range tests {
		if got := TypeOf(tt.name); got != tt.want {
			t.Errorf("TypeOf(%q) = %d, want %d", tt.name, got, tt.want)
		}
		if IsValid(tt.name) != (tt.want != TypeInvalid) {
			t.Errorf("IsValid(%q) inconsistent with TypeOf", tt.name)
		}
	}
}
