package register

import (
	"strings"
	"sync"
	"unicode"
)

// Type categorizes registers by their behavior.
type Type uint8

const (
	// TypeUnnamed is the default register (").
	TypeUnnamed Type = iota

	// TypeNamed is a named register (a-z, A-Z appends).
	TypeNamed

	// TypeLastYank is the yank register (0).
	TypeLastYank

	// TypeNumbered is a numbered delete register (1-9).
	TypeNumbered

	// TypeSmallDelete holds deletes shorter than a line (-).
	TypeSmallDelete

	// TypeBlackHole discards everything written to it (_).
	TypeBlackHole

	// TypeLastInserted is the last inserted text register (.).
	TypeLastInserted

	// TypeCommand is the last command register (:).
	TypeCommand

	// TypeSearch is the last search pattern register (/).
	TypeSearch

	// TypeClipboard is the system clipboard register (+ and *).
	TypeClipboard

	// TypeInvalid is returned for unknown register names.
	TypeInvalid
)

// Unnamed is the name of the default register.
const Unnamed = '"'

// Register is a named storage location for text.
type Register struct {
	Name     rune
	Type     Type
	Content  string
	Linewise bool
	ReadOnly bool
}

// Clipboard abstracts system clipboard access.
type Clipboard interface {
	Get() (string, error)
	Set(content string) error
}

// Store holds every register of one editing session.
type Store struct {
	mu        sync.RWMutex
	registers map[rune]*Register

	// numbered holds 1-9, most recent delete first.
	numbered [9]*Register

	clipboard Clipboard
}

// NewStore creates a store with all registers empty.
func NewStore() *Store {
	s := &Store{registers: make(map[rune]*Register)}

	s.registers[Unnamed] = &Register{Name: Unnamed, Type: TypeUnnamed}
	for r := 'a'; r <= 'z'; r++ {
		s.registers[r] = &Register{Name: r, Type: TypeNamed}
	}
	s.registers['0'] = &Register{Name: '0', Type: TypeLastYank}
	for i := 1; i <= 9; i++ {
		r := rune('0' + i)
		s.registers[r] = &Register{Name: r, Type: TypeNumbered}
		s.numbered[i-1] = s.registers[r]
	}
	s.registers['-'] = &Register{Name: '-', Type: TypeSmallDelete}
	s.registers['_'] = &Register{Name: '_', Type: TypeBlackHole}
	s.registers['.'] = &Register{Name: '.', Type: TypeLastInserted, ReadOnly: true}
	s.registers[':'] = &Register{Name: ':', Type: TypeCommand, ReadOnly: true}
	s.registers['/'] = &Register{Name: '/', Type: TypeSearch, ReadOnly: true}
	s.registers['+'] = &Register{Name: '+', Type: TypeClipboard}
	s.registers['*'] = &Register{Name: '*', Type: TypeClipboard}
	return s
}

// SetClipboard connects the + and * registers to a system clipboard.
func (s *Store) SetClipboard(clipboard Clipboard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clipboard = clipboard
}

// clipboardFor returns the provider when name is a clipboard register.
func (s *Store) clipboardFor(name rune) Clipboard {
	if name != '+' && name != '*' {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clipboard
}

// Get returns the content of a register and whether it is linewise.
// Uppercase names read the matching lowercase register.
func (s *Store) Get(name rune) (string, bool) {
	name = unicode.ToLower(name)

	if cb := s.clipboardFor(name); cb != nil {
		content, err := cb.Get()
		if err != nil {
			return "", false
		}
		return content, strings.HasSuffix(content, "\n")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	reg, ok := s.registers[name]
	if !ok {
		return "", false
	}
	return reg.Content, reg.Linewise
}

// Set stores content in a register. An uppercase name appends to the
// matching named register. Writes to read-only or unknown registers are
// ignored.
func (s *Store) Set(name rune, content string, linewise bool) {
	if name == '_' {
		return
	}
	if cb := s.clipboardFor(name); cb != nil {
		_ = cb.Set(content)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	appendMode := unicode.IsUpper(name)
	name = unicode.ToLower(name)

	reg, ok := s.registers[name]
	if !ok || reg.ReadOnly {
		return
	}

	if appendMode && reg.Type == TypeNamed {
		if reg.Linewise && !strings.HasSuffix(reg.Content, "\n") {
			reg.Content += "\n"
		}
		reg.Content += content
		reg.Linewise = reg.Linewise || linewise
		return
	}
	reg.Content = content
	reg.Linewise = linewise
}

// Yank records copied text in register 0, the unnamed register and, when
// name is not the unnamed register, in name too.
func (s *Store) Yank(name rune, content string, linewise bool) {
	if name == '_' {
		return
	}
	if name != Unnamed && name != 0 {
		s.Set(name, content, linewise)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.put('0', content, linewise)
	s.put(Unnamed, content, linewise)
}

// Delete records removed text. Text shorter than a line goes to the small
// delete register; anything else rotates the numbered registers 1-9.
// The unnamed register always receives the text.
func (s *Store) Delete(name rune, content string, linewise bool) {
	if name == '_' || content == "" {
		return
	}
	if name != Unnamed && name != 0 {
		s.Set(name, content, linewise)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !linewise && !strings.Contains(content, "\n") {
		s.put('-', content, false)
	} else {
		for i := len(s.numbered) - 1; i > 0; i-- {
			s.numbered[i].Content = s.numbered[i-1].Content
			s.numbered[i].Linewise = s.numbered[i-1].Linewise
		}
		s.numbered[0].Content = content
		s.numbered[0].Linewise = linewise
	}
	s.put(Unnamed, content, linewise)
}

// SetLastInserted updates the last inserted text register.
func (s *Store) SetLastInserted(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put('.', content, false)
}

// SetLastCommand updates the last command register.
func (s *Store) SetLastCommand(cmd string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put(':', cmd, false)
}

// SetLastSearch updates the last search pattern register.
func (s *Store) SetLastSearch(pattern string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.put('/', pattern, false)
}

// Snapshot returns a copy of every non-empty register, ordered by name.
func (s *Store) Snapshot() []Register {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Register, 0, len(s.registers))
	for _, name := range Names() {
		if reg := s.registers[name]; reg != nil && reg.Content != "" {
			out = append(out, *reg)
		}
	}
	return out
}

// put writes a register bypassing read-only checks. Callers hold s.mu.
func (s *Store) put(name rune, content string, linewise bool) {
	if reg, ok := s.registers[name]; ok {
		reg.Content = content
		reg.Linewise = linewise
	}
}

// Names lists register names in display order.
func Names() []rune {
	names := []rune{Unnamed, '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-'}
	for r := 'a'; r <= 'z'; r++ {
		names = append(names, r)
	}
	return append(names, '.', ':', '/', '+', '*', '_')
}

// TypeOf returns the type of register for a given name.
func TypeOf(name rune) Type {
	switch {
	case name == Unnamed:
		return TypeUnnamed
	case name >= 'a' && name <= 'z', name >= 'A' && name <= 'Z':
		return TypeNamed
	case name == '0':
		return TypeLastYank
	case name >= '1' && name <= '9':
		return TypeNumbered
	case name == '-':
		return TypeSmallDelete
	case name == '_':
		return TypeBlackHole
	case name == '.':
		return TypeLastInserted
	case name == ':':
		return TypeCommand
	case name == '/':
		return TypeSearch
	case name == '+', name == '*':
		return TypeClipboard
	default:
		return TypeInvalid
	}
}

// IsValid returns true if the register name is valid.
func IsValid(name rune) bool {
	return TypeOf(name) != TypeInvalid
}
