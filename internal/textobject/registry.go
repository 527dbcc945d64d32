package textobject

import (
	"fmt"
	"slices"
	"sync"
)

// Registry maps kinds to the finder that resolves them.
//
// Registration order matters: the last finder registered for a kind
// shadows earlier ones. Lookups for kinds without a finder fail with
// ErrUnsupportedKind. Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	finders map[Kind]Finder
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{finders: make(map[Kind]Finder)}
}

// NewDefaultRegistry creates a registry with the basic and pattern finders.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewBasicFinder())
	r.Register(NewPatternFinder())
	return r
}

// Register adds a finder for every kind it reports.
func (r *Registry) Register(f Finder) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, k := range f.Kinds() {
		r.finders[k] = f
	}
}

// Supports returns true if a finder is registered for kind.
func (r *Registry) Supports(kind Kind) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.finders[kind]
	return ok
}

// Kinds returns the registered kinds in ascending order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.finders))
	for k := range r.finders {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

func (r *Registry) finder(kind Kind) (Finder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.finders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, kind)
	}
	return f, nil
}

// FindAt resolves obj at pos. A false result with a nil error means no
// object was found.
func (r *Registry) FindAt(nav Navigator, pos int, obj TextObject) (Range, bool, error) {
	f, err := r.finder(obj.Kind)
	if err != nil {
		return Range{}, false, err
	}
	rng, ok := f.FindAt(nav, pos, obj)
	return rng, ok, nil
}

// FindNext resolves the next obj after pos.
func (r *Registry) FindNext(nav Navigator, pos int, obj TextObject) (Range, bool, error) {
	f, err := r.finder(obj.Kind)
	if err != nil {
		return Range{}, false, err
	}
	rng, ok := f.FindNext(nav, pos, obj)
	return rng, ok, nil
}

// FindPrev resolves the previous obj before pos.
func (r *Registry) FindPrev(nav Navigator, pos int, obj TextObject) (Range, bool, error) {
	f, err := r.finder(obj.Kind)
	if err != nil {
		return Range{}, false, err
	}
	rng, ok := f.FindPrev(nav, pos, obj)
	return rng, ok, nil
}
