package dispatcher

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/dispatcher/handlers/cursor"
	"github.com/dshills/editcore/internal/dispatcher/handlers/editor"
	"github.com/dshills/editcore/internal/dispatcher/handlers/history"
	"github.com/dshills/editcore/internal/dispatcher/handlers/mode"
	"github.com/dshills/editcore/internal/dispatcher/handlers/object"
	"github.com/dshills/editcore/internal/dispatcher/handlers/search"
	"github.com/dshills/editcore/internal/dispatcher/handlers/selection"
)

// Registry maps operation names to factories.
//
// Aliases are data: an alias resolves to its canonical name and shares that
// name's factory, so both build the same operation value.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]handler.Factory
	aliases   map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]handler.Factory),
		aliases:   make(map[string]string),
	}
}

// NewDefaultRegistry creates a registry holding every built-in operation
// and the default aliases.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, fs := range []map[string]handler.Factory{
		cursor.Factories(),
		selection.Factories(),
		object.Factories(),
		editor.Factories(),
		search.Factories(),
		history.Factories(),
		mode.Factories(),
	} {
		r.RegisterAll(fs)
	}
	for alias, name := range DefaultAliases {
		// Every canonical name above is registered.
		_ = r.Alias(alias, name)
	}
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f handler.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// RegisterAll registers every factory in fs.
func (r *Registry) RegisterAll(fs map[string]handler.Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, f := range fs {
		r.factories[name] = f
	}
}

// Alias makes alias resolve to canonical, which must be registered.
func (r *Registry) Alias(alias, canonical string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[canonical]; !ok {
		return fmt.Errorf("%w: alias %q targets %q", ErrUnknownOperation, alias, canonical)
	}
	r.aliases[alias] = canonical
	return nil
}

// Unregister removes name and every alias pointing at it.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.factories, name)
	for alias, target := range r.aliases {
		if target == name {
			delete(r.aliases, alias)
		}
	}
}

// Resolve returns the canonical name for name, following an alias.
func (r *Registry) Resolve(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.resolveLocked(name)
}

func (r *Registry) resolveLocked(name string) (string, bool) {
	if _, ok := r.factories[name]; ok {
		return name, true
	}
	if target, ok := r.aliases[name]; ok {
		return target, true
	}
	return "", false
}

// Create builds the operation registered under name, or an alias of it.
func (r *Registry) Create(name, param string) (handler.Operation, error) {
	r.mu.RLock()
	canonical, ok := r.resolveLocked(name)
	f := r.factories[canonical]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
	return f(param)
}

// Has returns true if name is registered or is an alias.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.resolveLocked(name)
	return ok
}

// List returns all canonical names and aliases, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories)+len(r.aliases))
	for name := range r.factories {
		names = append(names, name)
	}
	for alias := range r.aliases {
		names = append(names, alias)
	}
	sort.Strings(names)
	return names
}

// Aliases returns a copy of the alias table.
func (r *Registry) Aliases() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.aliases))
	for k, v := range r.aliases {
		out[k] = v
	}
	return out
}

// Count returns the number of canonical operations.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}
