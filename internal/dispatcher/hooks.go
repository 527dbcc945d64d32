package dispatcher

import (
	"sync"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
)

// Invocation is one command as requested by the caller.
type Invocation struct {
	Name  string
	Param string
}

// PreDispatchHook is called before an operation is created.
// Returning false cancels the dispatch.
type PreDispatchHook interface {
	// PreDispatch may rewrite the invocation.
	PreDispatch(inv *Invocation, ctx *execctx.Context) bool
}

// PostDispatchHook is called after an operation ran or failed.
type PostDispatchHook interface {
	// PostDispatch may inspect or modify the result.
	PostDispatch(inv *Invocation, ctx *execctx.Context, result *handler.Result, err error)
}

// PreDispatchFunc is a function adapter for PreDispatchHook.
type PreDispatchFunc func(inv *Invocation, ctx *execctx.Context) bool

// PreDispatch implements PreDispatchHook.
func (f PreDispatchFunc) PreDispatch(inv *Invocation, ctx *execctx.Context) bool {
	return f(inv, ctx)
}

// PostDispatchFunc is a function adapter for PostDispatchHook.
type PostDispatchFunc func(inv *Invocation, ctx *execctx.Context, result *handler.Result, err error)

// PostDispatch implements PostDispatchHook.
func (f PostDispatchFunc) PostDispatch(inv *Invocation, ctx *execctx.Context, result *handler.Result, err error) {
	f(inv, ctx, result, err)
}

// DenyHook cancels the listed operations. Names are matched as given,
// so aliases must be listed separately.
type DenyHook struct {
	names map[string]struct{}
}

// NewDenyHook creates a hook that cancels names.
func NewDenyHook(names ...string) *DenyHook {
	h := &DenyHook{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		h.names[n] = struct{}{}
	}
	return h
}

// PreDispatch implements PreDispatchHook.
func (h *DenyHook) PreDispatch(inv *Invocation, _ *execctx.Context) bool {
	_, denied := h.names[inv.Name]
	return !denied
}

// JournalEntry records one dispatch.
type JournalEntry struct {
	Invocation Invocation
	Result     handler.Result
	Err        error
}

// Journal is a post-dispatch hook that keeps the most recent dispatches.
type Journal struct {
	mu      sync.Mutex
	limit   int
	entries []JournalEntry
}

// NewJournal creates a journal holding at most limit entries. A limit of
// zero or less keeps everything.
func NewJournal(limit int) *Journal {
	return &Journal{limit: limit}
}

// PostDispatch implements PostDispatchHook.
func (j *Journal) PostDispatch(inv *Invocation, _ *execctx.Context, result *handler.Result, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, JournalEntry{Invocation: *inv, Result: *result, Err: err})
	if j.limit > 0 && len(j.entries) > j.limit {
		j.entries = j.entries[len(j.entries)-j.limit:]
	}
}

// Entries returns a copy of the recorded dispatches, oldest first.
func (j *Journal) Entries() []JournalEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]JournalEntry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of recorded dispatches.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.entries)
}
