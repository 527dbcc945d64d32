package dispatcher

import (
	"cmp"
	"slices"
	"sync"
	"time"

	"github.com/dshills/editcore/internal/dispatcher/handler"
)

// Metrics counts dispatches per canonical operation name.
type Metrics struct {
	mu    sync.RWMutex
	ops   map[string]*OperationMetrics
	total OperationMetrics
}

// OperationMetrics holds the counters of one operation, or of all of
// them in Report.Total.
type OperationMetrics struct {
	Name       string
	Dispatches uint64
	Changes    uint64
	NoOps      uint64
	Errors     uint64
	Panics     uint64
	Elapsed    time.Duration
	Slowest    time.Duration
}

// Average returns the mean dispatch time.
func (om OperationMetrics) Average() time.Duration {
	if om.Dispatches == 0 {
		return 0
	}
	return om.Elapsed / time.Duration(om.Dispatches)
}

func (om *OperationMetrics) add(elapsed time.Duration, status handler.ResultStatus) {
	om.Dispatches++
	om.Elapsed += elapsed
	om.Slowest = max(om.Slowest, elapsed)
	switch status {
	case handler.StatusOK:
		om.Changes++
	case handler.StatusNoOp:
		om.NoOps++
	case handler.StatusError:
		om.Errors++
	}
}

// NewMetrics creates an empty collector.
func NewMetrics() *Metrics {
	return &Metrics{ops: make(map[string]*OperationMetrics)}
}

// op returns the counters for name, creating them. Callers hold mu.
func (m *Metrics) op(name string) *OperationMetrics {
	om := m.ops[name]
	if om == nil {
		om = &OperationMetrics{Name: name}
		m.ops[name] = om
	}
	return om
}

// RecordDispatch counts one finished dispatch.
func (m *Metrics) RecordDispatch(name string, elapsed time.Duration, status handler.ResultStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total.add(elapsed, status)
	m.op(name).add(elapsed, status)
}

// RecordPanic counts a recovered panic. The dispatch itself is recorded
// separately as an error.
func (m *Metrics) RecordPanic(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total.Panics++
	m.op(name).Panics++
}

// TotalDispatches returns the number of dispatches recorded.
func (m *Metrics) TotalDispatches() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total.Dispatches
}

// TotalPanics returns the number of panics recovered.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.total.Panics
}

// OperationStats returns a copy of the counters for name, or nil when it
// was never dispatched.
func (m *Metrics) OperationStats(name string) *OperationMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	om := m.ops[name]
	if om == nil {
		return nil
	}
	c := *om
	return &c
}

// Report is a copy of every counter.
type Report struct {
	Total OperationMetrics

	// Operations is ordered by dispatch count, most first, then by name.
	Operations []OperationMetrics
}

// Report returns the current counters.
func (m *Metrics) Report() Report {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r := Report{Total: m.total, Operations: make([]OperationMetrics, 0, len(m.ops))}
	r.Total.Name = "total"
	for _, om := range m.ops {
		r.Operations = append(r.Operations, *om)
	}
	slices.SortFunc(r.Operations, func(a, b OperationMetrics) int {
		if c := cmp.Compare(b.Dispatches, a.Dispatches); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return r
}
