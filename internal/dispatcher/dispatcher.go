package dispatcher

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
)

// Dispatcher resolves command names to operations and runs them.
//
// Each Dispatch runs one operation to completion. The dispatcher tracks
// the current mode and applies mode switches reported by operations.
type Dispatcher struct {
	mu sync.RWMutex

	registry *Registry
	config   Config
	logger   *zap.Logger
	metrics  *Metrics
	mode     string

	preHooks  []PreDispatchHook
	postHooks []PostDispatchHook

	// Async dispatch
	requests chan Request
	results  chan Outcome
	done     chan struct{}
	stop     sync.Once
}

// Request is one command submitted for async dispatch.
type Request struct {
	Ctx   *execctx.Context
	Name  string
	Param string
}

// Outcome is the result of an async request.
type Outcome struct {
	Request Request
	Result  handler.Result
	Err     error
}

// New creates a dispatcher with the given configuration and the default
// registry.
func New(config Config) *Dispatcher {
	d := &Dispatcher{
		registry: NewDefaultRegistry(),
		config:   config,
		logger:   zap.NewNop(),
		mode:     config.InitialMode,
		done:     make(chan struct{}),
	}
	if d.mode == "" {
		d.mode = execctx.DefaultMode
	}

	if config.AsyncDispatch {
		bufSize := config.RequestBufferSize
		if bufSize <= 0 {
			bufSize = 100
		}
		d.requests = make(chan Request, bufSize)
		d.results = make(chan Outcome, bufSize)
	}

	if config.EnableMetrics {
		d.metrics = NewMetrics()
	}

	return d
}

// NewWithDefaults creates a dispatcher with default configuration.
func NewWithDefaults() *Dispatcher {
	return New(DefaultConfig())
}

// SetLogger sets the logger. A nil logger discards output.
func (d *Dispatcher) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logger = logger
}

// Mode returns the current mode.
func (d *Dispatcher) Mode() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.mode
}

// SetMode sets the current mode.
func (d *Dispatcher) SetMode(mode string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = mode
}

// Dispatch creates the operation registered under name with param and
// runs it against ctx.
//
// Unknown names and rejected parameters return an error before anything
// runs. An operation that fails leaves the document as it was.
func (d *Dispatcher) Dispatch(ctx *execctx.Context, name, param string) (handler.Result, error) {
	start := time.Now()

	if ctx == nil {
		return handler.Failure(execctx.ErrMissingBuffer), execctx.ErrMissingBuffer
	}
	if err := ctx.Validate(); err != nil {
		return handler.Failure(err), err
	}

	inv := &Invocation{Name: name, Param: param}
	result, err := d.run(ctx, inv)

	d.runPostHooks(inv, ctx, &result, err)
	d.record(inv, time.Since(start), result, err)
	return result, err
}

// run does the work of Dispatch between validation and bookkeeping.
func (d *Dispatcher) run(ctx *execctx.Context, inv *Invocation) (handler.Result, error) {
	if !d.runPreHooks(inv, ctx) {
		return handler.Failure(ErrCancelled), fmt.Errorf("%w: %s", ErrCancelled, inv.Name)
	}

	op, err := d.registry.Create(inv.Name, inv.Param)
	if err != nil {
		return handler.Failure(err), err
	}

	ctx.Mode = d.Mode()
	var result handler.Result
	if d.config.RecoverFromPanic {
		result, err = d.executeWithRecovery(op, ctx)
	} else {
		result, err = op.Execute(ctx)
	}
	if err != nil {
		return handler.Failure(err), err
	}

	if result.Action == handler.ActionSwitchMode {
		d.SetMode(result.Mode)
		ctx.Mode = result.Mode
	}
	return result, nil
}

// executeWithRecovery executes an operation with panic recovery.
func (d *Dispatcher) executeWithRecovery(op handler.Operation, ctx *execctx.Context) (result handler.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := make([]byte, 4096)
			n := runtime.Stack(stack, false)

			err = fmt.Errorf("%w: %s: %v", ErrPanic, op.Name(), r)
			result = handler.Failure(err)

			d.log().Error("operation panicked",
				zap.String("op", op.Name()),
				zap.Any("panic", r),
				zap.ByteString("stack", stack[:n]),
			)
			if d.metrics != nil {
				d.metrics.RecordPanic(op.Name())
			}
		}
	}()

	return op.Execute(ctx)
}

// record logs the dispatch and updates metrics under the canonical name.
func (d *Dispatcher) record(inv *Invocation, elapsed time.Duration, result handler.Result, err error) {
	name := inv.Name
	if canonical, ok := d.registry.Resolve(name); ok {
		name = canonical
	}

	fields := []zap.Field{
		zap.String("op", name),
		zap.String("param", inv.Param),
		zap.Stringer("result", result),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		d.log().Warn("dispatch failed", append(fields, zap.Error(err))...)
	} else {
		d.log().Debug("dispatched", fields...)
	}

	if d.metrics != nil {
		d.metrics.RecordDispatch(name, elapsed, result.Status)
	}
}

func (d *Dispatcher) log() *zap.Logger {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.logger
}

// RegisterPreHook registers a pre-dispatch hook.
func (d *Dispatcher) RegisterPreHook(hook PreDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.preHooks = append(d.preHooks, hook)
}

// RegisterPostHook registers a post-dispatch hook.
func (d *Dispatcher) RegisterPostHook(hook PostDispatchHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.postHooks = append(d.postHooks, hook)
}

// runPreHooks runs all pre-dispatch hooks.
// Returns false if any hook cancels the operation.
func (d *Dispatcher) runPreHooks(inv *Invocation, ctx *execctx.Context) bool {
	d.mu.RLock()
	hooks := make([]PreDispatchHook, len(d.preHooks))
	copy(hooks, d.preHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		if !h.PreDispatch(inv, ctx) {
			return false
		}
	}
	return true
}

// runPostHooks runs all post-dispatch hooks.
func (d *Dispatcher) runPostHooks(inv *Invocation, ctx *execctx.Context, result *handler.Result, err error) {
	d.mu.RLock()
	hooks := make([]PostDispatchHook, len(d.postHooks))
	copy(hooks, d.postHooks)
	d.mu.RUnlock()

	for _, h := range hooks {
		h.PostDispatch(inv, ctx, result, err)
	}
}

// Start starts the async dispatch loop. Requests are processed one at a
// time, in submission order.
func (d *Dispatcher) Start() error {
	if !d.config.AsyncDispatch {
		return ErrAsyncNotEnabled
	}
	go d.dispatchLoop()
	return nil
}

// Stop stops the async dispatch loop. It is safe to call more than once.
func (d *Dispatcher) Stop() {
	d.stop.Do(func() { close(d.done) })
}

// Submit queues a request for the async loop.
func (d *Dispatcher) Submit(req Request) error {
	if !d.config.AsyncDispatch {
		return ErrAsyncNotEnabled
	}
	select {
	case <-d.done:
		return ErrDispatcherStopped
	default:
	}
	select {
	case d.requests <- req:
		return nil
	case <-d.done:
		return ErrDispatcherStopped
	}
}

// dispatchLoop processes requests asynchronously.
func (d *Dispatcher) dispatchLoop() {
	for {
		select {
		case req := <-d.requests:
			result, err := d.Dispatch(req.Ctx, req.Name, req.Param)
			select {
			case d.results <- Outcome{Request: req, Result: result, Err: err}:
			default:
				d.log().Warn("result channel full, dropping outcome", zap.String("op", req.Name))
			}
		case <-d.done:
			return
		}
	}
}

// Results returns the outcome channel for async dispatch.
// Returns nil if async dispatch is not enabled.
func (d *Dispatcher) Results() <-chan Outcome {
	return d.results
}

// Registry returns the operation registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Metrics returns the metrics collector (may be nil if disabled).
func (d *Dispatcher) Metrics() *Metrics {
	return d.metrics
}

// Config returns the dispatcher configuration.
func (d *Dispatcher) Config() Config {
	return d.config
}
