// Package app wires configuration, logging, the engine and the dispatcher
// into one editing session driven by a command script.
package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	udiff "github.com/aymanbagabas/go-udiff"
	"go.uber.org/zap"

	"github.com/dshills/editcore/internal/config"
	"github.com/dshills/editcore/internal/dispatcher"
	"github.com/dshills/editcore/internal/dispatcher/execctx"
	"github.com/dshills/editcore/internal/dispatcher/handler"
	"github.com/dshills/editcore/internal/engine"
	"github.com/dshills/editcore/internal/engine/buffer"
	"github.com/dshills/editcore/internal/logger"
	"github.com/dshills/editcore/internal/register"
)

// Application is one editing session over a single document.
type Application struct {
	config     config.Config
	logger     *zap.Logger
	closeLog   func()
	engine     *engine.Engine
	ctx        *execctx.Context
	dispatcher *dispatcher.Dispatcher
	journal    *dispatcher.Journal
	initial    string
	opts       Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file.
	ConfigPath string

	// Content is the initial document text.
	Content string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// Logger replaces the configured logger. The application does not
	// close it.
	Logger *zap.Logger

	// ContinueOnError keeps running a script after a failed command.
	ContinueOnError bool

	// Metrics enables dispatch metrics even when the configuration
	// leaves them off.
	Metrics bool

	// JournalSize is the number of dispatches kept in the journal.
	// Zero keeps all of them.
	JournalSize int
}

// New loads configuration and builds the session.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, &InitError{Component: "config", Err: err}
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}

	a := &Application{config: cfg, opts: opts, closeLog: func() {}}
	if err := a.bootstrap(); err != nil {
		return nil, err
	}
	return a, nil
}

// bootstrap initializes all components in dependency order.
func (a *Application) bootstrap() error {
	// 1. Logger
	a.logger = a.opts.Logger
	if a.logger == nil {
		log, closeFn, err := logger.New(a.config.Logging)
		if err != nil {
			return &InitError{Component: "logger", Err: err}
		}
		a.logger, a.closeLog = log, closeFn
	}

	// 2. Engine
	lineEnding, ok := buffer.ParseLineEnding(a.config.Editor.LineEnding)
	if !ok {
		// Validated config leaves only "auto" here.
		lineEnding = buffer.DetectLineEnding(a.opts.Content)
	}
	a.engine = engine.New(
		engine.WithContent(a.opts.Content),
		engine.WithLineEnding(lineEnding),
		engine.WithMaxUndoEntries(a.config.Editor.MaxUndoEntries),
		engine.WithLogger(a.logger.Named("engine")),
	)
	a.initial = a.engine.Text()

	// 3. Execution context
	registers := register.NewStore()
	if a.config.Editor.SystemClipboard {
		if register.SystemClipboardAvailable() {
			registers.SetClipboard(register.SystemClipboard{})
		} else {
			a.logger.Warn("system clipboard requested but not available")
		}
	}
	a.ctx = execctx.New(a.engine).
		WithLogger(a.logger.Named("ops")).
		WithRegisters(registers).
		WithIndentWidth(a.config.Editor.IndentWidth).
		WithMode(a.config.Editor.InitialMode)

	// 4. Dispatcher
	dc := dispatcher.DefaultConfig().
		WithInitialMode(a.config.Editor.InitialMode).
		WithPanicRecovery(a.config.Dispatcher.RecoverPanics)
	if a.config.Dispatcher.Metrics || a.opts.Metrics {
		dc = dc.WithMetrics()
	}
	if a.config.Dispatcher.Async {
		dc = dc.WithAsyncDispatch(dc.RequestBufferSize)
	}
	a.dispatcher = dispatcher.New(dc)
	a.dispatcher.SetLogger(a.logger.Named("dispatcher"))
	a.journal = dispatcher.NewJournal(a.opts.JournalSize)
	a.dispatcher.RegisterPostHook(a.journal)

	if dc.AsyncDispatch {
		if err := a.dispatcher.Start(); err != nil {
			return &InitError{Component: "dispatcher", Err: err}
		}
	}

	a.logger.Debug("session started",
		zap.Int("chars", a.engine.Len()),
		zap.String("mode", a.dispatcher.Mode()),
		zap.Bool("async", dc.AsyncDispatch),
	)
	return nil
}

// Run executes a command script, one command per line. It returns
// ErrQuit when a command asks to exit and a *ScriptError for the first
// failing command unless ContinueOnError is set.
//
// A line is a command name optionally followed by a space and its
// parameter. Blank lines and lines starting with '#' are skipped. A
// parameter in double quotes is unquoted with Go string syntax, so
// "\n" inserts a newline.
func (a *Application) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		name, param, ok, err := parseCommand(scanner.Text())
		if err != nil {
			return &ScriptError{Line: lineNo, Command: scanner.Text(), Err: err}
		}
		if !ok {
			continue
		}

		result, err := a.Execute(name, param)
		if err != nil {
			serr := &ScriptError{Line: lineNo, Command: name, Err: err}
			if !a.opts.ContinueOnError {
				return serr
			}
			a.logger.Warn("command failed", zap.Error(serr))
			continue
		}
		if result.IsExit() {
			return ErrQuit
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading script: %w", err)
	}
	return nil
}

// Execute dispatches one command, through the async loop when enabled.
func (a *Application) Execute(name, param string) (handler.Result, error) {
	if !a.dispatcher.Config().AsyncDispatch {
		return a.dispatcher.Dispatch(a.ctx, name, param)
	}

	req := dispatcher.Request{Ctx: a.ctx, Name: name, Param: param}
	if err := a.dispatcher.Submit(req); err != nil {
		return handler.Failure(err), err
	}
	outcome := <-a.dispatcher.Results()
	return outcome.Result, outcome.Err
}

// parseCommand splits a script line. ok is false for lines to skip.
func parseCommand(line string) (name, param string, ok bool, err error) {
	line = strings.TrimRight(line, "\r")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}

	name, param, _ = strings.Cut(trimmed, " ")
	if len(param) >= 2 && strings.HasPrefix(param, `"`) && strings.HasSuffix(param, `"`) {
		unquoted, err := strconv.Unquote(param)
		if err != nil {
			return "", "", false, fmt.Errorf("%w: bad quoted parameter %s", dispatcher.ErrMalformedParameter, param)
		}
		param = unquoted
	}
	return name, param, true, nil
}

// Text returns the document with the configured line endings.
func (a *Application) Text() string {
	return a.engine.Content()
}

// Diff returns a unified diff from the initial content to the current
// text, or "" when nothing changed. name labels both sides.
func (a *Application) Diff(name string) string {
	before := ensureTrailingNewline(a.initial)
	after := ensureTrailingNewline(a.engine.Text())
	if before == after {
		return ""
	}
	return udiff.Unified(name, name+" (edited)", before, after)
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// Mode returns the current mode.
func (a *Application) Mode() string {
	return a.dispatcher.Mode()
}

// Stats returns document and cursor statistics.
func (a *Application) Stats() execctx.Stats {
	return a.ctx.Stats()
}

// Journal returns the dispatch journal.
func (a *Application) Journal() *dispatcher.Journal {
	return a.journal
}

// Metrics returns dispatch metrics, or nil when disabled.
func (a *Application) Metrics() *dispatcher.Metrics {
	return a.dispatcher.Metrics()
}

// Config returns the loaded configuration.
func (a *Application) Config() config.Config {
	return a.config
}

// Shutdown stops the dispatcher and flushes the logger.
func (a *Application) Shutdown() {
	a.dispatcher.Stop()
	a.logger.Debug("session ended", zap.Uint64("revision", a.ctx.Stats().Revision))
	a.closeLog()
}

// IsQuit reports whether err is the normal end of a script.
func IsQuit(err error) bool {
	return errors.Is(err, ErrQuit)
}
