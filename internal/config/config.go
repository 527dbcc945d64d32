package config

import (
	"fmt"
	"slices"

	"github.com/dshills/editcore/internal/config/loader"
	"github.com/dshills/editcore/internal/engine/buffer"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "EDITCORE_"

// Config holds every editcore setting.
type Config struct {
	Editor     EditorConfig
	Logging    LoggingConfig
	Dispatcher DispatcherConfig
}

// EditorConfig holds document and editing settings.
type EditorConfig struct {
	// IndentWidth is the number of spaces indent_selection adds.
	IndentWidth int

	// MaxUndoEntries is the number of transactions kept for undo.
	MaxUndoEntries int

	// LineEnding is "lf", "crlf", "cr" or "auto", which keeps the ending
	// the document already uses.
	LineEnding string

	// InitialMode is the mode a session starts in.
	InitialMode string

	// SystemClipboard connects the + and * registers to the operating
	// system clipboard.
	SystemClipboard bool
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string

	// Format is "console" or "json".
	Format string

	// File is the log file path. Empty logs to stderr.
	File string
}

// DispatcherConfig holds dispatcher settings.
type DispatcherConfig struct {
	Async         bool
	Metrics       bool
	RecoverPanics bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Editor: EditorConfig{
			IndentWidth:    4,
			MaxUndoEntries: 1000,
			LineEnding:     "lf",
			InitialMode:    "normal",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Dispatcher: DispatcherConfig{
			RecoverPanics: true,
		},
	}
}

// Option configures Load.
type Option func(*options)

type options struct {
	fs        loader.FileSystem
	envPrefix string
	skipEnv   bool
}

// WithFS reads the config file from fsys instead of the OS.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) {
		o.fs = fsys
	}
}

// WithEnvPrefix changes the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithoutEnv ignores environment overrides.
func WithoutEnv() Option {
	return func(o *options) {
		o.skipEnv = true
	}
}

// Load builds a Config from the defaults, the file at path and the
// environment, in increasing priority. An empty path or a missing file
// leaves the defaults in place. The result is validated.
func Load(path string, opts ...Option) (Config, error) {
	o := options{fs: loader.DefaultFS(), envPrefix: EnvPrefix}
	for _, opt := range opts {
		opt(&o)
	}

	merged := Default().toMap()

	if path != "" {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return Config{}, err
		}
		file, err := l.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, file)
	}

	if !o.skipEnv {
		env, err := loader.NewEnvLoader(o.envPrefix).Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, env)
	}

	cfg, err := fromMap(merged)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting is in range.
func (c Config) Validate() error {
	switch {
	case c.Editor.IndentWidth < 1 || c.Editor.IndentWidth > 16:
		return &ValidationError{Path: "editor.indentWidth", Message: "must be between 1 and 16", Value: c.Editor.IndentWidth}
	case c.Editor.MaxUndoEntries < 1:
		return &ValidationError{Path: "editor.maxUndoEntries", Message: "must be positive", Value: c.Editor.MaxUndoEntries}
	case !validLineEnding(c.Editor.LineEnding):
		return &ValidationError{Path: "editor.lineEnding", Message: `must be "lf", "crlf", "cr" or "auto"`, Value: c.Editor.LineEnding}
	case c.Editor.InitialMode == "":
		return &ValidationError{Path: "editor.initialMode", Message: "must not be empty", Value: c.Editor.InitialMode}
	case !slices.Contains([]string{"debug", "info", "warn", "error"}, c.Logging.Level):
		return &ValidationError{Path: "logging.level", Message: "must be debug, info, warn or error", Value: c.Logging.Level}
	case !slices.Contains([]string{"console", "json"}, c.Logging.Format):
		return &ValidationError{Path: "logging.format", Message: `must be "console" or "json"`, Value: c.Logging.Format}
	}
	return nil
}

// LineEndingAuto selects the line ending found in the document.
const LineEndingAuto = "auto"

func validLineEnding(name string) bool {
	if name == "" {
		return false
	}
	_, ok := buffer.ParseLineEnding(name)
	return ok || name == LineEndingAuto
}

// toMap returns c in the nested form the loaders produce.
func (c Config) toMap() map[string]any {
	return map[string]any{
		"editor": map[string]any{
			"indentWidth":     c.Editor.IndentWidth,
			"maxUndoEntries":  c.Editor.MaxUndoEntries,
			"lineEnding":      c.Editor.LineEnding,
			"initialMode":     c.Editor.InitialMode,
			"systemClipboard": c.Editor.SystemClipboard,
		},
		"logging": map[string]any{
			"level":  c.Logging.Level,
			"format": c.Logging.Format,
			"file":   c.Logging.File,
		},
		"dispatcher": map[string]any{
			"async":         c.Dispatcher.Async,
			"metrics":       c.Dispatcher.Metrics,
			"recoverPanics": c.Dispatcher.RecoverPanics,
		},
	}
}

// fromMap decodes a merged settings map. Unknown keys are ignored.
func fromMap(data map[string]any) (Config, error) {
	var (
		cfg Config
		a   = accessor{data: data}
	)
	cfg.Editor.IndentWidth = a.getInt("editor.indentWidth")
	cfg.Editor.MaxUndoEntries = a.getInt("editor.maxUndoEntries")
	cfg.Editor.LineEnding = a.getString("editor.lineEnding")
	cfg.Editor.InitialMode = a.getString("editor.initialMode")
	cfg.Editor.SystemClipboard = a.getBool("editor.systemClipboard")
	cfg.Logging.Level = a.getString("logging.level")
	cfg.Logging.Format = a.getString("logging.format")
	cfg.Logging.File = a.getString("logging.file")
	cfg.Dispatcher.Async = a.getBool("dispatcher.async")
	cfg.Dispatcher.Metrics = a.getBool("dispatcher.metrics")
	cfg.Dispatcher.RecoverPanics = a.getBool("dispatcher.recoverPanics")
	return cfg, a.err
}

// accessor reads typed values from a settings map, keeping the first
// type error.
type accessor struct {
	data map[string]any
	err  error
}

func (a *accessor) get(path string) any {
	v, _ := loader.GetByPath(a.data, path)
	return v
}

func (a *accessor) fail(path, expected string, v any) {
	if a.err == nil {
		a.err = &TypeError{Path: path, Expected: expected, Actual: fmt.Sprintf("%T", v)}
	}
}

func (a *accessor) getString(path string) string {
	switch v := a.get(path).(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		a.fail(path, "string", v)
		return ""
	}
}

func (a *accessor) getInt(path string) int {
	switch v := a.get(path).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		if v == float64(int(v)) {
			return int(v)
		}
		a.fail(path, "integer", v)
		return 0
	default:
		a.fail(path, "integer", v)
		return 0
	}
}

func (a *accessor) getBool(path string) bool {
	switch v := a.get(path).(type) {
	case bool:
		return v
	case nil:
		return false
	default:
		a.fail(path, "boolean", v)
		return false
	}
}
