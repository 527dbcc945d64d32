package dispatcher

// Config holds dispatcher configuration options.
type Config struct {
	// AsyncDispatch enables the request loop started by Start.
	AsyncDispatch bool

	// RequestBufferSize is the buffer size for the async request channel.
	// Only used when AsyncDispatch is true.
	RequestBufferSize int

	// EnableMetrics enables dispatch timing and statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps operation execution in panic recovery.
	RecoverFromPanic bool

	// InitialMode is the mode the dispatcher starts in.
	InitialMode string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		AsyncDispatch:     false,
		RequestBufferSize: 100,
		EnableMetrics:     false,
		RecoverFromPanic:  true,
		InitialMode:       "normal",
	}
}

// WithAsyncDispatch returns a copy of the config with async dispatch enabled.
func (c Config) WithAsyncDispatch(bufferSize int) Config {
	c.AsyncDispatch = true
	if bufferSize > 0 {
		c.RequestBufferSize = bufferSize
	}
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}

// WithPanicRecovery returns a copy of the config with panic recovery set.
func (c Config) WithPanicRecovery(recover bool) Config {
	c.RecoverFromPanic = recover
	return c
}

// WithInitialMode returns a copy of the config with the starting mode set.
func (c Config) WithInitialMode(mode string) Config {
	if mode != "" {
		c.InitialMode = mode
	}
	return c
}
