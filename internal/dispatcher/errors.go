package dispatcher

import (
	"errors"

	"github.com/dshills/editcore/internal/dispatcher/handler"
)

// Dispatcher errors.
var (
	// ErrUnknownOperation indicates no factory is registered for a name.
	ErrUnknownOperation = errors.New("dispatcher: unknown operation")

	// ErrInvalidParameter indicates a factory rejected its parameter.
	ErrInvalidParameter = handler.ErrInvalidParameter

	// ErrMalformedParameter indicates a parameter whose syntax could not be
	// parsed. It wraps ErrInvalidParameter.
	ErrMalformedParameter = handler.ErrMalformedParameter

	// ErrCancelled indicates a pre-dispatch hook cancelled the operation.
	ErrCancelled = errors.New("dispatcher: operation cancelled by hook")

	// ErrPanic indicates the operation panicked.
	ErrPanic = errors.New("dispatcher: operation panic")

	// ErrDispatcherStopped indicates the dispatcher has been stopped.
	ErrDispatcherStopped = errors.New("dispatcher: dispatcher is stopped")

	// ErrAsyncNotEnabled indicates async dispatch is not enabled.
	ErrAsyncNotEnabled = errors.New("dispatcher: async dispatch not enabled")
)
