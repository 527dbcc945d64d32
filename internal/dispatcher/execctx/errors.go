package execctx

import "errors"

// Context validation errors.
var (
	// ErrMissingBuffer indicates the document is required but not set.
	ErrMissingBuffer = errors.New("execution context: document is required")

	// ErrMissingObjects indicates the text object registry is required but not set.
	ErrMissingObjects = errors.New("execution context: text object registry is required")

	// ErrMissingRegisters indicates the register store is required but not set.
	ErrMissingRegisters = errors.New("execution context: registers are required")
)
