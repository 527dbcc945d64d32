package textobject

import "errors"

// Errors returned by text object resolution.
var (
	// ErrUnsupportedKind indicates no finder is registered for a kind.
	ErrUnsupportedKind = errors.New("textobject: unsupported kind")

	// ErrUnbalancedDelimiter indicates a bracket has no partner.
	ErrUnbalancedDelimiter = errors.New("textobject: unbalanced delimiter")

	// ErrInvalidObject indicates a text object description could not be parsed.
	ErrInvalidObject = errors.New("textobject: invalid object")
)
